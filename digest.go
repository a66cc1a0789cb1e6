package transitions

// validEdge is the part of a valid record the digest needs.
type validEdge struct {
	key        edgeKey
	undirected bool
}

// digest is the forward adjacency index over valid edges, addressed by
// element index. It is built on the first path query; after that every
// valid edge added to the graph is patched in immediately.
type digest struct {
	built     bool
	following [][]int
}

func newDigest(size int) *digest {
	return &digest{following: make([][]int, size)}
}

// build indexes the valid edges in insertion order. It is a no-op once built.
func (d *digest) build(edges []validEdge) {
	if d.built {
		return
	}
	d.built = true
	for _, e := range edges {
		d.update(e)
	}
}

// update patches a newly added valid edge into a built digest.
func (d *digest) update(e validEdge) {
	if !d.built {
		return
	}
	d.following[e.key.start] = append(d.following[e.key.start], e.key.finish)
	if e.undirected {
		d.following[e.key.finish] = append(d.following[e.key.finish], e.key.start)
	}
}
