package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func formatPath(start string, path []string) string {
	return strings.Join(append([]string{start}, path...), " -> ")
}

func newPathsCmd(a *app) *cobra.Command {
	var shortest bool
	cmd := &cobra.Command{
		Use:   "paths FROM TO",
		Short: "List every simple path between two states",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := a.exhaustive()
			if err != nil {
				return err
			}
			started := time.Now()
			paths, err := ts.Labyrinth(args[0], args[1], shortest)
			if err != nil {
				return err
			}
			a.observe(ts, "labyrinth", started, len(paths))

			out := cmd.OutOrStdout()
			for _, path := range paths {
				fmt.Fprintln(out, formatPath(args[0], path))
			}
			fmt.Fprintf(out, "%d path(s)\n", len(paths))
			return a.finish(out)
		},
	}
	cmd.Flags().BoolVar(&shortest, "shortest", false, "keep only the paths of minimal length")
	return cmd
}

func newDeadEndsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "deadends FROM TO",
		Short: "List the states visited by no path between two states",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := a.exhaustive()
			if err != nil {
				return err
			}
			started := time.Now()
			_, deadEnds, err := ts.FindDeadEndsBetween(args[0], args[1])
			if err != nil {
				return err
			}
			a.observe(ts, "dead_ends", started, len(deadEnds))

			out := cmd.OutOrStdout()
			if len(deadEnds) == 0 {
				fmt.Fprintln(out, "no dead ends")
				return a.finish(out)
			}
			for _, state := range deadEnds {
				fmt.Fprintln(out, state)
			}
			return a.finish(out)
		},
	}
}

func writePaths(out io.Writer, paths [][]string) {
	for _, path := range paths {
		fmt.Fprintln(out, strings.Join(path, " -> "))
	}
}

func newLongestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "longest",
		Short: "Report the longest simple paths over every pair of states",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ts, err := a.exhaustive()
			if err != nil {
				return err
			}
			started := time.Now()
			report := ts.LongestPaths()
			a.observe(ts, "longest", started, len(report.Paths))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "paths: %d\nmax length: %d\n", report.PathCount, report.MaxLength)
			writePaths(out, report.Paths)
			return a.finish(out)
		},
	}
}

func newMaximumCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "maximum",
		Short: "Report the pairs of states joined by the most simple paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ts, err := a.exhaustive()
			if err != nil {
				return err
			}
			started := time.Now()
			report := ts.MaximumPaths()
			a.observe(ts, "maximum", started, len(report.Pairs))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "count: %d\n", report.Count)
			for _, pair := range report.Pairs {
				fmt.Fprintf(out, "%s => %s\n", pair.Start, pair.Finish)
			}
			return a.finish(out)
		},
	}
}
