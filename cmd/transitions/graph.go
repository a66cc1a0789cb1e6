package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atlekbai/transitions/graph"
)

func newGraphCmd(a *app) *cobra.Command {
	var (
		format    string
		direction string
		acceptor  bool
	)
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Export the machine as a DOT or Mermaid diagram",
		Long: `Renders the transition graph of the definition. With --acceptor the
transition function is drawn as well, one decision node per function part.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			def, ts, err := a.system()
			if err != nil {
				return err
			}

			var dir *graph.MermaidGraphDirection
			if direction != "" {
				d, err := graph.ParseMermaidGraphDirection(direction)
				if err != nil {
					return err
				}
				dir = &d
			}

			var output string
			if acceptor {
				acc, err := def.BuildAcceptor(a.options()...)
				if err != nil {
					return err
				}
				info := acc.Info()
				switch strings.ToLower(format) {
				case "dot":
					output = graph.AcceptorDotGraph(info)
				case "mermaid":
					output = graph.AcceptorMermaidGraph(info, dir)
				default:
					return fmt.Errorf("unknown graph format %q", format)
				}
			} else {
				switch strings.ToLower(format) {
				case "dot":
					output = graph.UmlDotGraph(ts.Info())
				case "mermaid":
					output = graph.MermaidGraph(ts.Info(), dir)
				default:
					return fmt.Errorf("unknown graph format %q", format)
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), output)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "dot", "diagram format: dot or mermaid")
	cmd.Flags().StringVar(&direction, "direction", "", "mermaid layout direction (TB, TD, BT, LR, RL)")
	cmd.Flags().BoolVar(&acceptor, "acceptor", false, "draw the transition function of the acceptor")
	return cmd
}
