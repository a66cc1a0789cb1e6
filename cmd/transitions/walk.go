package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/atlekbai/transitions"
	"github.com/atlekbai/transitions/definition"
	"github.com/atlekbai/transitions/metrics"
)

func newWalkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "walk STATE...",
		Short: "Move the cursor through the given states, reporting refusals",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, ts, err := a.system()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "start %s\n", ts.CurrentState())
			for _, target := range args {
				res, err := ts.TryTransitionTo(target)
				if err != nil {
					return err
				}
				if res.OK {
					fmt.Fprintf(out, "ok      %s\n", target)
					continue
				}
				fmt.Fprintf(out, "refused %s: %s\n", target, res.Comment)
			}
			fmt.Fprintf(out, "current %s\n", ts.CurrentState())
			return a.finish(out)
		},
	}
}

func newSignalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "signal INPUT...",
		Short: "Feed inputs to the acceptor, printing outputs when the machine declares them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := a.definition()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(def.Outputs) > 0 {
				err = a.runTransducer(out, def, args)
			} else {
				err = a.runAcceptor(out, def, args)
			}
			if err != nil {
				return err
			}
			return a.finish(out)
		},
	}
}

func (a *app) attach(acc *transitions.Acceptor[string, string], name string) {
	if ts, ok := acc.Core().(*transitions.TransitionSystem[string]); ok {
		metrics.Attach(a.recorder, name, ts)
	}
}

func writeSignal(out io.Writer, input string, res transitions.SignalResult[string]) {
	if res.OK {
		fmt.Fprintf(out, "%s -> %s\n", input, res.State)
		return
	}
	fmt.Fprintf(out, "%s refused in %s: %s\n", input, res.State, res.Comment)
}

func (a *app) runAcceptor(out io.Writer, def *definition.Definition, inputs []string) error {
	acc, err := def.BuildAcceptor(a.options()...)
	if err != nil {
		return err
	}
	a.attach(acc, def.Name)

	fmt.Fprintf(out, "start %s\n", acc.CurrentState())
	for _, input := range inputs {
		res, err := acc.TransitionSignal(input)
		if err != nil {
			return err
		}
		writeSignal(out, input, res)
	}
	return nil
}

func (a *app) runTransducer(out io.Writer, def *definition.Definition, inputs []string) error {
	tr, err := def.BuildTransducer(a.options()...)
	if err != nil {
		return err
	}
	a.attach(tr.Acceptor(), def.Name)

	fmt.Fprintf(out, "start %s\n", tr.CurrentState())
	for _, input := range inputs {
		res, err := tr.Signal(input)
		if err != nil {
			return err
		}
		writeSignal(out, input, res.Transition)
		if res.OutputOK {
			fmt.Fprintf(out, "  output %s\n", res.Output)
		}
	}
	return nil
}
