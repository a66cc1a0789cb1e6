package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/atlekbai/transitions"
	"github.com/atlekbai/transitions/definition"
	"github.com/atlekbai/transitions/internal/config"
	"github.com/atlekbai/transitions/internal/logging"
	"github.com/atlekbai/transitions/metrics"
)

var (
	errNoDefinition     = errors.New("no definition file: pass --file or set TRANSITIONS_FILE")
	errAlphabetTooLarge = errors.New("state alphabet exceeds the exhaustive query ceiling")
)

// app carries what every command needs after the root pre-run.
type app struct {
	cfg         *config.Config
	logger      *slog.Logger
	recorder    *metrics.Recorder
	file        string
	showMetrics bool
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "transitions",
		Short: "Explore and drive finite-state machines described in YAML or JSON",
		Long: `transitions loads a machine definition and answers path queries over its
transition graph, renders it as DOT or Mermaid, or walks it state by state
and input by input.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&a.file, "file", "f", "", "definition file (.yaml, .yml or .json)")
	cmd.PersistentFlags().BoolVar(&a.showMetrics, "metrics", false, "print Prometheus metrics after the command")

	cmd.AddCommand(
		newPathsCmd(a),
		newDeadEndsCmd(a),
		newLongestCmd(a),
		newMaximumCmd(a),
		newGraphCmd(a),
		newWalkCmd(a),
		newSignalCmd(a),
		newVersionCmd(),
	)
	return cmd
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.NewWithWriter(cmd.ErrOrStderr(), logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)
	if a.file == "" {
		a.file = cfg.File
	}
	a.recorder, err = metrics.NewRecorder(nil, cfg.MetricsNamespace)
	return err
}

func (a *app) definition() (*definition.Definition, error) {
	if a.file == "" {
		return nil, errNoDefinition
	}
	def, err := definition.Load(a.file)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("definition loaded", "file", a.file, "name", def.Name, "states", len(def.States))
	return def, nil
}

func (a *app) options() []transitions.Option {
	return []transitions.Option{transitions.WithLogger(a.logger)}
}

// system loads the definition and builds its transition system with metrics attached.
func (a *app) system() (*definition.Definition, *transitions.TransitionSystem[string], error) {
	def, err := a.definition()
	if err != nil {
		return nil, nil, err
	}
	ts, err := def.BuildSystem(a.options()...)
	if err != nil {
		return nil, nil, err
	}
	metrics.Attach(a.recorder, ts.Name(), ts)
	return def, ts, nil
}

// exhaustive is system for the commands that enumerate paths.
func (a *app) exhaustive() (*transitions.TransitionSystem[string], error) {
	_, ts, err := a.system()
	if err != nil {
		return nil, err
	}
	if n := ts.States().Len(); n > a.cfg.MaxAlphabet {
		return nil, fmt.Errorf("%w: %d states, limit %d", errAlphabetTooLarge, n, a.cfg.MaxAlphabet)
	}
	return ts, nil
}

func (a *app) observe(ts *transitions.TransitionSystem[string], query string, started time.Time, found int) {
	took := time.Since(started)
	a.recorder.ObserveQuery(ts.Name(), query, took, found)
	a.logger.Debug("query finished", "machine", ts.Name(), "query", query, "took", took, "found", found)
}

func (a *app) finish(w io.Writer) error {
	if !a.showMetrics {
		return nil
	}
	fmt.Fprintln(w)
	return a.recorder.WriteText(w)
}
