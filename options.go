package transitions

import (
	"log/slog"

	"github.com/atlekbai/transitions/internal/logging"
)

// Option configures a transition system, acceptor or transducer at construction.
type Option func(*settings)

type settings struct {
	initial    any
	hasInitial bool
	logger     *slog.Logger
	name       string
}

func newSettings(opts []Option) *settings {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	return s
}

// WithInitial selects the initial state. The value must have the state type
// exactly: untyped constants take their default type, so WithInitial(2) on a
// machine over a named integer type is rejected by New with an
// *ArgumentError. A value of the right type that is not a member of the
// state alphabet falls back to the intrinsic default with a warning.
func WithInitial(state any) Option {
	return func(s *settings) {
		s.initial = state
		s.hasInitial = true
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithName labels the machine in logs, metrics and rendered graphs.
func WithName(name string) Option {
	return func(s *settings) {
		s.name = name
	}
}
