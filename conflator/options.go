package conflator

import (
	"github.com/christianreimer/conflateddict/log"
	"github.com/pkg/errors"
	"github.com/uber-go/tally/v4"
)

type options struct {
	name   string
	logger log.Logger
	scope  tally.Scope
}

type WithOptions func(opts *options) error

// WithName overrides the display name, which defaults to the policy name.
func WithName(name string) WithOptions {
	return func(opts *options) error {
		if name == "" {
			return errors.Errorf("name can't be empty")
		}
		opts.name = name
		return nil
	}
}

func WithLogger(logger log.Logger) WithOptions {
	return func(opts *options) error {
		if logger == nil {
			return errors.Errorf("Logger can't be nil")
		}
		opts.logger = logger
		return nil
	}
}

// WithScope reports conflator metrics to the given tally scope.
func WithScope(scope tally.Scope) WithOptions {
	return func(opts *options) error {
		if scope == nil {
			return errors.Errorf("Scope can't be nil")
		}
		opts.scope = scope
		return nil
	}
}
