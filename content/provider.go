// Package content loads framework questions from a content tree laid out as
//
//	frameworks/<framework>/manifests/<manifest>.yml
//	frameworks/<framework>/questions/<question set>/<question id>.yml
//
// A manifest is a list of sections, each listing question ids. Sections,
// questions and nested questions may carry depends rules restricting them to
// some lots.
package content

import (
	"context"
	"log/slog"

	frameschema "github.com/reoring/frameschema"
	"github.com/reoring/frameschema/question"
)

// Provider yields the ordered questions a schema request is compiled from.
type Provider interface {
	Questions(ctx context.Context, req frameschema.Request) (*question.Set, error)
}

// Section is one manifest section.
type Section struct {
	Name      string                `yaml:"name"`
	Slug      string                `yaml:"slug"`
	Questions []string              `yaml:"questions"`
	Depends   []question.Dependency `yaml:"depends"`
}

type options struct {
	logger *slog.Logger
}

// Option configures a FileProvider.
type Option func(*options)

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func applyOptions(o *options, opts []Option) {
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
}
