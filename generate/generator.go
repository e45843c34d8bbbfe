// Package generate runs schema requests against a content provider and
// writes the resulting documents.
package generate

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	frameschema "github.com/reoring/frameschema"
	"github.com/reoring/frameschema/compiler"
	"github.com/reoring/frameschema/config"
	"github.com/reoring/frameschema/content"
	"github.com/reoring/frameschema/jsonschema"
)

// Generator compiles schemas for requests. Requests share nothing, so one
// Generator may serve many of them at once.
type Generator struct {
	provider    content.Provider
	logger      *slog.Logger
	concurrency int
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithConcurrency bounds how many requests GenerateAll runs at once.
// Values below 1 mean GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(g *Generator) {
		g.concurrency = n
	}
}

// New returns a Generator reading questions from p.
func New(p content.Provider, opts ...Option) *Generator {
	g := &Generator{provider: p}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.New(slog.DiscardHandler)
	}
	if g.concurrency < 1 {
		g.concurrency = runtime.GOMAXPROCS(0)
	}
	return g
}

// Result is the outcome of one request in a batch. Exactly one of Schema and
// Err is set.
type Result struct {
	Request frameschema.Request
	Schema  jsonschema.Schema
	Err     error
}

// FileName is the output file of a request, e.g.
// services-g-cloud-7-scs.json.
func FileName(req frameschema.Request) string {
	return req.String() + ".json"
}

// Generate builds the schema of one request.
func (g *Generator) Generate(ctx context.Context, req frameschema.Request) (jsonschema.Schema, error) {
	attrs := requestAttrs(req)
	set, err := g.provider.Questions(ctx, req)
	if err != nil {
		g.logger.Error("schema generation failed", append(attrs, slog.Any("error", err))...)
		return nil, err
	}
	s, err := compiler.Schema(req.Name, set)
	if err != nil {
		g.logger.Error("schema generation failed", append(attrs, slog.Any("error", err))...)
		return nil, err
	}
	g.logger.Info("generated schema", append(attrs, slog.Int("properties", len(s.Properties())))...)
	return s, nil
}

// GenerateAll builds every request concurrently. Results come back in
// request order; a failed request never stops or affects the others.
func (g *Generator) GenerateAll(ctx context.Context, reqs []frameschema.Request) []Result {
	results := make([]Result, len(reqs))
	var eg errgroup.Group
	eg.SetLimit(g.concurrency)
	for i, req := range reqs {
		eg.Go(func() error {
			s, err := g.Generate(ctx, req)
			results[i] = Result{Request: req, Schema: s, Err: err}
			return nil
		})
	}
	_ = eg.Wait()
	return results
}

// WriteAll generates every request into dir, creating it when missing. Each
// successful schema is written to FileName(req). Failed requests are
// reported together as frameschema.Failures after the others are written.
func (g *Generator) WriteAll(ctx context.Context, dir string, reqs []frameschema.Request) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	var failures frameschema.Failures
	for _, r := range g.GenerateAll(ctx, reqs) {
		if r.Err == nil {
			r.Err = writeSchema(filepath.Join(dir, FileName(r.Request)), r.Schema)
		}
		if r.Err != nil {
			failures = append(failures, frameschema.Failure{Request: r.Request, Err: r.Err})
		}
	}
	if len(failures) > 0 {
		return failures
	}
	return nil
}

// Assessment builds the declaration assessment schema of a framework.
func (g *Generator) Assessment(ctx context.Context, framework string) (jsonschema.Schema, error) {
	set, err := g.provider.Questions(ctx, frameschema.Request{SchemaType: config.AssessmentType, Framework: framework})
	if err != nil {
		return nil, err
	}
	return compiler.AssessmentSchema(framework, set), nil
}

func writeSchema(path string, s jsonschema.Schema) error {
	data, err := jsonschema.Encode(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write schema: %w", err)
	}
	return nil
}

func requestAttrs(req frameschema.Request) []any {
	return []any{
		slog.String("schema_type", req.SchemaType),
		slog.String("framework", req.Framework),
		slog.String("lot", req.Lot),
	}
}
