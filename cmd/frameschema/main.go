package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/reoring/frameschema/config"
	"github.com/reoring/frameschema/content"
	"github.com/reoring/frameschema/generate"
	"github.com/reoring/frameschema/jsonschema"
	"github.com/reoring/frameschema/validate"
)

func main() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}

// errUsage marks bad invocations; Run exits 2 for them.
var errUsage = errors.New("usage")

// Run executes one subcommand and returns the process exit code: 0 on
// success, 1 when the command fails and 2 on bad usage.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 2
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch args[0] {
	case "generate":
		err = generateCmd(ctx, args[1:], stdout, stderr)
	case "generate-all":
		err = generateAllCmd(ctx, args[1:], stdout, stderr)
	case "assessment":
		err = assessmentCmd(ctx, args[1:], stdout, stderr)
	case "check":
		err = checkCmd(args[1:], stdout, stderr)
	case "-h", "-help", "--help", "help":
		usage(stdout)
		return 0
	default:
		usage(stderr)
		return 2
	}
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		return 2
	default:
		fmt.Fprintf(stderr, "frameschema %s: %v\n", args[0], err)
		return 1
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, `frameschema CLI

Usage:
  frameschema generate -type services -framework F -lot L [-o out.json]
  frameschema generate-all -output-path DIR [-type T]
  frameschema assessment -framework F [-o out.json]
  frameschema check -schema schema.json -answers answers.json

Common flags:
  -config FILE        schema table (default: built-in table)
  -content-root DIR   frameworks content checkout (default: .)
  -v                  debug logging`)
}

// common holds the flags shared by the generating subcommands.
type common struct {
	configPath  string
	contentRoot string
	verbose     bool
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "schema table YAML (default: built-in)")
	fs.StringVar(&c.contentRoot, "content-root", ".", "frameworks content root")
	fs.BoolVar(&c.verbose, "v", false, "enable debug logs")
}

func (c *common) setup(stderr io.Writer) (*config.Config, *generate.Generator, error) {
	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var cfg *config.Config
	var err error
	if c.configPath == "" {
		cfg, err = config.Default()
	} else {
		cfg, err = config.Load(c.configPath)
	}
	if err != nil {
		return nil, nil, err
	}
	p := content.NewFileProvider(c.contentRoot, cfg, content.WithLogger(logger))
	return cfg, generate.New(p, generate.WithLogger(logger)), nil
}

// parse reports flag errors as usage errors; the flag set already printed
// them.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errors.Join(errUsage, err)
	}
	return nil
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

func generateCmd(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("generate", stderr)
	var c common
	c.register(fs)
	var schemaType, framework, lot, out string
	fs.StringVar(&schemaType, "type", "services", "schema type")
	fs.StringVar(&framework, "framework", "", "framework slug")
	fs.StringVar(&lot, "lot", "", "lot slug")
	fs.StringVar(&out, "o", "", "output filename (default: stdout)")
	if err := parse(fs, args); err != nil {
		return err
	}
	if framework == "" || lot == "" {
		fs.Usage()
		return errUsage
	}
	cfg, g, err := c.setup(stderr)
	if err != nil {
		return err
	}
	req, ok := cfg.Find(schemaType, framework, lot)
	if !ok {
		return fmt.Errorf("no %s schema configured for %s/%s", schemaType, framework, lot)
	}
	s, err := g.Generate(ctx, req)
	if err != nil {
		return err
	}
	return emit(s, out, stdout)
}

func generateAllCmd(ctx context.Context, args []string, _ io.Writer, stderr io.Writer) error {
	fs := newFlagSet("generate-all", stderr)
	var c common
	c.register(fs)
	var outputPath, schemaType string
	fs.StringVar(&outputPath, "output-path", "", "directory receiving the schemas")
	fs.StringVar(&schemaType, "type", "", "only generate this schema type")
	if err := parse(fs, args); err != nil {
		return err
	}
	if outputPath == "" {
		fs.Usage()
		return errUsage
	}
	cfg, g, err := c.setup(stderr)
	if err != nil {
		return err
	}
	reqs := cfg.Requests()
	if schemaType != "" {
		kept := reqs[:0]
		for _, r := range reqs {
			if r.SchemaType == schemaType {
				kept = append(kept, r)
			}
		}
		if len(kept) == 0 {
			return fmt.Errorf("no schemas configured for type %q", schemaType)
		}
		reqs = kept
	}
	return g.WriteAll(ctx, outputPath, reqs)
}

func assessmentCmd(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("assessment", stderr)
	var c common
	c.register(fs)
	var framework, out string
	fs.StringVar(&framework, "framework", "", "framework slug")
	fs.StringVar(&out, "o", "", "output filename (default: stdout)")
	if err := parse(fs, args); err != nil {
		return err
	}
	if framework == "" {
		fs.Usage()
		return errUsage
	}
	_, g, err := c.setup(stderr)
	if err != nil {
		return err
	}
	s, err := g.Assessment(ctx, framework)
	if err != nil {
		return err
	}
	return emit(s, out, stdout)
}

func checkCmd(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("check", stderr)
	var schemaPath, answersPath string
	fs.StringVar(&schemaPath, "schema", "", "schema JSON file")
	fs.StringVar(&answersPath, "answers", "", "answers JSON file")
	if err := parse(fs, args); err != nil {
		return err
	}
	if schemaPath == "" || answersPath == "" {
		fs.Usage()
		return errUsage
	}
	data, err := os.ReadFile(schemaPath)
	if err != nil {
		return err
	}
	s, err := jsonschema.Decode(data)
	if err != nil {
		return fmt.Errorf("decode schema: %w", err)
	}
	v, err := validate.Compile(s)
	if err != nil {
		return err
	}
	answers, err := os.ReadFile(answersPath)
	if err != nil {
		return err
	}
	problems, err := v.ValidateJSON(answers)
	if err != nil {
		return err
	}
	for _, p := range problems {
		fmt.Fprintln(stdout, p)
	}
	if len(problems) > 0 {
		return fmt.Errorf("%d problem(s) in %s", len(problems), answersPath)
	}
	fmt.Fprintln(stdout, "ok")
	return nil
}

func emit(s jsonschema.Schema, out string, stdout io.Writer) error {
	data, err := jsonschema.Encode(s)
	if err != nil {
		return err
	}
	if out == "" {
		_, err = stdout.Write(data)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	return os.WriteFile(out, data, 0o644)
}
