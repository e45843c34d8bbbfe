package content

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	frameschema "github.com/reoring/frameschema"
	"github.com/reoring/frameschema/config"
	"github.com/reoring/frameschema/question"
)

// FileProvider reads manifests and question files below a content root.
// Parsed question files are cached, so one provider can serve many lots of
// the same framework; it is safe for concurrent use.
type FileProvider struct {
	root   string
	cfg    *config.Config
	logger *slog.Logger

	mu    sync.RWMutex
	cache map[string]*question.Question
	group singleflight.Group
}

var _ Provider = (*FileProvider)(nil)

// NewFileProvider returns a provider reading the content tree at root. cfg
// maps schema types to manifests.
func NewFileProvider(root string, cfg *config.Config, opts ...Option) *FileProvider {
	o := &options{}
	applyOptions(o, opts)
	return &FileProvider{
		root:   root,
		cfg:    cfg,
		logger: o.logger,
		cache:  make(map[string]*question.Question),
	}
}

// Questions loads the manifest of req.SchemaType for req.Framework and
// returns its questions in section order, filtered by lot. An empty lot
// disables filtering.
func (p *FileProvider) Questions(ctx context.Context, req frameschema.Request) (*question.Set, error) {
	m, ok := p.cfg.ManifestFor(req.SchemaType)
	if !ok {
		return nil, fmt.Errorf("content: no manifest for schema type %q", req.SchemaType)
	}
	sections, err := p.Manifest(req.Framework, m.Manifest)
	if err != nil {
		return nil, err
	}
	filter := Filter{}
	if req.Lot != "" {
		filter["lot"] = req.Lot
	}

	p.logger.Debug("loading manifest",
		slog.String("schema_type", req.SchemaType),
		slog.String("framework", req.Framework),
		slog.String("lot", req.Lot),
		slog.String("manifest", m.Manifest),
	)

	set := question.NewSet()
	for _, sec := range sections {
		if !filter.Match(sec.Depends) {
			continue
		}
		for _, id := range sec.Questions {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			q, err := p.Question(req.Framework, m.QuestionSet, id)
			if err != nil {
				return nil, err
			}
			q = filter.Apply(q)
			if q == nil {
				continue
			}
			if _, dup := set.Get(q.ID); dup {
				p.logger.Warn("question listed twice", slog.String("question", q.ID), slog.String("section", sec.Name))
			}
			set.Add(q)
		}
	}
	return set, nil
}

// Manifest reads the sections of a framework manifest.
func (p *FileProvider) Manifest(framework, name string) ([]Section, error) {
	path := filepath.Join(p.root, "frameworks", framework, "manifests", name+".yml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: read manifest: %w", err)
	}
	var sections []Section
	if err := decodeStrict(path, data, &sections); err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}
	return sections, nil
}

// Question loads one question file with its nested references resolved.
// The returned question is shared and must not be modified.
func (p *FileProvider) Question(framework, questionSet, id string) (*question.Question, error) {
	path := filepath.Join(p.root, "frameworks", framework, "questions", questionSet, id+".yml")
	p.mu.RLock()
	q, ok := p.cache[path]
	p.mu.RUnlock()
	if ok {
		return q, nil
	}
	v, err, _ := p.group.Do(path, func() (any, error) {
		p.mu.RLock()
		q, ok := p.cache[path]
		p.mu.RUnlock()
		if ok {
			return q, nil
		}
		q, err := p.load(path, id, nil)
		if err != nil {
			return nil, err
		}
		p.mu.Lock()
		p.cache[path] = q
		p.mu.Unlock()
		return q, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*question.Question), nil
}

// load decodes the question at path and resolves nested references from the
// same directory. chain holds the files being resolved, to reject cycles.
func (p *FileProvider) load(path, id string, chain []string) (*question.Question, error) {
	for _, c := range chain {
		if c == path {
			return nil, fmt.Errorf("content: question %q includes itself (%s)", id, strings.Join(append(chain, path), " -> "))
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: read question: %w", err)
	}
	q := &question.Question{}
	if err := decodeStrict(path, data, q); err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}
	if q.ID == "" {
		q.ID = id
	}
	if err := p.resolve(q, filepath.Dir(path), append(chain, path)); err != nil {
		return nil, err
	}
	return q, nil
}

func (p *FileProvider) resolve(q *question.Question, dir string, chain []string) error {
	for i, nq := range q.Questions {
		if !nq.IsReference() {
			if err := p.resolve(nq, dir, chain); err != nil {
				return err
			}
			continue
		}
		resolved, err := p.load(filepath.Join(dir, nq.ID+".yml"), nq.ID, chain)
		if err != nil {
			return err
		}
		q.Questions[i] = resolved
	}
	return nil
}
