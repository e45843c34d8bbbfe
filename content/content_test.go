package content

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	frameschema "github.com/reoring/frameschema"
	"github.com/reoring/frameschema/config"
	"github.com/reoring/frameschema/question"
)

const fixtureRoot = "../testdata"

func fixtureProvider(t *testing.T) *FileProvider {
	t.Helper()
	cfg, err := config.Load(filepath.Join(fixtureRoot, "frameschema.yml"))
	require.NoError(t, err)
	return NewFileProvider(fixtureRoot, cfg)
}

func ids(s *question.Set) []string {
	var out []string
	for _, q := range s.All() {
		out = append(out, q.ID)
	}
	return out
}

func TestFileProvider_FiltersByLot(t *testing.T) {
	p := fixtureProvider(t)
	ctx := context.Background()

	hosting, err := p.Questions(ctx, frameschema.Request{SchemaType: "services", Framework: "example-framework", Lot: "cloud-hosting"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"id", "lot", "serviceName",
		"serviceSummary", "serviceFeatures", "onboardingDays",
		"hostingLocations", "dataCentres",
		"price",
		"supportContact",
		"serviceDefinitionDocumentURL",
	}, ids(hosting))

	support, err := p.Questions(ctx, frameschema.Request{SchemaType: "services", Framework: "example-framework", Lot: "cloud-support"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"id", "lot", "serviceName",
		"serviceSummary", "serviceFeatures", "onboardingDays",
		"price",
		"supportTypes", "supportContact",
		"serviceDefinitionDocumentURL",
	}, ids(support))
}

func TestFileProvider_ResolvesNestedQuestions(t *testing.T) {
	p := fixtureProvider(t)
	set, err := p.Questions(context.Background(), frameschema.Request{SchemaType: "services", Framework: "example-framework", Lot: "cloud-hosting"})
	require.NoError(t, err)

	dc, ok := set.Get("dataCentres")
	require.True(t, ok)
	require.Len(t, dc.Questions, 2)
	certified := dc.Questions[0]
	assert.False(t, certified.IsReference())
	assert.Equal(t, "dataCentresCertified", certified.ID)
	assert.Equal(t, "boolean", certified.Type)
	assert.Equal(t, map[string][]any{"dataCentresCertificate": {true}}, certified.Followup)
	assert.Equal(t, "dataCentresCertificate", dc.Questions[1].ID)

	serviceName, _ := set.Get("serviceName")
	assert.Equal(t, "under_character_limit", serviceName.Validations[1].Name)
}

func TestFileProvider_AssessmentManifest(t *testing.T) {
	p := fixtureProvider(t)
	set, err := p.Questions(context.Background(), frameschema.Request{SchemaType: config.AssessmentType, Framework: "example-framework"})
	require.NoError(t, err)
	assert.Equal(t, []string{"termsAndConditions", "bankrupt", "insurance"}, ids(set))
}

func TestFileProvider_Errors(t *testing.T) {
	p := fixtureProvider(t)
	ctx := context.Background()

	_, err := p.Questions(ctx, frameschema.Request{SchemaType: "briefs", Framework: "example-framework", Lot: "x"})
	assert.ErrorContains(t, err, "no manifest")

	_, err = p.Questions(ctx, frameschema.Request{SchemaType: "services", Framework: "missing-framework", Lot: "x"})
	assert.ErrorContains(t, err, "read manifest")

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = p.Questions(cancelled, frameschema.Request{SchemaType: "services", Framework: "example-framework", Lot: "cloud-hosting"})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestFileProvider_ConcurrentLoadsShareCache(t *testing.T) {
	p := fixtureProvider(t)
	var wg sync.WaitGroup
	results := make([]*question.Question, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			q, err := p.Question("example-framework", "services", "dataCentres")
			assert.NoError(t, err)
			results[i] = q
		}(i)
	}
	wg.Wait()
	for _, q := range results[1:] {
		assert.Same(t, results[0], q)
	}
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, body := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	return root
}

func TestFileProvider_DuplicateKeys(t *testing.T) {
	root := writeTree(t, map[string]string{
		"frameworks/fw/questions/services/dup.yml": "type: text\noptional: true\ntype: boolean\n",
	})
	p := NewFileProvider(root, &config.Config{})
	_, err := p.Question("fw", "services", "dup")
	var dk *DuplicateKeyError
	require.True(t, errors.As(err, &dk), "got %v", err)
	assert.Equal(t, "type", dk.Key)
	assert.Equal(t, 3, dk.Line)
	assert.Equal(t, 1, dk.FirstLine)
}

func TestFileProvider_IDFromFileNameAndCycles(t *testing.T) {
	root := writeTree(t, map[string]string{
		"frameworks/fw/questions/services/plain.yml": "type: text\n",
		"frameworks/fw/questions/services/loopA.yml": "type: multiquestion\nquestions:\n  - loopB\n",
		"frameworks/fw/questions/services/loopB.yml": "type: multiquestion\nquestions:\n  - loopA\n",
	})
	p := NewFileProvider(root, &config.Config{})
	q, err := p.Question("fw", "services", "plain")
	require.NoError(t, err)
	assert.Equal(t, "plain", q.ID)

	_, err = p.Question("fw", "services", "loopA")
	assert.ErrorContains(t, err, "includes itself")
}

func TestDecodeStrict_MultipleDocuments(t *testing.T) {
	var v map[string]any
	err := decodeStrict("x.yml", []byte("a: 1\n---\nb: 2\n"), &v)
	assert.ErrorContains(t, err, "multiple YAML documents")

	require.NoError(t, decodeStrict("empty.yml", nil, &v))
	assert.Nil(t, v)
}

func TestFilter(t *testing.T) {
	deps := []question.Dependency{{On: "lot", Being: []string{"a", "b"}}}
	assert.True(t, Filter{"lot": "a"}.Match(deps))
	assert.False(t, Filter{"lot": "c"}.Match(deps))
	assert.True(t, Filter{}.Match(deps))
	assert.True(t, Filter{"lot": "c"}.Match(nil))

	q := &question.Question{ID: "mq", Type: "multiquestion", Questions: question.Nested{
		{ID: "always", Type: "text"},
		{ID: "onlyA", Type: "text", Depends: deps[:1]},
		{ID: "onlyC", Type: "text", Depends: []question.Dependency{{On: "lot", Being: []string{"c"}}}},
	}}
	got := Filter{"lot": "a"}.Apply(q)
	require.NotNil(t, got)
	assert.Len(t, got.Questions, 2)
	assert.Len(t, q.Questions, 3)
	assert.Nil(t, Filter{"lot": "c"}.Apply(&question.Question{ID: "x", Depends: deps}))
}
