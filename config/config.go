// Package config describes which schemas are generated and which content
// each schema type is compiled from.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	frameschema "github.com/reoring/frameschema"
)

// AssessmentType is the schema type under which the declaration assessment
// manifest is looked up.
const AssessmentType = "assessment"

//go:embed default.yml
var defaultConfig []byte

// Manifest locates the content of a schema type inside a framework.
type Manifest struct {
	QuestionSet string `yaml:"question_set"`
	Manifest    string `yaml:"manifest"`
}

// Target is one schema to generate for a schema type.
type Target struct {
	Name      string `yaml:"name"`
	Framework string `yaml:"framework"`
	Lot       string `yaml:"lot"`
}

// Config is the generation table.
type Config struct {
	Manifests  map[string]Manifest `yaml:"manifests"`
	Assessment Manifest            `yaml:"assessment"`
	Schemas    map[string][]Target `yaml:"schemas"`
}

// Default returns the built-in table of Digital Marketplace schemas.
func Default() (*Config, error) {
	cfg, err := Parse(defaultConfig)
	if err != nil {
		return nil, fmt.Errorf("default config: %w", err)
	}
	return cfg, nil
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes a single YAML document, rejecting unknown keys, and
// validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse config: multiple YAML documents are not supported")
		}
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ManifestFor returns the manifest a schema type is built from.
// AssessmentType resolves to the assessment manifest when one is configured.
func (c *Config) ManifestFor(schemaType string) (Manifest, bool) {
	if schemaType == AssessmentType {
		return c.Assessment, c.Assessment.Manifest != ""
	}
	m, ok := c.Manifests[schemaType]
	return m, ok
}

// SchemaTypes returns the configured schema types, sorted.
func (c *Config) SchemaTypes() []string {
	out := make([]string, 0, len(c.Schemas))
	for k := range c.Schemas {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Requests lists every configured schema: schema types sorted, targets in
// the order they are declared.
func (c *Config) Requests() []frameschema.Request {
	var out []frameschema.Request
	for _, st := range c.SchemaTypes() {
		for _, t := range c.Schemas[st] {
			out = append(out, frameschema.Request{
				SchemaType: st,
				Name:       t.Name,
				Framework:  t.Framework,
				Lot:        t.Lot,
			})
		}
	}
	return out
}

// Find returns the configured request for a schema type, framework and lot.
func (c *Config) Find(schemaType, framework, lot string) (frameschema.Request, bool) {
	for _, t := range c.Schemas[schemaType] {
		if t.Framework == framework && t.Lot == lot {
			return frameschema.Request{SchemaType: schemaType, Name: t.Name, Framework: framework, Lot: lot}, true
		}
	}
	return frameschema.Request{}, false
}
