package question

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Nested is the questions list of a composite question. In content each entry
// is either an inline question mapping or the id of a question file.
type Nested []*Question

// UnmarshalYAML accepts scalars as references and mappings as inline questions.
func (n *Nested) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("questions at %d:%d: expected a list", node.Line, node.Column)
	}
	out := make(Nested, 0, len(node.Content))
	for _, c := range node.Content {
		switch c.Kind {
		case yaml.ScalarNode:
			out = append(out, Ref(c.Value))
		case yaml.MappingNode:
			q := &Question{}
			if err := c.Decode(q); err != nil {
				return err
			}
			out = append(out, q)
		default:
			return fmt.Errorf("questions at %d:%d: expected an id or a question", c.Line, c.Column)
		}
	}
	*n = out
	return nil
}

// UnmarshalYAML lets being be a single value or a list.
func (d *Dependency) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		On    string    `yaml:"on"`
		Being yaml.Node `yaml:"being"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	d.On = raw.On
	d.Being = nil
	switch raw.Being.Kind {
	case 0:
	case yaml.ScalarNode:
		d.Being = []string{raw.Being.Value}
	default:
		if err := raw.Being.Decode(&d.Being); err != nil {
			return err
		}
	}
	return nil
}
