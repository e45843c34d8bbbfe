package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DuplicateKeyError reports a duplicate key found in a YAML mapping with both
// the first occurrence position and the duplicate occurrence position.
type DuplicateKeyError struct {
	File      string
	Key       string
	FirstLine int
	FirstCol  int
	Line      int
	Col       int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s: duplicate YAML key %q at %d:%d (first at %d:%d)",
		e.File, e.Key, e.Line, e.Col, e.FirstLine, e.FirstCol)
}

// decodeStrict decodes a single YAML document into v after checking every
// mapping for duplicate keys. An empty document leaves v untouched.
func decodeStrict(file string, data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var root yaml.Node
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%s: %w", file, err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			return fmt.Errorf("%s: multiple YAML documents are not supported", file)
		}
		return fmt.Errorf("%s: %w", file, err)
	}
	if err := checkDuplicates(file, &root); err != nil {
		return err
	}
	if err := root.Decode(v); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	return nil
}

func checkDuplicates(file string, n *yaml.Node) error {
	switch n.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, c := range n.Content {
			if err := checkDuplicates(file, c); err != nil {
				return err
			}
		}
	case yaml.MappingNode:
		first := make(map[string][2]int, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if pos, dup := first[k.Value]; dup {
				return &DuplicateKeyError{
					File: file, Key: k.Value,
					FirstLine: pos[0], FirstCol: pos[1],
					Line: k.Line, Col: k.Column,
				}
			}
			first[k.Value] = [2]int{k.Line, k.Column}
			if err := checkDuplicates(file, v); err != nil {
				return err
			}
		}
	}
	return nil
}
