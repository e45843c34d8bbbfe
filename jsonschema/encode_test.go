package jsonschema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/frameschema/jsonschema"
)

func TestEncode_SortedIndentedStable(t *testing.T) {
	s := jsonschema.Empty("Test")
	s["properties"] = jsonschema.Schema{
		"zeta":  jsonschema.Schema{"type": "boolean"},
		"alpha": jsonschema.Schema{"type": "string", "pattern": "^<a>&$"},
	}

	b1, err := jsonschema.Encode(s)
	require.NoError(t, err)
	b2, err := jsonschema.Encode(s.Clone())
	require.NoError(t, err)
	assert.Equal(t, b1, b2)

	want := `{
  "$schema": "http://json-schema.org/schema#",
  "additionalProperties": false,
  "properties": {
    "alpha": {
      "pattern": "^<a>&$",
      "type": "string"
    },
    "zeta": {
      "type": "boolean"
    }
  },
  "required": [],
  "title": "Test Schema",
  "type": "object"
}
`
	assert.Equal(t, want, string(b1))
}

func TestDecode_RoundTripsKeys(t *testing.T) {
	s, err := jsonschema.Decode([]byte(`{"type":"object","required":["a"]}`))
	require.NoError(t, err)
	assert.Equal(t, "object", s["type"])
	assert.Equal(t, []string{"a"}, s.Required())

	_, err = jsonschema.Decode([]byte(`null`))
	assert.Error(t, err)
	_, err = jsonschema.Decode([]byte(`{`))
	assert.Error(t, err)
}
