package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// MarshalSchema indents the schema to JSON bytes.
func MarshalSchema(sch *jsonschema.Schema) ([]byte, error) {
	return json.MarshalIndent(sch, "", "  ")
}

// ToolsSchema returns a JSON Schema for tools.json.
// Shape: top-level array of tool entries.
func ToolsSchema() *jsonschema.Schema {
	r := jsonschema.Reflector{ExpandedStruct: true}
	entrySch := r.Reflect(&Entry{})
	return &jsonschema.Schema{
		Title:       "aboutctl tool catalog",
		Description: "Ordered list of external tools to detect (order is detection order).",
		Type:        "array",
		Items:       entrySch,
	}
}
