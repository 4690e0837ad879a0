package config

import jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

// documentSchemaJSON is the structural contract for motion documents. It
// deliberately checks shape only (required fields, basic types); arity,
// ranges and supported-model checks stay in the domain constructors so their
// messages reach the user unchanged.
const documentSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["robot", "firmware_version", "base_frame", "tool_frame", "trajectory"],
  "properties": {
    "robot": {"type": "string"},
    "firmware_version": {"type": "string"},
    "base_frame": {"type": "array", "items": {"type": "number"}},
    "tool_frame": {"type": "array", "items": {"type": "number"}},
    "trajectory": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["type", "speed"],
        "properties": {
          "type": {"type": "string"},
          "position": {"type": "array", "items": {"type": "number"}},
          "joints": {"type": "array", "items": {"type": "number"}},
          "speed": {"type": "integer"},
          "acceleration": {"type": "integer"}
        }
      }
    }
  }
}`

var documentSchema = jsonschema.MustCompileString("motion-document.schema.json", documentSchemaJSON)
