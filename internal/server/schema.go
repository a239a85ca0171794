package server

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// corpusSchema gates the JSON corpus body before any decoding. Page keys
// are page numbers as strings, matching the wire shape of the upstream
// extraction jobs that feed this service.
const corpusSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["pages"],
  "properties": {
    "pages": {
      "type": "object",
      "minProperties": 1,
      "patternProperties": {
        "^[1-9][0-9]*$": {"type": "string"}
      },
      "additionalProperties": false
    },
    "tables": {
      "type": "object",
      "patternProperties": {
        "^[1-9][0-9]*$": {
          "type": "array",
          "items": {
            "type": "array",
            "items": {
              "type": "array",
              "items": {"type": "string"}
            }
          }
        }
      },
      "additionalProperties": false
    }
  },
  "additionalProperties": false
}`

var compiledCorpusSchema = jsonschema.MustCompileString("corpus.schema.json", corpusSchema)

func validateCorpusPayload(body []byte) error {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("corpus payload is not valid JSON: %w", err)
	}
	if err := compiledCorpusSchema.Validate(v); err != nil {
		return fmt.Errorf("corpus payload does not match schema: %w", err)
	}
	return nil
}
