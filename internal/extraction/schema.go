package extraction

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// JSON Schemas for the three extractor outputs. Every optional field has a
// defined default applied after validation, so call sites never reach into
// untyped maps with ad hoc fallbacks.
const (
	jobSchema = `{
  "type": "object",
  "properties": {
    "title": {"type": ["string", "null"]},
    "seniority": {"type": ["string", "null"]},
    "required_skills": {"type": ["array", "null"], "items": {"type": "string"}},
    "nice_to_have_skills": {"type": ["array", "null"], "items": {"type": "string"}},
    "responsibilities": {"type": ["array", "null"], "items": {"type": "string"}},
    "raw_summary": {"type": ["string", "null"]}
  }
}`

	resumeSchema = `{
  "type": "object",
  "properties": {
    "name": {"type": ["string", "null"]},
    "titles": {"type": ["array", "null"], "items": {"type": "string"}},
    "seniority": {"type": ["string", "null"]},
    "skills": {"type": ["array", "null"], "items": {"type": "string"}},
    "experience_bullets": {"type": ["array", "null"], "items": {"type": "string"}},
    "education": {"type": ["array", "null"], "items": {"type": "string"}}
  }
}`

	authenticitySchema = `{
  "type": "object",
  "properties": {
    "ai_likelihood_percent": {"type": ["number", "null"]},
    "rationale": {"type": ["string", "null"]},
    "flags": {"type": ["array", "null"], "items": {"type": "string"}}
  },
  "required": ["ai_likelihood_percent"]
}`
)

// validateSchema checks a JSON document against a schema and returns an
// ExtractionError describing every violated field.
func validateSchema(schemaName, schemaJSON, document string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaJSON),
		gojsonschema.NewStringLoader(document),
	)
	if err != nil {
		return &ExtractionError{Schema: schemaName, Message: "schema validation failed", Cause: err}
	}

	if !result.Valid() {
		var details string
		for i, violation := range result.Errors() {
			if i > 0 {
				details += "; "
			}
			details += fmt.Sprintf("%s: %s", violation.Field(), violation.Description())
		}
		return &ExtractionError{Schema: schemaName, Message: details}
	}

	return nil
}
