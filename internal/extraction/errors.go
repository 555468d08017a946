package extraction

import "fmt"

// APICallError represents a failure calling the external LLM service.
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("API call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("API call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// ExtractionError represents extractor output that could not be turned into a
// valid structured profile, even after repair. Callers degrade to an empty
// profile rather than failing the batch.
type ExtractionError struct {
	Schema  string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed for %s: %s: %v", e.Schema, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction failed for %s: %s", e.Schema, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
