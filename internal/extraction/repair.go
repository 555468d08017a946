package extraction

import "strings"

// RepairJSONObject attempts a best-effort repair of malformed LLM output by
// locating the outermost {...} span. LLMs occasionally prepend commentary or
// trail off after the closing brace despite strict-JSON instructions.
// Returns the repaired span and true, or the input unchanged and false when
// no object span exists.
func RepairJSONObject(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end <= start {
		return raw, false
	}
	return raw[start : end+1], true
}
