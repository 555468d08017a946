// Package ingestion turns heterogeneous document sources (URLs, PDF, DOCX,
// plain text) into normalized plain text for extraction and scoring.
package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
)

// MaxTextLength is the safety ceiling applied to all ingested text.
const MaxTextLength = 20000

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeLine collapses whitespace runs inside a line and trims it.
func NormalizeLine(line string) string {
	line = strings.ReplaceAll(line, " ", " ")
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(line, " "))
}

// CleanText normalizes line endings, collapses whitespace per line, drops
// empty lines, removes near-identical duplicate lines by content hash, and
// truncates to the safety ceiling.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		if normalized := NormalizeLine(line); normalized != "" {
			cleaned = append(cleaned, normalized)
		}
	}

	result := strings.Join(dedupeLines(cleaned), "\n")
	return Truncate(result, MaxTextLength)
}

// dedupeLines removes repeated lines, keeping first occurrences in order.
// Boilerplate repeated across a scraped page (cookie notices, repeated
// headers) collapses to a single line.
func dedupeLines(lines []string) []string {
	unique := make([]string, 0, len(lines))
	seen := make(map[string]bool, len(lines))
	for _, line := range lines {
		key := lineHash(line)
		if !seen[key] {
			seen[key] = true
			unique = append(unique, line)
		}
	}
	return unique
}

// lineHash returns a short content hash for duplicate-line detection.
func lineHash(line string) string {
	sum := sha256.Sum256([]byte(line))
	return hex.EncodeToString(sum[:5])
}

// Truncate caps text at maxLen characters.
func Truncate(text string, maxLen int) string {
	if maxLen > 0 && len(text) > maxLen {
		return text[:maxLen]
	}
	return text
}
