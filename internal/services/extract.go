package services

import (
	"encoding/json"
	"regexp"
	"strings"
)

// fenceMarker matches a ```json opening fence (any case) or a bare ``` fence.
var fenceMarker = regexp.MustCompile("(?i)```json|```")

// SanitizeModelOutput strips Markdown code fence markers from raw model text
// and trims surrounding whitespace. Removal is repeated until no marker is
// left, since deleting one marker can join its neighbours into a new one.
func SanitizeModelOutput(raw string) string {
	cleaned := raw
	for {
		next := fenceMarker.ReplaceAllString(cleaned, "")
		if next == cleaned {
			break
		}
		cleaned = next
	}
	return strings.TrimSpace(cleaned)
}

// ExtractJSON sanitizes raw model text and decodes it into T.
// Any prose outside the fences makes decoding fail.
func ExtractJSON[T any](raw string) (T, error) {
	var out T
	cleaned := SanitizeModelOutput(raw)
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		var zero T
		return zero, &MalformedOutputError{Sanitized: cleaned, Err: err}
	}
	return out, nil
}
