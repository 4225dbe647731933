package phrases

import (
	"encoding/json"
	"regexp"
	"strings"
	"unicode"
)

const ellipsis = "..."

// decorations are list markers and box-drawing glyphs models like to prefix.
const decorations = "-–—|│¦•·▏▌▍▎"

// bracketed matches from the first '[' to the last ']' in the text.
var bracketed = regexp.MustCompile(`\[[\s\S]*\]`)

// SanitizePhrase normalises one model-produced phrase: surrounding quotes
// and whitespace are trimmed, the text is lowercased, leading list markers
// are removed and the phrase is made to end with exactly "...".
// A phrase with no content yields "".
func SanitizePhrase(phrase string) string {
	cleaned := strings.TrimSpace(phrase)
	cleaned = strings.Trim(cleaned, `"`)
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.ToLower(cleaned)
	cleaned = strings.TrimLeftFunc(cleaned, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(decorations, r)
	})
	if cleaned == "" {
		return ""
	}
	if !strings.HasSuffix(cleaned, ellipsis) {
		cleaned = strings.TrimRight(cleaned, ".") + ellipsis
	}
	return cleaned
}

// ParsePhrases extracts up to count sanitized phrases from raw model output.
//
// raw is decoded as JSON; if that fails, the span from the first '[' to the
// last ']' is decoded instead. Non-string elements and phrases that sanitize
// to "" are dropped. The result keeps the model's order.
func ParsePhrases(raw string, count int) ([]string, error) {
	items, err := decodeArray(raw)
	if err != nil {
		return nil, err
	}

	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			continue
		}
		if p := SanitizePhrase(s); p != "" {
			cleaned = append(cleaned, p)
		}
	}

	if len(cleaned) == 0 {
		return nil, ErrEmptyAfterSanitization
	}
	if count >= 0 && len(cleaned) > count {
		cleaned = cleaned[:count]
	}
	return cleaned, nil
}

// decodeArray returns the non-empty JSON array held in raw.
func decodeArray(raw string) ([]any, error) {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		match := bracketed.FindString(raw)
		if match == "" {
			return nil, ErrUnparsableOutput
		}
		v = nil
		if err := json.Unmarshal([]byte(match), &v); err != nil {
			return nil, ErrUnparsableOutput
		}
	}

	items, ok := v.([]any)
	if !ok || len(items) == 0 {
		return nil, ErrUnparsableOutput
	}
	return items, nil
}
