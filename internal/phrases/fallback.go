package phrases

import "strings"

// FallbackLocation stands in for a blank location in the fallback list.
const FallbackLocation = "the horizon"

// FallbackPhrases returns the ten canned phrases used when generation is
// unavailable. Only the first depends on location; the list is never
// truncated to the requested count.
func FallbackPhrases(location string) []string {
	loc := strings.TrimSpace(location)
	if loc == "" {
		loc = FallbackLocation
	}
	return []string{
		"gathering supplies for " + strings.ToLower(loc) + "...",
		"checking maps under starlight...",
		"tightening straps on worn satchels...",
		"listening for distant footsteps...",
		"preparing provisions for the road...",
		"studying landmarks in the dark...",
		"packing tools for the journey...",
		"steadying breath before the crossing...",
		"tracing routes across the landscape...",
		"waiting for the right moment...",
	}
}
