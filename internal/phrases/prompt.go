package phrases

import (
	"strconv"
	"strings"
)

// SystemInstruction is sent unchanged with every generation request.
const SystemInstruction = `You write short rotating loading phrases for a time-travel
exploration UI. The phrases must be historically plausible for the given
location and year.

Rules:
- Output ONLY a JSON array of strings. No extra text.
- Each string is a short action phrase in lowercase.
- Start each phrase with an action verb in present participle (ending in "ing").
- End every phrase with "..." (three dots).
- Keep phrases concise (about 4 to 10 words).
- Avoid anachronisms, modern references, or proper nouns unless necessary.
- Avoid repeating the same starting verb across the list.
`

// Prompt is the pair of texts sent to the generator.
type Prompt struct {
	System string
	User   string
}

// BuildPrompt assembles the prompt for req. The user message lists the
// location and year, then the era and coordinates when present, and ends
// with the number of phrases wanted after clamping.
func BuildPrompt(req Request) Prompt {
	lines := []string{
		"Location: " + req.Location,
		"Year: " + strconv.Itoa(req.Year),
	}
	if req.Era != "" {
		lines = append(lines, "Era: "+req.Era)
	}
	if req.HasCoordinates() {
		lines = append(lines, "Coordinates: "+formatCoord(*req.Lat)+", "+formatCoord(*req.Lng))
	}
	lines = append(lines, "Return "+strconv.Itoa(ClampCount(req.Count))+" phrases.")

	return Prompt{
		System: SystemInstruction,
		User:   strings.Join(lines, "\n"),
	}
}

// formatCoord writes the shortest decimal form, keeping ".0" on whole numbers.
func formatCoord(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
