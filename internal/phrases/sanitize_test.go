package phrases_test

import (
	"strings"
	"testing"

	"github.com/phrazzld/loading-phrases-api/internal/phrases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizePhrase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"quoted and padded", "  \"Gathering Supplies...\"", "gathering supplies..."},
		{"dash bullet without ellipsis", "- checking the ledger", "checking the ledger..."},
		{"single trailing period", "Packing tools.", "packing tools..."},
		{"many trailing periods", "waiting....", "waiting...."},
		{"two trailing periods", "waiting..", "waiting..."},
		{"em dash and bullet", "— • Loading Carts", "loading carts..."},
		{"pipe and box drawing", "| ▌ sharpening quills...", "sharpening quills..."},
		{"en dash and middle dot", "– · rowing ashore", "rowing ashore..."},
		{"inner dashes kept", "- hauling ice-blocks", "hauling ice-blocks..."},
		{"empty", "", ""},
		{"whitespace only", "   \t ", ""},
		{"decoration only", " - • ", ""},
		{"quotes only", `""`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, phrases.SanitizePhrase(tt.input))
		})
	}
}

func TestParsePhrases(t *testing.T) {
	t.Parallel()

	t.Run("fewer phrases than count are not padded", func(t *testing.T) {
		t.Parallel()

		got, err := phrases.ParsePhrases(`["gathering wood...", "waiting nearby..."]`, 5)

		require.NoError(t, err)
		assert.Equal(t, []string{"gathering wood...", "waiting nearby..."}, got)
	})

	t.Run("leading prose is skipped", func(t *testing.T) {
		t.Parallel()

		got, err := phrases.ParsePhrases(`Sure! ["a...", "b..."]`, 8)

		require.NoError(t, err)
		assert.Equal(t, []string{"a...", "b..."}, got)
	})

	t.Run("markdown fence is skipped", func(t *testing.T) {
		t.Parallel()

		got, err := phrases.ParsePhrases("```json\n[\"Rowing Ashore\"]\n```", 8)

		require.NoError(t, err)
		assert.Equal(t, []string{"rowing ashore..."}, got)
	})

	t.Run("truncates to count in order", func(t *testing.T) {
		t.Parallel()

		items := make([]string, 15)
		for i := range items {
			items[i] = `"phrase ` + string(rune('a'+i)) + `..."`
		}
		raw := "[" + strings.Join(items, ",") + "]"

		got, err := phrases.ParsePhrases(raw, 8)

		require.NoError(t, err)
		require.Len(t, got, 8)
		assert.Equal(t, "phrase a...", got[0])
		assert.Equal(t, "phrase h...", got[7])
	})

	t.Run("non-strings and empties are dropped", func(t *testing.T) {
		t.Parallel()

		got, err := phrases.ParsePhrases(`[1, "  ", null, {"a": 1}, "Lighting Lamps", ["x"]]`, 6)

		require.NoError(t, err)
		assert.Equal(t, []string{"lighting lamps..."}, got)
	})

	t.Run("greedy bracket span", func(t *testing.T) {
		t.Parallel()

		// First '[' to last ']' spans both arrays and is not valid JSON.
		_, err := phrases.ParsePhrases(`one ["a..."] two ["b..."]`, 6)

		assert.ErrorIs(t, err, phrases.ErrUnparsableOutput)
	})

	errorCases := []struct {
		name string
		raw  string
		want error
	}{
		{"not json at all", "not json at all", phrases.ErrUnparsableOutput},
		{"empty text", "", phrases.ErrUnparsableOutput},
		{"empty array", "[]", phrases.ErrUnparsableOutput},
		{"object", `{"phrases": ["a..."]}`, phrases.ErrUnparsableOutput},
		{"string", `"just one..."`, phrases.ErrUnparsableOutput},
		{"broken bracket content", "here: [not, json]", phrases.ErrUnparsableOutput},
		{"only non-strings", "[1, 2, true]", phrases.ErrEmptyAfterSanitization},
		{"only blanks", `["", "  ", "-"]`, phrases.ErrEmptyAfterSanitization},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := phrases.ParsePhrases(tc.raw, 10)

			assert.Nil(t, got)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
