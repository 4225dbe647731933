package phrases_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/phrazzld/loading-phrases-api/internal/generation"
	"github.com/phrazzld/loading-phrases-api/internal/mocks"
	"github.com/phrazzld/loading-phrases-api/internal/phrases"
	"github.com/phrazzld/loading-phrases-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Generate_NotConfigured(t *testing.T) {
	svc := phrases.NewService(nil, nil)

	result, err := svc.Generate(context.Background(), phrases.Request{Location: "Rome", Year: 100})

	assert.False(t, svc.Configured())
	assert.ErrorIs(t, err, phrases.ErrGeneratorNotConfigured)
	assert.Empty(t, result.Phrases)
}

func TestService_Generate_Success(t *testing.T) {
	mockGen := mocks.NewMockGeneratorWithText(`["Gathering Wood", "- waiting nearby..."]`)
	svc := phrases.NewService(mockGen, nil)

	result, err := svc.Generate(context.Background(), phrases.Request{
		Location: "Athens, Greece",
		Year:     -432,
		Era:      "Classical",
		Count:    14,
	})

	require.NoError(t, err)
	assert.Equal(t, phrases.SourceGenerated, result.Source)
	assert.Equal(t, []string{"gathering wood...", "waiting nearby..."}, result.Phrases)

	require.Equal(t, 1, mockGen.CallCount())
	call := mockGen.Calls()[0]
	assert.Equal(t, phrases.SystemInstruction, call.SystemInstruction)
	assert.Equal(t, "Location: Athens, Greece\nYear: -432\nEra: Classical\nReturn 14 phrases.", call.UserMessage)
}

func TestService_Generate_TruncatesToClampedCount(t *testing.T) {
	items := make([]string, 15)
	for i := range items {
		items[i] = fmt.Sprintf("%q", fmt.Sprintf("walking step %d...", i))
	}
	mockGen := mocks.NewMockGeneratorWithText("[" + strings.Join(items, ",") + "]")
	svc := phrases.NewService(mockGen, nil)

	result, err := svc.Generate(context.Background(), phrases.Request{Location: "Rome", Year: 100, Count: 8})

	require.NoError(t, err)
	require.Len(t, result.Phrases, 8)
	assert.Equal(t, "walking step 0...", result.Phrases[0])
	assert.Equal(t, "walking step 7...", result.Phrases[7])

	result, err = svc.Generate(context.Background(), phrases.Request{Location: "Rome", Year: 100, Count: 2})

	require.NoError(t, err)
	assert.Len(t, result.Phrases, 6, "count below the minimum is clamped up")
}

func TestService_Generate_UsesCandidatePartsWhenTextEmpty(t *testing.T) {
	mockGen := mocks.NewMockGeneratorWithResponse(&generation.Response{
		Candidates: []generation.Candidate{
			{Parts: []generation.Part{{Text: `["rowing `}, {Text: `ashore..."]`}}},
		},
	})
	svc := phrases.NewService(mockGen, nil)

	result, err := svc.Generate(context.Background(), phrases.Request{Location: "Carthage", Year: -200, Count: 6})

	require.NoError(t, err)
	assert.Equal(t, phrases.SourceGenerated, result.Source)
	assert.Equal(t, []string{"rowing ashore..."}, result.Phrases)
}

func TestService_Generate_FallsBack(t *testing.T) {
	tests := []struct {
		name      string
		generator *mocks.MockGenerator
	}{
		{"generation error", mocks.NewMockGeneratorWithError(errors.New("quota exceeded"))},
		{"timeout", mocks.NewMockGeneratorWithError(generation.ErrTimeout)},
		{"blocked", mocks.NewMockGeneratorWithError(generation.ErrContentBlocked)},
		{"nil response", mocks.NewMockGeneratorWithResponse(nil)},
		{"unparsable text", mocks.NewMockGeneratorWithText("not json at all")},
		{"empty array", mocks.NewMockGeneratorWithText("[]")},
		{"empty after sanitization", mocks.NewMockGeneratorWithText(`["", 3, " - "]`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := phrases.NewService(tt.generator, nil)

			result, err := svc.Generate(context.Background(), phrases.Request{
				Location: "Tenochtitlan",
				Year:     1500,
				Count:    20,
			})

			require.NoError(t, err, "failures after configuration must never surface")
			assert.Equal(t, phrases.SourceFallback, result.Source)
			require.Len(t, result.Phrases, 10, "fallback is never truncated or padded")
			assert.Equal(t, "gathering supplies for tenochtitlan...", result.Phrases[0])
			assert.Equal(t, 1, tt.generator.CallCount(), "no retries")
		})
	}
}

func TestService_Generate_FallbackIgnoresSmallCount(t *testing.T) {
	svc := phrases.NewService(mocks.NewMockGeneratorWithText("nope"), nil)

	result, err := svc.Generate(context.Background(), phrases.Request{Location: "", Year: 1, Count: 6})

	require.NoError(t, err)
	assert.Len(t, result.Phrases, 10)
	assert.Equal(t, "gathering supplies for the horizon...", result.Phrases[0])
}

func TestService_Generate_LogsRedactedFailure(t *testing.T) {
	logBuf, l, cleanup := logger.SetupTestLogger(t)
	defer cleanup()

	mockGen := mocks.NewMockGeneratorWithError(
		errors.New(`Post "https://generativelanguage.googleapis.com/v1beta/models/m:generateContent?key=sekret123": EOF`),
	)
	svc := phrases.NewService(mockGen, l)

	_, err := svc.Generate(context.Background(), phrases.Request{Location: "Rome", Year: 100})

	require.NoError(t, err)
	logger.AssertLogContains(t, logBuf, "using fallback")
	assert.NotContains(t, logBuf.String(), "sekret123")
}

func TestService_Generate_PassesContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")
	mockGen := mocks.NewMockGeneratorWithText(`["a..."]`)
	svc := phrases.NewService(mockGen, nil)

	_, err := svc.Generate(ctx, phrases.Request{Location: "Rome", Year: 100})

	require.NoError(t, err)
	assert.Equal(t, "v", mockGen.Calls()[0].Ctx.Value(key{}))
}
