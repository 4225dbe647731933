package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/loading-phrases-api/internal/generation"
)

// GenerateCall records the arguments of one Generate call.
type GenerateCall struct {
	Ctx               context.Context
	SystemInstruction string
	UserMessage       string
}

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateFn allows test cases to mock the Generate behavior
	GenerateFn func(ctx context.Context, systemInstruction, userMessage string) (*generation.Response, error)

	// Default response values
	Response *generation.Response
	Err      error

	// mu protects calls for concurrent test cases
	mu    sync.Mutex
	calls []GenerateCall
}

var _ generation.Generator = (*MockGenerator)(nil)

// Generate implements the generation.Generator interface
func (m *MockGenerator) Generate(
	ctx context.Context,
	systemInstruction string,
	userMessage string,
) (*generation.Response, error) {
	m.mu.Lock()
	m.calls = append(m.calls, GenerateCall{
		Ctx:               ctx,
		SystemInstruction: systemInstruction,
		UserMessage:       userMessage,
	})
	m.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, systemInstruction, userMessage)
	}

	return m.Response, m.Err
}

// Calls returns a copy of the recorded Generate calls.
func (m *MockGenerator) Calls() []GenerateCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]GenerateCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount returns how many times Generate was called.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// NewMockGeneratorWithText creates a MockGenerator whose reply has text as its primary text
func NewMockGeneratorWithText(text string) *MockGenerator {
	return &MockGenerator{
		Response: generation.NewTextResponse(text),
	}
}

// NewMockGeneratorWithResponse creates a MockGenerator that returns resp
func NewMockGeneratorWithResponse(resp *generation.Response) *MockGenerator {
	return &MockGenerator{
		Response: resp,
	}
}

// NewMockGeneratorWithError creates a MockGenerator that returns the specified error
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{
		Err: err,
	}
}
