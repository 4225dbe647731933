package generation

import (
	"context"
)

// Generator defines the interface for producing text from a language model.
// This interface serves as a boundary between the application core and
// external AI/LLM services, following the hexagonal architecture pattern.
type Generator interface {
	// Generate sends a system instruction and a single user message to the
	// model and returns its reply.
	//
	// Parameters:
	//   - ctx: Context for the operation; cancelling it abandons the remote call
	//   - systemInstruction: Fixed instructions that shape every reply
	//   - userMessage: The per-request user-role text
	//
	// Returns:
	//   - The model reply mapped onto Response
	//   - An error if the call fails for any reason (see errors.go for specific types)
	Generate(ctx context.Context, systemInstruction, userMessage string) (*Response, error)
}
