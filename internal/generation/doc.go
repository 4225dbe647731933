// Package generation provides the boundary between the phrase service and
// external AI/LLM text generation services. It abstracts the details of the
// Gemini integration behind the Generator interface and defines a small,
// provider-neutral Response schema so that callers can extract generated text
// without knowing the provider's reply shape.
package generation
