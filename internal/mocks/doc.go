// Package mocks provides test doubles shared across packages.
//
// MockGenerator stands in for generation.Generator: it returns a canned
// response or error, or delegates to GenerateFn, and records every call so
// tests can assert on the prompt that was sent.
//
//	gen := mocks.NewMockGeneratorWithText(`["gathering wood..."]`)
//	svc := phrases.NewService(gen, logger)
package mocks
