// Package phrases turns a journey context (location, year, era, coordinates)
// into short rotating loading phrases.
//
// The Service builds a prompt, asks a generation.Generator for a JSON array of
// strings, and cleans the reply. Whenever the generator fails or its output is
// unusable, the Service answers with a fixed list of fallback phrases instead,
// so callers always receive something to display. The only error surfaced to
// callers is ErrGeneratorNotConfigured.
package phrases
