package api

import (
	"github.com/phrazzld/loading-phrases-api/internal/phrases"
)

// LoadingPhrasesRequest defines the payload for the loading phrases endpoint.
type LoadingPhrasesRequest struct {
	// Location is a human-readable place, e.g. "Athens, Greece". It may be
	// empty but must be present.
	Location *string `json:"location" validate:"required"`

	// Year is negative for BCE.
	Year *int `json:"year" validate:"required"`

	Era *string  `json:"era,omitempty"`
	Lat *float64 `json:"lat,omitempty"`
	Lng *float64 `json:"lng,omitempty"`

	// Count defaults to phrases.DefaultCount and is clamped to [6, 20].
	Count *RequestedCount `json:"count,omitempty"`
}

// LoadingPhrasesResponse defines the successful response for the loading phrases endpoint.
type LoadingPhrasesResponse struct {
	Phrases []string `json:"phrases"`
}

// toServiceRequest converts a validated request into a phrases.Request.
func (r LoadingPhrasesRequest) toServiceRequest() phrases.Request {
	req := phrases.Request{
		Location: *r.Location,
		Year:     *r.Year,
		Lat:      r.Lat,
		Lng:      r.Lng,
		Count:    phrases.DefaultCount,
	}
	if r.Era != nil {
		req.Era = *r.Era
	}
	if r.Count != nil {
		req.Count = int(*r.Count)
	}
	return req
}
