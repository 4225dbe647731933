package generation

import "strings"

// Response is the provider-neutral shape of a model reply.
//
// Text holds the provider's primary text, when it has one. Candidates holds
// every alternative completion with its content parts, in the order the
// provider returned them.
type Response struct {
	Text       string
	Candidates []Candidate
}

// Candidate is one alternative completion.
type Candidate struct {
	Parts []Part
}

// Part is a text-bearing fragment of a candidate.
type Part struct {
	Text string
}

// RawText returns the generated text of r. The primary Text field wins when
// non-empty; otherwise the text of every part of every candidate is
// concatenated in order. A nil response yields "".
func (r *Response) RawText() string {
	if r == nil {
		return ""
	}
	if r.Text != "" {
		return r.Text
	}

	var b strings.Builder
	for _, c := range r.Candidates {
		for _, p := range c.Parts {
			b.WriteString(p.Text)
		}
	}
	return b.String()
}

// NewTextResponse builds a Response whose primary text is text.
func NewTextResponse(text string) *Response {
	return &Response{
		Text:       text,
		Candidates: []Candidate{{Parts: []Part{{Text: text}}}},
	}
}
