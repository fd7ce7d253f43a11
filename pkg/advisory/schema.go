package advisory

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CandidateProp is a component property as described by the advisory model.
type CandidateProp struct {
	Name        string   `json:"name"`
	Type        string   `json:"type,omitempty"`
	Default     string   `json:"default,omitempty"`
	Values      []string `json:"values,omitempty"`
	Description string   `json:"description,omitempty"`
}

// CandidateCounts are the counts the model claims for the structural facts.
// Reconciliation rejects candidates whose claims diverge from ground truth.
type CandidateCounts struct {
	Tokens     int `json:"tokens"`
	Properties int `json:"properties"`
	States     int `json:"states"`
}

// CandidateReadiness is the model's own readiness assessment.
type CandidateReadiness struct {
	Score           int      `json:"score"`
	Strengths       []string `json:"strengths,omitempty"`
	Gaps            []string `json:"gaps,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// Candidate is the advisory response schema. The model may hallucinate,
// omit, or mis-count fields; reconciliation treats only the prose as
// trustworthy.
type Candidate struct {
	Component     string              `json:"component"`
	Description   string              `json:"description"`
	Usage         string              `json:"usage,omitempty"`
	Accessibility string              `json:"accessibility,omitempty"`
	Props         []CandidateProp     `json:"props,omitempty"`
	States        []string            `json:"states,omitempty"`
	Slots         []string            `json:"slots,omitempty"`
	Variants      map[string][]string `json:"variants,omitempty"`
	Counts        *CandidateCounts    `json:"counts,omitempty"`
	Readiness     CandidateReadiness  `json:"readiness"`
}

// DecodeCandidate strictly parses a recovered JSON object into the candidate
// schema. Unknown fields are rejected so schema drift in the advisory output
// fails loudly at the boundary instead of leaking half-typed data inward.
func DecodeCandidate(raw json.RawMessage) (*Candidate, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var c Candidate
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("advisory: candidate does not conform to schema: %w", err)
	}
	if c.Description == "" {
		return nil, fmt.Errorf("advisory: candidate missing description")
	}
	return &c, nil
}
