package models

// InferenceRequest is the hosted-inference request payload.
type InferenceRequest struct {
	Inputs string `json:"inputs"`
}

// RawClassScore is one vocabulary entry as the model emits it, before
// any mapping into the canonical label space.
type RawClassScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// InferenceResponse is the wire shape of a classification: one ranked
// label list per input. Single-input requests use element 0.
type InferenceResponse [][]RawClassScore
