package model

// Pitches and intervals travel as plain ints so encoding/json does not
// treat a []Pitch as a byte string.

type PitchesRequestBody struct {
	Pitches []int `json:"pitches"`
}

type IntervalsRequestBody struct {
	Root      int   `json:"root"`
	Intervals []int `json:"intervals"`
}

type SequenceResponse struct {
	Name    string   `json:"name,omitempty"`
	Pitches []int    `json:"pitches"`
	Names   []string `json:"names"`
}

type IntervalsResponse struct {
	Intervals []int    `json:"intervals"`
	Names     []string `json:"names"`
}

type PitchResponse struct {
	Pitch      int    `json:"pitch"`
	Name       string `json:"name"`
	PitchClass int    `json:"pitch_class"`
	Octave     int    `json:"octave"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}

type IdentifyResponse struct {
	Name    string `json:"name,omitempty"`
	Quality string `json:"quality,omitempty"`
	Key     string `json:"key"`
	Known   bool   `json:"known"`
}
