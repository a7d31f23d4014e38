package model

// Pitch is a MIDI note number. Only MinPitch through MaxPitch are valid;
// use pitch.New to construct one from an arbitrary integer.
type Pitch uint8

const (
	MinPitch Pitch = 0
	MaxPitch Pitch = 127
)

type Pitches = []Pitch

// Interval is a signed count of semitones. Negative values descend.
type Interval int

func (i Interval) Semitones() int {
	return int(i)
}

type Intervals = []Interval

// Step is a positive semitone distance between adjacent scale degrees.
type Step uint8

// StepPattern is applied cumulatively from a root to build a scale.
type StepPattern []Step

// IntervalSet is applied from a common root to build a chord.
type IntervalSet []Interval
