// Package pitch implements arithmetic over MIDI note numbers. Every operation
// that produces a pitch checks the result against [0, 127] and returns a
// *RangeError instead of wrapping or clamping.
package pitch

import (
	"fmt"
	"math"

	"github.com/jsphweid/mozzart/model"
	"github.com/jsphweid/mozzart/util"
	"github.com/pkg/errors"
)

const SemitonesPerOctave = 12

// maxOctaves is the widest octave shift that can stay inside [0, 127].
const maxOctaves = int(model.MaxPitch) / SemitonesPerOctave

// RangeError reports an operation whose result fell outside [0, 127]. Match
// it with errors.As; Value saturates at math.MinInt or math.MaxInt when the
// true result does not fit in an int.
type RangeError struct {
	Op    string
	Value int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: pitch %d out of range [%d, %d]", e.Op, e.Value, model.MinPitch, model.MaxPitch)
}

func checked(op string, value int) (model.Pitch, error) {
	if !util.InRange(value, int(model.MinPitch), int(model.MaxPitch)) {
		return 0, &RangeError{Op: op, Value: value}
	}
	return model.Pitch(value), nil
}

func New(value int) (model.Pitch, error) {
	return checked("new pitch", value)
}

// Validate reports a *RangeError for a Pitch that was built by converting an
// unchecked integer.
func Validate(p model.Pitch) error {
	_, err := checked("validate", int(p))
	return err
}

// shift moves p by octaves, rejecting counts that cannot land in range
// before multiplying.
func shift(op string, p model.Pitch, octaves int) (model.Pitch, error) {
	switch {
	case octaves > maxOctaves:
		return 0, &RangeError{Op: op, Value: math.MaxInt}
	case octaves < -maxOctaves:
		return 0, &RangeError{Op: op, Value: math.MinInt}
	}
	return checked(op, int(p)+octaves*SemitonesPerOctave)
}

func TransposeUp(p model.Pitch, octaves int) (model.Pitch, error) {
	return shift("transpose up", p, octaves)
}

func TransposeDown(p model.Pitch, octaves int) (model.Pitch, error) {
	if octaves == math.MinInt {
		return 0, &RangeError{Op: "transpose down", Value: math.MaxInt}
	}
	return shift("transpose down", p, -octaves)
}

func AddInterval(p model.Pitch, i model.Interval) (model.Pitch, error) {
	return checked("add interval", int(p)+i.Semitones())
}

func PitchClass(p model.Pitch) int {
	return int(p) % SemitonesPerOctave
}

// Octave uses MIDI numbering, so 60 is in octave 4 and 0 is in octave -1.
func Octave(p model.Pitch) int {
	return int(p)/SemitonesPerOctave - 1
}

// FromClass returns the pitch of a pitch class in [0, 11] in a MIDI octave.
func FromClass(class int, octave int) (model.Pitch, error) {
	if !util.InRange(class, 0, SemitonesPerOctave-1) {
		return 0, errors.Wrapf(ErrBadName, "pitch class %d", class)
	}
	switch {
	case octave > maxOctaves:
		return 0, &RangeError{Op: "from class", Value: math.MaxInt}
	case octave < -2:
		return 0, &RangeError{Op: "from class", Value: math.MinInt}
	}
	return checked("from class", (octave+1)*SemitonesPerOctave+class)
}

func Compare(a model.Pitch, b model.Pitch) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
