// Package interval implements arithmetic over signed semitone distances.
// Intervals are unbounded; only turning one back into a pitch can fail.
package interval

import (
	"github.com/jsphweid/mozzart/model"
	"github.com/jsphweid/mozzart/pitch"
	"github.com/jsphweid/mozzart/util"
)

const (
	Unison            model.Interval = 0
	MinorSecond       model.Interval = 1
	MajorSecond       model.Interval = 2
	MinorThird        model.Interval = 3
	MajorThird        model.Interval = 4
	PerfectFourth     model.Interval = 5
	AugmentedFourth   model.Interval = 6
	DiminishedFifth   model.Interval = 6
	PerfectFifth      model.Interval = 7
	AugmentedFifth    model.Interval = 8
	MinorSixth        model.Interval = 8
	MajorSixth        model.Interval = 9
	MinorSeventh      model.Interval = 10
	MajorSeventh      model.Interval = 11
	PerfectOctave     model.Interval = 12
	MinorNinth        model.Interval = 13
	MajorNinth        model.Interval = 14
	MinorTenth        model.Interval = 15
	MajorTenth        model.Interval = 16
	PerfectEleventh   model.Interval = 17
	AugmentedEleventh model.Interval = 18
	PerfectTwelfth    model.Interval = 19
	MinorThirteenth   model.Interval = 20
	MajorThirteenth   model.Interval = 21
	MinorFourteenth   model.Interval = 22
	MajorFourteenth   model.Interval = 23
	DoubleOctave      model.Interval = 24

	Semitone = MinorSecond
	Tone     = MajorSecond
	Tritone  = AugmentedFourth
)

// Between returns b - a. It may be negative.
func Between(a model.Pitch, b model.Pitch) model.Interval {
	return model.Interval(int(b) - int(a))
}

func Compose(a model.Interval, b model.Interval) model.Interval {
	return model.Interval(a.Semitones() + b.Semitones())
}

func Sum(intervals []model.Interval) model.Interval {
	var total model.Interval
	for _, i := range intervals {
		total = Compose(total, i)
	}
	return total
}

func Multiply(i model.Interval, n int) model.Interval {
	return model.Interval(i.Semitones() * n)
}

// ShiftOctaves widens i by n octaves, e.g. a major third shifted once is a
// major tenth.
func ShiftOctaves(i model.Interval, n int) model.Interval {
	return Compose(i, Multiply(PerfectOctave, n))
}

// Simple reduces i to less than an octave, keeping its direction.
func Simple(i model.Interval) model.Interval {
	return model.Interval(i.Semitones() % pitch.SemitonesPerOctave)
}

// Invert returns the complement of i within an octave, keeping its
// direction. A unison inverts to an octave.
func Invert(i model.Interval) model.Interval {
	magnitude := util.Abs(Simple(i).Semitones())
	inverted := pitch.SemitonesPerOctave - magnitude
	if i < 0 {
		return model.Interval(-inverted)
	}
	return model.Interval(inverted)
}

func IsCompound(i model.Interval) bool {
	return util.Abs(i.Semitones()) > PerfectOctave.Semitones()
}
