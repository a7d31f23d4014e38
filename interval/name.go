package interval

import (
	"fmt"
	"math"

	"github.com/jsphweid/mozzart/model"
)

type Named struct {
	Name     string
	Symbol   string
	Interval model.Interval
}

// the first entry for a value is its preferred name
var named = [...]Named{
	{"unison", "P1", Unison},
	{"minor second", "m2", MinorSecond},
	{"major second", "M2", MajorSecond},
	{"minor third", "m3", MinorThird},
	{"major third", "M3", MajorThird},
	{"perfect fourth", "P4", PerfectFourth},
	{"augmented fourth", "A4", AugmentedFourth},
	{"diminished fifth", "d5", DiminishedFifth},
	{"perfect fifth", "P5", PerfectFifth},
	{"minor sixth", "m6", MinorSixth},
	{"augmented fifth", "A5", AugmentedFifth},
	{"major sixth", "M6", MajorSixth},
	{"minor seventh", "m7", MinorSeventh},
	{"major seventh", "M7", MajorSeventh},
	{"perfect octave", "P8", PerfectOctave},
	{"minor ninth", "m9", MinorNinth},
	{"major ninth", "M9", MajorNinth},
	{"minor tenth", "m10", MinorTenth},
	{"major tenth", "M10", MajorTenth},
	{"perfect eleventh", "P11", PerfectEleventh},
	{"augmented eleventh", "A11", AugmentedEleventh},
	{"perfect twelfth", "P12", PerfectTwelfth},
	{"minor thirteenth", "m13", MinorThirteenth},
	{"major thirteenth", "M13", MajorThirteenth},
	{"minor fourteenth", "m14", MinorFourteenth},
	{"major fourteenth", "M14", MajorFourteenth},
	{"double octave", "P15", DoubleOctave},
	{"semitone", "", Semitone},
	{"tone", "", Tone},
	{"tritone", "", Tritone},
}

// All returns the standard interval names in ascending order, aliases last.
func All() []Named {
	res := make([]Named, len(named))
	copy(res, named[:])
	return res
}

func Name(i model.Interval) string {
	for _, n := range named {
		if n.Interval == i {
			return n.Name
		}
	}
	if i < 0 && i > math.MinInt {
		return fmt.Sprintf("descending %v", Name(-i))
	}
	return fmt.Sprintf("%d semitones", i.Semitones())
}

func Names(intervals []model.Interval) []string {
	res := make([]string, 0, len(intervals))
	for _, i := range intervals {
		res = append(res, Name(i))
	}
	return res
}
