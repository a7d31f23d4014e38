package chord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/mozzart/interval"
	"github.com/jsphweid/mozzart/model"
	"github.com/jsphweid/mozzart/pitch"
	"github.com/jsphweid/mozzart/sequence"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

var ErrUnknownQuality = errors.New("unknown chord quality")

type definition struct {
	symbol    string
	intervals []model.Interval
}

var definitions = map[model.ChordQuality]definition{
	model.MajorTriad:            {"", []model.Interval{interval.MajorThird, interval.PerfectFifth}},
	model.MinorTriad:            {"m", []model.Interval{interval.MinorThird, interval.PerfectFifth}},
	model.DominantSeventh:       {"7", []model.Interval{interval.MajorThird, interval.PerfectFifth, interval.MinorSeventh}},
	model.DominantSeventhNinth:  {"7/9", []model.Interval{interval.MajorThird, interval.PerfectFifth, interval.MinorSeventh, interval.MajorNinth}},
	model.MinorSeventh:          {"m7", []model.Interval{interval.MinorThird, interval.PerfectFifth, interval.MinorSeventh}},
	model.MinorSeventhNinth:     {"m7/9", []model.Interval{interval.MinorThird, interval.PerfectFifth, interval.MinorSeventh, interval.MajorNinth}},
	model.MajorSeventh:          {"maj7", []model.Interval{interval.MajorThird, interval.PerfectFifth, interval.MajorSeventh}},
	model.MinorMajorSeventh:     {"mM7", []model.Interval{interval.MinorThird, interval.PerfectFifth, interval.MajorSeventh}},
	model.MajorSixth:            {"6", []model.Interval{interval.MajorThird, interval.PerfectFifth, interval.MajorSixth}},
	model.MinorSixth:            {"m6", []model.Interval{interval.MinorThird, interval.PerfectFifth, interval.MajorSixth}},
	model.MajorSixthNinth:       {"6/9", []model.Interval{interval.MajorThird, interval.PerfectFifth, interval.MajorSixth, interval.MajorNinth}},
	model.MinorSixthNinth:       {"m6/9", []model.Interval{interval.MinorThird, interval.PerfectFifth, interval.MajorSixth, interval.MajorNinth}},
	model.Sus2:                  {"sus2", []model.Interval{interval.MajorSecond, interval.PerfectFifth}},
	model.Sus4:                  {"sus4", []model.Interval{interval.PerfectFourth, interval.PerfectFifth}},
	model.DiminishedTriad:       {"dim", []model.Interval{interval.MinorThird, interval.DiminishedFifth}},
	model.DiminishedSeventh:     {"dim7", []model.Interval{interval.MinorThird, interval.DiminishedFifth, interval.MajorSixth}},
	model.HalfDiminishedSeventh: {"hdim7", []model.Interval{interval.MinorThird, interval.DiminishedFifth, interval.MinorSeventh}},
	model.AugmentedTriad:        {"aug", []model.Interval{interval.MajorThird, interval.AugmentedFifth}},
	model.AugmentedSeventh:      {"aug7", []model.Interval{interval.MajorThird, interval.AugmentedFifth, interval.MinorSeventh}},
	model.DominantNinth:         {"9", []model.Interval{interval.MajorThird, interval.PerfectFifth, interval.MinorSeventh, interval.MajorNinth}},
	model.MinorNinth:            {"m9", []model.Interval{interval.MinorThird, interval.PerfectFifth, interval.MinorSeventh, interval.MajorNinth}},
	model.MajorNinth:            {"maj9", []model.Interval{interval.MajorThird, interval.PerfectFifth, interval.MajorSeventh, interval.MajorNinth}},
	model.DominantEleventh:      {"11", []model.Interval{interval.MajorThird, interval.PerfectFifth, interval.MinorSeventh, interval.MajorNinth, interval.PerfectEleventh}},
	model.MinorEleventh:         {"m11", []model.Interval{interval.MinorThird, interval.PerfectFifth, interval.MinorSeventh, interval.MajorNinth, interval.PerfectEleventh}},
	model.MajorEleventh:         {"maj11", []model.Interval{interval.MajorThird, interval.PerfectFifth, interval.MajorSeventh, interval.MajorNinth, interval.PerfectEleventh}},
	model.DominantThirteenth:    {"13", []model.Interval{interval.MajorThird, interval.PerfectFifth, interval.MinorSeventh, interval.MajorNinth, interval.PerfectEleventh, interval.MajorThirteenth}},
	model.MinorThirteenth:       {"m13", []model.Interval{interval.MinorThird, interval.PerfectFifth, interval.MinorSeventh, interval.MajorNinth, interval.PerfectEleventh, interval.MajorThirteenth}},
	model.MajorThirteenth:       {"maj13", []model.Interval{interval.MajorThird, interval.PerfectFifth, interval.MajorSeventh, interval.MajorNinth, interval.PerfectEleventh, interval.MajorThirteenth}},
}

// Qualities lists every chord quality in declaration order.
func Qualities() []model.ChordQuality {
	res := make([]model.ChordQuality, 0, len(definitions))
	for q := range definitions {
		res = append(res, q)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i] < res[j]
	})
	return res
}

func Intervals(q model.ChordQuality) (model.IntervalSet, error) {
	def, ok := definitions[q]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownQuality, "%d", q)
	}
	return model.IntervalSet(slices.Clone(def.intervals)), nil
}

func Arity(q model.ChordQuality) int {
	return len(definitions[q].intervals) + 1
}

func Symbol(q model.ChordQuality) string {
	return definitions[q].symbol
}

// Generate applies every interval of set to root itself, not to the previous
// pitch, keeping the caller's order so voicings need not ascend.
func Generate(root model.Pitch, set model.IntervalSet) ([]model.Pitch, error) {
	if err := pitch.Validate(root); err != nil {
		return nil, errors.Wrap(err, "chord root")
	}

	res := make([]model.Pitch, 0, len(set)+1)
	res = append(res, root)
	for i, iv := range set {
		p, err := pitch.AddInterval(root, iv)
		if err != nil {
			return nil, errors.Wrapf(err, "chord tone %d", i+2)
		}
		res = append(res, p)
	}
	return res, nil
}

func New(root model.Pitch, q model.ChordQuality) (model.Chord, error) {
	var c model.Chord
	set, err := Intervals(q)
	if err != nil {
		return c, err
	}
	pitches, err := Generate(root, set)
	if err != nil {
		return c, errors.Wrapf(err, "%v chord", q)
	}
	if len(pitches) != Arity(q) {
		return c, errors.Errorf("%v chord has %d pitches, expected %d", q, len(pitches), Arity(q))
	}

	c.Quality = q
	c.Root = root
	c.Pitches = pitches
	return c, nil
}

func MajorTriad(root model.Pitch) (model.Chord, error) {
	return New(root, model.MajorTriad)
}

func MinorTriad(root model.Pitch) (model.Chord, error) {
	return New(root, model.MinorTriad)
}

func DominantSeventh(root model.Pitch) (model.Chord, error) {
	return New(root, model.DominantSeventh)
}

// Name spells c as its root class plus symbol, e.g. "C#maj7".
func Name(c model.Chord) string {
	return pitch.ClassName(pitch.PitchClass(c.Root)) + Symbol(c.Quality)
}

// Identify finds the quality whose interval set matches the distances of
// pitches from their first element. Qualities sharing a set resolve to the
// one declared first.
func Identify(pitches []model.Pitch) (model.ChordQuality, bool) {
	if len(pitches) < 2 {
		return 0, false
	}
	fromRoot := sequence.FromRoot(pitches)
	for _, q := range Qualities() {
		if slices.Equal(fromRoot, definitions[q].intervals) {
			return q, true
		}
	}
	return 0, false
}

// CreateChordKey renders a sorted, dash separated key such as "60-64-67".
// The input is not reordered.
func CreateChordKey(pitches []model.Pitch) string {
	sorted := slices.Clone(pitches)
	slices.Sort(sorted)
	parts := make([]string, 0, len(sorted))
	for _, p := range sorted {
		parts = append(parts, fmt.Sprintf("%v", p))
	}
	return strings.Join(parts, "-")
}

var qualitiesByName = func() map[string]model.ChordQuality {
	res := make(map[string]model.ChordQuality)
	for q, def := range definitions {
		res[q.String()] = q
		if def.symbol != "" {
			res[def.symbol] = q
		}
	}
	res["major"] = model.MajorTriad
	res["maj"] = model.MajorTriad
	res["minor"] = model.MinorTriad
	return res
}()

// ParseQuality accepts a symbol ("m7", "maj9") or a name ("dominant seventh",
// "half-diminished-seventh"). Symbols are case sensitive since "M" and "m" differ.
func ParseQuality(name string) (model.ChordQuality, error) {
	trimmed := strings.TrimSpace(name)
	if q, ok := qualitiesByName[trimmed]; ok {
		return q, nil
	}
	normalized := strings.NewReplacer("-", " ", "_", " ").Replace(strings.ToLower(trimmed))
	if q, ok := qualitiesByName[normalized]; ok {
		return q, nil
	}
	return 0, errors.Wrapf(ErrUnknownQuality, "%q", name)
}
