package scale

import (
	"strings"

	"github.com/jsphweid/mozzart/model"
	"github.com/jsphweid/mozzart/pitch"
	"github.com/pkg/errors"
)

const (
	Half         model.Step = 1
	Whole        model.Step = 2
	WholeAndHalf model.Step = 3
)

var ErrUnknownQuality = errors.New("unknown scale quality")
var ErrBadPattern = errors.New("step pattern must contain only positive steps")

// arrays so callers only ever see copies
var patterns = map[model.ScaleQuality][7]model.Step{
	model.Major:         {Whole, Whole, Half, Whole, Whole, Whole, Half},
	model.NaturalMinor:  {Whole, Half, Whole, Whole, Half, Whole, Whole},
	model.HarmonicMinor: {Whole, Half, Whole, Whole, Half, WholeAndHalf, Half},
	model.MelodicMinor:  {Whole, Half, Whole, Whole, Whole, Whole, Half},
}

func Qualities() []model.ScaleQuality {
	return []model.ScaleQuality{model.Major, model.NaturalMinor, model.HarmonicMinor, model.MelodicMinor}
}

func Pattern(q model.ScaleQuality) (model.StepPattern, error) {
	steps, ok := patterns[q]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownQuality, "%d", q)
	}
	return model.StepPattern(steps[:]), nil
}

// Arity is the number of pitches a scale of quality q holds, root included.
func Arity(q model.ScaleQuality) int {
	return len(patterns[q]) + 1
}

// Generate applies pattern cumulatively from root. The result starts with
// root and is strictly ascending. If any degree leaves the MIDI range the
// wrapped *pitch.RangeError is returned and no pitches are.
func Generate(root model.Pitch, pattern model.StepPattern) ([]model.Pitch, error) {
	if err := pitch.Validate(root); err != nil {
		return nil, errors.Wrap(err, "scale root")
	}

	res := make([]model.Pitch, 0, len(pattern)+1)
	res = append(res, root)
	current := root
	for i, step := range pattern {
		if step == 0 {
			return nil, errors.Wrapf(ErrBadPattern, "step %d", i+1)
		}
		next, err := pitch.AddInterval(current, model.Interval(step))
		if err != nil {
			return nil, errors.Wrapf(err, "scale degree %d", i+2)
		}
		res = append(res, next)
		current = next
	}
	return res, nil
}

func New(root model.Pitch, q model.ScaleQuality) (model.Scale, error) {
	var s model.Scale
	pattern, err := Pattern(q)
	if err != nil {
		return s, err
	}
	pitches, err := Generate(root, pattern)
	if err != nil {
		return s, errors.Wrapf(err, "%v scale", q)
	}
	if len(pitches) != Arity(q) {
		return s, errors.Errorf("%v scale has %d pitches, expected %d", q, len(pitches), Arity(q))
	}

	s.Quality = q
	s.Root = root
	s.Pitches = pitches
	return s, nil
}

func Major(root model.Pitch) (model.Scale, error) {
	return New(root, model.Major)
}

func NaturalMinor(root model.Pitch) (model.Scale, error) {
	return New(root, model.NaturalMinor)
}

func HarmonicMinor(root model.Pitch) (model.Scale, error) {
	return New(root, model.HarmonicMinor)
}

func MelodicMinor(root model.Pitch) (model.Scale, error) {
	return New(root, model.MelodicMinor)
}

// Degree returns the nth pitch of s, counting the root as 1.
func Degree(s model.Scale, n int) (model.Pitch, bool) {
	if n < 1 || n > len(s.Pitches) {
		return 0, false
	}
	return s.Pitches[n-1], true
}

var qualityAliases = map[string]model.ScaleQuality{
	"major":          model.Major,
	"ionian":         model.Major,
	"minor":          model.NaturalMinor,
	"natural minor":  model.NaturalMinor,
	"aeolian":        model.NaturalMinor,
	"harmonic":       model.HarmonicMinor,
	"harmonic minor": model.HarmonicMinor,
	"melodic":        model.MelodicMinor,
	"melodic minor":  model.MelodicMinor,
}

// ParseQuality accepts names like "major", "natural-minor" or "harmonic_minor".
func ParseQuality(name string) (model.ScaleQuality, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.NewReplacer("-", " ", "_", " ").Replace(normalized)
	q, ok := qualityAliases[normalized]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownQuality, "%q", name)
	}
	return q, nil
}
