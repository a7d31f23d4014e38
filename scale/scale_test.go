package scale

import (
	"fmt"
	"testing"

	"github.com/jsphweid/mozzart/model"
	"github.com/jsphweid/mozzart/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternsSpanAnOctave(t *testing.T) {
	for _, q := range Qualities() {
		t.Run(q.String(), func(t *testing.T) {
			pattern, err := Pattern(q)
			require.NoError(t, err)

			var total int
			for _, step := range pattern {
				total += int(step)
			}
			assert.Equal(t, 12, total)
			assert.Len(t, pattern, 7)
		})
	}
}

func TestCanonicalPatterns(t *testing.T) {
	cases := map[model.ScaleQuality]model.StepPattern{
		model.Major:         {2, 2, 1, 2, 2, 2, 1},
		model.NaturalMinor:  {2, 1, 2, 2, 1, 2, 2},
		model.HarmonicMinor: {2, 1, 2, 2, 1, 3, 1},
		model.MelodicMinor:  {2, 1, 2, 2, 2, 2, 1},
	}
	for q, expected := range cases {
		pattern, err := Pattern(q)
		assert.NoError(t, err)
		assert.Equal(t, expected, pattern)
	}
}

func TestPatternIsACopy(t *testing.T) {
	pattern, _ := Pattern(model.Major)
	pattern[0] = 9

	again, _ := Pattern(model.Major)
	assert.Equal(t, Whole, again[0])
}

func TestMajorScaleEndsAnOctaveUp(t *testing.T) {
	pattern, _ := Pattern(model.Major)
	for root := 0; root <= 115; root++ {
		name := fmt.Sprintf("major scale from %v", root)
		t.Run(name, func(t *testing.T) {
			pitches, err := Generate(model.Pitch(root), pattern)
			require.NoError(t, err)
			octaveUp, err := pitch.TransposeUp(model.Pitch(root), 1)
			require.NoError(t, err)

			assert.Len(t, pitches, 8)
			assert.Equal(t, octaveUp, pitches[len(pitches)-1])
		})
	}
}

func TestGenerateIsStrictlyAscending(t *testing.T) {
	for _, q := range Qualities() {
		s, err := New(model.Pitch(57), q)
		require.NoError(t, err)
		for i := 1; i < len(s.Pitches); i++ {
			assert.Less(t, s.Pitches[i-1], s.Pitches[i])
		}
	}
}

func TestKnownScales(t *testing.T) {
	assert := assert.New(t)

	c, err := Major(60)
	assert.NoError(err)
	assert.Equal([]model.Pitch{60, 62, 64, 65, 67, 69, 71, 72}, c.Pitches)
	assert.Equal(model.Major, c.Quality)
	assert.Equal(model.Pitch(60), c.Root)

	a, err := NaturalMinor(69)
	assert.NoError(err)
	assert.Equal([]model.Pitch{69, 71, 72, 74, 76, 77, 79, 81}, a.Pitches)

	aHarmonic, err := HarmonicMinor(69)
	assert.NoError(err)
	assert.Equal([]model.Pitch{69, 71, 72, 74, 76, 77, 80, 81}, aHarmonic.Pitches)

	aMelodic, err := MelodicMinor(69)
	assert.NoError(err)
	assert.Equal([]model.Pitch{69, 71, 72, 74, 76, 78, 80, 81}, aMelodic.Pitches)
}

func TestGenerateOutOfRange(t *testing.T) {
	assert := assert.New(t)

	pitches, err := Major(116)
	var rangeErr *pitch.RangeError
	assert.ErrorAs(err, &rangeErr)
	assert.Equal(128, rangeErr.Value)
	assert.Nil(pitches.Pitches)

	_, err = Generate(model.Pitch(200), model.StepPattern{1})
	assert.ErrorAs(err, &rangeErr)
}

func TestGenerateRejectsZeroStep(t *testing.T) {
	_, err := Generate(60, model.StepPattern{2, 0, 1})
	assert.ErrorIs(t, err, ErrBadPattern)
}

func TestGenerateEmptyPattern(t *testing.T) {
	pitches, err := Generate(60, model.StepPattern{})
	assert.NoError(t, err)
	assert.Equal(t, []model.Pitch{60}, pitches)
}

func TestUnknownQuality(t *testing.T) {
	_, err := New(60, model.ScaleQuality(42))
	assert.ErrorIs(t, err, ErrUnknownQuality)
}

func TestDegree(t *testing.T) {
	assert := assert.New(t)
	s, _ := Major(60)

	p, ok := Degree(s, 5)
	assert.True(ok)
	assert.Equal(model.Pitch(67), p)

	_, ok = Degree(s, 0)
	assert.False(ok)
	_, ok = Degree(s, 9)
	assert.False(ok)
}

func TestParseQuality(t *testing.T) {
	cases := map[string]model.ScaleQuality{
		"major":          model.Major,
		"Minor":          model.NaturalMinor,
		"natural-minor":  model.NaturalMinor,
		"harmonic_minor": model.HarmonicMinor,
		" melodic ":      model.MelodicMinor,
	}
	for name, expected := range cases {
		q, err := ParseQuality(name)
		assert.NoError(t, err)
		assert.Equal(t, expected, q)
	}

	_, err := ParseQuality("dorian")
	assert.ErrorIs(t, err, ErrUnknownQuality)
}
