package interval

import (
	"fmt"
	"math"
	"testing"

	"github.com/jsphweid/mozzart/model"
	"github.com/stretchr/testify/assert"
)

func TestBetween(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(MajorThird, Between(60, 64))
	assert.Equal(model.Interval(-7), Between(67, 60))
	assert.Equal(model.Interval(127), Between(0, 127))
	assert.Equal(Unison, Between(60, 60))
}

func TestCompose(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(PerfectFifth, Compose(MajorThird, MinorThird))
	assert.Equal(PerfectOctave, Compose(PerfectFifth, PerfectFourth))
	assert.Equal(MinorThird, Compose(PerfectFifth, model.Interval(-4)))
	assert.Equal(PerfectOctave, Sum([]model.Interval{MajorThird, MinorThird, PerfectFourth}))
	assert.Equal(Unison, Sum(nil))
}

func TestMultiply(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(MajorNinth, Multiply(PerfectFifth, 2))
	assert.Equal(DoubleOctave, Multiply(PerfectOctave, 2))
	assert.Equal(MinorThirteenth, Multiply(MajorThird, 5))
	assert.Equal(MinorTenth, Multiply(PerfectFourth, 3))
}

func TestShiftOctaves(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(MajorTenth, ShiftOctaves(MajorThird, 1))
	assert.Equal(PerfectTwelfth, ShiftOctaves(PerfectFifth, 1))
	assert.Equal(MajorThirteenth, ShiftOctaves(MajorSixth, 1))
	assert.Equal(ShiftOctaves(MajorTenth, 1), ShiftOctaves(MajorThird, 2))
	assert.Equal(MajorThird, ShiftOctaves(MajorTenth, -1))
}

func TestSimpleAndInvert(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(MajorThird, Simple(MajorTenth))
	assert.Equal(model.Interval(-2), Simple(model.Interval(-14)))
	assert.Equal(Unison, Simple(PerfectOctave))

	assert.Equal(MinorSixth, Invert(MajorThird))
	assert.Equal(PerfectFourth, Invert(PerfectFifth))
	assert.Equal(Tritone, Invert(Tritone))
	assert.Equal(PerfectOctave, Invert(Unison))
	assert.Equal(model.Interval(-8), Invert(model.Interval(-4)))
}

func TestIsCompound(t *testing.T) {
	assert := assert.New(t)
	assert.False(IsCompound(PerfectOctave))
	assert.True(IsCompound(MinorNinth))
	assert.True(IsCompound(model.Interval(-13)))
}

func TestNames(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("major third", Name(MajorThird))
	assert.Equal("augmented fourth", Name(Tritone))
	assert.Equal("minor sixth", Name(AugmentedFifth))
	assert.Equal("descending perfect fifth", Name(model.Interval(-7)))
	assert.Equal("25 semitones", Name(model.Interval(25)))
	assert.Equal("descending 25 semitones", Name(model.Interval(-25)))
	assert.Equal(fmt.Sprintf("%d semitones", math.MinInt), Name(model.Interval(math.MinInt)))
	assert.Equal([]string{"major third", "minor third"}, Names([]model.Interval{4, 3}))
}

func TestAllIsACopy(t *testing.T) {
	all := All()
	all[0].Interval = 99
	assert.Equal(t, Unison, All()[0].Interval)
}
