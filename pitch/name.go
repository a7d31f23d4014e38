package pitch

import (
	"strconv"
	"strings"

	"github.com/jsphweid/mozzart/model"
	"github.com/pkg/errors"
)

var ErrBadName = errors.New("invalid pitch name")

var sharpNames = [SemitonesPerOctave]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [SemitonesPerOctave]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

var classesByName = func() map[string]int {
	res := make(map[string]int)
	for i := range sharpNames {
		res[sharpNames[i]] = i
		res[flatNames[i]] = i
	}
	return res
}()

// ClassNames returns every spelling of a pitch class, sharp first.
func ClassNames(class int) []string {
	class = ((class % SemitonesPerOctave) + SemitonesPerOctave) % SemitonesPerOctave
	if sharpNames[class] == flatNames[class] {
		return []string{sharpNames[class]}
	}
	return []string{sharpNames[class], flatNames[class]}
}

func ClassName(class int) string {
	return ClassNames(class)[0]
}

// Name spells p with sharps, e.g. 61 is "C#4".
func Name(p model.Pitch) string {
	return ClassName(PitchClass(p)) + strconv.Itoa(Octave(p))
}

func Names(pitches []model.Pitch) []string {
	res := make([]string, 0, len(pitches))
	for _, p := range pitches {
		res = append(res, Name(p))
	}
	return res
}

// NormalizeClass upper-cases the letter of a class name so "bb" reads as "Bb".
func NormalizeClass(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func ParseClass(name string) (int, error) {
	class, ok := classesByName[NormalizeClass(name)]
	if !ok {
		return 0, errors.Wrapf(ErrBadName, "%q", name)
	}
	return class, nil
}

// Parse reads names like "C4", "F#-1" or "Bb3".
func Parse(name string) (model.Pitch, error) {
	name = NormalizeClass(name)
	split := 1
	if len(name) > 1 && (name[1] == '#' || name[1] == 'b') {
		split = 2
	}
	if len(name) <= split {
		return 0, errors.Wrapf(ErrBadName, "%q", name)
	}
	class, err := ParseClass(name[:split])
	if err != nil {
		return 0, err
	}
	octave, err := strconv.Atoi(name[split:])
	if err != nil {
		return 0, errors.Wrapf(ErrBadName, "%q: bad octave", name)
	}
	return FromClass(class, octave)
}
