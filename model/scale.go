package model

type ScaleQuality int

const (
	Major ScaleQuality = iota
	NaturalMinor
	HarmonicMinor
	MelodicMinor
)

var scaleQualityNames = map[ScaleQuality]string{
	Major:         "major",
	NaturalMinor:  "natural minor",
	HarmonicMinor: "harmonic minor",
	MelodicMinor:  "melodic minor",
}

func (q ScaleQuality) String() string {
	if name, ok := scaleQualityNames[q]; ok {
		return name
	}
	return "unknown"
}

// Scale is a root plus the ascending pitches its step pattern produced,
// root first and the octave above last.
type Scale struct {
	Quality ScaleQuality
	Root    Pitch
	Pitches Pitches
}
