package model

type ChordQuality int

const (
	MajorTriad ChordQuality = iota
	MinorTriad
	DominantSeventh
	DominantSeventhNinth
	MinorSeventh
	MinorSeventhNinth
	MajorSeventh
	MinorMajorSeventh
	MajorSixth
	MinorSixth
	MajorSixthNinth
	MinorSixthNinth
	Sus2
	Sus4
	DiminishedTriad
	DiminishedSeventh
	HalfDiminishedSeventh
	AugmentedTriad
	AugmentedSeventh
	DominantNinth
	MinorNinth
	MajorNinth
	DominantEleventh
	MinorEleventh
	MajorEleventh
	DominantThirteenth
	MinorThirteenth
	MajorThirteenth
)

var chordQualityNames = map[ChordQuality]string{
	MajorTriad:            "major triad",
	MinorTriad:            "minor triad",
	DominantSeventh:       "dominant seventh",
	DominantSeventhNinth:  "dominant seventh ninth",
	MinorSeventh:          "minor seventh",
	MinorSeventhNinth:     "minor seventh ninth",
	MajorSeventh:          "major seventh",
	MinorMajorSeventh:     "minor major seventh",
	MajorSixth:            "major sixth",
	MinorSixth:            "minor sixth",
	MajorSixthNinth:       "major sixth ninth",
	MinorSixthNinth:       "minor sixth ninth",
	Sus2:                  "sus2",
	Sus4:                  "sus4",
	DiminishedTriad:       "diminished triad",
	DiminishedSeventh:     "diminished seventh",
	HalfDiminishedSeventh: "half diminished seventh",
	AugmentedTriad:        "augmented triad",
	AugmentedSeventh:      "augmented seventh",
	DominantNinth:         "dominant ninth",
	MinorNinth:            "minor ninth",
	MajorNinth:            "major ninth",
	DominantEleventh:      "dominant eleventh",
	MinorEleventh:         "minor eleventh",
	MajorEleventh:         "major eleventh",
	DominantThirteenth:    "dominant thirteenth",
	MinorThirteenth:       "minor thirteenth",
	MajorThirteenth:       "major thirteenth",
}

func (q ChordQuality) String() string {
	if name, ok := chordQualityNames[q]; ok {
		return name
	}
	return "unknown"
}

// Chord is a root plus the pitches its interval set produced, root first.
// NOTE: Pitches keeps the voicing order of the interval set, it is not sorted
type Chord struct {
	Quality ChordQuality
	Root    Pitch
	Pitches Pitches
}
