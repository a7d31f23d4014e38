// Package catalog holds the named pitches, intervals, scales and chords
// derived from the generators. A Catalog is read-only once New returns and
// may be shared between goroutines without locking. Scale and chord values
// are handed out as copies.
package catalog

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/jsphweid/mozzart/chord"
	"github.com/jsphweid/mozzart/interval"
	"github.com/jsphweid/mozzart/model"
	"github.com/jsphweid/mozzart/pitch"
	"github.com/jsphweid/mozzart/scale"
	"github.com/jsphweid/mozzart/util"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

const (
	MinOctave = -1
	MaxOctave = 9
)

// ScaleKey addresses a catalog scale by the pitch class and MIDI octave of its root.
type ScaleKey struct {
	PitchClass int
	Quality    model.ScaleQuality
	Octave     int
}

// ChordKey addresses a catalog chord by the pitch class and MIDI octave of its root.
type ChordKey struct {
	PitchClass int
	Quality    model.ChordQuality
	Octave     int
}

// Stats counts catalog entries. Pitches counts distinct notes, Names counts
// their spellings.
type Stats struct {
	Pitches   int
	Names     int
	Intervals int
	Scales    int
	Chords    int
}

type Catalog struct {
	pitches   map[string]model.Pitch
	intervals map[string]model.Interval
	scales    map[ScaleKey]model.Scale
	chords    map[ChordKey]model.Chord
}

func New() (*Catalog, error) {
	c := &Catalog{
		pitches:   make(map[string]model.Pitch),
		intervals: make(map[string]model.Interval),
		scales:    make(map[ScaleKey]model.Scale),
		chords:    make(map[ChordKey]model.Chord),
	}

	for value := int(model.MinPitch); value <= int(model.MaxPitch); value++ {
		p, err := pitch.New(value)
		if err != nil {
			return nil, err
		}
		octave := strconv.Itoa(pitch.Octave(p))
		for _, name := range pitch.ClassNames(pitch.PitchClass(p)) {
			c.pitches[name+octave] = p
		}
	}

	for _, named := range interval.All() {
		c.intervals[named.Name] = named.Interval
		if named.Symbol != "" {
			c.intervals[named.Symbol] = named.Interval
		}
	}

	for octave := MinOctave; octave <= MaxOctave; octave++ {
		for class := 0; class < pitch.SemitonesPerOctave; class++ {
			root, err := pitch.FromClass(class, octave)
			if err != nil {
				continue
			}
			if err := c.addScales(root, class, octave); err != nil {
				return nil, err
			}
			if err := c.addChords(root, class, octave); err != nil {
				return nil, err
			}
		}
	}

	return c, nil
}

func isRangeError(err error) bool {
	var rangeErr *pitch.RangeError
	return errors.As(err, &rangeErr)
}

// only combinations that fit inside the MIDI range are stored
func (c *Catalog) addScales(root model.Pitch, class int, octave int) error {
	for _, q := range scale.Qualities() {
		s, err := scale.New(root, q)
		if isRangeError(err) {
			continue
		}
		if err != nil {
			return err
		}
		c.scales[ScaleKey{PitchClass: class, Quality: q, Octave: octave}] = s
	}
	return nil
}

func (c *Catalog) addChords(root model.Pitch, class int, octave int) error {
	for _, q := range chord.Qualities() {
		ch, err := chord.New(root, q)
		if isRangeError(err) {
			continue
		}
		if err != nil {
			return err
		}
		c.chords[ChordKey{PitchClass: class, Quality: q, Octave: octave}] = ch
	}
	return nil
}

func MustNew() *Catalog {
	c, err := New()
	if err != nil {
		panic("Could not build catalog: " + err.Error())
	}
	return c
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default builds the shared catalog on first use.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = MustNew()
		stats := defaultCatalog.Stats()
		log.WithPrefix("catalog").Debug("built",
			"pitches", stats.Pitches,
			"names", stats.Names,
			"intervals", stats.Intervals,
			"scales", stats.Scales,
			"chords", stats.Chords,
		)
	})
	return defaultCatalog
}

func (c *Catalog) Stats() Stats {
	distinct := make(map[model.Pitch]bool)
	for _, p := range c.pitches {
		distinct[p] = true
	}
	return Stats{
		Pitches:   len(distinct),
		Names:     len(c.pitches),
		Intervals: len(c.intervals),
		Scales:    len(c.scales),
		Chords:    len(c.chords),
	}
}

// Pitch looks up a pitch class name such as "C#" or "eb" in a MIDI octave.
func (c *Catalog) Pitch(key string, octave int) (model.Pitch, bool) {
	return c.PitchByName(key + strconv.Itoa(octave))
}

func (c *Catalog) PitchByName(name string) (model.Pitch, bool) {
	p, ok := c.pitches[pitch.NormalizeClass(name)]
	return p, ok
}

// Interval accepts a symbol ("M3", "P5") exactly or a name ("Major Third")
// in any case.
func (c *Catalog) Interval(name string) (model.Interval, bool) {
	name = strings.TrimSpace(name)
	if i, ok := c.intervals[name]; ok {
		return i, true
	}
	i, ok := c.intervals[strings.ToLower(name)]
	return i, ok
}

func (c *Catalog) Scale(key string, q model.ScaleQuality, octave int) (model.Scale, bool) {
	class, err := pitch.ParseClass(key)
	if err != nil {
		return model.Scale{}, false
	}
	s, ok := c.scales[ScaleKey{PitchClass: class, Quality: q, Octave: octave}]
	if ok {
		s.Pitches = slices.Clone(s.Pitches)
	}
	return s, ok
}

func (c *Catalog) Chord(key string, q model.ChordQuality, octave int) (model.Chord, bool) {
	class, err := pitch.ParseClass(key)
	if err != nil {
		return model.Chord{}, false
	}
	ch, ok := c.chords[ChordKey{PitchClass: class, Quality: q, Octave: octave}]
	if ok {
		ch.Pitches = slices.Clone(ch.Pitches)
	}
	return ch, ok
}

// PitchNames lists every pitch name ordered by pitch, sharps before flats.
func (c *Catalog) PitchNames() []string {
	names := util.GetKeys(c.pitches)
	slices.SortFunc(names, func(a, b string) bool {
		if c.pitches[a] != c.pitches[b] {
			return c.pitches[a] < c.pitches[b]
		}
		return strings.Contains(a, "#") && !strings.Contains(b, "#")
	})
	return names
}

func (c *Catalog) IntervalNames() []string {
	return util.SortedKeys(c.intervals)
}
