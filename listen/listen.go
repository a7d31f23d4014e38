// Package listen tracks the notes held on a MIDI input and reports the chord
// they form once playing settles.
package listen

import (
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/mozzart/chord"
	"github.com/jsphweid/mozzart/model"
	gomidi "gitlab.com/gomidi/midi/v2"
	"golang.org/x/exp/slices"
)

type Report struct {
	Pitches []model.Pitch
	Key     string
	Quality model.ChordQuality
	// Known is false when the held pitches match no chord quality.
	Known bool
}

func NewReport(pitches []model.Pitch) Report {
	r := Report{Pitches: pitches, Key: chord.CreateChordKey(pitches)}
	r.Quality, r.Known = chord.Identify(pitches)
	return r
}

func (r Report) Chord() model.Chord {
	var root model.Pitch
	if len(r.Pitches) > 0 {
		root = r.Pitches[0]
	}
	return model.Chord{Quality: r.Quality, Root: root, Pitches: r.Pitches}
}

// Held is the set of currently sounding pitches.
type Held struct {
	mu    sync.Mutex
	notes map[model.Pitch]bool
}

// Handle applies a note on or note off and reports whether the set changed.
func (h *Held) Handle(msg gomidi.Message) bool {
	var ch, key, vel uint8
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.notes == nil {
		h.notes = make(map[model.Pitch]bool)
	}
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		if h.notes[model.Pitch(key)] {
			return false
		}
		h.notes[model.Pitch(key)] = true
		return true
	case msg.GetNoteEnd(&ch, &key):
		if !h.notes[model.Pitch(key)] {
			return false
		}
		delete(h.notes, model.Pitch(key))
		return true
	}
	return false
}

// Pitches returns the held pitches lowest first.
func (h *Held) Pitches() []model.Pitch {
	h.mu.Lock()
	defer h.mu.Unlock()
	res := make([]model.Pitch, 0, len(h.notes))
	for p := range h.notes {
		res = append(res, p)
	}
	slices.Sort(res)
	return res
}

type Listener struct {
	held     Held
	debounce func(func())
	report   func(Report)
}

// New returns a Listener calling report with the held chord after no note
// has changed for delay. Nothing is reported while no note is held.
func New(delay time.Duration, report func(Report)) *Listener {
	return &Listener{
		debounce: debounce.New(delay),
		report:   report,
	}
}

// Handle has the signature expected by midi.ListenTo.
func (l *Listener) Handle(msg gomidi.Message, timestampms int32) {
	if !l.held.Handle(msg) {
		return
	}
	l.debounce(func() {
		pitches := l.held.Pitches()
		if len(pitches) == 0 {
			return
		}
		l.report(NewReport(pitches))
	})
}

func (l *Listener) Held() []model.Pitch {
	return l.held.Pitches()
}
