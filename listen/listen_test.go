package listen

import (
	"testing"
	"time"

	"github.com/jsphweid/mozzart/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomidi "gitlab.com/gomidi/midi/v2"
)

func TestHeld(t *testing.T) {
	assert := assert.New(t)
	var h Held

	assert.True(h.Handle(gomidi.NoteOn(0, 67, 100)))
	assert.True(h.Handle(gomidi.NoteOn(0, 60, 100)))
	assert.False(h.Handle(gomidi.NoteOn(0, 60, 100)))
	assert.True(h.Handle(gomidi.NoteOn(0, 64, 100)))
	assert.Equal([]model.Pitch{60, 64, 67}, h.Pitches())

	assert.True(h.Handle(gomidi.NoteOff(0, 64)))
	assert.False(h.Handle(gomidi.NoteOff(0, 64)))
	// note on with zero velocity ends the note
	assert.True(h.Handle(gomidi.NoteOn(0, 67, 0)))
	assert.Equal([]model.Pitch{60}, h.Pitches())

	assert.False(h.Handle(gomidi.ControlChange(0, 64, 127)))
}

func TestNewReport(t *testing.T) {
	r := NewReport([]model.Pitch{57, 60, 64})
	assert.True(t, r.Known)
	assert.Equal(t, model.MinorTriad, r.Quality)
	assert.Equal(t, "57-60-64", r.Key)

	r = NewReport([]model.Pitch{60, 61})
	assert.False(t, r.Known)
}

func TestListenerReportsSettledChord(t *testing.T) {
	reports := make(chan Report, 4)
	l := New(20*time.Millisecond, func(r Report) { reports <- r })

	l.Handle(gomidi.NoteOn(0, 62, 90), 0)
	l.Handle(gomidi.NoteOn(0, 65, 90), 1)
	l.Handle(gomidi.NoteOn(0, 69, 90), 2)

	select {
	case r := <-reports:
		assert.Equal(t, []model.Pitch{62, 65, 69}, r.Pitches)
		require.True(t, r.Known)
		assert.Equal(t, model.MinorTriad, r.Quality)
	case <-time.After(time.Second):
		t.Fatal("no report")
	}

	assert.Len(t, reports, 0)
	assert.Equal(t, []model.Pitch{62, 65, 69}, l.Held())
}

func TestListenerIgnoresRelease(t *testing.T) {
	reports := make(chan Report, 4)
	l := New(10*time.Millisecond, func(r Report) { reports <- r })

	l.Handle(gomidi.NoteOn(0, 60, 90), 0)
	l.Handle(gomidi.NoteOff(0, 60), 1)

	select {
	case r := <-reports:
		t.Fatalf("unexpected report %v", r)
	case <-time.After(100 * time.Millisecond):
	}
}
