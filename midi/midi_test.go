package midi

import (
	"path/filepath"
	"testing"

	"github.com/jsphweid/mozzart/model"
	"github.com/jsphweid/mozzart/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArpeggioRoundTrip(t *testing.T) {
	pitches := []model.Pitch{60, 62, 64, 65, 67, 69, 71, 72}
	tr, err := Track(pitches, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, pitches, Pitches(tr))
	// note on + note off per pitch, plus end of track
	assert.Len(t, tr, len(pitches)*2+1)
}

func TestBlockChord(t *testing.T) {
	opts := DefaultOptions()
	opts.Block = true
	tr, err := Track([]model.Pitch{60, 64, 67}, opts)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal([]model.Pitch{60, 64, 67}, Pitches(tr))
	for _, ev := range tr[:3] {
		assert.Equal(uint32(0), ev.Delta)
	}
	assert.Equal(opts.Duration, tr[3].Delta)
	assert.Equal(uint32(0), tr[4].Delta)
}

func TestTrackRejectsInvalidInput(t *testing.T) {
	assert := assert.New(t)

	_, err := Track([]model.Pitch{60, 200}, DefaultOptions())
	var rangeErr *pitch.RangeError
	assert.ErrorAs(err, &rangeErr)

	opts := DefaultOptions()
	opts.Velocity = 0
	_, err = Track([]model.Pitch{60}, opts)
	assert.Error(err)

	opts = DefaultOptions()
	opts.Channel = 16
	_, err = Track([]model.Pitch{60}, opts)
	assert.Error(err)
}

func TestEmptyTrack(t *testing.T) {
	tr, err := Track(nil, DefaultOptions())
	assert.NoError(t, err)
	assert.Empty(t, Pitches(tr))
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scale.mid")
	pitches := []model.Pitch{57, 59, 60, 62, 64, 65, 67, 69}
	tr, err := Track(pitches, DefaultOptions())
	require.NoError(t, err)

	require.NoError(t, WriteFile(path, tr))
	read, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pitches, read)
}

func TestReadMissingFile(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.mid"))
	assert.Error(t, err)
}

func TestMessages(t *testing.T) {
	on, off := Messages(69, DefaultOptions())

	var ch, key, vel uint8
	assert.True(t, on.GetNoteStart(&ch, &key, &vel))
	assert.Equal(t, uint8(69), key)
	assert.Equal(t, uint8(100), vel)
	assert.True(t, off.GetNoteEnd(&ch, &key))
	assert.Equal(t, uint8(69), key)
}
