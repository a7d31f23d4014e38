package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/jsphweid/mozzart/midi"
	"github.com/jsphweid/mozzart/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Setenv("MOZZART_CONFIG", "")
	octaveFlag, midiPath, degreeFlag, arpeggio, listFlag = 4, "", 0, false, ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestScaleCommand(t *testing.T) {
	out, err := run(t, "scale", "A", "natural-minor", "--octave", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "57 59 60 62 64 65 67 69")
	assert.Contains(t, out, "A3 B3 C4 D4 E4 F4 G4 A4")

	out, err = run(t, "scale", "C", "--degree", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "G4")

	_, err = run(t, "scale", "C", "dorian")
	assert.Error(t, err)
	_, err = run(t, "scale", "C", "--degree", "9")
	assert.Error(t, err)
}

func TestScaleCommandWritesMidi(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.mid")
	_, err := run(t, "scale", "C", "major", "--midi", path)
	require.NoError(t, err)

	pitches, err := midi.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []model.Pitch{60, 62, 64, 65, 67, 69, 71, 72}, pitches)

	out, err := run(t, "inspect", path)
	require.NoError(t, err)
	assert.Contains(t, out, "2 2 1 2 2 2 1")
}

func TestChordCommands(t *testing.T) {
	out, err := run(t, "chord", "Bb", "maj7", "-o", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "A#maj7")
	assert.Contains(t, out, "58 62 65 69")

	out, err = run(t, "chord", "identify", "C4", "Eb4", "G4")
	require.NoError(t, err)
	assert.Contains(t, out, "minor triad")
	assert.Contains(t, out, "60-63-67")

	_, err = run(t, "chord", "identify", "60", "61")
	assert.Error(t, err)
}

func TestSequenceCommands(t *testing.T) {
	out, err := run(t, "intervals", "60", "E4", "67")
	require.NoError(t, err)
	assert.Contains(t, out, "4 3")

	out, err = run(t, "pitches", "C4", "M3", "m3", "--", "-7")
	require.NoError(t, err)
	assert.Contains(t, out, "60 64 67 60")

	_, err = run(t, "pitches", "120", "12")
	assert.Error(t, err)
	_, err = run(t, "pitches", "60", "bogus")
	assert.Error(t, err)
}

func TestCatalogCommand(t *testing.T) {
	out, err := run(t, "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "chords")

	out, err = run(t, "catalog", "--list", "pitches")
	require.NoError(t, err)
	assert.Contains(t, out, "C#4\nDb4")

	_, err = run(t, "catalog", "--list", "chords")
	assert.Error(t, err)
}
