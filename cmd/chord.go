package cmd

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/mozzart/catalog"
	"github.com/jsphweid/mozzart/chord"
	"github.com/jsphweid/mozzart/model"
	"github.com/jsphweid/mozzart/pitch"
	"github.com/jsphweid/mozzart/sequence"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var arpeggio bool

func init() {
	chordCmd.Flags().IntVarP(&octaveFlag, "octave", "o", 4, "MIDI octave of the root (overrides config)")
	chordCmd.Flags().StringVar(&midiPath, "midi", "", "write the chord to this .mid file")
	chordCmd.Flags().BoolVar(&arpeggio, "arpeggio", false, "write the chord tones one after another")
	chordCmd.AddCommand(identifyCmd)
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord <key> [quality]",
	Short: "Prints the pitches of a chord",
	Long: `Prints the pitches of a chord. Quality is a symbol such as m7 or maj9, or a
name such as "dominant seventh", and defaults to a major triad.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		quality := model.MajorTriad
		if len(args) == 2 {
			q, err := chord.ParseQuality(args[1])
			if err != nil {
				return err
			}
			quality = q
		}

		octave := octaveFor(cmd)
		c, ok := catalog.Default().Chord(args[0], quality, octave)
		if !ok {
			return errors.Errorf("no %v chord on %q in octave %d", quality, args[0], octave)
		}

		out := cmd.OutOrStdout()
		printPitches(out, fmt.Sprintf("%v (%v)", chord.Name(c), quality), c.Pitches)
		printIntervals(out, "from root", sequence.FromRoot(c.Pitches))
		return writeMidi(c.Pitches, !arpeggio)
	},
}

var identifyCmd = &cobra.Command{
	Use:   "identify <pitch>...",
	Short: "Names the chord formed by pitches, lowest first",
	Long:  `Names the chord formed by pitches given as MIDI numbers (60) or names (C4, Eb4).`,
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pitches, err := parsePitches(args)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		q, ok := chord.Identify(pitches)
		if !ok {
			printRow(out, "key", chord.CreateChordKey(pitches))
			return errors.Errorf("no chord quality matches %v", pitch.Names(pitches))
		}
		c := model.Chord{Quality: q, Root: pitches[0], Pitches: pitches}
		printPitches(out, fmt.Sprintf("%v (%v)", chord.Name(c), q), pitches)
		printRow(out, "key", chord.CreateChordKey(pitches))
		return nil
	},
}

// parsePitch accepts a MIDI number or a pitch name.
func parsePitch(arg string) (model.Pitch, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		return pitch.New(n)
	}
	return pitch.Parse(arg)
}

func parsePitches(args []string) ([]model.Pitch, error) {
	res := make([]model.Pitch, 0, len(args))
	for _, arg := range args {
		p, err := parsePitch(arg)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, nil
}
