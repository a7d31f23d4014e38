package cmd

import (
	"fmt"

	"github.com/jsphweid/mozzart/catalog"
	"github.com/jsphweid/mozzart/midi"
	"github.com/jsphweid/mozzart/model"
	"github.com/jsphweid/mozzart/scale"
	"github.com/jsphweid/mozzart/sequence"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	octaveFlag int
	midiPath   string
	degreeFlag int
)

func init() {
	scaleCmd.Flags().IntVarP(&octaveFlag, "octave", "o", 4, "MIDI octave of the root (overrides config)")
	scaleCmd.Flags().StringVar(&midiPath, "midi", "", "write the scale as an arpeggio to this .mid file")
	scaleCmd.Flags().IntVarP(&degreeFlag, "degree", "d", 0, "print only this degree, counting the root as 1")
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale <key> [quality]",
	Short: "Prints the pitches of a scale",
	Long:  `Prints the pitches of a scale. Quality is one of major, natural-minor, harmonic-minor or melodic-minor and defaults to major.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		quality := model.Major
		if len(args) == 2 {
			q, err := scale.ParseQuality(args[1])
			if err != nil {
				return err
			}
			quality = q
		}

		octave := octaveFor(cmd)
		s, ok := catalog.Default().Scale(args[0], quality, octave)
		if !ok {
			return errors.Errorf("no %v scale on %q in octave %d", quality, args[0], octave)
		}

		out := cmd.OutOrStdout()
		if degreeFlag != 0 {
			p, ok := scale.Degree(s, degreeFlag)
			if !ok {
				return errors.Errorf("degree %d out of range [1, %d]", degreeFlag, len(s.Pitches))
			}
			printPitches(out, fmt.Sprintf("degree %d", degreeFlag), []model.Pitch{p})
			return nil
		}

		printPitches(out, fmt.Sprintf("%v %v", args[0], quality), s.Pitches)
		printIntervals(out, "steps", sequence.IntoIntervals(s.Pitches))
		return writeMidi(s.Pitches, false)
	},
}

func octaveFor(cmd *cobra.Command) int {
	if cmd.Flags().Changed("octave") {
		return octaveFlag
	}
	return conf.Octave
}

func writeMidi(pitches []model.Pitch, block bool) error {
	if midiPath == "" {
		return nil
	}
	opts := midi.DefaultOptions()
	opts.Channel = conf.Midi.Channel
	opts.Velocity = conf.Midi.Velocity
	opts.Duration = conf.Midi.Duration
	opts.Block = block

	tr, err := midi.Track(pitches, opts)
	if err != nil {
		return err
	}
	if err := midi.WriteFile(midiPath, tr); err != nil {
		return err
	}
	logger.Info("wrote midi", "path", midiPath, "notes", len(pitches))
	return nil
}
