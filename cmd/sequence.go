package cmd

import (
	"strconv"

	"github.com/jsphweid/mozzart/catalog"
	"github.com/jsphweid/mozzart/model"
	"github.com/jsphweid/mozzart/sequence"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	pitchesCmd.Flags().StringVar(&midiPath, "midi", "", "write the pitches as an arpeggio to this .mid file")
	rootCmd.AddCommand(intervalsCmd)
	rootCmd.AddCommand(pitchesCmd)
}

var intervalsCmd = &cobra.Command{
	Use:   "intervals <pitch>...",
	Short: "Prints the intervals between consecutive pitches",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pitches, err := parsePitches(args)
		if err != nil {
			return err
		}
		printIntervals(cmd.OutOrStdout(), "intervals", sequence.IntoIntervals(pitches))
		return nil
	},
}

var pitchesCmd = &cobra.Command{
	Use:   "pitches <root> <interval>...",
	Short: "Applies intervals cumulatively from a root pitch",
	Long: `Applies intervals cumulatively from a root pitch. Intervals are semitone counts
or names such as M3 or "perfect fifth". Put -- before the first negative count.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := parsePitch(args[0])
		if err != nil {
			return err
		}
		intervals, err := parseIntervals(args[1:])
		if err != nil {
			return err
		}
		pitches, err := sequence.IntoPitches(root, intervals)
		if err != nil {
			return err
		}
		printPitches(cmd.OutOrStdout(), "pitches", pitches)
		return writeMidi(pitches, false)
	},
}

func parseIntervals(args []string) ([]model.Interval, error) {
	res := make([]model.Interval, 0, len(args))
	for _, arg := range args {
		if n, err := strconv.Atoi(arg); err == nil {
			res = append(res, model.Interval(n))
			continue
		}
		i, ok := catalog.Default().Interval(arg)
		if !ok {
			return nil, errors.Errorf("unknown interval %q", arg)
		}
		res = append(res, i)
	}
	return res, nil
}
