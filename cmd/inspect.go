package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/mozzart/catalog"
	"github.com/jsphweid/mozzart/chord"
	"github.com/jsphweid/mozzart/midi"
	"github.com/jsphweid/mozzart/sequence"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var listFlag string

func init() {
	catalogCmd.Flags().StringVarP(&listFlag, "list", "l", "", "list every name of a kind: pitches or intervals")
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(catalogCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Inspects the notes of a MIDI file",
	Long:  `Prints the pitches started on the first track of a MIDI file, the intervals between them and the chord they spell, if any.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pitches, err := midi.ReadFile(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		printPitches(out, args[0], pitches)
		printIntervals(out, "intervals", sequence.IntoIntervals(pitches))
		if q, ok := chord.Identify(pitches); ok {
			printRow(out, "chord", q.String())
		}
		return nil
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Prints the size of the catalog or lists its names",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := catalog.Default()
		out := cmd.OutOrStdout()
		switch listFlag {
		case "":
			stats := c.Stats()
			fmt.Fprintln(out, titleStyle.Render("catalog"))
			printRow(out, "pitches", fmt.Sprint(stats.Pitches))
			printRow(out, "names", fmt.Sprint(stats.Names))
			printRow(out, "intervals", fmt.Sprint(stats.Intervals))
			printRow(out, "scales", fmt.Sprint(stats.Scales))
			printRow(out, "chords", fmt.Sprint(stats.Chords))
		case "pitches":
			fmt.Fprintln(out, strings.Join(c.PitchNames(), "\n"))
		case "intervals":
			for _, name := range c.IntervalNames() {
				i, _ := c.Interval(name)
				fmt.Fprintf(out, "%v\t%d\n", name, i)
			}
		default:
			return errors.Errorf("cannot list %q, expected pitches or intervals", listFlag)
		}
		return nil
	},
}
