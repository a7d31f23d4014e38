package cmd

import (
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/jsphweid/mozzart/chord"
	"github.com/jsphweid/mozzart/listen"
	"github.com/jsphweid/mozzart/pitch"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

var (
	inPort string
	settle time.Duration
)

func init() {
	listenCmd.Flags().StringVarP(&inPort, "port", "p", "", "name of the MIDI input port (default first port)")
	listenCmd.Flags().DurationVar(&settle, "settle", 150*time.Millisecond, "quiet time before the held notes are reported")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names the chords played on a MIDI input",
	Long:  `Listens to a MIDI input port and prints the chord formed by the held notes whenever playing settles. Stop with Ctrl+C.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer gomidi.CloseDriver()
		in, err := openInPort(inPort)
		if err != nil {
			return err
		}
		log := logger.WithPrefix("listen")
		log.Info("listening", "port", in.String(), "settle", settle)

		l := listen.New(settle, func(r listen.Report) {
			names := strings.Join(pitch.Names(r.Pitches), " ")
			if !r.Known {
				log.Info("unknown", "key", r.Key, "pitches", names)
				return
			}
			c := chord.Name(r.Chord())
			log.Info(c, "quality", r.Quality, "key", r.Key, "pitches", names)
		})

		stop, err := gomidi.ListenTo(in, l.Handle)
		if err != nil {
			return errors.Wrap(err, "could not listen")
		}
		defer stop()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt)
		<-sig
		log.Info("stopped")
		return nil
	},
}

func openInPort(name string) (drivers.In, error) {
	if name == "" {
		in, err := gomidi.InPort(0)
		return in, errors.Wrap(err, "no MIDI input port")
	}
	in, err := gomidi.FindInPort(name)
	return in, errors.Wrapf(err, "could not find MIDI input %q", name)
}
