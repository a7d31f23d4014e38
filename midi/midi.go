package midi

import (
	"github.com/jsphweid/mozzart/model"
	"github.com/jsphweid/mozzart/pitch"
	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const Ticks = smf.MetricTicks(960)

type Options struct {
	Channel  uint8
	Velocity uint8
	// Duration of each note in ticks
	Duration uint32
	// Block sounds every pitch at once instead of one after another
	Block bool
}

func DefaultOptions() Options {
	return Options{
		Channel:  0,
		Velocity: 100,
		Duration: Ticks.Ticks8th(),
	}
}

func (o Options) validate() error {
	if o.Channel > 15 {
		return errors.Errorf("channel %d out of range [0, 15]", o.Channel)
	}
	if o.Velocity == 0 || o.Velocity > 127 {
		return errors.Errorf("velocity %d out of range [1, 127]", o.Velocity)
	}
	return nil
}

func Messages(p model.Pitch, opts Options) (on gomidi.Message, off gomidi.Message) {
	return gomidi.NoteOn(opts.Channel, uint8(p), opts.Velocity), gomidi.NoteOff(opts.Channel, uint8(p))
}

// Track renders pitches as a closed smf.Track, either as an arpeggio or as a
// single block chord.
func Track(pitches []model.Pitch, opts Options) (smf.Track, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	for i, p := range pitches {
		if err := pitch.Validate(p); err != nil {
			return nil, errors.Wrapf(err, "track position %d", i)
		}
	}

	var tr smf.Track
	if opts.Block {
		for _, p := range pitches {
			on, _ := Messages(p, opts)
			tr.Add(0, on)
		}
		for i, p := range pitches {
			_, off := Messages(p, opts)
			var delta uint32
			if i == 0 {
				delta = opts.Duration
			}
			tr.Add(delta, off)
		}
	} else {
		for _, p := range pitches {
			on, off := Messages(p, opts)
			tr.Add(0, on)
			tr.Add(opts.Duration, off)
		}
	}
	tr.Close(0)
	return tr, nil
}

func WriteFile(path string, tr smf.Track) error {
	s := smf.New()
	s.TimeFormat = Ticks
	if err := s.Add(tr); err != nil {
		return errors.Wrap(err, "could not add track")
	}
	if err := s.WriteFile(path); err != nil {
		return errors.Wrapf(err, "could not write %v", path)
	}
	return nil
}

// ReadFile returns the pitches started on the first track of the file at path.
func ReadFile(path string) ([]model.Pitch, error) {
	s, err := smf.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %v", path)
	}
	if len(s.Tracks) == 0 {
		return []model.Pitch{}, nil
	}
	return Pitches(s.Tracks[0]), nil
}

// Pitches reads back the sounding pitches of tr in the order they start.
func Pitches(tr smf.Track) []model.Pitch {
	res := []model.Pitch{}
	var ch, key, vel uint8
	for _, ev := range tr {
		if gomidi.Message(ev.Message).GetNoteStart(&ch, &key, &vel) {
			res = append(res, model.Pitch(key))
		}
	}
	return res
}
