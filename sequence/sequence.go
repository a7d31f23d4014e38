// Package sequence converts between pitch sequences and the intervals that
// separate them. IntoPitches(s[0], IntoIntervals(s)) reproduces s for any
// non-empty sequence of valid pitches.
package sequence

import (
	"github.com/jsphweid/mozzart/interval"
	"github.com/jsphweid/mozzart/model"
	"github.com/jsphweid/mozzart/pitch"
	"github.com/pkg/errors"
)

// IntoIntervals returns the distance between each adjacent pair. Fewer than
// two pitches yield an empty result.
func IntoIntervals(pitches []model.Pitch) []model.Interval {
	if len(pitches) < 2 {
		return []model.Interval{}
	}
	res := make([]model.Interval, 0, len(pitches)-1)
	for i := 1; i < len(pitches); i++ {
		res = append(res, interval.Between(pitches[i-1], pitches[i]))
	}
	return res
}

// IntoPitches applies intervals cumulatively, each one from the pitch before
// it, starting at root.
func IntoPitches(root model.Pitch, intervals []model.Interval) ([]model.Pitch, error) {
	if err := pitch.Validate(root); err != nil {
		return nil, errors.Wrap(err, "sequence root")
	}

	res := make([]model.Pitch, 0, len(intervals)+1)
	res = append(res, root)
	current := root
	for i, iv := range intervals {
		next, err := pitch.AddInterval(current, iv)
		if err != nil {
			return nil, errors.Wrapf(err, "sequence position %d", i+1)
		}
		res = append(res, next)
		current = next
	}
	return res, nil
}

// FromRoot returns the distance of every pitch after the first from the first.
func FromRoot(pitches []model.Pitch) []model.Interval {
	if len(pitches) < 2 {
		return []model.Interval{}
	}
	res := make([]model.Interval, 0, len(pitches)-1)
	for _, p := range pitches[1:] {
		res = append(res, interval.Between(pitches[0], p))
	}
	return res
}

// Transpose moves every pitch by i. Nothing is returned if any pitch would
// leave the MIDI range.
func Transpose(pitches []model.Pitch, i model.Interval) ([]model.Pitch, error) {
	res := make([]model.Pitch, 0, len(pitches))
	for n, p := range pitches {
		moved, err := pitch.AddInterval(p, i)
		if err != nil {
			return nil, errors.Wrapf(err, "sequence position %d", n)
		}
		res = append(res, moved)
	}
	return res, nil
}
