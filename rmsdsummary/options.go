package rmsdsummary

import (
	"errors"
	"fmt"
)

var (
	ErrRangeOrder  = errors.New("invalid frame order")
	ErrRangeBounds = errors.New("frame out of bounds")
)

// Options holds the user's frame selection. Both frames are 1-indexed and
// inclusive. End 0 selects the last frame of each file.
type Options struct {
	Start int
	End   int
}

// DefaultOptions selects every frame.
func DefaultOptions() Options {
	return Options{Start: 1}
}

// Validate checks the parts of the selection that do not depend on a file.
func (o Options) Validate() error {
	if o.Start < 1 {
		return fmt.Errorf("%w: --start %d is lower than 1", ErrRangeBounds, o.Start)
	}

	if o.End < 0 {
		return fmt.Errorf("%w: --end %d is lower than 1", ErrRangeBounds, o.End)
	}

	return nil
}

// ResolveEnd returns the effective end frame for a file whose last frame is
// lastFrame. A requested end must come after the start and must not exceed
// lastFrame.
func (o Options) ResolveEnd(fileName string, lastFrame int) (int, error) {
	if o.End == 0 {
		return lastFrame, nil
	}

	if o.End <= o.Start {
		return 0, fmt.Errorf("%w: --end %d is lower or equal to --start %d", ErrRangeOrder, o.End, o.Start)
	}

	if o.End > lastFrame {
		return 0, fmt.Errorf("%w: --end %d is greater than the last frame of the input RMSD computation file for %s: %d", ErrRangeBounds, o.End, fileName, lastFrame)
	}

	return o.End, nil
}
