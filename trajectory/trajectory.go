// Package trajectory holds a per-frame RMSD time series, as written by the rms
// script: one row per frame, with a 0-indexed "frames" column and an "RMSD"
// column in Ångströms.
package trajectory

import (
	"errors"
	"fmt"
)

var (
	ErrEmpty         = errors.New("trajectory has no frames")
	ErrFrameNotFound = errors.New("frame not found")
	ErrTooFewFrames  = errors.New("at least 2 frames are required for a standard deviation")
	ErrMissingColumn = errors.New("missing column")
	ErrNotANumber    = errors.New("not a number")
)

// Frame is one row of an RMSD table. Index is 0-based.
type Frame struct {
	Index int     `csv:"frames"`
	RMSD  float64 `csv:"RMSD"`
}

// Trajectory is an ordered sequence of frames, kept in file order.
type Trajectory []Frame

// LastFrame returns the 1-indexed number of the last frame, i.e., the largest
// frame index plus one.
func (t Trajectory) LastFrame() (int, error) {
	if len(t) == 0 {
		return 0, ErrEmpty
	}

	max := t[0].Index
	for _, f := range t[1:] {
		if f.Index > max {
			max = f.Index
		}
	}

	return max + 1, nil
}

// Position returns the row position of the first frame whose 0-based index is
// frameIndex.
func (t Trajectory) Position(frameIndex int) (int, error) {
	for i, f := range t {
		if f.Index == frameIndex {
			return i, nil
		}
	}

	return -1, fmt.Errorf("%w: frame %d (1-indexed) is absent from the frames column", ErrFrameNotFound, frameIndex+1)
}

// Slice returns the rows from position from to position to, both inclusive. An
// inverted or out of range request yields an empty trajectory.
func (t Trajectory) Slice(from, to int) Trajectory {
	if from < 0 || to >= len(t) || to < from {
		return Trajectory{}
	}

	return t[from : to+1]
}

// RMSD returns the RMSD column.
func (t Trajectory) RMSD() []float64 {
	out := make([]float64, 0, len(t))
	for _, f := range t {
		out = append(out, f.RMSD)
	}

	return out
}
