package trajectory

import "fmt"

// Range is an inclusive, 1-indexed span of frames.
type Range struct {
	Start int
	End   int
}

// String renders the range the way it appears in the summary table, e.g.
// "1 - 1001".
func (r Range) String() string {
	return fmt.Sprintf("%d - %d", r.Start, r.End)
}

// Select looks up the rows holding the first and last frames of the range and
// returns every row between those two positions. The lookup is by frame value,
// but the returned span is positional.
func (t Trajectory) Select(r Range) (Trajectory, error) {
	from, err := t.Position(r.Start - 1)
	if err != nil {
		return nil, err
	}

	to, err := t.Position(r.End - 1)
	if err != nil {
		return nil, err
	}

	return t.Slice(from, to), nil
}
