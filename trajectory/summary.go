package trajectory

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Places is the number of decimals kept in every reported statistic.
const Places = 2

// Angstrom is a distance in Ångströms. It prints in its shortest form, but
// always with a decimal part (2.5, 3.0).
type Angstrom float64

func (a Angstrom) String() string {
	f := float64(a)
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if math.IsNaN(f) || math.IsInf(f, 0) || strings.ContainsAny(s, ".e") {
		return s
	}

	return s + ".0"
}

// MarshalCSV satisfies gocsv.TypeMarshaller.
func (a Angstrom) MarshalCSV() (string, error) {
	return a.String(), nil
}

// Summary is the mean and sample standard deviation of an RMSD series, both
// rounded to Places decimals.
type Summary struct {
	Mean   Angstrom
	StdDev Angstrom
}

// Summary computes the mean and the sample (n-1) standard deviation of the RMSD
// column.
func (t Trajectory) Summary() (Summary, error) {
	out := Summary{}

	if len(t) < 2 {
		return out, fmt.Errorf("%w: got %d", ErrTooFewFrames, len(t))
	}

	for _, f := range t {
		if math.IsNaN(f.RMSD) {
			return out, fmt.Errorf("%w: RMSD of frame %d (1-indexed)", ErrNotANumber, f.Index+1)
		}
	}

	mean, sd := stat.MeanStdDev(t.RMSD(), nil)

	m, err := Round(mean)
	if err != nil {
		return out, err
	}

	s, err := Round(sd)
	if err != nil {
		return out, err
	}

	out.Mean = Angstrom(m)
	out.StdDev = Angstrom(s)

	return out, nil
}

// Round rounds x to Places decimals. The exact binary value of x is rounded,
// so 2.675 (stored as 2.67499999...) gives 2.67; exact ties go to even.
func Round(x float64) (float64, error) {
	if math.IsNaN(x) {
		return x, fmt.Errorf("rounding %v: %w", x, ErrNotANumber)
	}

	return strconv.ParseFloat(strconv.FormatFloat(x, 'f', Places, 64), 64)
}
