package rmsdsummary

import (
	"errors"
	"fmt"
	"regexp"
)

var ErrSampleName = errors.New("sample pattern mismatch")

// SamplePattern matches the RMSD file names of the rms script and captures the
// sample.
var SamplePattern = regexp.MustCompile(`^RMSD_(.+)_ORF1\.csv$`)

// SampleName extracts the sample from an RMSD file name such as
// RMSD_JQ679013_ORF1.csv.
func SampleName(fileName string) (string, error) {
	m := SamplePattern.FindStringSubmatch(fileName)
	if m == nil {
		return "", fmt.Errorf("%w: the sample pattern %q does not match with the file %s", ErrSampleName, SamplePattern.String(), fileName)
	}

	return m[1], nil
}
