package trajectory

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/csimplestring/go-csv/detector"
	"github.com/gocarina/gocsv"
)

// Required header names of an RMSD table. Other columns are ignored.
const (
	ColumnFrames = "frames"
	ColumnRMSD   = "RMSD"
)

var utf8BOM = []byte("\ufeff")

// Read loads a comma-delimited RMSD table. A leading UTF-8 byte order mark is
// ignored.
func Read(r io.Reader) (Trajectory, error) {
	fileBytes, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	fileBytes = bytes.TrimPrefix(fileBytes, utf8BOM)

	if err := readHeader(fileBytes); err != nil {
		return nil, err
	}

	records := []*Frame{}
	if err := gocsv.UnmarshalCSV(csv.NewReader(bytes.NewReader(fileBytes)), &records); err != nil {
		return nil, err
	}

	out := make(Trajectory, 0, len(records))
	for _, record := range records {
		out = append(out, *record)
	}

	return out, nil
}

func readHeader(fileBytes []byte) error {
	cols, err := csv.NewReader(bytes.NewReader(fileBytes)).Read()
	if err == io.EOF {
		return fmt.Errorf("%w: the file is empty", ErrMissingColumn)
	} else if err != nil {
		return err
	}

	found := map[string]bool{}
	for _, v := range cols {
		switch v {
		case ColumnFrames, ColumnRMSD:
			found[v] = true
		}
	}

	for _, expected := range []string{ColumnFrames, ColumnRMSD} {
		if !found[expected] {
			return fmt.Errorf("%w: %q not in header %v (detected delimiter %q)", ErrMissingColumn, expected, cols, determineDelimiter(fileBytes))
		}
	}

	return nil
}

// determineDelimiter returns the single most likely delimiter of the table.
func determineDelimiter(fileBytes []byte) string {
	d := detector.New()
	delimiters := d.DetectDelimiter(bytes.NewReader(fileBytes), '"')

	if len(delimiters) > 0 {
		return delimiters[0]
	}

	return ","
}
