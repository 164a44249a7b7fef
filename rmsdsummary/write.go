package rmsdsummary

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

// Delimiter separates the fields of the summary table.
const Delimiter = ';'

// WriteCSV writes the results, with a header and in their given order.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	cw.Comma = Delimiter

	if err := gocsv.MarshalCSV(results, gocsv.NewSafeCSVWriter(cw)); err != nil {
		return pfx.Err(err)
	}

	cw.Flush()

	return cw.Error()
}

// WriteFile replaces path with the summary table. The parent directory must
// already exist.
func WriteFile(path string, results []Result) error {
	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}

	if err := WriteCSV(f, results); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
