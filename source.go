// Package rmsdstats summarizes directories of per-sample RMSD time series.
package rmsdstats

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// Source lists and opens the per-sample RMSD files of one input directory.
type Source interface {
	// List returns the file names of the directory, sorted lexicographically.
	List(ctx context.Context) ([]string, error)

	// Open opens one of the names returned by List.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// String is the location of the directory, for logging.
	String() string
}

// NewSource returns a Google Storage source for gs:// paths (client must then
// be non-nil) and a local directory source otherwise.
func NewSource(path string, client *storage.Client) (Source, error) {
	if strings.HasPrefix(path, "gs://") {
		src, err := NewGSSource(path, client)
		if err != nil {
			return nil, err
		}
		return src, nil
	}

	return DirSource(path), nil
}

// DirSource is a directory on the local filesystem.
type DirSource string

func (d DirSource) String() string { return string(d) }

// List skips sub-directories; every other entry is reported.
func (d DirSource) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(string(d))
	if err != nil {
		return nil, pfx.Err(err)
	}

	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		out = append(out, entry.Name())
	}

	sort.Strings(out)

	return out, nil
}

func (d DirSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(string(d), name))
	if err != nil {
		return nil, pfx.Err(err)
	}

	return f, nil
}
