package rmsdstats

import (
	"context"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"google.golang.org/api/iterator"
)

// GSSource is a "directory" in a Google Storage bucket: every object directly
// under Prefix. Nested prefixes are not descended into.
type GSSource struct {
	Bucket string
	Prefix string

	client *storage.Client
}

// NewGSSource parses a gs://bucket/prefix path. The prefix may be empty.
func NewGSSource(gsPath string, client *storage.Client) (*GSSource, error) {
	if client == nil {
		return nil, fmt.Errorf("%s: a Google Storage client is required", gsPath)
	}

	bucket, prefix, err := SplitGSPath(gsPath)
	if err != nil {
		return nil, err
	}

	return &GSSource{Bucket: bucket, Prefix: prefix, client: client}, nil
}

// SplitGSPath splits gs://bucket/some/prefix/ into its bucket and its prefix.
// The prefix is returned without leading or trailing slashes.
func SplitGSPath(gsPath string) (bucket, prefix string, err error) {
	if !strings.HasPrefix(gsPath, "gs://") {
		return "", "", fmt.Errorf("%s is not a gs:// path", gsPath)
	}

	pathParts := strings.SplitN(strings.TrimPrefix(gsPath, "gs://"), "/", 2)
	if pathParts[0] == "" {
		return "", "", fmt.Errorf("%s: no bucket name", gsPath)
	}

	bucket = pathParts[0]
	if len(pathParts) == 2 {
		prefix = strings.Trim(pathParts[1], "/")
	}

	return bucket, prefix, nil
}

func (s *GSSource) String() string {
	if s.Prefix == "" {
		return "gs://" + s.Bucket
	}

	return "gs://" + s.Bucket + "/" + s.Prefix
}

func (s *GSSource) objectName(name string) string {
	if s.Prefix == "" {
		return name
	}

	return s.Prefix + "/" + name
}

func (s *GSSource) List(ctx context.Context) ([]string, error) {
	query := &storage.Query{Delimiter: "/"}
	if s.Prefix != "" {
		query.Prefix = s.Prefix + "/"
	}

	out := make([]string, 0)

	it := s.client.Bucket(s.Bucket).Objects(ctx, query)
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		} else if err != nil {
			return nil, pfx.Err(fmt.Errorf("%s: %s", s, err))
		}

		// Synthetic "directory" entries only carry a Prefix.
		if attrs.Name == "" || strings.HasSuffix(attrs.Name, "/") {
			continue
		}

		out = append(out, path.Base(attrs.Name))
	}

	sort.Strings(out)

	return out, nil
}

func (s *GSSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	r, err := s.client.Bucket(s.Bucket).Object(s.objectName(name)).NewReader(ctx)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("gs://%s/%s: %s", s.Bucket, s.objectName(name), err))
	}

	return r, nil
}
