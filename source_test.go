package rmsdstats

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestDirSourceListIsSorted(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"RMSD_b_ORF1.csv", "RMSD_a_ORF1.csv", "RMSD_B_ORF1.csv"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "plots"), 0755); err != nil {
		t.Fatal(err)
	}

	src, err := NewSource(dir, nil)
	if err != nil {
		t.Fatal(err)
	}

	names, err := src.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{"RMSD_B_ORF1.csv", "RMSD_a_ORF1.csv", "RMSD_b_ORF1.csv"}
	if len(names) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Position %d: expected %s, got %s", i, expected[i], names[i])
		}
	}

	r, err := src.Open(context.Background(), names[1])
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	content, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "RMSD_a_ORF1.csv" {
		t.Errorf("Opened the wrong file: %q", content)
	}
}

func TestDirSourceMissing(t *testing.T) {
	src := DirSource(filepath.Join(t.TempDir(), "absent"))
	if _, err := src.List(context.Background()); err == nil {
		t.Error("Expected an error for a missing directory")
	}
}

func TestSplitGSPath(t *testing.T) {
	for _, v := range []struct {
		in             string
		bucket, prefix string
	}{
		{"gs://bucket", "bucket", ""},
		{"gs://bucket/", "bucket", ""},
		{"gs://bucket/md/rmsd", "bucket", "md/rmsd"},
		{"gs://bucket/md/rmsd/", "bucket", "md/rmsd"},
	} {
		bucket, prefix, err := SplitGSPath(v.in)
		if err != nil {
			t.Fatal(err)
		}
		if bucket != v.bucket || prefix != v.prefix {
			t.Errorf("%s: expected %s + %s, got %s + %s", v.in, v.bucket, v.prefix, bucket, prefix)
		}
	}

	for _, bad := range []string{"gs://", "/data/rmsd", "gs:///rmsd"} {
		if _, _, err := SplitGSPath(bad); err == nil {
			t.Errorf("Expected an error for %s", bad)
		}
	}
}

func TestNewGSSourceRequiresClient(t *testing.T) {
	if _, err := NewSource("gs://bucket/rmsd", nil); err == nil {
		t.Error("Expected an error without a storage client")
	}
}
