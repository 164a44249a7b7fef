package compileinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFromBuildInfo(t *testing.T) {
	bi := &debug.BuildInfo{
		GoVersion: "go1.18",
		Path:      "github.com/carbocation/rmsdstats/cmd/rmsdstability",
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2025-02-03T10:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	c := fromBuildInfo(CompileInfo{Program: "rmsdstability", Version: "1.0.0"}, bi)
	if c.Commit != "abc123" || c.CommitTime != "2025-02-03T10:00:00Z" || !c.Modified {
		t.Fatalf("Unexpected %+v", c)
	}

	s := c.String()
	for _, expected := range []string{"rmsdstability v. 1.0.0", "go1.18", "abc123", "modified"} {
		if !strings.Contains(s, expected) {
			t.Errorf("Expected %q in %q", expected, s)
		}
	}
}

func TestStringWithoutBuildInfo(t *testing.T) {
	c := CompileInfo{Program: "rmsdstability", Version: "1.0.0"}
	if s := c.String(); s != "rmsdstability v. 1.0.0 (no build information)" {
		t.Errorf("Unexpected %q", s)
	}
}
