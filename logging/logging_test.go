package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestParseLevel(t *testing.T) {
	for _, v := range []struct {
		name     string
		expected logrus.Level
	}{
		{"", logrus.InfoLevel},
		{"DEBUG", logrus.DebugLevel},
		{"INFO", logrus.InfoLevel},
		{"WARNING", logrus.WarnLevel},
		{"ERROR", logrus.ErrorLevel},
		{"CRITICAL", logrus.FatalLevel},
	} {
		level, err := ParseLevel(v.name)
		if err != nil {
			t.Fatal(err)
		}
		if level != v.expected {
			t.Errorf("%q: expected %v, got %v", v.name, v.expected, level)
		}
		if v.name != "" && LevelName(level) != v.name {
			t.Errorf("LevelName(%v): expected %q, got %q", level, v.name, LevelName(level))
		}
	}

	for _, name := range []string{"info", "WARN", "TRACE"} {
		if _, err := ParseLevel(name); err == nil {
			t.Errorf("Expected an error for %q", name)
		}
	}
}

func TestNewWritesBothSinks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	if err := os.WriteFile(path, []byte("stale line\n"), 0644); err != nil {
		t.Fatal(err)
	}

	console := &bytes.Buffer{}
	l, err := New(path, logrus.InfoLevel, console)
	if err != nil {
		t.Fatal(err)
	}

	l.Debug("hidden")
	l.Info("shown")
	l.Warn("careful")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}

	fileBytes, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	for sink, content := range map[string]string{"file": string(fileBytes), "console": console.String()} {
		if strings.Contains(content, "stale line") || strings.Contains(content, "hidden") {
			t.Errorf("%s: unexpected content %q", sink, content)
		}
		if !strings.Contains(content, "INFO:\tshown\n") || !strings.Contains(content, "WARNING:\tcareful\n") {
			t.Errorf("%s: missing lines in %q", sink, content)
		}
	}
}

func TestCloseKeepsConsole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")

	console := &bytes.Buffer{}
	l, err := New(path, logrus.InfoLevel, console)
	if err != nil {
		t.Fatal(err)
	}

	l.Info("before")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	l.Info("after")

	if !strings.Contains(console.String(), "INFO:\tafter\n") {
		t.Errorf("Expected the console to keep receiving lines, got %q", console)
	}

	fileBytes, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(fileBytes), "after") {
		t.Errorf("Unexpected line in the closed log file: %q", fileBytes)
	}

	if err := l.Close(); err != nil {
		t.Errorf("Second Close: %v", err)
	}
}
