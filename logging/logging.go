// Package logging builds the leveled logger shared by the rmsdstats tools. Every
// line goes both to a log file and to the console.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/sirupsen/logrus"
)

// Levels lists the accepted level names, from the most to the least verbose.
var Levels = []string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"}

var levelsByName = map[string]logrus.Level{
	"DEBUG":    logrus.DebugLevel,
	"INFO":     logrus.InfoLevel,
	"WARNING":  logrus.WarnLevel,
	"ERROR":    logrus.ErrorLevel,
	"CRITICAL": logrus.FatalLevel,
}

// ParseLevel maps a level name to its logrus level. The empty name is INFO.
func ParseLevel(name string) (logrus.Level, error) {
	if name == "" {
		return logrus.InfoLevel, nil
	}

	level, exists := levelsByName[name]
	if !exists {
		return logrus.InfoLevel, fmt.Errorf("invalid log level %q, choose from %s", name, strings.Join(Levels, ", "))
	}

	return level, nil
}

// Logger is a logrus.Logger that owns its log file. Close it when done.
type Logger struct {
	*logrus.Logger
	file    *os.File
	console io.Writer
}

// New replaces any file at path with a fresh log file and returns a logger
// writing to that file and to console at once.
func New(path string, level logrus.Level, console io.Writer) (*Logger, error) {
	if _, err := os.Stat(path); err == nil {
		if err := os.Remove(path); err != nil {
			return nil, pfx.Err(err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, pfx.Err(err)
	}

	l := logrus.New()
	l.SetOutput(io.MultiWriter(f, console))
	l.SetLevel(level)
	l.SetFormatter(&Formatter{})

	return &Logger{Logger: l, file: f, console: console}, nil
}

// Close closes the log file. Further logging only reaches the console.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}

	l.SetOutput(l.console)
	err := l.file.Close()
	l.file = nil

	return err
}

// DefaultTimestampFormat is used when Formatter.TimestampFormat is empty.
const DefaultTimestampFormat = "2006/01/02 15:04:05"

// Formatter renders entries as "2025/02/03 10:04:05 INFO:\tmessage". Fields,
// if any, are appended as key=value pairs.
type Formatter struct {
	TimestampFormat string
}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	tsFormat := f.TimestampFormat
	if tsFormat == "" {
		tsFormat = DefaultTimestampFormat
	}

	b := &bytes.Buffer{}
	fmt.Fprintf(b, "%s %s:\t%s", entry.Time.Format(tsFormat), LevelName(entry.Level), entry.Message)
	for key, value := range entry.Data {
		fmt.Fprintf(b, " %s=%v", key, value)
	}
	b.WriteByte('\n')

	return b.Bytes(), nil
}

// LevelName is the inverse of ParseLevel for the levels it accepts.
func LevelName(level logrus.Level) string {
	for name, l := range levelsByName {
		if l == level {
			return name
		}
	}

	return strings.ToUpper(level.String())
}
