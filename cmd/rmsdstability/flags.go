package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/carbocation/rmsdstats/logging"
	"github.com/sirupsen/logrus"
)

type config struct {
	Out      string
	Start    int
	End      int
	Log      string
	LogLevel string
	Input    string

	ShowVersion bool

	level logrus.Level
}

// parseFlags accepts flags before and after the positional input directory.
// Short and long spellings share a destination. Errors have already been
// reported on console when it returns.
func parseFlags(args []string, console io.Writer) (config, error) {
	cfg, err := parseArgs(args, console)
	if err != nil && !errors.Is(err, flag.ErrHelp) && !errors.Is(err, errReported) {
		fmt.Fprintln(console, err)
	}

	return cfg, err
}

// errReported marks errors the flag package already printed.
var errReported = errors.New("invalid command line")

func parseArgs(args []string, console io.Writer) (config, error) {
	cfg := config{}

	fs := flag.NewFlagSet(defaultProgramName, flag.ContinueOnError)
	fs.SetOutput(console)
	fs.Usage = func() {
		fmt.Fprintf(console, "Usage: %s -o OUT [-s START] [-e END] [-l LOG] [--log-level LEVEL] input\n\n", programName())
		fmt.Fprintln(console, "From the RMSD computation CSV files of the rms script, compute the mean and standard deviation")
		fmt.Fprintln(console, "of the RMSD values from a start frame to an end frame, and over all frames.")
		fmt.Fprintln(console, "input is the directory of RMSD CSV files; it may be a gs:// path.")
		fmt.Fprintln(console)
		fs.PrintDefaults()
	}

	fs.StringVar(&cfg.Out, "out", "", "The path to the output CSV file. (Required.)")
	fs.StringVar(&cfg.Out, "o", "", "Same as --out")
	fs.IntVar(&cfg.Start, "start", 1, "The start frame (1-index) to consider in the \"frames\" column.")
	fs.IntVar(&cfg.Start, "s", 1, "Same as --start")
	fs.IntVar(&cfg.End, "end", 0, "The end frame (1-index) to consider in the \"frames\" column. If not used, the last frame of each RMSD file is selected.")
	fs.IntVar(&cfg.End, "e", 0, "Same as --end")
	fs.StringVar(&cfg.Log, "log", "", "The path for the log file. If skipped, the log file is created in the output directory.")
	fs.StringVar(&cfg.Log, "l", "", "Same as --log")
	fs.StringVar(&cfg.LogLevel, "log-level", "INFO", "The log level: "+strings.Join(logging.Levels, ", "))
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Print the version and exit.")

	positional := make([]string, 0, 1)
	rest := args
	for {
		if err := fs.Parse(rest); errors.Is(err, flag.ErrHelp) {
			return cfg, err
		} else if err != nil {
			return cfg, fmt.Errorf("%w: %s", errReported, err)
		}
		if fs.NArg() == 0 {
			break
		}
		positional = append(positional, fs.Arg(0))
		rest = fs.Args()[1:]
	}

	if cfg.ShowVersion {
		return cfg, nil
	}

	if cfg.Out == "" {
		return cfg, fmt.Errorf("please provide --out")
	}

	if len(positional) != 1 {
		return cfg, fmt.Errorf("expected exactly one input directory, got %d: %v", len(positional), positional)
	}
	cfg.Input = positional[0]

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return cfg, err
	}
	cfg.level = level

	return cfg, nil
}
