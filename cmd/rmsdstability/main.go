// rmsdstability summarizes the RMSD time series written by the rms script: for
// each sample file of a directory, it reports the mean and standard deviation
// of the RMSD over a frame selection and over all frames, in one
// semicolon-delimited CSV.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"github.com/carbocation/rmsdstats"
	"github.com/carbocation/rmsdstats/compileinfo"
	"github.com/carbocation/rmsdstats/logging"
	"github.com/carbocation/rmsdstats/rmsdsummary"
	"github.com/kardianos/osext"
)

const (
	version            = "1.0.0"
	defaultProgramName = "rmsd_stability"
)

func main() {
	os.Exit(realMain(os.Args, os.Stdout, os.Stderr))
}

// realMain returns the process exit code: 0 on success, 1 when the run fails
// and 2 on a command line error.
func realMain(args []string, stdout, console io.Writer) int {
	cfg, err := parseFlags(args[1:], console)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	} else if err != nil {
		return 2
	}

	if cfg.ShowVersion {
		fmt.Fprintln(stdout, version)
		return 0
	}

	outDir := filepath.Dir(cfg.Out)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		fmt.Fprintln(console, pfx.Err(err))
		return 1
	}

	logPath := cfg.Log
	if logPath == "" {
		logPath = filepath.Join(outDir, programName()+".log")
	}

	log, err := logging.New(logPath, cfg.level, console)
	if err != nil {
		fmt.Fprintln(console, err)
		return 1
	}
	defer log.Close()

	log.Infof("version: %s", version)
	log.Info(compileinfo.Get(programName(), version))
	log.Infof("CMD: %s", strings.Join(args, " "))

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error(err)
		return 1
	}

	return 0
}

func run(ctx context.Context, cfg config, log *logging.Logger) error {
	if cfg.End == 0 {
		log.Info("no --end option used, last frame will be selected.")
	}

	// Only connect to Google Storage when the input lives there.
	var client *storage.Client
	if strings.HasPrefix(cfg.Input, "gs://") {
		var err error
		client, err = storage.NewClient(ctx)
		if err != nil {
			return pfx.Err(err)
		}
		defer client.Close()
	}

	src, err := rmsdstats.NewSource(cfg.Input, client)
	if err != nil {
		return err
	}

	results, err := rmsdsummary.Run(ctx, src, rmsdsummary.Options{Start: cfg.Start, End: cfg.End}, log)
	if err != nil {
		return err
	}

	if err := rmsdsummary.WriteFile(cfg.Out, results); err != nil {
		return err
	}
	log.Infof("result file: %s", cfg.Out)

	return nil
}

// programName is the base name of the running executable, without extension.
func programName() string {
	exe, err := osext.Executable()
	if err != nil {
		return defaultProgramName
	}

	name := filepath.Base(exe)

	return strings.TrimSuffix(name, filepath.Ext(name))
}
