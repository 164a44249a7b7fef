// Package rmsdsummary computes, for every RMSD file of a directory, the mean
// and standard deviation of the RMSD over all frames and over a selected frame
// range.
package rmsdsummary

import (
	"context"
	"fmt"

	"github.com/carbocation/pfx"
	"github.com/carbocation/rmsdstats"
	"github.com/carbocation/rmsdstats/trajectory"
	"github.com/sirupsen/logrus"
)

// Run summarizes every file of src, in sorted name order. The first failing
// file aborts the run and no results are returned.
func Run(ctx context.Context, src rmsdstats.Source, opts Options, log logrus.FieldLogger) ([]Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	names, err := src.List(ctx)
	if err != nil {
		return nil, err
	}
	log.Debugf("%d files in %s", len(names), src)

	results := make([]Result, 0, len(names))
	for _, name := range names {
		traj, err := readFile(ctx, src, name)
		if err != nil {
			return nil, err
		}

		res, err := Summarize(name, traj, opts, log)
		if err != nil {
			return nil, err
		}

		results = append(results, res)
	}

	return results, nil
}

func readFile(ctx context.Context, src rmsdstats.Source, name string) (trajectory.Trajectory, error) {
	r, err := src.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	traj, err := trajectory.Read(r)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %w", name, err))
	}

	return traj, nil
}

// Summarize computes the all-frames and the selected-frames statistics of one
// RMSD file and logs them.
func Summarize(fileName string, traj trajectory.Trajectory, opts Options, log logrus.FieldLogger) (Result, error) {
	out := Result{}

	lastFrame, err := traj.LastFrame()
	if err != nil {
		return out, pfx.Err(fmt.Errorf("%s: %w", fileName, err))
	}

	end, err := opts.ResolveEnd(fileName, lastFrame)
	if err != nil {
		return out, err
	}

	sample, err := SampleName(fileName)
	if err != nil {
		return out, err
	}
	out.Sample = sample
	log.Infof("%s:", sample)

	all := trajectory.Range{Start: 1, End: lastFrame}
	allSummary, err := traj.Summary()
	if err != nil {
		return out, pfx.Err(fmt.Errorf("%s, frames %s: %w", fileName, all, err))
	}
	out.AllFrames = all.String()
	out.AllMean = allSummary.Mean
	out.AllStdDev = allSummary.StdDev
	logSummary(log, all, allSummary)

	selected := trajectory.Range{Start: opts.Start, End: end}
	subset, err := traj.Select(selected)
	if err != nil {
		return out, pfx.Err(fmt.Errorf("%s: %w", fileName, err))
	}
	selectedSummary, err := subset.Summary()
	if err != nil {
		return out, pfx.Err(fmt.Errorf("%s, frames %s: %w", fileName, selected, err))
	}
	out.SelectedFrames = selected.String()
	out.SelectedMean = selectedSummary.Mean
	out.SelectedStdDev = selectedSummary.StdDev
	logSummary(log, selected, selectedSummary)

	return out, nil
}

func logSummary(log logrus.FieldLogger, r trajectory.Range, s trajectory.Summary) {
	log.Infof("\tframes %s:", r)
	log.Infof("\t\tRMSD mean:\t%s Å", s.Mean)
	log.Infof("\t\tRMSD sd:\t%s Å", s.StdDev)
}
