package rmsdsummary

import "github.com/carbocation/rmsdstats/trajectory"

// Result is one row of the summary table.
type Result struct {
	Sample         string              `csv:"sample"`
	SelectedFrames string              `csv:"selected frames"`
	SelectedMean   trajectory.Angstrom `csv:"RMSD mean selected frames (Å)"`
	SelectedStdDev trajectory.Angstrom `csv:"RMSD standard deviation selected frames (Å)"`
	AllFrames      string              `csv:"all frames"`
	AllMean        trajectory.Angstrom `csv:"RMSD mean all frames (Å)"`
	AllStdDev      trajectory.Angstrom `csv:"RMSD standard deviation all frames (Å)"`
}
