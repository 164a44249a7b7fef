// Package compileinfo describes the running binary: its release version and,
// when built from a VCS checkout, the commit it was built at.
package compileinfo

import (
	"fmt"
	"runtime/debug"
)

type CompileInfo struct {
	Program    string
	Version    string
	Package    string
	GoVersion  string
	Commit     string
	CommitTime string
	Modified   bool
}

func (c CompileInfo) String() string {
	if c.GoVersion == "" {
		return fmt.Sprintf("%s v. %s (no build information)", c.Program, c.Version)
	}

	mod := ""
	if c.Modified {
		mod = " Files in the repo were modified after that commit."
	}

	commit := c.Commit
	if commit == "" {
		commit = "unknown"
	}

	return fmt.Sprintf("%s v. %s (%s) was built with %s at commit %s at time %v.%s", c.Program, c.Version, c.Package, c.GoVersion, commit, c.CommitTime, mod)
}

// Get returns the compile information of the running binary.
func Get(program, version string) CompileInfo {
	out := CompileInfo{Program: program, Version: version}

	z, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}

	return fromBuildInfo(out, z)
}

func fromBuildInfo(out CompileInfo, z *debug.BuildInfo) CompileInfo {
	out.GoVersion = z.GoVersion
	out.Package = z.Path
	for _, s := range z.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.CommitTime = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}

	return out
}
