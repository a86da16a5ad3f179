package server

import (
	"fmt"
	"runtime"

	"github.com/blang/semver"
	"github.com/janelia-flyem/blockdup/ledger"
	"github.com/janelia-flyem/blockdup/volume"
)

const (
	Version = "1.0.0"
)

var version = semver.MustParse(Version)

// CheckCompatible returns an error if a coordinator running the given version
// cannot be served by this executable.  Versions with the same major number
// use the same wire format.
func CheckCompatible(remote string) error {
	v, err := semver.Make(remote)
	if err != nil {
		return fmt.Errorf("coordinator sent bad version %q: %v", remote, err)
	}
	if v.Major != version.Major {
		return fmt.Errorf("coordinator version %s incompatible with worker version %s", v, version)
	}
	return nil
}

// Versions returns a chart of version identifiers fixed at compile-time for this
// executable.
func Versions() string {
	var text string = "\nCompile-time version information for this blockdup executable:\n\n"
	writeLine := func(name, value string) {
		text += fmt.Sprintf("%-18s   %s\n", name, value)
	}
	writeLine("Name", "Version")
	writeLine("blockdup", version.String())
	writeLine("Go", runtime.Version())
	writeLine("Default buckets", fmt.Sprintf("%d", ledger.DefaultBuckets))
	writeLine("Max cube edge", fmt.Sprintf("%d", volume.MaxCubeEdge))
	return text
}
