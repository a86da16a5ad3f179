package dvid

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
)

// NumCPU is the number of logical CPUs blockdup may use.
var NumCPU = runtime.NumCPU()

var (
	// ErrInputShape is returned when volume dimensions, cube edge, or data length
	// are inconsistent, e.g., a dimension not divisible by the cube edge.
	ErrInputShape = errors.New("bad input shape")

	// ErrAllocation is returned when the storage required for a run cannot be
	// obtained within the configured memory budget.
	ErrAllocation = errors.New("allocation failure")
)

// ConvertToAbsolute returns an absolute path for a path given relative to
// the directory dir.  Absolute paths are returned unchanged.
func ConvertToAbsolute(path, dir string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("empty path cannot be made absolute")
	}
	if filepath.IsAbs(path) {
		return path, nil
	}
	return filepath.Abs(filepath.Join(dir, path))
}
