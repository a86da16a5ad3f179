/*
	This file holds the Command type used for command-line interaction with blockdup.
*/

package dvid

import (
	"fmt"
	"strconv"
	"strings"
)

// Keys for setting various arguments within the command line via "key=value" strings.
const (
	KeyConfigFile = "config"
	KeyInput      = "input"
	KeyStrategy   = "strategy"
	KeyWorkers    = "workers"
	KeyBuckets    = "buckets"
	KeyThreshold  = "threshold"
	KeyCube       = "cube"
	KeySize       = "size"
	KeyRpc        = "rpc"
	KeyRank       = "rank"
	KeyProcesses  = "processes"
	KeySharded    = "sharded"
	KeyMaxMemory  = "max_memory"
)

// Command is a command-line request.  The first item in the string slice is the
// command name, e.g., "count".  The other arguments are positional arguments or
// optional settings of the form "<key>=<value>".
type Command []string

// String returns a space-separated command line
func (cmd Command) String() string {
	return strings.Join([]string(cmd), " ")
}

// Name returns the first argument which is assumed to be the name of the command.
func (cmd Command) Name() string {
	if len(cmd) == 0 {
		return ""
	}
	return cmd[0]
}

// Argument returns the nth positional argument, skipping "key=value" settings,
// where the command name is argument 0.  An empty string is returned if there
// is no such argument.
func (cmd Command) Argument(pos int) string {
	n := 0
	for _, arg := range cmd {
		if strings.Contains(arg, "=") {
			continue
		}
		if n == pos {
			return arg
		}
		n++
	}
	return ""
}

// Parameter scans a command for any "key=value" argument and returns
// the value of the passed 'key'.
func (cmd Command) Parameter(key string) (value string, found bool) {
	if len(cmd) > 1 {
		for _, arg := range cmd[1:] {
			elems := strings.SplitN(arg, "=", 2)
			if len(elems) == 2 && elems[0] == key {
				value = elems[1]
				found = true
				return
			}
		}
	}
	return
}

// IntParameter returns the integer value of a "key=value" setting.  If the key
// is absent, found is false and err is nil.
func (cmd Command) IntParameter(key string) (value int, found bool, err error) {
	s, found := cmd.Parameter(key)
	if !found {
		return 0, false, nil
	}
	value, err = strconv.Atoi(s)
	if err != nil {
		return 0, true, fmt.Errorf("bad %q setting %q: %v", key, s, err)
	}
	return value, true, nil
}

// Settings returns all "key=value" settings as a map.
func (cmd Command) Settings() map[string]string {
	settings := make(map[string]string)
	if len(cmd) > 1 {
		for _, arg := range cmd[1:] {
			elems := strings.SplitN(arg, "=", 2)
			if len(elems) == 2 {
				settings[elems[0]] = elems[1]
			}
		}
	}
	return settings
}
