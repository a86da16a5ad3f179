/*
Package server ties configuration, input loading and the counting engine together
for the blockdup command.  A single process counts with Count.  A multi-process
run has one process call Coordinate, which broadcasts the run parameters over rpc
and sums the reported partial counts, and one process per rank call Work.

Configuration is read from a TOML file:

	[volume]
	input = "c8.raw.zst"   # relative to the TOML file
	width = 512
	height = 512
	depth = 512
	threshold = 25
	cube = 4

	[engine]
	strategy = "parallel"  # sequential, parallel or distributed
	workers = 8
	buckets = 10007
	sharded = false
	max_memory = "2 GiB"

	[distributed]
	address = "localhost:8002"
	processes = 4

	[logging]
	logfile = "/var/log/blockdup.log"
	max_log_size = 500 # MB
	max_log_age = 30   # days

Any setting can be overridden on the command line with key=value arguments.
*/
package server
