// Command-line interface to the blockdup duplicate block counter.
// Counts in one process, or coordinates and works a multi-process run.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"strings"
	"syscall"

	"github.com/janelia-flyem/blockdup/dvid"
	"github.com/janelia-flyem/blockdup/server"
)

var (
	// Display usage if true.
	showHelp = flag.Bool("help", false, "")

	// Run in verbose mode if true.
	runVerbose = flag.Bool("verbose", false, "")

	// Path to TOML configuration file.
	configFile = flag.String("config", "", "")

	// Profile CPU usage using standard gotest system.
	cpuprofile = flag.String("cpuprofile", "", "")

	// Profile memory usage using standard gotest system.
	memprofile = flag.String("memprofile", "", "")

	// Number of logical CPUs to use.
	useCPU = flag.Int("numcpu", 0, "")
)

const helpMessage = `
blockdup counts pairs of identical fixed-size blocks in a binarized 3D volume

Usage: blockdup [options] <command> [key=value ...]

      -config     =string   TOML configuration file.
      -cpuprofile =string   Write CPU profile to this file.
      -memprofile =string   Write memory profile to this file on exit.
      -numcpu     =number   Number of logical CPUs to use.
      -verbose    (flag)    Run in verbose mode.
  -h, -help       (flag)    Show help message

Commands:

	about
	help
	count       [key=value ...]   Count duplicates in this process.
	coordinate  [key=value ...]   Serve a multi-process run and print the summed count.
	work        rank=<n> [rpc=<address>]

Settings given as key=value override the configuration file:

	input=<path>      raw volume; .gz, .zst and .sz files are decompressed
	size=<W>x<H>x<D>  volume dimensions in voxels
	threshold=<n>     voxels above this intensity are set (default 25)
	cube=<n>          block edge, at most 4 (default 4)
	strategy=<name>   sequential, parallel or distributed
	workers=<n>       goroutines or partitions
	buckets=<prime>   hash buckets per ledger (default 10007)
	sharded=<bool>    lock-striped ledger for the parallel strategy
	max_memory=<size> memory budget, e.g. "2 GiB"
	rpc=<address>     coordinator address (default localhost:8002)
	processes=<n>     worker processes in a multi-process run
`

var usage = func() {
	fmt.Print(helpMessage)
}

func main() {
	flag.BoolVar(showHelp, "h", false, "Show help message")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() >= 1 && strings.ToLower(flag.Args()[0]) == "help" {
		*showHelp = true
	}

	if *runVerbose {
		dvid.Verbose = true
		dvid.SetLogMode(dvid.DebugMode)
	}
	if *showHelp || flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	// Use all logical CPUs unless overridden.
	if *useCPU != 0 {
		dvid.NumCPU = *useCPU
	}
	runtime.GOMAXPROCS(dvid.NumCPU)

	// Capture ctrl+c and other interrupts and abort the current run.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	command := dvid.Command(flag.Args())
	err := DoCommand(ctx, command)
	if *memprofile != "" {
		log.Printf("Storing memory profiling to %s...\n", *memprofile)
		f, ferr := os.Create(*memprofile)
		if ferr != nil {
			log.Fatal(ferr)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
	dvid.Shutdown()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		pprof.StopCPUProfile()
		os.Exit(1)
	}
}

// DoCommand serves as a switchboard for commands.
func DoCommand(ctx context.Context, cmd dvid.Command) error {
	if len(cmd) == 0 {
		return fmt.Errorf("Blank command!")
	}

	switch cmd.Name() {
	case "about":
		fmt.Println(server.Versions())
	case "count":
		return DoCount(ctx, cmd)
	case "coordinate":
		return DoCoordinate(ctx, cmd)
	case "work":
		return DoWork(ctx, cmd)
	default:
		return fmt.Errorf("Unknown command %q.  Use 'blockdup help' to list commands.", cmd.Name())
	}
	return nil
}

// loadConfig reads the TOML file named by -config or a config= setting, applies
// the command's overrides, and starts file logging if configured.
func loadConfig(cmd dvid.Command) (*server.Config, error) {
	filename := *configFile
	if setting, found := cmd.Parameter(dvid.KeyConfigFile); found {
		filename = setting
	}
	c := server.DefaultConfig()
	if filename != "" {
		var err error
		if c, err = server.LoadConfig(filename); err != nil {
			return nil, err
		}
	}
	if err := c.Apply(cmd); err != nil {
		return nil, err
	}
	c.Logging.SetLogger()
	return c, nil
}

// DoCount performs the "count" command in a single process.
func DoCount(ctx context.Context, cmd dvid.Command) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	result, err := server.Count(ctx, c)
	if err != nil {
		return err
	}
	fmt.Printf("%s strategy found %d duplicate block pairs\n", result.Strategy, result.Total)
	fmt.Printf("Time taken: %f seconds\n", result.CountTime.Seconds())
	return nil
}

// DoCoordinate performs the "coordinate" command, serving worker processes until
// all have reported.
func DoCoordinate(ctx context.Context, cmd dvid.Command) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	summary, err := server.Coordinate(ctx, c, nil)
	if err != nil {
		return err
	}
	fmt.Printf("distributed strategy found %d duplicate block pairs\n", summary.Total)
	fmt.Printf("Time taken: %f seconds\n", summary.Elapsed.Seconds())
	return nil
}

// DoWork performs the "work" command for one rank of a multi-process run.
func DoWork(ctx context.Context, cmd dvid.Command) error {
	rank, found, err := cmd.IntParameter(dvid.KeyRank)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("work command must be given rank=<n>")
	}
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	partial, err := server.Work(ctx, c.Distributed.Address, rank)
	if err != nil {
		return err
	}
	fmt.Printf("rank %d counted %d duplicate block pairs among %d blocks\n", partial.Rank, partial.Pairs, partial.Blocks)
	return nil
}
