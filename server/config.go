package server

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dustin/go-humanize"
	"github.com/janelia-flyem/blockdup/dvid"
	"github.com/janelia-flyem/blockdup/engine"
	"github.com/janelia-flyem/blockdup/ledger"
	"github.com/janelia-flyem/blockdup/rpc"
	"github.com/janelia-flyem/blockdup/volume"
)

// VolumeConfig describes the raw input volume.
type VolumeConfig struct {
	Input     string
	Width     int32
	Height    int32
	Depth     int32
	Threshold uint8
	Cube      int32
}

// Size returns the volume dimensions in voxels.
func (c VolumeConfig) Size() dvid.Point3d {
	return dvid.Point3d{c.Width, c.Height, c.Depth}
}

type EngineConfig struct {
	Strategy  string
	Workers   int
	Buckets   int
	Sharded   bool
	Stripes   int
	MaxMemory string `toml:"max_memory"`
}

type DistributedConfig struct {
	Address   string
	Processes int
}

type tomlConfig struct {
	Volume      VolumeConfig
	Engine      EngineConfig
	Distributed DistributedConfig
	Logging     dvid.LogConfig
}

// Config is a parsed blockdup configuration.
type Config struct {
	tomlConfig

	// location of the TOML file, if any
	location string
}

// DefaultConfig returns the settings used when no TOML file is given.
func DefaultConfig() *Config {
	return &Config{
		tomlConfig: tomlConfig{
			Volume: VolumeConfig{
				Threshold: volume.DefaultThreshold,
				Cube:      volume.MaxCubeEdge,
			},
			Engine: EngineConfig{
				Strategy: engine.Sequential.String(),
				Workers:  dvid.NumCPU,
				Buckets:  ledger.DefaultBuckets,
			},
			Distributed: DistributedConfig{
				Address:   rpc.DefaultAddress,
				Processes: 1,
			},
			Logging: dvid.LogConfig{
				MaxSize: 500,
				MaxAge:  30,
			},
		},
	}
}

// Some settings in the TOML can be given as relative paths.
// This function converts them in-place to absolute paths,
// assuming the given paths were relative to the TOML file's own directory.
func (c *tomlConfig) convertPathsToAbsolute(configPath string) error {
	var err error

	configDir := filepath.Dir(configPath)

	// [volume].input
	if c.Volume.Input != "" {
		c.Volume.Input, err = dvid.ConvertToAbsolute(c.Volume.Input, configDir)
		if err != nil {
			return fmt.Errorf("Error converting input setting to absolute path")
		}
	}

	// [logging].logfile
	if c.Logging.Logfile != "" {
		c.Logging.Logfile, err = dvid.ConvertToAbsolute(c.Logging.Logfile, configDir)
		if err != nil {
			return fmt.Errorf("Error converting logfile setting to absolute path")
		}
	}
	return nil
}

// LoadConfig loads configuration from a TOML file.  Settings absent from the
// file keep their defaults.
func LoadConfig(filename string) (*Config, error) {
	if filename == "" {
		return nil, fmt.Errorf("no TOML configuration file provided")
	}
	c := DefaultConfig()
	if _, err := toml.DecodeFile(filename, &c.tomlConfig); err != nil {
		return nil, fmt.Errorf("could not decode TOML config: %v", err)
	}
	c.location = filename

	if err := c.convertPathsToAbsolute(filename); err != nil {
		return nil, fmt.Errorf("could not convert relative paths to absolute paths in TOML config: %v", err)
	}
	dvid.Debugf("tomlConfig: %+v\n", c.tomlConfig)
	return c, nil
}

// Location returns the TOML file the configuration was read from.
func (c *Config) Location() string {
	return c.location
}

// Apply overrides configuration with "key=value" settings from the command line.
func (c *Config) Apply(cmd dvid.Command) error {
	settings := cmd.Settings()
	for key, value := range settings {
		var err error
		switch key {
		case dvid.KeyInput:
			// workers may run elsewhere, so broadcast an absolute path
			c.Volume.Input, err = filepath.Abs(value)
		case dvid.KeySize:
			c.Volume.Width, c.Volume.Height, c.Volume.Depth, err = parseSize(value)
		case dvid.KeyThreshold:
			var t uint64
			t, err = strconv.ParseUint(value, 10, 8)
			c.Volume.Threshold = uint8(t)
		case dvid.KeyCube:
			var s int64
			s, err = strconv.ParseInt(value, 10, 32)
			c.Volume.Cube = int32(s)
		case dvid.KeyStrategy:
			c.Engine.Strategy = value
		case dvid.KeyWorkers:
			c.Engine.Workers, err = strconv.Atoi(value)
		case dvid.KeyBuckets:
			c.Engine.Buckets, err = strconv.Atoi(value)
		case dvid.KeySharded:
			c.Engine.Sharded, err = strconv.ParseBool(value)
		case dvid.KeyMaxMemory:
			c.Engine.MaxMemory = value
		case dvid.KeyRpc:
			c.Distributed.Address = value
		case dvid.KeyProcesses:
			c.Distributed.Processes, err = strconv.Atoi(value)
		case dvid.KeyRank, dvid.KeyConfigFile:
			// consumed by the command itself
		default:
			return fmt.Errorf("unknown setting %q", key)
		}
		if err != nil {
			return fmt.Errorf("bad %q setting %q: %v", key, value, err)
		}
	}
	return nil
}

// parseSize parses "WxHxD".
func parseSize(s string) (w, h, d int32, err error) {
	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("size must be given as WxHxD")
	}
	var dims [3]int32
	for i, part := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(part), 10, 32)
		if err != nil {
			return 0, 0, 0, err
		}
		dims[i] = int32(v)
	}
	return dims[0], dims[1], dims[2], nil
}

// MaxMemory returns the allocation budget in bytes, zero if unbounded.
func (c *Config) MaxMemory() (uint64, error) {
	if c.Engine.MaxMemory == "" {
		return 0, nil
	}
	n, err := humanize.ParseBytes(c.Engine.MaxMemory)
	if err != nil {
		return 0, fmt.Errorf("bad max_memory %q: %v", c.Engine.MaxMemory, err)
	}
	return n, nil
}

// RunConfig returns the engine settings for a local run.
func (c *Config) RunConfig() (engine.Config, error) {
	strategy, err := engine.ParseStrategy(c.Engine.Strategy)
	if err != nil {
		return engine.Config{}, err
	}
	maxMemory, err := c.MaxMemory()
	if err != nil {
		return engine.Config{}, err
	}
	cfg := engine.Config{
		Strategy:  strategy,
		Workers:   c.Engine.Workers,
		Buckets:   c.Engine.Buckets,
		Sharded:   c.Engine.Sharded,
		Stripes:   c.Engine.Stripes,
		MaxMemory: maxMemory,
	}
	if strategy == engine.Sequential {
		cfg.Workers = 1
	}
	return cfg, nil
}

// Validate checks the volume shape and engine settings without reading any input.
func (c *Config) Validate() error {
	if err := checkShape(c.Volume.Size(), c.Volume.Cube); err != nil {
		return err
	}
	cfg, err := c.RunConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if c.Distributed.Processes < 1 {
		return fmt.Errorf("need at least one worker process, got %d", c.Distributed.Processes)
	}
	return nil
}

func checkShape(size dvid.Point3d, cube int32) error {
	if size[0] <= 0 || size[1] <= 0 || size[2] <= 0 {
		return fmt.Errorf("%w: volume size %s must be positive", dvid.ErrInputShape, size)
	}
	if cube < 1 || cube > volume.MaxCubeEdge {
		return fmt.Errorf("%w: cube edge %d not in [1,%d]", dvid.ErrInputShape, cube, volume.MaxCubeEdge)
	}
	if rem := size.ModScalar(cube); rem != (dvid.Point3d{}) {
		return fmt.Errorf("%w: volume size %s not divisible by cube edge %d", dvid.ErrInputShape, size, cube)
	}
	return nil
}
