package dvid

import (
	"fmt"
	"log"

	"github.com/natefinch/lumberjack"
)

// stdLogger writes through the standard log package, whose output is redirected
// to a rotating file when one is configured.
type stdLogger struct {
	file *lumberjack.Logger
}

var logger Logger = &stdLogger{}

// LogConfig describes an optional rotating log file.
type LogConfig struct {
	Logfile string
	MaxSize int `toml:"max_log_size"` // megabytes
	MaxAge  int `toml:"max_log_age"`  // days
}

// SetLogger sends log messages to the configured rotating file.  Without a log
// file, messages continue to go to stderr.
func (c *LogConfig) SetLogger() {
	if c == nil || c.Logfile == "" {
		Debugf("Sending log messages to stderr since no log file specified.\n")
		return
	}
	fmt.Printf("Sending log messages to: %s\n", c.Logfile)
	f := &lumberjack.Logger{
		Filename: c.Logfile,
		MaxSize:  c.MaxSize,
		MaxAge:   c.MaxAge,
	}
	log.SetOutput(f)
	logger = &stdLogger{file: f}
}

func (s *stdLogger) Logf(m ModeFlag, format string, args ...interface{}) {
	log.Printf("%8s "+format, append([]interface{}{m}, args...)...)
}

func (s *stdLogger) Shutdown() {
	if s.file != nil {
		log.Printf("Closing log file...\n")
		s.file.Close()
	}
}
