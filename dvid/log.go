package dvid

import (
	"fmt"
	"time"
)

// ModeFlag is a log severity.
type ModeFlag uint

const (
	DebugMode ModeFlag = iota
	InfoMode
	WarningMode
	ErrorMode
	SilentMode
)

func (m ModeFlag) String() string {
	switch m {
	case DebugMode:
		return "DEBUG"
	case InfoMode:
		return "INFO"
	case WarningMode:
		return "WARNING"
	case ErrorMode:
		return "ERROR"
	case SilentMode:
		return "SILENT"
	default:
		return fmt.Sprintf("mode %d", uint(m))
	}
}

var (
	// Verbose is set when we want per-worker and per-stage detail.
	Verbose bool

	// mode is the minimum severity that gets written.
	mode = InfoMode
)

// Logger writes messages tagged with a severity.  The default implementation
// goes through the standard log package or, if a log file is configured, a
// rotating file.
type Logger interface {
	// Logf formats its arguments analogous to fmt.Printf and records the text at
	// the given severity.
	Logf(m ModeFlag, format string, args ...interface{})

	// Shutdown makes sure logs are closed.
	Shutdown()
}

// SetLogMode sets the severity required for a log message to be printed.
// To turn off all logging, use SilentMode.
func SetLogMode(newMode ModeFlag) {
	mode = newMode
}

// LogMode returns the current minimum severity.
func LogMode() ModeFlag {
	return mode
}

func logf(m ModeFlag, format string, args ...interface{}) {
	if mode <= m {
		logger.Logf(m, format, args...)
	}
}

func Debugf(format string, args ...interface{}) {
	logf(DebugMode, format, args...)
}

func Infof(format string, args ...interface{}) {
	logf(InfoMode, format, args...)
}

func Warningf(format string, args ...interface{}) {
	logf(WarningMode, format, args...)
}

// Errorf also serves as the error logger of the rpc transport.
func Errorf(format string, args ...interface{}) {
	logf(ErrorMode, format, args...)
}

// Shutdown closes any log file in use.
func Shutdown() {
	logger.Shutdown()
}

// TimeLog appends the time since its creation to each message.
//
//	timedLog := NewTimeLog()
//	...
//	timedLog.Debugf("extracted %d blocks", n)
type TimeLog struct {
	start time.Time
}

func NewTimeLog() TimeLog {
	return TimeLog{time.Now()}
}

// Elapsed returns the time since the TimeLog was created.
func (t TimeLog) Elapsed() time.Duration {
	return time.Since(t.start)
}

func (t TimeLog) Debugf(format string, args ...interface{}) {
	logf(DebugMode, format+": %s\n", append(args, t.Elapsed())...)
}

func (t TimeLog) Infof(format string, args ...interface{}) {
	logf(InfoMode, format+": %s\n", append(args, t.Elapsed())...)
}
