package dvid

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	oldMode := LogMode()
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		SetLogMode(oldMode)
	})
	return &buf
}

func TestLogMode(t *testing.T) {
	buf := captureLog(t)

	SetLogMode(WarningMode)
	Debugf("debug %d\n", 1)
	Infof("info %d\n", 2)
	Warningf("warning %d\n", 3)
	Errorf("error %d\n", 4)
	out := buf.String()
	if strings.Contains(out, "debug 1") || strings.Contains(out, "info 2") {
		t.Errorf("messages below warning were written: %q", out)
	}
	if !strings.Contains(out, " WARNING warning 3") || !strings.Contains(out, "   ERROR error 4") {
		t.Errorf("expected tagged warning and error messages, got %q", out)
	}

	buf.Reset()
	SetLogMode(SilentMode)
	Errorf("error %d\n", 5)
	if buf.Len() != 0 {
		t.Errorf("silent mode wrote %q", buf.String())
	}
}

func TestTimeLog(t *testing.T) {
	buf := captureLog(t)
	SetLogMode(DebugMode)

	timedLog := NewTimeLog()
	timedLog.Debugf("extracted %d blocks", 8)
	if out := buf.String(); !strings.Contains(out, "   DEBUG extracted 8 blocks: ") {
		t.Errorf("expected elapsed time appended, got %q", out)
	}
	if timedLog.Elapsed() <= 0 {
		t.Errorf("expected positive elapsed time")
	}
}
