package dvid

import (
	"path/filepath"
	"testing"
)

func TestCommand(t *testing.T) {
	cmd := Command{"count", "workers=8", "assets/c8.raw", "strategy=parallel", "extra"}
	if cmd.Name() != "count" {
		t.Errorf("bad name %q", cmd.Name())
	}
	if arg := cmd.Argument(1); arg != "assets/c8.raw" {
		t.Errorf("expected first positional argument, got %q", arg)
	}
	if arg := cmd.Argument(2); arg != "extra" {
		t.Errorf("expected second positional argument, got %q", arg)
	}
	if arg := cmd.Argument(3); arg != "" {
		t.Errorf("expected empty argument, got %q", arg)
	}
	if v, found := cmd.Parameter(KeyStrategy); !found || v != "parallel" {
		t.Errorf("bad strategy parameter %q, found %t", v, found)
	}
	if _, found := cmd.Parameter(KeyRank); found {
		t.Errorf("found absent parameter")
	}
	n, found, err := cmd.IntParameter(KeyWorkers)
	if err != nil || !found || n != 8 {
		t.Errorf("bad workers parameter %d, found %t, err %v", n, found, err)
	}
	if _, _, err := (Command{"count", "workers=x"}).IntParameter(KeyWorkers); err == nil {
		t.Errorf("expected error on non-integer setting")
	}
	settings := cmd.Settings()
	if len(settings) != 2 || settings["workers"] != "8" {
		t.Errorf("bad settings: %v", settings)
	}
	if cmd.String() != "count workers=8 assets/c8.raw strategy=parallel extra" {
		t.Errorf("bad string %q", cmd.String())
	}
}

func TestConvertToAbsolute(t *testing.T) {
	dir := t.TempDir()
	abs, err := ConvertToAbsolute("data/c8.raw", dir)
	if err != nil {
		t.Fatal(err)
	}
	if abs != filepath.Join(dir, "data", "c8.raw") {
		t.Errorf("bad absolute path %q", abs)
	}
	if same, _ := ConvertToAbsolute("/tmp/x.raw", dir); same != "/tmp/x.raw" {
		t.Errorf("absolute path changed: %q", same)
	}
	if _, err := ConvertToAbsolute("", dir); err == nil {
		t.Errorf("expected error on empty path")
	}
}
