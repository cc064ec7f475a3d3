package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, t.TempDir(), "logbus.toml", `
[logger]
clear_on_init = false
use_timestamps = true

[bus]
debug = true
warn_on_no_listeners = false
catch_errors = false
max_listeners = 8
`)

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if f.Logger.ClearOnInit == nil || *f.Logger.ClearOnInit {
		t.Error("expected clear_on_init = false")
	}
	if f.Logger.UseTimestamps == nil || !*f.Logger.UseTimestamps {
		t.Error("expected use_timestamps = true")
	}
	if f.Bus.MaxListeners == nil || *f.Bus.MaxListeners != 8 {
		t.Error("expected max_listeners = 8")
	}

	if got := f.LoggerOptions(); len(got) != 2 {
		t.Errorf("expected 2 logger options, got %d", len(got))
	}
	if got := f.BusOptions(); len(got) != 4 {
		t.Errorf("expected 4 bus options, got %d", len(got))
	}
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	f, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(f.LoggerOptions()) != 0 || len(f.BusOptions()) != 0 {
		t.Error("expected an empty file to yield no options")
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.toml", "[logger\nclear")

	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestWatch_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "logbus.toml", "[bus]\nmax_listeners = 1\n")

	changed := make(chan *File, 1)
	w, err := Watch(path, func(f *File) {
		select {
		case changed <- f:
		default:
		}
	})
	if err != nil {
		t.Fatalf("Watch() failed: %v", err)
	}
	defer w.Close()

	writeFile(t, dir, "logbus.toml", "[bus]\nmax_listeners = 2\n")

	select {
	case f := <-changed:
		if f.Bus.MaxListeners == nil || *f.Bus.MaxListeners != 2 {
			t.Errorf("expected the reloaded value, got %+v", f.Bus.MaxListeners)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for the change callback")
	}
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "logbus.toml", "")

	changed := make(chan struct{}, 1)
	w, err := Watch(path, func(*File) {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("Watch() failed: %v", err)
	}
	defer w.Close()

	writeFile(t, dir, "other.toml", "ignored = true\n")

	select {
	case <-changed:
		t.Fatal("unexpected callback for an unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}
