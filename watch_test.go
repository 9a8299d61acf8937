// ABOUTME: Tests for the config file watcher.
// ABOUTME: Covers reload on write and ignoring unrelated files.

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchConfigReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	if err := DefaultConfig().Save(path); err != nil {
		t.Fatal(err)
	}

	changes := make(chan *Config, 4)
	watcher, err := watchConfig(path, func(cfg *Config) {
		changes <- cfg
	})
	if err != nil {
		t.Fatalf("watchConfig failed: %v", err)
	}
	defer watcher.Close()

	updated := &Config{Chime: true, RefreshMs: 500}
	if err := updated.Save(path); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-changes:
		if !cfg.Chime {
			t.Error("reloaded config lost chime setting")
		}
		if cfg.RefreshMs != 500 {
			t.Errorf("reloaded RefreshMs = %d, want 500", cfg.RefreshMs)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after config write")
	}
}

func TestWatchConfigIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	if err := DefaultConfig().Save(path); err != nil {
		t.Fatal(err)
	}

	changes := make(chan *Config, 4)
	watcher, err := watchConfig(path, func(cfg *Config) {
		changes <- cfg
	})
	if err != nil {
		t.Fatalf("watchConfig failed: %v", err)
	}
	defer watcher.Close()

	other := filepath.Join(dir, "other.json")
	if err := os.WriteFile(other, []byte("{}"), 0600); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changes:
		t.Error("watcher fired for an unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatchConfigMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "config.json")

	if _, err := watchConfig(path, func(*Config) {}); err == nil {
		t.Error("expected error watching a nonexistent directory")
	}
}
