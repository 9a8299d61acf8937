// ABOUTME: Headless self-check for CI and packaging environments.
// ABOUTME: Verifies formatting, theme, and config handling without a window.

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// runHealthCheck exercises the non-display parts of the application.
// Returns an error only when a check fails; display availability is the
// caller's concern so it is probed exactly once per process.
func runHealthCheck() error {
	if err := checkFormatting(); err != nil {
		return fmt.Errorf("time formatting: %w", err)
	}
	if err := checkTheme(); err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	if err := checkConfigRoundTrip(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log.Printf("health check: ok")
	return nil
}

func checkFormatting() error {
	cases := map[time.Time]string{
		time.Date(2024, 1, 1, 13, 5, 9, 0, time.Local):   "13:05:09",
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local):    "00:00:00",
		time.Date(2024, 1, 1, 23, 59, 59, 0, time.Local): "23:59:59",
	}

	for ts, want := range cases {
		if got := FormatTime(ts); got != want {
			return fmt.Errorf("formatted %v as %q, want %q", ts, got, want)
		}
	}
	return nil
}

func checkTheme() error {
	for _, hex := range []string{"#2563EB", "#F59E0B", "#f9fafb", "#ffffff", "#111827"} {
		if _, err := parseHexColor(hex); err != nil {
			return err
		}
	}
	return nil
}

func checkConfigRoundTrip() error {
	dir, err := os.MkdirTemp("", "ocean-clock-check")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "config.json")
	cfg := &Config{Chime: true, RefreshMs: 250}
	if err := cfg.Save(path); err != nil {
		return err
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		return err
	}
	if loaded.Chime != cfg.Chime || loaded.RefreshMs != cfg.RefreshMs {
		return fmt.Errorf("round trip mismatch: %+v != %+v", loaded, cfg)
	}
	return nil
}
