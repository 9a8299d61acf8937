// ABOUTME: Tests for the headless self-check components.
// ABOUTME: Covers the individual checks that never touch a display.

package main

import "testing"

func TestRunHealthCheck(t *testing.T) {
	// The self-check never touches a display, so it must pass headlessly.
	if err := runHealthCheck(); err != nil {
		t.Errorf("runHealthCheck failed: %v", err)
	}
}

func TestCheckFormatting(t *testing.T) {
	if err := checkFormatting(); err != nil {
		t.Errorf("checkFormatting failed: %v", err)
	}
}

func TestCheckTheme(t *testing.T) {
	if err := checkTheme(); err != nil {
		t.Errorf("checkTheme failed: %v", err)
	}
}

func TestCheckConfigRoundTrip(t *testing.T) {
	if err := checkConfigRoundTrip(); err != nil {
		t.Errorf("checkConfigRoundTrip failed: %v", err)
	}
}
