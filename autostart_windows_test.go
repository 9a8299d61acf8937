// ABOUTME: Tests for the Windows Run key command formatting.
// ABOUTME: Registry access itself is not exercised here.

//go:build windows

package main

import "testing"

func TestRunKeyCommand(t *testing.T) {
	tests := []struct {
		name     string
		execPath string
		want     string
	}{
		{"no spaces", `C:\Tools\ocean-clock.exe`, `C:\Tools\ocean-clock.exe`},
		{"spaces quoted", `C:\Program Files\Ocean Clock\ocean-clock.exe`, `"C:\Program Files\Ocean Clock\ocean-clock.exe"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := runKeyCommand(tt.execPath); got != tt.want {
				t.Errorf("runKeyCommand(%q) = %q, want %q", tt.execPath, got, tt.want)
			}
		})
	}
}
