// ABOUTME: Tests for environment variable toggles.
// ABOUTME: Covers the truthy values the launch wrappers set.

package main

import "testing"

func TestEnvBool(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{name: "one", value: "1", expected: true},
		{name: "true", value: "true", expected: true},
		{name: "zero", value: "0", expected: false},
		{name: "empty", value: "", expected: false},
		{name: "yes is not accepted", value: "yes", expected: false},
		{name: "mixed case not accepted", value: "True", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("OCEAN_CLOCK_TEST_TOGGLE", tt.value)
			if got := envBool("OCEAN_CLOCK_TEST_TOGGLE"); got != tt.expected {
				t.Errorf("envBool(%q) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestEnvBoolUnset(t *testing.T) {
	if envBool("OCEAN_CLOCK_DEFINITELY_UNSET") {
		t.Error("unset variable reported true")
	}
}
