// ABOUTME: Pins build tooling in go.mod without shipping it in the binary.
// ABOUTME: Only built under the tools tag.

//go:build tools

package main

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
)
