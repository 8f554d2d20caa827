// Package main provides the entry point for the aiassisted CLI tool.
package main

import "github.com/rstlix0x0/aiassisted/cmd/aiassisted/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	cmd.Execute(version, commit, date, builtBy)
}
