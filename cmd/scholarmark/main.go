// Package main provides the entry point for the scholarmark CLI tool.
package main

import "github.com/scholarmark/scholarmark/cmd/scholarmark/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
