// Package main provides the ollamagen CLI tool.
//
// Usage:
//
//	ollamagen [flags] <command> [args]
//
// Commands:
//
//	generate - One-shot text generation
//	stream   - Streaming text generation
//	chat     - Interactive conversation threading context across turns
//	models   - Installed model inventory
//	session  - Saved conversation management
//	config   - Configuration management
//
// Configuration:
//
//	The CLI stores configuration in ~/.ollamagen/
//	Use 'ollamagen config' commands to manage contexts.
package main

import (
	"fmt"
	"os"

	"github.com/lowkeylabs/ollamagen/cmd/ollamagen/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
