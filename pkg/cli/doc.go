// Package cli provides shared infrastructure for the ollamagen command line
// tool: named service contexts persisted as YAML, saved conversation
// sessions, request file loading, and output formatting with an optional jq
// filter.
package cli
