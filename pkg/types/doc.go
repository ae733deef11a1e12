// Package types defines the translator configuration, the flavor names, and
// the standard error values shared by the inventory translator and the CLI.
package types
