// Package main provides the invobs CLI, which translates engine observation
// dumps into inventory count mappings.
package main

import "github.com/mesh-intelligence/invobs/internal/cli"

func main() {
	cli.Execute()
}
