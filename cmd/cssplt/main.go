// Package main is the entry point for the cssplt CLI tool.
package main

import (
	"github.com/npillmayer/cssplt/internal/cli"
)

func main() {
	cli.Execute()
}
