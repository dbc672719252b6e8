// Package main is the entry point for the tgrep CLI.
package main

import "tgrep.dev/pkg/tgrep/cmd"

func main() {
	cmd.Execute()
}
