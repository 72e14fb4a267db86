// Package main is the entry point for the pipup CLI application.
//
// pipup generates (and optionally executes) a single shell command that
// upgrades every package managed by pip. All command parsing and
// execution is delegated to the cmd package.
package main

import "github.com/ajxudir/pipup/cmd"

func main() {
	cmd.Execute()
}
