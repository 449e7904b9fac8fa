// Package main is the entry point for the djtokey command-line tool.
package main

import (
	"os"

	"github.com/djtokey/plugins/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
