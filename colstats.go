// Command colstats prints descriptive statistics for each column of
// whitespace-separated numeric tables.
package main

import (
	"log"
	"os"

	"github.com/cespare/subcmd"
)

var cmds = []subcmd.Command{
	{
		Name:        "describe",
		Description: "Display summary statistics for each column of a table (the default)",
		Do:          describe,
	},
	{
		Name:        "hist",
		Description: "Display a histogram of one column of a table",
		Do:          histogram,
	},
}

func main() {
	log.SetFlags(0)
	// Without a subcommand, behave like describe so that
	// "colstats -c 2 data.txt" keeps working.
	if len(os.Args) > 1 && isCommand(os.Args[1]) {
		subcmd.Run(cmds)
		return
	}
	describe(os.Args[1:])
}

func isCommand(name string) bool {
	for _, cmd := range cmds {
		if cmd.Name == name {
			return true
		}
	}
	return false
}
