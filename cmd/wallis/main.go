package main

import (
	"fmt"
	"os"

	"github.com/roach88/wallis/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Commands silence cobra's own error printing; report once here
		// and exit with the command's code.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
