// Command turing runs Turing machine definition files.
//
// Usage:
//
//	turing run machine.yaml --max-steps 10000 --trace
//	turing show machine.yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "turing",
	Short:         "A minimal deterministic Turing machine simulator",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
