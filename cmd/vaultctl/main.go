// Command vaultctl is the off-system co-signer tooling for the custody
// engine: key generation, canonical digest computation, compact signing,
// and local wallet state management.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "vaultctl <command>",
	Short:        "Co-signer tooling for the custody engine",
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "vaultctl: %+v\n", err)
		os.Exit(1)
	}
}
