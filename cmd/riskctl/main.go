// Command riskctl inspects and exports the student risk datasets from the
// command line, using the same configuration as the server.
package main

import (
	"os"

	_ "github.com/JonMunkholm/riskreport/internal/core/datasets" // Register all datasets
)

func main() {
	if err := newRootCmd(openService).Execute(); err != nil {
		os.Exit(1)
	}
}
