// Command stocklens loads daily stock records and runs analyses over them.
//
// Usage:
//
//	stocklens analyse data_files/march1.csv data_files/feb1.trp
//	stocklens watch --config configs/config.yaml
package main

import (
	"os"

	"StockLens/cmd/stocklens/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
