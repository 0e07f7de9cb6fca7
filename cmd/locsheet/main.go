// Command locsheet converts translation modules to spreadsheets and back.
package main

import (
	"os"

	"github.com/KimNorgaard/go-locsheet/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
