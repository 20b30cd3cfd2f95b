package main

import (
	"os"

	"github.com/msto63/mPAS/cmd/mpas/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
