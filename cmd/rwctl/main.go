package main

import (
	"os"

	"github.com/k-weng/houston-restaurant-week-2023/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
