package main

import (
	"os"

	"github.com/iburimskiy/portfolio-rain/cmd"
	"github.com/iburimskiy/portfolio-rain/internal/game"
)

func main() {
	if err := cmd.Execute(game.Open); err != nil {
		os.Exit(1)
	}
}
