package main

import (
	"os"

	"github.com/zaqqye/portfolio_backend/cmd/portfolioctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
