package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/mbecker/wortschatz/cmd"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
