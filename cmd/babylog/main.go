package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/babylog/internal/cli"
	"github.com/alexanderramin/babylog/internal/config"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Variables already in the environment win over .env.
	if err := config.LoadDotEnv(); err != nil {
		return fmt.Errorf("loading .env: %w", err)
	}
	cfg := config.LoadConfig()

	app := cli.NewApp(cfg)

	// The viewer needs a terminal on both ends.
	app.IsInteractive = func() bool {
		out, in := os.Stdout.Fd(), os.Stdin.Fd()
		return (isatty.IsTerminal(out) || isatty.IsCygwinTerminal(out)) &&
			(isatty.IsTerminal(in) || isatty.IsCygwinTerminal(in))
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
