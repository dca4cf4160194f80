package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github-workflow-automation/config"
	"github-workflow-automation/internal/cli"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cli.New(cfg, cli.Options{Out: os.Stdout}).RootCommand()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
