package main

import (
	"fmt"
	"os"

	"github.com/casey/apptrack/internal/app"
	"github.com/casey/apptrack/internal/cli"
)

func main() {
	a, err := app.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize app: %v\n", err)
		os.Exit(1)
	}
	cli.SetApp(a)

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
