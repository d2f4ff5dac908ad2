package main

import (
	"os"

	"github.com/thenoetrevino/kanban/cmd"
	"github.com/thenoetrevino/kanban/internal/cli"
)

func main() {
	os.Exit(cli.ExitCode(cmd.Execute()))
}
