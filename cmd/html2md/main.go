package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	cerrors "git.home.luguber.info/inful/html2md/internal/errors"
)

// version is set via -ldflags "-X main.version=v1.2.3".
var version = "dev"

func main() {
	var cli CLI
	parser := kong.Must(&cli,
		kong.Name("html2md"),
		kong.Description("Convert generated HTML API documentation into Markdown for a Docusaurus docs index."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)
	_, err := parser.Parse(normalizeArgs(os.Args[1:]))
	parser.FatalIfErrorf(err)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = cli.Run(ctx)
	cancel()

	cerrors.NewCLIErrorAdapter(cli.Verbose, slog.Default(), os.Stdout).HandleError(err)
}
