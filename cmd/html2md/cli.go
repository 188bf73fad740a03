package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/html2md/internal/config"
	"git.home.luguber.info/inful/html2md/internal/convert"
	cerrors "git.home.luguber.info/inful/html2md/internal/errors"
	"git.home.luguber.info/inful/html2md/internal/logfields"
)

// CLI definition & flags.
type CLI struct {
	Target string `arg:"" optional:"" name:"directory" help:"Target directory; used when it names an existing directory"`
	Dir    string `short:"d" help:"Target directory; relative values resolve against the working directory, an empty value selects it" env:"HTML2MD_DIR"`
	Config string `short:"c" help:"Configuration file path (YAML)" env:"HTML2MD_CONFIG" type:"path"`

	Types         []string `help:"Type tags recognised after the prefix (comma separated)" env:"HTML2MD_TYPES"`
	AnyType       bool     `help:"Accept any type tag after the prefix instead of the allow-list" env:"HTML2MD_ANY_TYPE"`
	Prefix        string   `help:"Leading filename segment that introduces the type tag" env:"HTML2MD_PREFIX"`
	StartPosition int      `help:"Sidebar position of the first generated index" env:"HTML2MD_START_POSITION"`

	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	out io.Writer
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	slog.SetDefault(c.logger())
	return nil
}

func (c *CLI) logger() *slog.Logger {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	out := c.out
	if out == nil {
		out = os.Stdout
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
}

// Run resolves the target, loads configuration and converts the tree.
func (c *CLI) Run(ctx context.Context) error {
	cwd, err := os.Getwd()
	if err != nil {
		return cerrors.FileSystem("getwd", ".", err)
	}

	target, err := convert.ResolveTarget(cwd, c.Target, c.Dir)
	if err != nil {
		return err
	}

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.Apply(config.Overrides{
		Prefix:        c.Prefix,
		Types:         c.Types,
		MatchAny:      c.AnyType,
		StartPosition: c.StartPosition,
	}); err != nil {
		return err
	}

	logger := slog.Default()
	logger.Info("Target directory", logfields.Target(target))

	conv, err := convert.New(target, cfg, logger)
	if err != nil {
		return err
	}

	report, err := conv.Run(ctx)
	if err != nil {
		return err
	}

	logger.Info("Conversion complete",
		slog.Int("converted", len(report.Converted)),
		slog.Int("deleted", len(report.Deleted)),
		slog.Int("indexes", len(report.Indexes)))
	return nil
}

// normalizeArgs lets -d/--dir appear without a value, which selects the working directory.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(out, args[i:]...)
		}
		if arg == "-d" || arg == "--dir" {
			if i+1 == len(args) || strings.HasPrefix(args[i+1], "-") {
				out = append(out, "--dir=")
				continue
			}
		}
		out = append(out, arg)
	}
	return out
}
