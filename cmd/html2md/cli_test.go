package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"

	cerrors "git.home.luguber.info/inful/html2md/internal/errors"
)

// parseCLI parses args the way main does; logs from the run go to out.
func parseCLI(t *testing.T, out io.Writer, args ...string) *CLI {
	t.Helper()
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	cli := CLI{out: out}
	parser, err := kong.New(&cli, kong.Vars{"version": "test"}, kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	require.NoError(t, err)
	_, err = parser.Parse(normalizeArgs(args))
	require.NoError(t, err)
	return &cli
}

func writeDoc(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestParse_Flags(t *testing.T) {
	cli := parseCLI(t, io.Discard, "--dir=docs", "--types=Service,Model", "--any-type", "--start-position=4", "-v")

	require.Equal(t, "docs", cli.Dir)
	require.Equal(t, []string{"Service", "Model"}, cli.Types)
	require.True(t, cli.AnyType)
	require.Equal(t, 4, cli.StartPosition)
	require.True(t, cli.Verbose)
	require.Empty(t, cli.Target)
}

func TestParse_Positional(t *testing.T) {
	cli := parseCLI(t, io.Discard, "site/docs", "-d", "other")

	require.Equal(t, "site/docs", cli.Target)
	require.Equal(t, "other", cli.Dir)
}

func TestRun_ConvertsTree(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "App-Entity-User.html", "[Login](App-Form-Login.html)")
	writeDoc(t, root, "App-Form-Login.html", "login")

	var out bytes.Buffer
	cli := parseCLI(t, &out, "--dir", root)

	require.NoError(t, cli.Run(context.Background()))

	data, err := os.ReadFile(filepath.Join(root, "entity", "App-Entity-User.md"))
	require.NoError(t, err)
	require.Equal(t, "[Login](App-Form-Login.md)", string(data))
	require.FileExists(t, filepath.Join(root, "form", "_category_.json"))

	require.Contains(t, out.String(), "Converted document")
	require.Contains(t, out.String(), "Generated index file")
}

func TestRun_InvalidTargetLeavesFilesUntouched(t *testing.T) {
	cwd := t.TempDir()
	chdir(t, cwd)
	writeDoc(t, cwd, "index.html", "x")

	var out bytes.Buffer
	cli := parseCLI(t, &out, "--dir=/nonexistent/path")

	err := cli.Run(context.Background())
	require.Error(t, err)
	require.True(t, cerrors.IsCategory(err, cerrors.CategoryTarget))

	adapter := cerrors.NewCLIErrorAdapter(false, nil, &out)
	require.Equal(t, 1, adapter.ExitCodeFor(err))
	require.Contains(t, adapter.FormatError(err), "/nonexistent/path")

	require.FileExists(t, filepath.Join(cwd, "index.html"))
	require.NoFileExists(t, filepath.Join(cwd, "index.md"))
}

func TestRun_ConfigFileAndOverrides(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "Api-Service-Mailer.html", "mailer")
	writeDoc(t, root, "Api-Model-User.html", "user")
	cfgPath := filepath.Join(t.TempDir(), "html2md.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("classify:\n  prefix: Api\n  types: [Service]\n"), 0o600))

	cli := parseCLI(t, io.Discard, root, "--config", cfgPath, "--start-position=5")

	require.NoError(t, cli.Run(context.Background()))

	require.FileExists(t, filepath.Join(root, "service", "Api-Service-Mailer.md"))
	require.FileExists(t, filepath.Join(root, "Api-Model-User.md"))
	data, err := os.ReadFile(filepath.Join(root, "service", "_category_.json"))
	require.NoError(t, err)
	require.Contains(t, string(data), `"position": 5`)
}

func TestNormalizeArgs(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"bare long flag at end", []string{"--dir"}, []string{"--dir="}},
		{"bare short flag before another flag", []string{"-d", "-v"}, []string{"--dir=", "-v"}},
		{"short flag with value", []string{"-d", "docs"}, []string{"-d", "docs"}},
		{"long flag with inline value", []string{"--dir=docs"}, []string{"--dir=docs"}},
		{"after terminator untouched", []string{"--", "--dir"}, []string{"--", "--dir"}},
		{"no flags", []string{"docs"}, []string{"docs"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, normalizeArgs(tt.in))
		})
	}
}

func TestRun_BareDirFlagUsesWorkingDirectory(t *testing.T) {
	cwd := t.TempDir()
	chdir(t, cwd)
	writeDoc(t, cwd, "App-Form-Login.html", "login")

	cli := parseCLI(t, io.Discard, "--dir", "-v")
	require.Empty(t, cli.Dir)
	require.True(t, cli.Verbose)

	require.NoError(t, cli.Run(context.Background()))
	require.FileExists(t, filepath.Join(cwd, "form", "App-Form-Login.md"))
}

func TestRun_LogsThroughDefaultLogger(t *testing.T) {
	root := t.TempDir()
	writeDoc(t, root, "index.html", "x")

	var out bytes.Buffer
	cli := parseCLI(t, &out, root)
	require.NoError(t, cli.Run(context.Background()))

	require.Contains(t, out.String(), "Target directory")
	require.Contains(t, out.String(), "Conversion complete")
}
