package convert

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/html2md/internal/config"
	cerrors "git.home.luguber.info/inful/html2md/internal/errors"
	"git.home.luguber.info/inful/html2md/internal/logfields"
	"git.home.luguber.info/inful/html2md/internal/util/sets"
)

// blankCutset is the set of bytes ignored when deciding whether a document is empty.
// Unicode spaces such as U+00A0 count as content.
const blankCutset = " \t\n\r\x00\x0B"

// Converter drives a conversion run over a single target root.
type Converter struct {
	root          string
	classifier    *Classifier
	templates     *IndexTemplates
	indexFile     string
	startPosition int
	logger        *slog.Logger
}

// Report summarises a conversion run.
type Report struct {
	Converted []string // .md paths written, in discovery order
	Deleted   []string // blank .html paths removed
	Types     []string // type tags in first-seen order
	Indexes   []string // category files written, in position order
}

// New creates a converter for root using cfg. A nil logger falls back to slog.Default().
func New(root string, cfg *config.Config, logger *slog.Logger) (*Converter, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	templates, err := NewIndexTemplates(cfg.Index.Label, cfg.Index.Description)
	if err != nil {
		return nil, cerrors.Wrap(err, cerrors.CategoryConfig, cerrors.SeverityFatal, "invalid index template")
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, cerrors.FileSystem("resolve", root, err)
	}

	return &Converter{
		root:          abs,
		classifier:    NewClassifierFromConfig(cfg.Classify),
		templates:     templates,
		indexFile:     cfg.Index.FileName,
		startPosition: cfg.Index.StartPosition,
		logger:        logger,
	}, nil
}

// Run converts every document under the root and writes the category indexes.
// The first filesystem error aborts the run; files already converted stay converted.
func (c *Converter) Run(ctx context.Context) (*Report, error) {
	report := &Report{}

	files, err := Collect(c.root)
	if err != nil {
		return report, err
	}
	c.logger.Info("Collected documents", logfields.Target(c.root), logfields.Count(len(files)))

	seen := sets.NewOrdered[string]()
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return report, cerrors.Wrap(err, cerrors.CategoryRuntime, cerrors.SeverityFatal, "conversion interrupted")
		}

		mdPath, tag, err := c.processFile(file)
		switch {
		case errors.Is(err, cerrors.ErrEmptyContent):
			report.Deleted = append(report.Deleted, file)
			continue
		case err != nil:
			return report, err
		}

		report.Converted = append(report.Converted, mdPath)
		if tag != "" {
			seen.Add(tag)
		}
	}
	report.Types = seen.Values()

	indexes, err := c.generateIndexes(report.Types)
	report.Indexes = indexes
	if err != nil {
		return report, err
	}

	return report, nil
}

// processFile converts a single document and returns its .md path and type tag.
// Blank documents are deleted and reported through ErrEmptyContent.
func (c *Converter) processFile(path string) (string, string, error) {
	// #nosec G304 -- path comes from walking the target root
	content, err := os.ReadFile(path)
	if err != nil {
		return "", "", cerrors.FileSystem("read", path, err)
	}

	if len(bytes.Trim(content, blankCutset)) == 0 {
		if err := os.Remove(path); err != nil {
			return "", "", cerrors.FileSystem("delete", path, err)
		}
		c.logger.Info("Deleted empty document", logfields.Path(path))
		return "", "", cerrors.ErrEmptyContent
	}

	organized, tag, err := Organize(path, c.root, c.classifier)
	if err != nil {
		return "", "", err
	}

	mdPath, err := Materialize(organized, RewriteLinks(content))
	if err != nil {
		return "", "", err
	}

	attrs := []any{logfields.Path(mdPath)}
	if tag != "" {
		attrs = append(attrs, logfields.Type(tag))
	}
	c.logger.Info("Converted document", attrs...)

	return mdPath, tag, nil
}

// generateIndexes writes a category file for each tag whose directory exists,
// numbering positions from the configured start.
func (c *Converter) generateIndexes(tags []string) ([]string, error) {
	var written []string
	position := c.startPosition

	for _, tag := range tags {
		dir := filepath.Join(c.root, tag)
		if !isDir(dir) {
			c.logger.Debug("Skipping index for missing directory", logfields.Path(dir), logfields.Type(tag))
			continue
		}

		cat, err := c.templates.Category(tag, position)
		if err != nil {
			return written, cerrors.Wrap(err, cerrors.CategoryConfig, cerrors.SeverityFatal, "render category").
				WithContext("type", tag)
		}

		path, err := WriteCategory(dir, c.indexFile, cat)
		if err != nil {
			return written, err
		}
		c.logger.Info("Generated index file", logfields.Path(path), logfields.Position(position))

		written = append(written, path)
		position++
	}

	return written, nil
}
