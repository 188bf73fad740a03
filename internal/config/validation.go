package config

import (
	"fmt"
	"strings"
	"text/template"

	cerrors "git.home.luguber.info/inful/html2md/internal/errors"
)

// Validate checks the configuration for values the converter cannot work with.
func (c *Config) Validate() error {
	if strings.ContainsAny(c.Classify.Prefix, `/\`) {
		return cerrors.ValidationFailed("classify.prefix", "must not contain path separators")
	}
	if !c.Classify.MatchAny && len(c.Classify.Types) == 0 {
		return cerrors.ValidationFailed("classify.types", "at least one type is required unless match_any is set")
	}
	for _, t := range c.Classify.Types {
		if !IsTypeTag(t) {
			return cerrors.ValidationFailed("classify.types",
				fmt.Sprintf("%q must consist of ASCII letters only", t))
		}
	}
	if c.Index.FileName == "" || strings.ContainsAny(c.Index.FileName, `/\`) {
		return cerrors.ValidationFailed("index.file_name", "must be a plain file name")
	}
	if c.Index.StartPosition < 0 {
		return cerrors.ValidationFailed("index.start_position", "must not be negative")
	}
	if _, err := template.New("label").Parse(c.Index.Label); err != nil {
		return cerrors.ValidationFailed("index.label", err.Error())
	}
	if _, err := template.New("description").Parse(c.Index.Description); err != nil {
		return cerrors.ValidationFailed("index.description", err.Error())
	}
	return nil
}

// IsTypeTag reports whether s is a non-empty run of ASCII letters.
func IsTypeTag(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
