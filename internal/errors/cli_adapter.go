package errors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// targetUsageHint is printed after an invalid target message.
const targetUsageHint = `This tool requires a target working directory that can be provided using --dir="/path/to/docs"`

// CLIErrorAdapter handles error presentation and exit code determination for CLI applications.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
	out     io.Writer
	exit    func(int)
}

// NewCLIErrorAdapter creates a new CLI error adapter writing messages to out.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger, out io.Writer) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	if out == nil {
		out = os.Stdout
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
		out:     out,
		exit:    os.Exit,
	}
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	if ce, ok := As(err); ok {
		return a.exitCodeFromConvert(ce)
	}

	return 1
}

// exitCodeFromConvert maps ConvertError to exit codes.
func (a *CLIErrorAdapter) exitCodeFromConvert(err *ConvertError) int {
	switch err.Category {
	case CategoryTarget:
		return 1 // Invalid target directory
	case CategoryValidation:
		return 2 // Invalid usage
	case CategoryConfig:
		return 7 // Configuration error
	case CategoryInternal:
		return 10 // Internal error
	case CategoryFileSystem:
		return 11 // Conversion aborted
	case CategoryRuntime:
		return 12 // Runtime error
	default:
		return 1
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	if ce, ok := As(err); ok {
		return a.formatConvert(ce)
	}

	return fmt.Sprintf("Error: %v", err)
}

// formatConvert formats a ConvertError for display.
func (a *CLIErrorAdapter) formatConvert(err *ConvertError) string {
	if err.Category == CategoryTarget {
		return fmt.Sprintf("The directory provided (%v) is not a valid target directory.\n%s",
			err.Context["path"], targetUsageHint)
	}

	if a.verbose {
		return err.Error()
	}

	switch err.Category {
	case CategoryConfig, CategoryValidation:
		if path, ok := err.Context["path"]; ok {
			return fmt.Sprintf("%s: %v", err.Message, path)
		}
		return err.Message
	default:
		if err.Cause != nil {
			return fmt.Sprintf("%s: %s: %v", err.Category, err.Message, err.Cause)
		}
		return fmt.Sprintf("%s: %s", err.Category, err.Message)
	}
}

// HandleError prints the error, logs it when warranted and exits with the mapped code.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}

	if a.shouldLog(err) {
		a.logError(err)
	}

	_, _ = fmt.Fprintln(a.out, a.FormatError(err))
	a.exit(a.ExitCodeFor(err))
}

// shouldLog determines if an error should be logged.
func (a *CLIErrorAdapter) shouldLog(err error) bool {
	if a.verbose {
		return true
	}

	if ce, ok := As(err); ok {
		return ce.Category == CategoryInternal ||
			ce.Category == CategoryRuntime ||
			ce.Category == CategoryFileSystem
	}

	return true
}

// logError logs an error with appropriate level and context.
func (a *CLIErrorAdapter) logError(err error) {
	if ce, ok := As(err); ok {
		attrs := []slog.Attr{
			slog.String("category", string(ce.Category)),
		}
		for k, v := range ce.Context {
			attrs = append(attrs, slog.Any(k, v))
		}
		if ce.Cause != nil {
			attrs = append(attrs, slog.String("error", ce.Cause.Error()))
		}

		a.logger.LogAttrs(context.Background(), a.levelFor(ce.Severity), ce.Message, attrs...)
		return
	}

	a.logger.Error("Unclassified error", "error", err)
}

// levelFor converts ConvertError severity to slog level.
func (a *CLIErrorAdapter) levelFor(severity ErrorSeverity) slog.Level {
	if severity == SeverityWarning {
		return slog.LevelWarn
	}
	return slog.LevelError
}
