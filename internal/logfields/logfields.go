package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath     = "path"
	KeyFile     = "file"
	KeyTarget   = "target"
	KeyType     = "type"
	KeyPosition = "position"
	KeyCount    = "count"
	KeyError    = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr   { return slog.String(KeyPath, p) }
func File(f string) slog.Attr   { return slog.String(KeyFile, f) }
func Target(t string) slog.Attr { return slog.String(KeyTarget, t) }
func Type(t string) slog.Attr   { return slog.String(KeyType, t) }
func Position(p int) slog.Attr  { return slog.Int(KeyPosition, p) }
func Count(n int) slog.Attr     { return slog.Int(KeyCount, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
