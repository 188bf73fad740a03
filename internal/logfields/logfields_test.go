package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"Path", KeyPath, "/tmp/x", Path("/tmp/x")},
		{"File", KeyFile, "App-Form-Login.md", File("App-Form-Login.md")},
		{"Target", KeyTarget, "/docs", Target("/docs")},
		{"Type", KeyType, "entity", Type("entity")},
	}
	for _, c := range cases {
		if c.attr.Key != c.attrKey {
			t.Fatalf("%s key mismatch: got %s want %s", c.name, c.attr.Key, c.attrKey)
		}
		if c.attr.Value.String() != c.attrVal {
			t.Fatalf("%s value mismatch: got %s want %s", c.name, c.attr.Value.String(), c.attrVal)
		}
	}
}

func TestIntHelpers(t *testing.T) {
	if a := Position(3); a.Key != KeyPosition || a.Value.Int64() != 3 {
		t.Fatalf("Position attr unexpected: %v", a)
	}
	if a := Count(7); a.Key != KeyCount || a.Value.Int64() != 7 {
		t.Fatalf("Count attr unexpected: %v", a)
	}
}

func TestErrorHelper(t *testing.T) {
	if a := Error(nil); a.Value.String() != "" {
		t.Fatalf("nil error should produce empty value, got %q", a.Value.String())
	}
	if a := Error(errors.New("boom")); a.Value.String() != "boom" {
		t.Fatalf("unexpected error value %q", a.Value.String())
	}
}
