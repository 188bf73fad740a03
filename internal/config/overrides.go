package config

// Overrides carries command-line values that take precedence over the file.
// Zero values leave the corresponding setting untouched.
type Overrides struct {
	Prefix        string
	Types         []string
	MatchAny      bool
	StartPosition int
}

// Apply merges o into c and validates the result.
func (c *Config) Apply(o Overrides) error {
	if o.Prefix != "" {
		c.Classify.Prefix = o.Prefix
	}
	if len(o.Types) > 0 {
		c.Classify.Types = append([]string(nil), o.Types...)
	}
	if o.MatchAny {
		c.Classify.MatchAny = true
	}
	if o.StartPosition != 0 {
		c.Index.StartPosition = o.StartPosition
	}
	return c.Validate()
}
