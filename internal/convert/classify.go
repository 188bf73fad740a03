package convert

import (
	"regexp"
	"strings"

	"git.home.luguber.info/inful/html2md/internal/config"
	"git.home.luguber.info/inful/html2md/internal/util/sets"
)

// Match is the result of classifying a document filename.
type Match struct {
	Type string // lowercase type tag, e.g. "controller"
	Rest string // remainder of the name between the type and the extension
}

// Classifier maps document basenames of the form <prefix>-<Type>-<Rest>.html
// to type tags. With matchAny unset only tags on the allow-list are accepted.
type Classifier struct {
	pattern  *regexp.Regexp
	allowed  *sets.Ordered[string]
	matchAny bool
}

// NewClassifier builds a classifier for the given prefix and allow-list.
func NewClassifier(prefix string, types []string, matchAny bool) *Classifier {
	allowed := sets.NewOrdered[string]()
	for _, t := range types {
		allowed.Add(strings.ToLower(t))
	}
	return &Classifier{
		pattern:  regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `-([A-Za-z]+)-(.*)\.html$`),
		allowed:  allowed,
		matchAny: matchAny,
	}
}

// NewClassifierFromConfig builds a classifier from the classify configuration block.
func NewClassifierFromConfig(cfg config.ClassifyConfig) *Classifier {
	return NewClassifier(cfg.Prefix, cfg.Types, cfg.MatchAny)
}

// Classify inspects a basename and returns its type tag when it follows the naming convention.
func (c *Classifier) Classify(name string) (Match, bool) {
	m := c.pattern.FindStringSubmatch(name)
	if m == nil {
		return Match{}, false
	}

	tag := strings.ToLower(m[1])
	if !c.matchAny && !c.allowed.Has(tag) {
		return Match{}, false
	}
	return Match{Type: tag, Rest: m[2]}, true
}

// Types returns the lowercase allow-list in configuration order.
func (c *Classifier) Types() []string {
	return c.allowed.Values()
}
