package convert

import (
	"bytes"
	"regexp"
)

var (
	htmlLinkClose = []byte(".html)")
	mdLinkClose   = []byte(".md)")

	// htmlFragmentLink matches a link target ending in .html#anchor) so the anchor survives.
	htmlFragmentLink = regexp.MustCompile(`\.html(#[\w-]+)\)`)
	mdFragmentLink   = []byte(".md${1})")
)

// RewriteLinks points inline Markdown links at .md targets.
// Only "(x.html)" and "(x.html#anchor)" forms are touched; any other .html text is left alone.
func RewriteLinks(content []byte) []byte {
	out := bytes.ReplaceAll(content, htmlLinkClose, mdLinkClose)
	return htmlFragmentLink.ReplaceAll(out, mdFragmentLink)
}
