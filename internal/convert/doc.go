// Package convert turns a tree of generated HTML API documentation into
// Markdown pages grouped by type, ready for a Docusaurus docs index.
//
// A run collects every *.html file under the target root, deletes the blank
// ones, moves files named <prefix>-<Type>-<Rest>.html into a lowercase
// <type>/ directory, rewrites inline .html links to .md, renames the file to
// .md and finally writes a _category_.json generated-index sidecar into each
// populated type directory.
package convert
