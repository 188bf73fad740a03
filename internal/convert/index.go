package convert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	cerrors "git.home.luguber.info/inful/html2md/internal/errors"
)

// GeneratedIndexLinkType asks Docusaurus to build a listing page for the category.
const GeneratedIndexLinkType = "generated-index"

// Category is the content of a _category_.json sidecar.
type Category struct {
	Label    string       `json:"label"`
	Position int          `json:"position"`
	Link     CategoryLink `json:"link"`
}

// CategoryLink describes the index page generated for a category.
type CategoryLink struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// IndexTemplates renders category labels and descriptions for a type tag.
type IndexTemplates struct {
	label       *template.Template
	description *template.Template
}

// indexTemplateData is the data handed to the label and description templates.
type indexTemplateData struct {
	Type  string // lowercase tag, "entity"
	Title string // tag with a leading capital, "Entity"
}

// NewIndexTemplates parses the label and description templates.
func NewIndexTemplates(label, description string) (*IndexTemplates, error) {
	lt, err := template.New("label").Parse(label)
	if err != nil {
		return nil, fmt.Errorf("%w: label: %w", ErrIndexTemplate, err)
	}
	dt, err := template.New("description").Parse(description)
	if err != nil {
		return nil, fmt.Errorf("%w: description: %w", ErrIndexTemplate, err)
	}
	return &IndexTemplates{label: lt, description: dt}, nil
}

// Category renders the sidecar content for tag at the given sidebar position.
func (t *IndexTemplates) Category(tag string, position int) (Category, error) {
	data := indexTemplateData{
		Type:  tag,
		Title: cases.Title(language.English).String(tag),
	}

	var label, desc bytes.Buffer
	if err := t.label.Execute(&label, data); err != nil {
		return Category{}, fmt.Errorf("%w: label: %w", ErrIndexTemplate, err)
	}
	if err := t.description.Execute(&desc, data); err != nil {
		return Category{}, fmt.Errorf("%w: description: %w", ErrIndexTemplate, err)
	}

	return Category{
		Label:    strings.TrimSpace(label.String()),
		Position: position,
		Link: CategoryLink{
			Type:        GeneratedIndexLinkType,
			Description: strings.TrimSpace(desc.String()),
		},
	}, nil
}

// WriteCategory writes cat as indented JSON to dir/fileName, creating dir if needed.
// An existing file is overwritten.
func WriteCategory(dir, fileName string, cat Category) (string, error) {
	// #nosec G301 -- documentation directories are public content
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", cerrors.FileSystem("mkdir", dir, err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(cat); err != nil {
		return "", cerrors.InternalError("encode category", err)
	}

	path := filepath.Join(dir, fileName)
	// #nosec G306 -- category files are public content
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", cerrors.FileSystem("write", path, err)
	}
	return path, nil
}
