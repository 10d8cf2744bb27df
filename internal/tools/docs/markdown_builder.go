package docs

import (
	"strings"

	md "github.com/nao1215/markdown"
)

// MarkdownBuilder collects markdown blocks and joins them with a blank line.
// The rendered document always ends with a single newline.
type MarkdownBuilder struct {
	blocks []string
}

// NewMarkdownBuilder creates an empty markdown builder
func NewMarkdownBuilder() *MarkdownBuilder {
	return &MarkdownBuilder{}
}

// H1 adds a level 1 header
func (m *MarkdownBuilder) H1(text string) *MarkdownBuilder {
	m.blocks = append(m.blocks, "# "+text)
	return m
}

// H3 adds a level 3 header
func (m *MarkdownBuilder) H3(text string) *MarkdownBuilder {
	m.blocks = append(m.blocks, "### "+text)
	return m
}

// Block adds a raw block of markdown as-is
func (m *MarkdownBuilder) Block(text string) *MarkdownBuilder {
	m.blocks = append(m.blocks, text)
	return m
}

// BulletList adds a bullet list, one item per line
func (m *MarkdownBuilder) BulletList(items ...string) *MarkdownBuilder {
	if len(items) == 0 {
		return m
	}
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + item
	}
	m.blocks = append(m.blocks, strings.Join(lines, "\n"))
	return m
}

// LinkItem formats a link list entry, crediting the author when known
func LinkItem(link Link) string {
	item := md.Link(link.Text, link.URL)
	if link.Author != "" {
		item += " by _" + link.Author + "_"
	}
	return item
}

// String returns the rendered document
func (m *MarkdownBuilder) String() string {
	return strings.Join(m.blocks, "\n\n") + "\n"
}
