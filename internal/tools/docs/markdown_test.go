package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// outline is the structure a markdown parser sees in a rendered README.
type outline struct {
	headings []int
	links    []string
	items    int
}

func parseOutline(t *testing.T, doc string) outline {
	t.Helper()
	source := []byte(doc)
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var out outline
	err := ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := node.(type) {
		case *ast.Heading:
			out.headings = append(out.headings, n.Level)
		case *ast.Link:
			out.links = append(out.links, string(n.Destination))
		case *ast.ListItem:
			out.items++
		}
		return ast.WalkContinue, nil
	})
	require.NoError(t, err)
	return out
}

func TestRenderParsesAsMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		template string
		headings []int
		links    int
	}{
		{name: "plain", template: TemplatePlain},
		{name: "titled", template: TemplateTitled, headings: []int{1}},
		{name: "read more", template: TemplateReadMore, headings: []int{1, 3}, links: 1},
		{name: "related", template: TemplateRelated, headings: []int{1, 3}, links: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := Preset(tt.template)
			require.NoError(t, err)

			got := parseOutline(t, tmpl.Render("Hello", "World"))
			assert.Equal(t, tt.headings, got.headings)
			assert.Len(t, got.links, tt.links)
			assert.Equal(t, tt.links, got.items)
			for i, link := range tmpl.Links {
				assert.Equal(t, link.URL, got.links[i])
			}
		})
	}
}

func TestRenderKeepsSectionMarkdown(t *testing.T) {
	// headings inside package READMEs stay headings in the combined document
	section := "## Usage\n\n```dart\nSpanBuilder(text)\n```"
	out := plainTemplate(t).Render(section, "## Testing")

	got := parseOutline(t, out)
	assert.Equal(t, []int{2, 2}, got.headings)
	assert.Contains(t, out, "```dart\nSpanBuilder(text)\n```\n\n## Testing")
}
