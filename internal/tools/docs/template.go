package docs

import (
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/docsync/pkg/constants"
	"github.com/agentstation/docsync/pkg/errors"
)

// Template preset names
const (
	TemplatePlain    = "plain"
	TemplateTitled   = "titled"
	TemplateReadMore = "read-more"
	TemplateRelated  = "related"
)

// Default link section headings
const (
	HeadingReadMore = "Read More"
	HeadingRelated  = "Related Content"
)

// Link is a static entry in the link section of the combined README.
type Link struct {
	Text   string `yaml:"text"`
	URL    string `yaml:"url"`
	Author string `yaml:"author,omitempty"`
}

// Template describes the fixed text around the combined package READMEs.
type Template struct {
	// Name of the preset this template came from
	Name string `yaml:"name"`

	// Title is rendered as a level 1 header when set
	Title string `yaml:"title,omitempty"`

	// Heading introduces the link section, defaults to "Read More"
	Heading string `yaml:"heading,omitempty"`

	// Links are listed after the sections, omitted when empty
	Links []Link `yaml:"links,omitempty"`
}

var richTextArticle = Link{
	Text:   "Make text styling more effective with RichText widget",
	URL:    "https://medium.com/flutter-community/make-text-styling-more-effective-with-richtext-widget-b0e0cb4771ef",
	Author: "Darshan Kawar",
}

// presets returns a fresh copy of every template preset.
func presets() map[string]Template {
	return map[string]Template{
		TemplatePlain: {
			Name: TemplatePlain,
		},
		TemplateTitled: {
			Name:  TemplateTitled,
			Title: constants.DefaultTitle,
		},
		TemplateReadMore: {
			Name:    TemplateReadMore,
			Title:   constants.DefaultTitle,
			Heading: HeadingReadMore,
			Links:   []Link{richTextArticle},
		},
		TemplateRelated: {
			Name:    TemplateRelated,
			Title:   constants.DefaultTitle,
			Heading: HeadingRelated,
			Links: []Link{
				richTextArticle,
				{Text: "span_builder on pub.dev", URL: "https://pub.dev/packages/span_builder"},
				{Text: "span_builder_test on pub.dev", URL: "https://pub.dev/packages/span_builder_test"},
			},
		},
	}
}

// Preset returns the named template preset. An empty name selects the default.
func Preset(name string) (Template, error) {
	if name == "" {
		name = constants.DefaultTemplate
	}
	t, ok := presets()[name]
	if !ok {
		return Template{}, errors.NewValidationError("template", name,
			"unknown template preset, expected one of: "+strings.Join(PresetNames(), ", "))
	}
	return t, nil
}

// PresetNames lists the available preset names in sorted order.
func PresetNames() []string {
	all := presets()
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WithTitle returns a copy of the template with its title overridden.
// An empty title keeps the preset's title; "auto" derives one from the
// primary package name.
func (t Template) WithTitle(title string) Template {
	switch title {
	case "":
		return t
	case constants.AutoTitle:
		t.Title = TitleFromPackage(constants.BuilderPackage)
	default:
		t.Title = title
	}
	return t
}

// Render interpolates the trimmed sections into the template.
// Sections keep their order and are separated by one blank line.
func (t Template) Render(sections ...string) string {
	doc := NewMarkdownBuilder()

	if t.Title != "" {
		doc.H1(t.Title)
	}

	for _, section := range sections {
		doc.Block(section)
	}

	if len(t.Links) > 0 {
		heading := t.Heading
		if heading == "" {
			heading = HeadingReadMore
		}
		items := make([]string, len(t.Links))
		for i, link := range t.Links {
			items[i] = LinkItem(link)
		}
		doc.H3(heading).BulletList(items...)
	}

	return doc.String()
}

// TitleFromPackage turns a package directory name such as "span_builder"
// into a display title ("Span Builder").
func TitleFromPackage(name string) string {
	words := strings.FieldsFunc(filepath.Base(name), func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	// Casers are stateful, so one per call.
	return cases.Title(language.English).String(strings.Join(words, " "))
}
