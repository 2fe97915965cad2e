package handbook

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"golang.org/x/net/html"
	"gopkg.in/yaml.v3"
)

// ErrMissingSource is returned when a menu page has no markdown file.
var ErrMissingSource = errors.New("missing page source")

// MarkdownPage is the rendered body of a handbook page.
type MarkdownPage struct {
	Slug        string
	Title       string
	Description string `json:",omitempty"`
	HTML        template.HTML
	Updated     *PageChange `json:",omitempty"`
	Source      string      `json:"-"`
}

type frontMatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// sourcePath maps a slug to its markdown file, "/" maps to index.md.
func sourcePath(contentDir string, slug string) string {
	name := strings.Trim(slug, "/")
	if name == "" {
		name = "index"
	}

	return filepath.Join(contentDir, filepath.FromSlash(name)+".md")
}

type markdownRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func newMarkdownRenderer() *markdownRenderer {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("figure", "figcaption")
	policy.AllowAttrs("loading").OnElements("img")

	return &markdownRenderer{
		md:     goldmark.New(),
		policy: policy,
	}
}

func (m *markdownRenderer) readPage(contentDir string, page MenuPage) (MarkdownPage, error) {
	file := sourcePath(contentDir, page.Slug)

	data, err := os.ReadFile(file)
	if errors.Is(err, fs.ErrNotExist) {
		return MarkdownPage{}, fmt.Errorf("%w: %s has no file %q",
			ErrMissingSource, page.Slug, file)
	} else if err != nil {
		return MarkdownPage{}, fmt.Errorf("read %q: %w", file, err)
	}

	fm, body := splitFrontMatter(string(data))

	var front frontMatter

	if strings.TrimSpace(fm) != "" {
		err := yaml.Unmarshal([]byte(fm), &front)
		if err != nil {
			return MarkdownPage{}, fmt.Errorf(
				"parse front matter of %q: %w", file, err)
		}
	}

	contents, err := m.render([]byte(body))
	if err != nil {
		return MarkdownPage{}, fmt.Errorf("render %q: %w", file, err)
	}

	title := strings.TrimSpace(front.Title)
	if title == "" {
		title = page.Title
	}

	return MarkdownPage{
		Slug:        page.Slug,
		Title:       title,
		Description: strings.TrimSpace(front.Description),
		HTML:        contents,
		Source:      file,
	}, nil
}

func (m *markdownRenderer) render(markdown []byte) (template.HTML, error) {
	var htmlBuf bytes.Buffer

	err := m.md.Convert(markdown, &htmlBuf)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}

	clean := m.policy.SanitizeReader(&htmlBuf)

	tailwindHTML, err := tailwindify(clean)
	if err != nil {
		return "", fmt.Errorf("add tailwind classes: %w", err)
	}

	return tailwindHTML, nil
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")

	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")

			return fm, strings.TrimLeft(body, "\n\r")
		}
	}

	return "", input
}

var tailwindClasses = map[string]string{
	"h1":         "mb-4 text-4xl font-extrabold leading-none tracking-tight md:text-5xl",
	"h2":         "mt-8 mb-3 text-3xl font-extrabold",
	"h3":         "mt-6 mb-2 text-2xl font-bold",
	"h4":         "mt-4 mb-2 text-xl font-bold",
	"p":          "mb-4",
	"a":          "text-nubots-500 underline",
	"ul":         "mb-4 ps-5 list-disc list-outside",
	"ol":         "mb-4 ps-5 list-decimal list-outside",
	"code":       "bg-gray-100 p-1 rounded-sm",
	"blockquote": "border-l-4 pl-4 italic",
}

// tailwindify adds utility classes to the elements of a rendered HTML
// fragment and returns the fragment.
func tailwindify(r io.Reader) (template.HTML, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parse HTML: %w", err)
	}

	var body *html.Node

	for n := range doc.Descendants() {
		if n.Type != html.ElementNode {
			continue
		}

		if n.Data == "body" && body == nil {
			body = n

			continue
		}

		class, ok := tailwindClasses[n.Data]
		if !ok {
			continue
		}

		addClass(n, class)
	}

	if body == nil {
		return "", errors.New("no body in parsed document")
	}

	var out bytes.Buffer

	for c := range body.ChildNodes() {
		err := html.Render(&out, c)
		if err != nil {
			return "", fmt.Errorf("render modified HTML: %w", err)
		}
	}

	return template.HTML(out.String()), nil
}

func addClass(n *html.Node, class string) {
	for i := range n.Attr {
		if n.Attr[i].Key == "class" {
			n.Attr[i].Val += " " + class

			return
		}
	}

	n.Attr = append(n.Attr, html.Attribute{
		Key: "class",
		Val: class,
	})
}
