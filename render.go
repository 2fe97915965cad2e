package handbook

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strings"
)

//go:embed templates
var templateFS embed.FS

//go:embed assets
var assetFS embed.FS

// Renderer writes the page chrome and full pages as HTML. It is safe for
// concurrent use.
type Renderer struct {
	tpl *template.Template
}

// NewRenderer parses the embedded templates. Links are rendered relative to
// basePath, an empty base path means the site is served from the root.
func NewRenderer(basePath string) (*Renderer, error) {
	rootPath := basePath
	if rootPath == "" {
		rootPath = "/"
	}

	if !strings.HasSuffix(rootPath, "/") {
		rootPath += "/"
	}

	rootURL, err := url.Parse(rootPath)
	if err != nil {
		return nil, fmt.Errorf("invalid base path: %w", err)
	}

	funcs := template.FuncMap{
		"attr": func(name string) template.HTMLAttr {
			return template.HTMLAttr(name)
		},
		"abs_url": func(targetURL string) (string, error) {
			target, err := url.Parse(targetURL)
			if err != nil {
				return "", fmt.Errorf("bad URL %q: %w", targetURL, err)
			}

			if target.Scheme != "" {
				return targetURL, nil
			}

			return rootURL.JoinPath(targetURL).String(), nil
		},
		"icon": icon,
		"menu_param": func() string {
			return MenuParam
		},
	}

	tpl, err := template.New("templates").Funcs(funcs).
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Renderer{tpl: tpl}, nil
}

func (r *Renderer) RenderNavigationMenu(w io.Writer, view NavigationView) error {
	return r.execute(w, "navigation_menu", view)
}

func (r *Renderer) RenderHeader(w io.Writer, view HeaderView) error {
	return r.execute(w, "site_header", view)
}

func (r *Renderer) RenderSocialLinks(w io.Writer, links []SocialLink) error {
	return r.execute(w, "social_links", links)
}

func (r *Renderer) RenderPage(w io.Writer, page Page) error {
	return r.execute(w, "page.html", page)
}

func (r *Renderer) execute(w io.Writer, name string, data any) error {
	err := r.tpl.ExecuteTemplate(w, name, data)
	if err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	return nil
}
