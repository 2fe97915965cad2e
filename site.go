package handbook

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// ErrPageNotFound is returned when rendering a route that isn't in the menu.
var ErrPageNotFound = errors.New("page not found")

// Site is a loaded handbook: the menu, the rendered page bodies and the page
// chrome shared by all pages.
type Site struct {
	Meta     SiteMetadata
	Menu     []MenuChapter
	Language string
	Release  string
	BasePath string

	renderer *Renderer
	social   []SocialLink
	pages    map[string]*MarkdownPage
	order    []string
}

// LoadSite loads the menu and renders the markdown source of every page in
// it. When history is enabled each page gets the last commit that touched its
// source file.
func LoadSite(ctx context.Context, conf Config, basePath string) (*Site, error) {
	err := conf.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	menu, err := LoadMenu(conf.Menu)
	if err != nil {
		return nil, fmt.Errorf("load menu: %w", err)
	}

	renderer, err := NewRenderer(basePath)
	if err != nil {
		return nil, err
	}

	site := Site{
		Meta:     conf.Site,
		Menu:     menu,
		Language: conf.Language,
		BasePath: basePath,
		renderer: renderer,
		social:   SocialLinks(conf.Site),
		pages:    make(map[string]*MarkdownPage),
	}

	var history *History

	if conf.History {
		history, err = OpenHistory(conf.Content)
		if err != nil {
			return nil, fmt.Errorf("load page history: %w", err)
		}

		site.Release = history.Release()
	}

	md := newMarkdownRenderer()

	for _, page := range menuPages(menu) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, err := md.readPage(conf.Content, page)
		if err != nil {
			return nil, fmt.Errorf("load page %q: %w", page.Slug, err)
		}

		if history != nil {
			change, err := history.LastChange(content.Source)
			if err != nil {
				slog.Warn("failed to read page history",
					"slug", page.Slug, "err", err)
			}

			content.Updated = change
		}

		key := normalizeRoute(page.Slug)

		site.pages[key] = &content
		site.order = append(site.order, page.Slug)
	}

	return &site, nil
}

// Slugs returns the slugs of all pages in menu order.
func (s *Site) Slugs() []string {
	return s.order
}

// Lookup finds the page for a route.
func (s *Site) Lookup(route string) (*MarkdownPage, bool) {
	p, ok := s.pages[normalizeRoute(route)]

	return p, ok
}

// Page builds the render model for a route. The header starts out with the
// menu closed and is toggled open when menuOpen is set.
func (s *Site) Page(route string, menuOpen bool) (Page, error) {
	content, ok := s.Lookup(route)
	if !ok {
		return Page{}, fmt.Errorf("%w: %s", ErrPageNotFound, route)
	}

	header := NewSiteHeader(s.Menu)

	if menuOpen {
		header.Toggle()
	}

	view := header.View(CurrentRoute(content.Slug))
	view.Brand = s.Meta.Title
	view.Release = s.Release

	page := Page{
		Title:    content.Title,
		Language: s.Language,
		Header:   view,
		Social:   s.social,
		Contents: *content,
	}

	if content.Description != "" {
		page.MetaTags = append(page.MetaTags, map[string]string{
			"name":    "description",
			"content": content.Description,
		})
	}

	return page, nil
}

// RenderPage writes the full HTML page for a route.
func (s *Site) RenderPage(w io.Writer, route string, menuOpen bool) error {
	page, err := s.Page(route, menuOpen)
	if err != nil {
		return err
	}

	return s.renderer.RenderPage(w, page)
}
