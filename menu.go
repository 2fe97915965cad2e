package handbook

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidMenu wraps all menu validation failures.
var ErrInvalidMenu = errors.New("invalid menu")

// MenuChapter is a named group of navigation entries.
type MenuChapter struct {
	Title string     `yaml:"title" json:"title"`
	Pages []MenuPage `yaml:"pages" json:"pages"`
}

// MenuPage is a single navigable entry. Slug is both the link target and the
// stable key of the entry.
type MenuPage struct {
	Title string `yaml:"title" json:"title"`
	Slug  string `yaml:"slug" json:"slug"`
}

type menuFile struct {
	Chapters []MenuChapter `yaml:"chapters"`
}

// LoadMenu reads and validates a YAML menu file of the form:
//
//	chapters:
//	  - title: Guides
//	    pages:
//	      - title: Intro
//	        slug: /intro
func LoadMenu(path string) ([]MenuChapter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}

	var f menuFile

	err = yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("unmarshal menu: %w", err)
	}

	err = ValidateMenu(f.Chapters)
	if err != nil {
		return nil, err
	}

	return f.Chapters, nil
}

// ValidateMenu rejects menus with blank titles, blank or relative slugs,
// slugs that are not clean paths (empty, "." or ".." segments), duplicate
// slugs or duplicate chapter titles. Empty chapters and an empty
// menu are valid.
func ValidateMenu(menu []MenuChapter) error {
	var errs []error

	chapters := make(map[string]bool, len(menu))
	slugs := make(map[string]string)

	for ci, chapter := range menu {
		title := strings.TrimSpace(chapter.Title)

		switch {
		case title == "":
			errs = append(errs, fmt.Errorf("chapter %d: missing title", ci))
		case chapters[title]:
			errs = append(errs, fmt.Errorf("chapter %d: duplicate title %q", ci, title))
		default:
			chapters[title] = true
		}

		for pi, page := range chapter.Pages {
			where := fmt.Sprintf("chapter %d page %d", ci, pi)

			if strings.TrimSpace(page.Title) == "" {
				errs = append(errs, fmt.Errorf("%s: missing title", where))
			}

			if page.Slug == "" {
				errs = append(errs, fmt.Errorf("%s: missing slug", where))

				continue
			}

			if !strings.HasPrefix(page.Slug, "/") {
				errs = append(errs, fmt.Errorf(
					"%s: slug %q must start with a slash", where, page.Slug))

				continue
			}

			key := normalizeRoute(page.Slug)

			if path.Clean(page.Slug) != key {
				errs = append(errs, fmt.Errorf(
					"%s: slug %q is not a clean path", where, page.Slug))

				continue
			}

			if prev, ok := slugs[key]; ok {
				errs = append(errs, fmt.Errorf(
					"%s: slug %q already used by %s", where, page.Slug, prev))

				continue
			}

			slugs[key] = where
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidMenu, errors.Join(errs...))
	}

	return nil
}

// menuPages flattens the menu into reading order.
func menuPages(menu []MenuChapter) []MenuPage {
	var pages []MenuPage

	for _, chapter := range menu {
		pages = append(pages, chapter.Pages...)
	}

	return pages
}
