package handbook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, contents string) {
	t.Helper()

	err := os.MkdirAll(filepath.Dir(path), 0o700)
	require.NoError(t, err)

	err = os.WriteFile(path, []byte(contents), 0o600)
	require.NoError(t, err)
}

func TestLoadMenu(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")

	writeFile(t, path, `
chapters:
  - title: Guides
    pages:
      - title: Intro
        slug: /intro
      - title: Setup
        slug: /guides/setup
  - title: Empty
`)

	menu, err := LoadMenu(path)
	require.NoError(t, err)

	assert.Equal(t, []MenuChapter{
		{
			Title: "Guides",
			Pages: []MenuPage{
				{Title: "Intro", Slug: "/intro"},
				{Title: "Setup", Slug: "/guides/setup"},
			},
		},
		{Title: "Empty"},
	}, menu)
}

func TestLoadMenuErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadMenu(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	broken := filepath.Join(dir, "broken.yaml")
	writeFile(t, broken, "chapters: [")

	_, err = LoadMenu(broken)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, `
chapters:
  - title: Guides
    pages:
      - title: Intro
`)

	_, err = LoadMenu(invalid)
	assert.ErrorIs(t, err, ErrInvalidMenu)
}

func TestValidateMenu(t *testing.T) {
	tests := []struct {
		name    string
		menu    []MenuChapter
		wantErr string
	}{
		{name: "empty menu"},
		{name: "empty chapter", menu: []MenuChapter{{Title: "Empty"}}},
		{
			name: "valid",
			menu: []MenuChapter{
				{Title: "A", Pages: []MenuPage{{Title: "Home", Slug: "/"}}},
				{Title: "B", Pages: []MenuPage{{Title: "Intro", Slug: "/intro"}}},
			},
		},
		{
			name:    "missing chapter title",
			menu:    []MenuChapter{{Title: " "}},
			wantErr: "chapter 0: missing title",
		},
		{
			name:    "duplicate chapter title",
			menu:    []MenuChapter{{Title: "A"}, {Title: "A"}},
			wantErr: `chapter 1: duplicate title "A"`,
		},
		{
			name: "missing page title",
			menu: []MenuChapter{
				{Title: "A", Pages: []MenuPage{{Slug: "/a"}}},
			},
			wantErr: "chapter 0 page 0: missing title",
		},
		{
			name: "missing slug",
			menu: []MenuChapter{
				{Title: "A", Pages: []MenuPage{{Title: "A"}}},
			},
			wantErr: "chapter 0 page 0: missing slug",
		},
		{
			name: "relative slug",
			menu: []MenuChapter{
				{Title: "A", Pages: []MenuPage{{Title: "A", Slug: "a"}}},
			},
			wantErr: "must start with a slash",
		},
		{
			name: "trailing slash",
			menu: []MenuChapter{
				{Title: "A", Pages: []MenuPage{{Title: "Intro", Slug: "/intro/"}}},
			},
		},
		{
			name: "parent segment",
			menu: []MenuChapter{
				{Title: "A", Pages: []MenuPage{{Title: "A", Slug: "/../x"}}},
			},
			wantErr: `slug "/../x" is not a clean path`,
		},
		{
			name: "inner parent segment",
			menu: []MenuChapter{
				{Title: "A", Pages: []MenuPage{{Title: "A", Slug: "/a/../b"}}},
			},
			wantErr: `slug "/a/../b" is not a clean path`,
		},
		{
			name: "dot segment",
			menu: []MenuChapter{
				{Title: "A", Pages: []MenuPage{{Title: "A", Slug: "/a/./b"}}},
			},
			wantErr: "is not a clean path",
		},
		{
			name: "empty segment",
			menu: []MenuChapter{
				{Title: "A", Pages: []MenuPage{{Title: "A", Slug: "/a//b"}}},
			},
			wantErr: "is not a clean path",
		},
		{
			name: "duplicate slug across chapters",
			menu: []MenuChapter{
				{Title: "A", Pages: []MenuPage{{Title: "Intro", Slug: "/intro"}}},
				{Title: "B", Pages: []MenuPage{{Title: "Again", Slug: "/intro/"}}},
			},
			wantErr: "already used by chapter 0 page 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMenu(tt.menu)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, ErrInvalidMenu)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidateMenuReportsAllProblems(t *testing.T) {
	err := ValidateMenu([]MenuChapter{
		{Title: "", Pages: []MenuPage{{Title: "", Slug: ""}}},
	})

	require.Error(t, err)
	assert.ErrorContains(t, err, "chapter 0: missing title")
	assert.ErrorContains(t, err, "chapter 0 page 0: missing title")
	assert.ErrorContains(t, err, "chapter 0 page 0: missing slug")
}
