package handbook

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
	"github.com/go-git/go-git/v6/plumbing/object"
	"github.com/nubots/handbook-site/internal"
)

// PageChange describes the most recent commit that touched a page source.
type PageChange struct {
	Hash    string
	Author  string
	When    time.Time
	Message string
}

// History reads page history from the git repository that contains the
// content directory.
type History struct {
	repo    *git.Repository
	root    string
	release string
}

// OpenHistory opens the repository containing dir, searching parent
// directories for the .git directory.
func OpenHistory(dir string) (*History, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open git repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("get worktree: %w", err)
	}

	root, err := canonicalPath(wt.Filesystem.Root())
	if err != nil {
		return nil, fmt.Errorf("resolve worktree root: %w", err)
	}

	release, err := latestRelease(repo)
	if err != nil {
		return nil, fmt.Errorf("find latest release: %w", err)
	}

	return &History{
		repo:    repo,
		root:    root,
		release: release,
	}, nil
}

// Release returns the newest non-prerelease version tag, or an empty string
// if the repository has no release tags.
func (h *History) Release() string {
	return h.release
}

// LastChange returns the newest commit that changed the file at path. It
// returns nil if the file has never been committed.
func (h *History) LastChange(path string) (*PageChange, error) {
	abs, err := canonicalPath(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", path, err)
	}

	rel, err := filepath.Rel(h.root, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return nil, fmt.Errorf("%q is outside of the repository", path)
	}

	name := filepath.ToSlash(rel)

	log, err := h.repo.Log(&git.LogOptions{
		Order: git.LogOrderCommitterTime,
	})
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		// No commits yet.
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("get git log: %w", err)
	}

	changes := internal.NewChangeIter(
		func(_ *object.Commit, changed []string) bool {
			return slices.Contains(changed, name)
		}, log)

	defer changes.Close()

	commit, err := changes.Next()
	if errors.Is(err, io.EOF) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("walk git log: %w", err)
	}

	return &PageChange{
		Hash:    commit.Hash.String(),
		Author:  commit.Author.Name,
		When:    commit.Author.When,
		Message: strings.TrimSpace(commit.Message),
	}, nil
}

func canonicalPath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}

	return resolved, nil
}

func latestRelease(repo *git.Repository) (string, error) {
	tagRefs, err := repo.Tags()
	if err != nil {
		return "", fmt.Errorf("list tags: %w", err)
	}

	var versions []*semver.Version

	err = tagRefs.ForEach(func(tagRef *plumbing.Reference) error {
		name := tagRef.Name().Short()
		if !strings.HasPrefix(name, "v") {
			return nil
		}

		version, err := semver.NewVersion(name)
		if err != nil {
			return nil
		}

		if version.Prerelease() != "" {
			return nil
		}

		versions = append(versions, version)

		return nil
	})
	if err != nil {
		return "", fmt.Errorf("collect version tags: %w", err)
	}

	if len(versions) == 0 {
		return "", nil
	}

	latest := slices.MaxFunc(versions, func(a, b *semver.Version) int {
		return a.Compare(b)
	})

	return latest.Original(), nil
}
