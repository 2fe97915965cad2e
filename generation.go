package handbook

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/nubots/handbook-site/internal"
	"golang.org/x/sync/errgroup"
)

const renderWorkers = 16

// Generate loads the handbook described by conf and writes it as a static
// site to outDir, replacing anything already there. The loaded site is
// returned so that it can be served afterwards.
func Generate(
	ctx context.Context, outDir string, basePath string, conf Config,
	uiPrintln func(format string, a ...any),
) (*Site, error) {
	site, err := LoadSite(ctx, conf, basePath)
	if err != nil {
		return nil, fmt.Errorf("load handbook: %w", err)
	}

	uiPrintln("Loaded %d pages", len(site.Slugs()))

	err = os.RemoveAll(outDir)
	if err != nil {
		return nil, fmt.Errorf("clear output directory: %w", err)
	}

	err = os.MkdirAll(outDir, 0o770)
	if err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	err = site.Write(ctx, outDir, uiPrintln)
	if err != nil {
		return nil, err
	}

	return site, nil
}

// Write renders every page to <outDir>/<slug>/index.html, together with an
// index.json of the page contents, and copies the static assets. Pages are
// written with the menu closed. outDir must not already contain assets.
func (s *Site) Write(
	ctx context.Context, outDir string,
	uiPrintln func(format string, a ...any),
) error {
	jobs := make(chan string)

	grp, gCtx := errgroup.WithContext(ctx)

	// Copy all assets.
	grp.Go(func() error {
		err := os.CopyFS(outDir, assetFS)
		if err != nil {
			return fmt.Errorf("write assets directory: %w", err)
		}

		return nil
	})

	// Queue the rendering of each page.
	grp.Go(func() error {
		defer close(jobs)

		for _, slug := range s.Slugs() {
			select {
			case jobs <- slug:
			case <-gCtx.Done():
				return gCtx.Err()
			}
		}

		return nil
	})

	for range renderWorkers {
		grp.Go(func() error {
			for slug := range jobs {
				err := s.writePage(outDir, slug)
				if err != nil {
					return fmt.Errorf("write page %q: %w", slug, err)
				}

				uiPrintln("Rendered %s", slug)
			}

			return nil
		})
	}

	err := grp.Wait()
	if err != nil {
		return fmt.Errorf("render handbook: %w", err)
	}

	return nil
}

func (s *Site) writePage(outDir string, slug string) (outErr error) {
	page, err := s.Page(slug, false)
	if err != nil {
		return err
	}

	dir := filepath.Join(outDir, filepath.FromSlash(strings.Trim(slug, "/")))

	err = os.MkdirAll(dir, 0o770)
	if err != nil {
		return fmt.Errorf("create %q: %w", dir, err)
	}

	err = internal.MarshalFile(
		filepath.Join(dir, "index.json"), page.Contents)
	if err != nil {
		return fmt.Errorf("write page data: %w", err)
	}

	file, err := os.Create(filepath.Join(dir, "index.html"))
	if err != nil {
		return fmt.Errorf("create index.html: %w", err)
	}

	defer internal.Close("index.html", file, &outErr)

	err = s.renderer.RenderPage(file, page)
	if err != nil {
		return err
	}

	return nil
}

// AssetFS exposes the embedded static assets, rooted at the "assets"
// directory.
func AssetFS() fs.FS {
	sub, err := fs.Sub(assetFS, "assets")
	if err != nil {
		panic(fmt.Sprintf("embedded assets: %v", err))
	}

	return sub
}
