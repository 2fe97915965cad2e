package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	handbook "github.com/nubots/handbook-site"
	"github.com/urfave/cli/v2"
)

func main() {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		TUIPrintln("warning: load .env file: %v", err)
	}

	app := cli.App{
		Name:   "handbook",
		Usage:  "generate the handbook as a static site",
		Action: generateAction,
		Flags: []cli.Flag{
			&cli.PathFlag{
				Name:  "config",
				Value: "handbook.json",
			},
			&cli.PathFlag{
				Name:     "out",
				Usage:    "output directory for the site",
				Required: true,
			},
			&cli.PathFlag{
				Name:  "base-path",
				Value: "",
			},
			&cli.StringFlag{
				Name:  "serve",
				Usage: "Serve the handbook for local preview: -serve :8080",
			},
		},
	}

	err = app.Run(os.Args)
	if err != nil {
		TUIPrintln("error: %v", err)
		os.Exit(1)
	}
}

func generateAction(c *cli.Context) error {
	var (
		configPath = c.Path("config")
		outDir     = c.Path("out")
		basePath   = c.Path("base-path")
		serveAddr  = c.String("serve")
	)

	start := time.Now()

	conf, err := handbook.LoadConfig(configPath)
	if err != nil {
		return err
	}

	conf.ApplyEnv(os.LookupEnv)

	site, err := handbook.Generate(
		c.Context, outDir, basePath, conf, TUIPrintln)
	if err != nil {
		return fmt.Errorf("generate handbook: %w", err)
	}

	duration := time.Since(start)

	TUIPrintln("Generated %d pages in %s", len(site.Slugs()), duration.String())

	if serveAddr != "" {
		TUIPrintln("Serving handbook at %s", serveAddr)

		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

		srv := &http.Server{
			Addr:              serveAddr,
			Handler:           handbook.NewServer(site, logger),
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve handbook: %w", err)
		}
	}

	return nil
}

// TUIPrintln writes one progress line to stderr. It is called from the
// render workers, so each line is written whole.
func TUIPrintln(format string, a ...any) {
	printLine(os.Stderr, format, a...)
}

var printMu sync.Mutex

func printLine(w io.Writer, format string, a ...any) {
	line := fmt.Sprintf(format, a...)

	printMu.Lock()
	defer printMu.Unlock()

	_, err := fmt.Fprintln(w, line)
	if err != nil {
		println(err.Error())
	}
}
