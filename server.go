package handbook

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewServer returns a preview handler that renders pages on request. Unlike
// the generated site it handles the menu toggle on the server: the toggle
// form submits menu=open and the page is rendered with the header toggled.
func NewServer(site *Site, logger *slog.Logger) http.Handler {
	pages := chi.NewRouter()

	pages.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	assets := AssetFS()

	pages.Get("/assets/*", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, assets, chi.URLParam(r, "*"))
	})

	pages.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		servePage(w, r, site, logger)
	})

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	base := normalizeRoute(site.BasePath)
	if base == "/" {
		r.Mount("/", pages)
	} else {
		r.Mount(base, pages)
	}

	return r
}

func servePage(
	w http.ResponseWriter, r *http.Request, site *Site, logger *slog.Logger,
) {
	route := "/" + chi.URLParam(r, "*")
	menuOpen := r.URL.Query().Get(MenuParam) == MenuOpenValue

	var buf bytes.Buffer

	err := site.RenderPage(&buf, route, menuOpen)

	switch {
	case errors.Is(err, ErrPageNotFound):
		http.NotFound(w, r)

		return
	case err != nil:
		logger.ErrorContext(r.Context(), "failed to render page",
			"route", route, "err", err)

		http.Error(w, "failed to render page",
			http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	_, err = buf.WriteTo(w)
	if err != nil {
		logger.WarnContext(r.Context(), "failed to write response",
			"route", route, "err", err)
	}
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.InfoContext(r.Context(), "request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
