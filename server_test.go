package handbook

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, basePath string) http.Handler {
	t.Helper()

	site, err := LoadSite(context.Background(), newTestConfig(t), basePath)
	require.NoError(t, err)

	return NewServer(site, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec
}

func TestServerMenuToggle(t *testing.T) {
	h := newTestServer(t, "")

	tests := []struct {
		target   string
		wantOpen bool
	}{
		{"/intro", false},
		{"/intro?menu=closed", false},
		{"/intro?menu=open", true},
		{"/intro/?menu=open", true},
		{"/?menu=bogus", false},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := get(t, h, tt.target)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

			doc, err := goquery.NewDocumentFromReader(rec.Body)
			require.NoError(t, err)

			_, hidden := doc.Find("nav#site-menu").Attr("hidden")
			assert.Equal(t, !tt.wantOpen, hidden)
			assert.Equal(t, tt.wantOpen, doc.Find("body").HasClass("overflow-y-hidden"))

			value, _ := doc.Find("form[data-menu-toggle] button").Attr("value")
			if tt.wantOpen {
				assert.Equal(t, MenuClosedValue, value)
			} else {
				assert.Equal(t, MenuOpenValue, value)
			}
		})
	}
}

func TestServerRoutes(t *testing.T) {
	h := newTestServer(t, "")

	rec := get(t, h, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = get(t, h, "/assets/js/header.js")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "site-menu")

	rec = get(t, h, "/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = get(t, h, "/guides/setup")
	require.Equal(t, http.StatusOK, rec.Code)

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, "Setup", doc.Find(`nav a[aria-current="page"]`).Text())
}

func TestServerBasePath(t *testing.T) {
	h := newTestServer(t, "/handbook")

	rec := get(t, h, "/handbook/intro?menu=open")
	require.Equal(t, http.StatusOK, rec.Code)

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)

	href, _ := doc.Find(`nav a[aria-current="page"]`).Attr("href")
	assert.Equal(t, "/handbook/intro", href)

	rec = get(t, h, "/handbook/assets/css/handbook.css")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = get(t, h, "/intro")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
