package handbook

import (
	"bytes"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMeta = SiteMetadata{
	Title:       "Handbook",
	GithubURL:   "https://github.com/example",
	SlackURL:    "https://example.slack.com",
	FacebookURL: "https://www.facebook.com/example",
}

func TestSocialLinks(t *testing.T) {
	links := SocialLinks(testMeta)

	require.Len(t, links, 3)

	assert.Equal(t, testMeta.GithubURL, links[0].HRef)
	assert.Equal(t, testMeta.SlackURL, links[1].HRef)
	assert.Equal(t, testMeta.FacebookURL, links[2].HRef)
}

func TestRenderSocialLinks(t *testing.T) {
	r, err := NewRenderer("/handbook")
	require.NoError(t, err)

	var buf bytes.Buffer

	err = r.RenderSocialLinks(&buf, SocialLinks(testMeta))
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)

	anchors := doc.Find("a")
	require.Equal(t, 3, anchors.Length())

	want := []string{testMeta.GithubURL, testMeta.SlackURL, testMeta.FacebookURL}

	anchors.Each(func(i int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		target, _ := a.Attr("target")
		rel, _ := a.Attr("rel")

		assert.Equal(t, want[i], href, "external links ignore the base path")
		assert.Equal(t, "_blank", target)
		assert.Equal(t, "noopener noreferrer", rel)
		assert.Equal(t, 1, a.Find("svg").Length())
	})
}
