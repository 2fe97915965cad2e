package handbook

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrMissingSocialURL is returned by Config.Validate when one of the social
// link URLs is absent from the site metadata.
var ErrMissingSocialURL = errors.New("missing social link URL")

type Config struct {
	Site     SiteMetadata `json:"site"`
	Menu     string       `json:"menu"`
	Content  string       `json:"content"`
	Language string       `json:"language,omitempty"`
	History  bool         `json:"history,omitempty"`
}

// SiteMetadata is the site-wide configuration made available to all page
// components. It is read once and never mutated.
type SiteMetadata struct {
	Title       string `json:"title"`
	GithubURL   string `json:"githubUrl"`
	SlackURL    string `json:"slackUrl"`
	FacebookURL string `json:"facebookUrl"`
}

const (
	defaultTitle    = "Handbook"
	defaultMenu     = "menu.yaml"
	defaultContent  = "content"
	defaultLanguage = "en"
)

// LoadConfig reads a JSON configuration file. Relative menu and content paths
// are resolved against the directory of the configuration file.
func LoadConfig(path string) (Config, error) {
	var conf Config

	confData, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	err = json.Unmarshal(confData, &conf)
	if err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	conf.setDefaults()

	dir := filepath.Dir(path)

	conf.Menu = resolvePath(dir, conf.Menu)
	conf.Content = resolvePath(dir, conf.Content)

	return conf, nil
}

func resolvePath(dir string, p string) string {
	if filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(dir, p)
}

func (c *Config) setDefaults() {
	if c.Site.Title == "" {
		c.Site.Title = defaultTitle
	}

	if c.Menu == "" {
		c.Menu = defaultMenu
	}

	if c.Content == "" {
		c.Content = defaultContent
	}

	if c.Language == "" {
		c.Language = defaultLanguage
	}
}

// ApplyEnv overrides site metadata with HANDBOOK_* variables found through
// lookup, normally os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(key string) (string, bool)) {
	overrides := map[string]*string{
		"HANDBOOK_TITLE":        &c.Site.Title,
		"HANDBOOK_GITHUB_URL":   &c.Site.GithubURL,
		"HANDBOOK_SLACK_URL":    &c.Site.SlackURL,
		"HANDBOOK_FACEBOOK_URL": &c.Site.FacebookURL,
	}

	for key, field := range overrides {
		v, ok := lookup(key)
		if !ok || v == "" {
			continue
		}

		*field = v
	}
}

// Validate checks that the configuration is complete enough to render every
// page component. All problems are reported, not just the first.
func (c Config) Validate() error {
	var errs []error

	urls := []struct {
		name  string
		value string
	}{
		{"githubUrl", c.Site.GithubURL},
		{"slackUrl", c.Site.SlackURL},
		{"facebookUrl", c.Site.FacebookURL},
	}

	for _, u := range urls {
		if u.value == "" {
			errs = append(errs, fmt.Errorf("%w: site.%s", ErrMissingSocialURL, u.name))
		}
	}

	if c.Menu == "" {
		errs = append(errs, errors.New("no menu file configured"))
	}

	if c.Content == "" {
		errs = append(errs, errors.New("no content directory configured"))
	}

	return errors.Join(errs...)
}
