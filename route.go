package handbook

import "strings"

// RoutePredicate reports whether a slug is the page currently being viewed.
type RoutePredicate func(slug string) bool

// CurrentRoute returns the "is current" predicate for the page at path. A
// trailing slash is not significant, so "/intro/" is current for "/intro".
func CurrentRoute(path string) RoutePredicate {
	current := normalizeRoute(path)

	return func(slug string) bool {
		return normalizeRoute(slug) == current
	}
}

func normalizeRoute(p string) string {
	p = strings.TrimRight(p, "/")

	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	return p
}
