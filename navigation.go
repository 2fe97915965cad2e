package handbook

const (
	linkClassBase    = "block py-2 font-semibold"
	linkClassCurrent = "text-nubots-500"
	linkClassDefault = "text-primary-inverted"
)

// NavigationView is the render model of the navigation menu.
type NavigationView struct {
	Visible  bool
	Sections []NavSection
}

type NavSection struct {
	Title string
	Links []NavLink
}

type NavLink struct {
	Title   string
	HRef    string
	Current bool
}

func (l NavLink) Class() string {
	if l.Current {
		return linkClassBase + " " + linkClassCurrent
	}

	return linkClassBase + " " + linkClassDefault
}

// NavigationMenu builds the menu view for the given chapters. Sections and
// links keep the input order. Route matching is left entirely to isCurrent,
// a nil predicate marks no link as current.
func NavigationMenu(
	menu []MenuChapter, visible bool, isCurrent RoutePredicate,
) NavigationView {
	view := NavigationView{
		Visible:  visible,
		Sections: make([]NavSection, 0, len(menu)),
	}

	for _, chapter := range menu {
		section := NavSection{
			Title: chapter.Title,
			Links: make([]NavLink, 0, len(chapter.Pages)),
		}

		for _, page := range chapter.Pages {
			section.Links = append(section.Links, NavLink{
				Title:   page.Title,
				HRef:    page.Slug,
				Current: isCurrent != nil && isCurrent(page.Slug),
			})
		}

		view.Sections = append(view.Sections, section)
	}

	return view
}
