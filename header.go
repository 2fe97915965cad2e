package handbook

const (
	// MenuParam is the query parameter the toggle control submits.
	MenuParam       = "menu"
	MenuOpenValue   = "open"
	MenuClosedValue = "closed"

	SearchPlaceholder = "Search handbook..."

	scrollLockClass = "overflow-y-hidden"
)

// SiteHeader owns the open/closed state of the navigation menu. The state
// starts out closed and only changes through Toggle.
type SiteHeader struct {
	menu     []MenuChapter
	menuOpen bool
}

func NewSiteHeader(menu []MenuChapter) *SiteHeader {
	return &SiteHeader{menu: menu}
}

func (h *SiteHeader) MenuOpen() bool {
	return h.menuOpen
}

func (h *SiteHeader) Toggle() {
	h.menuOpen = !h.menuOpen
}

// HeaderView is the render model of the top bar and the menu below it.
type HeaderView struct {
	Brand             string
	Release           string
	SearchPlaceholder string
	MenuOpen          bool
	// ToggleValue is what the toggle control requests when activated.
	ToggleValue string
	// BodyClass is applied to the page body, it locks background
	// scrolling while the menu is open.
	BodyClass string
	Menu      NavigationView
}

// View renders the current state. The menu visibility is always taken from
// the header state.
func (h *SiteHeader) View(isCurrent RoutePredicate) HeaderView {
	view := HeaderView{
		SearchPlaceholder: SearchPlaceholder,
		MenuOpen:          h.menuOpen,
		ToggleValue:       MenuOpenValue,
		Menu:              NavigationMenu(h.menu, h.menuOpen, isCurrent),
	}

	if h.menuOpen {
		view.ToggleValue = MenuClosedValue
		view.BodyClass = scrollLockClass
	}

	return view
}
