package layout

// Position is where the design categories trigger sits on the home page.
type Position string

const (
	PositionHero     Position = "hero"
	PositionFloating Position = "floating"
	PositionDocked   Position = "docked"
)

func (p Position) Valid() bool {
	switch p {
	case PositionHero, PositionFloating, PositionDocked:
		return true
	}
	return false
}

const (
	heroScrollLimit      = 50  // below this the trigger stays in the hero
	categoriesDockOffset = 150 // trigger docks this far before the footer is in view
	footerDockOffset     = 100 // footer takes over the trigger this far before it is in view
	navbarScrollLimit    = 100 // navbar shrinks past this offset
	mobileMaxWidth       = 768
)

// Geometry is the layout snapshot of one scroll or resize event, in CSS pixels.
// FooterTop <= 0 means the page has no footer.
type Geometry struct {
	ScrollY        float64 `json:"scrollY"`
	ViewportHeight float64 `json:"viewportHeight"`
	ViewportWidth  float64 `json:"viewportWidth"`
	FooterTop      float64 `json:"footerTop"`
}

func (g Geometry) hasFooter() bool {
	return g.FooterTop > 0
}

// CategoriesPosition places the categories trigger for the current scroll offset.
func CategoriesPosition(g Geometry) Position {
	if g.ScrollY < heroScrollLimit {
		return PositionHero
	}
	if g.hasFooter() && g.ScrollY >= g.FooterTop-g.ViewportHeight+categoriesDockOffset {
		return PositionDocked
	}
	return PositionFloating
}

// FooterDocked reports whether the footer should render the categories panel.
func FooterDocked(g Geometry) bool {
	return g.hasFooter() && g.ScrollY >= g.FooterTop-g.ViewportHeight+footerDockOffset
}

func NavbarScrolled(g Geometry) bool {
	return g.ScrollY > navbarScrollLimit
}

// Mobile reports a narrow viewport. A zero width is treated as desktop.
func Mobile(g Geometry) bool {
	return g.ViewportWidth > 0 && g.ViewportWidth <= mobileMaxWidth
}
