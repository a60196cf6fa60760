package layout

import "fmt"

// Action is a user interaction applied to the UI state.
type Action string

const (
	ActionNone          Action = ""
	ActionToggleMenu    Action = "toggleMenu"
	ActionCloseMenu     Action = "closeMenu"
	ActionToggleOverlay Action = "toggleOverlay"
	ActionCloseOverlay  Action = "closeOverlay"
	ActionClickOutside  Action = "clickOutside"
	ActionHover         Action = "hover"
)

// UIState is the whole scroll and chrome state of one page view.
// The derived fields are always recomputed from the latest Geometry.
type UIState struct {
	Home     bool    `json:"home"`
	MenuOpen bool    `json:"menuOpen"`
	Overlay  Overlay `json:"overlay"`

	Position       Position `json:"position"`
	NavbarScrolled bool     `json:"navbarScrolled"`
	FooterDocked   bool     `json:"footerDocked"`
	Mobile         bool     `json:"mobile"`
	// ShowTrigger is false when the footer renders the categories panel instead.
	ShowTrigger bool `json:"showTrigger"`
	LockScroll  bool `json:"lockScroll"`
}

// Recompute derives every geometry-dependent field from g.
// Outside the home page the categories live in the footer.
func (s *UIState) Recompute(g Geometry) {
	s.NavbarScrolled = NavbarScrolled(g)
	s.Mobile = Mobile(g)
	if s.Home {
		s.Position = CategoriesPosition(g)
		s.FooterDocked = FooterDocked(g)
	} else {
		s.Position = PositionDocked
		s.FooterDocked = true
	}
	s.ShowTrigger = s.Home && !s.FooterDocked && s.Position != PositionDocked
	s.LockScroll = s.MenuOpen
}

// Apply performs one interaction. arg is the hovered category for ActionHover.
func (s *UIState) Apply(a Action, arg string) error {
	switch a {
	case ActionNone:
	case ActionToggleMenu:
		s.MenuOpen = !s.MenuOpen
	case ActionCloseMenu:
		s.MenuOpen = false
	case ActionToggleOverlay:
		s.Overlay.Toggle(s.Position)
	case ActionCloseOverlay:
		s.Overlay.Close()
	case ActionClickOutside:
		s.Overlay.ClickOutside()
	case ActionHover:
		s.Overlay.Hover(arg)
	default:
		return fmt.Errorf("unknown ui action %q", a)
	}
	s.LockScroll = s.MenuOpen
	return nil
}
