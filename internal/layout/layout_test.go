package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriesPosition(t *testing.T) {
	// footer at 3000, viewport 800: docks from 2350, footer takes over from 2300
	base := Geometry{ViewportHeight: 800, ViewportWidth: 1440, FooterTop: 3000}

	cases := []struct {
		name    string
		scrollY float64
		want    Position
	}{
		{"top of page", 0, PositionHero},
		{"just below hero limit", 49, PositionHero},
		{"hero limit", 50, PositionFloating},
		{"mid page", 1200, PositionFloating},
		{"just before dock", 2349, PositionFloating},
		{"dock threshold", 2350, PositionDocked},
		{"past footer", 5000, PositionDocked},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := base
			g.ScrollY = tc.scrollY
			assert.Equal(t, tc.want, CategoriesPosition(g))
		})
	}

	t.Run("no footer never docks", func(t *testing.T) {
		assert.Equal(t, PositionFloating, CategoriesPosition(Geometry{ScrollY: 100000, ViewportHeight: 800}))
		assert.False(t, FooterDocked(Geometry{ScrollY: 100000, ViewportHeight: 800}))
	})
}

func TestNavbarAndFooter(t *testing.T) {
	assert.False(t, NavbarScrolled(Geometry{ScrollY: 100}))
	assert.True(t, NavbarScrolled(Geometry{ScrollY: 101}))

	g := Geometry{ScrollY: 2299, ViewportHeight: 800, FooterTop: 3000}
	assert.False(t, FooterDocked(g))
	g.ScrollY = 2300
	assert.True(t, FooterDocked(g))

	assert.True(t, Mobile(Geometry{ViewportWidth: 768}))
	assert.False(t, Mobile(Geometry{ViewportWidth: 769}))
	assert.False(t, Mobile(Geometry{}))
}

func TestOverlay(t *testing.T) {
	var o Overlay

	o.Hover("Logos")
	assert.Empty(t, o.Hovered)

	o.Toggle(PositionFloating)
	assert.True(t, o.Expanded)
	assert.Equal(t, PositionFloating, o.From)

	o.Hover("Logos")
	assert.Equal(t, "Logos", o.Hovered)

	o.ClickOutside()
	assert.False(t, o.Expanded)
	assert.Empty(t, o.Hovered)

	o.Toggle(PositionHero)
	o.Toggle(PositionDocked)
	assert.False(t, o.Expanded)
	assert.Equal(t, PositionHero, o.From)

	o.ClickOutside()
	assert.False(t, o.Expanded)
}

func TestUIState(t *testing.T) {
	t.Run("home page derives everything from geometry", func(t *testing.T) {
		s := UIState{Home: true}
		s.Recompute(Geometry{ScrollY: 0, ViewportHeight: 800, FooterTop: 3000})
		assert.Equal(t, PositionHero, s.Position)
		assert.True(t, s.ShowTrigger)
		assert.False(t, s.NavbarScrolled)

		s.Recompute(Geometry{ScrollY: 2320, ViewportHeight: 800, FooterTop: 3000})
		assert.Equal(t, PositionFloating, s.Position)
		assert.True(t, s.FooterDocked)
		assert.False(t, s.ShowTrigger)
		assert.True(t, s.NavbarScrolled)

		s.Recompute(Geometry{ScrollY: 10, ViewportHeight: 800, FooterTop: 3000})
		assert.Equal(t, PositionHero, s.Position)
		assert.False(t, s.FooterDocked)
	})

	t.Run("other pages keep categories in the footer", func(t *testing.T) {
		s := UIState{}
		s.Recompute(Geometry{ScrollY: 0, ViewportHeight: 800, FooterTop: 3000})
		assert.Equal(t, PositionDocked, s.Position)
		assert.False(t, s.ShowTrigger)
	})

	t.Run("overlay opens from current position", func(t *testing.T) {
		s := UIState{Home: true}
		s.Recompute(Geometry{ScrollY: 400, ViewportHeight: 800, FooterTop: 3000})
		require.NoError(t, s.Apply(ActionToggleOverlay, ""))
		assert.True(t, s.Overlay.Expanded)
		assert.Equal(t, PositionFloating, s.Overlay.From)

		s.Recompute(Geometry{ScrollY: 0, ViewportHeight: 800, FooterTop: 3000})
		assert.True(t, s.Overlay.Expanded)
		assert.Equal(t, PositionFloating, s.Overlay.From)

		require.NoError(t, s.Apply(ActionCloseOverlay, ""))
		assert.False(t, s.Overlay.Expanded)
	})

	t.Run("menu locks scrolling", func(t *testing.T) {
		s := UIState{}
		require.NoError(t, s.Apply(ActionToggleMenu, ""))
		assert.True(t, s.MenuOpen)
		assert.True(t, s.LockScroll)
		require.NoError(t, s.Apply(ActionCloseMenu, ""))
		assert.False(t, s.LockScroll)
	})

	t.Run("unknown action", func(t *testing.T) {
		s := UIState{}
		assert.Error(t, s.Apply(Action("spin"), ""))
	})
}
