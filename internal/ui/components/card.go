package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/cardkit/cardkit/internal/ui"
)

// Card is a presentational wrapper over Container. It resolves a padding
// token, wraps its children in a single padding region, and delegates all
// variant, size, hover and focus treatment to the base container.
//
// Every option has a default; children are the only required input.
// Rendering is pure and idempotent.
type Card struct {
	children []ui.Renderable
	title    string
	variant  CardVariant
	size     CardSize
	padding  SpacingSize
	hover    bool
	focus    bool
	margin   Spacing
	style    lipgloss.Style
	appliers []StyleFunc
}

// NewCard creates a card with default options: default variant, medium size,
// medium padding, no hover, no focus.
func NewCard(children ...ui.Renderable) *Card {
	return &Card{
		children: children,
		variant:  VariantDefault,
		size:     SizeMD,
		padding:  SpacingMedium,
	}
}

// WithTitle prepends a styled title line above the card content.
func (c *Card) WithTitle(title string) *Card {
	c.title = title
	return c
}

// WithVariant selects the visual preset for the card chrome.
func (c *Card) WithVariant(variant CardVariant) *Card {
	c.variant = variant
	return c
}

// WithSize selects the card width preset.
func (c *Card) WithSize(size CardSize) *Card {
	c.size = size
	return c
}

// WithPadding resolves a padding keyword for the interior region. The lookup
// is total: "none", "sm" and "lg" map to their tokens, anything else to the
// medium default.
func (c *Card) WithPadding(token string) *Card {
	c.padding = ParsePaddingToken(token)
	return c
}

// WithPaddingSize sets the interior padding from a typed token.
func (c *Card) WithPaddingSize(size SpacingSize) *Card {
	c.padding = size
	return c
}

// WithHover toggles the hover highlight.
func (c *Card) WithHover(hover bool) *Card {
	c.hover = hover
	return c
}

// WithFocus toggles the focus ring.
func (c *Card) WithFocus(focus bool) *Card {
	c.focus = focus
	return c
}

// WithMargin sets outer spacing around the card chrome.
func (c *Card) WithMargin(margin Spacing) *Card {
	c.margin = margin
	return c
}

// WithStyle sets a raw style merged beneath the container chrome.
func (c *Card) WithStyle(style lipgloss.Style) *Card {
	c.style = style
	return c
}

// WithAppliers adds caller style modifiers, forwarded to the base container
// and applied after its chrome.
func (c *Card) WithAppliers(appliers ...StyleFunc) *Card {
	c.appliers = append(c.appliers, appliers...)
	return c
}

// Add appends children to the card.
func (c *Card) Add(children ...ui.Renderable) *Card {
	c.children = append(c.children, children...)
	return c
}

// Children returns the child renderables.
func (c *Card) Children() []ui.Renderable {
	return c.children
}

// View renders with the default context.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card: children joined, wrapped once in the
// padding region, handed to a base container configured from the card options.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	padded := c.paddedRegion(ctx)

	container := NewContainer(ui.RenderableFunc(func() string { return padded })).
		WithVariant(c.variant).
		WithSize(c.size).
		WithHover(c.hover).
		WithFocus(c.focus).
		WithMargin(c.margin).
		WithStyle(c.style).
		WithAppliers(c.appliers...)

	return container.ViewWithContext(ctx)
}

// paddedRegion renders the children and applies the resolved padding exactly
// once around them.
func (c *Card) paddedRegion(ctx RenderContext) string {
	views := make([]string, 0, len(c.children)+1)
	if c.title != "" {
		titleStyle := lipgloss.NewStyle().Bold(true).Foreground(ctx.Theme.Palette.Primary.Base)
		views = append(views, titleStyle.Render(c.title))
	}
	for _, child := range c.children {
		if view := renderChild(child, ctx); view != "" {
			views = append(views, view)
		}
	}

	var content string
	if len(views) > 0 {
		content = lipgloss.JoinVertical(lipgloss.Left, views...)
	}

	region := PaddingRegion(c.padding)(lipgloss.NewStyle(), ctx.Theme)
	return region.Render(content)
}
