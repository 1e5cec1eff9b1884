package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/cardkit/cardkit/internal/ui"
)

// Container is the base box primitive for card-like elements. It owns all
// variant, size, hover and focus visual treatment; callers hand it fully
// rendered child content and optional style appliers layered on top.
type Container struct {
	BaseComponent
	children []ui.Renderable
	variant  CardVariant
	size     CardSize
	sized    bool
	hover    bool
	focus    bool
	margin   Spacing
}

// NewContainer creates a container with default chrome around the children.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		children:      children,
	}
}

// WithVariant selects the visual style preset.
func (c *Container) WithVariant(variant CardVariant) *Container {
	c.variant = variant
	return c
}

// WithSize pins the content width to the theme preset for the given size.
func (c *Container) WithSize(size CardSize) *Container {
	c.size = size
	c.sized = true
	return c
}

// WithHover toggles the hover highlight.
func (c *Container) WithHover(hover bool) *Container {
	c.hover = hover
	return c
}

// WithFocus toggles the focus ring. Focus wins over hover.
func (c *Container) WithFocus(focus bool) *Container {
	c.focus = focus
	return c
}

// WithMargin sets outer spacing around the chrome.
func (c *Container) WithMargin(margin Spacing) *Container {
	c.margin = margin
	return c
}

// WithStyle sets a raw style merged beneath the computed chrome.
func (c *Container) WithStyle(style lipgloss.Style) *Container {
	c.SetStyle(style)
	return c
}

// WithAppliers sets caller style modifiers, applied after the chrome so they
// win over variant and state styling.
func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.SetAppliers(appliers...)
	return c
}

// Add appends children to the container.
func (c *Container) Add(children ...ui.Renderable) *Container {
	c.children = append(c.children, children...)
	return c
}

// Children returns the child renderables.
func (c *Container) Children() []ui.Renderable {
	return c.children
}

// SetChildren replaces all children.
func (c *Container) SetChildren(children []ui.Renderable) *Container {
	c.children = children
	return c
}

// View renders with the default context.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the container chrome around its children.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(c.children))
	for _, child := range c.children {
		if view := renderChild(child, ctx); view != "" {
			views = append(views, view)
		}
	}

	var content string
	if len(views) > 0 {
		content = lipgloss.JoinVertical(lipgloss.Left, views...)
	}

	chrome := lipgloss.NewStyle()
	for _, fn := range variantAppliers(c.variant) {
		chrome = fn(chrome, ctx.Theme)
	}
	for _, fn := range stateAppliers(c.variant, c.hover, c.focus) {
		chrome = fn(chrome, ctx.Theme)
	}

	if c.sized {
		width := CardWidth(ctx.Theme, c.size)
		// Leave room for the border when the context bounds the output.
		if ctx.MaxWidth > 2 && width > ctx.MaxWidth-2 {
			width = ctx.MaxWidth - 2
		}
		chrome = chrome.Width(width)
	}

	if !c.margin.IsZero() {
		if c.margin.Top == c.margin.Bottom && c.margin.Left == c.margin.Right {
			chrome = chrome.Margin(c.margin.Top, c.margin.Left)
		} else {
			chrome = chrome.Margin(c.margin.Top, c.margin.Right, c.margin.Bottom, c.margin.Left)
		}
	}

	chrome = chrome.Inherit(c.style)
	if c.strategy != nil {
		chrome = c.strategy.Apply(chrome, ctx.Theme)
	}

	return chrome.Render(content)
}

// variantAppliers maps a card variant to its chrome styling.
func variantAppliers(variant CardVariant) []StyleFunc {
	switch variant {
	case VariantOutlined:
		return []StyleFunc{
			Border(BorderVariantNormal),
			BorderColor(PaletteNeutral),
		}
	case VariantFilled:
		return []StyleFunc{
			func(base lipgloss.Style, theme Theme) lipgloss.Style {
				surface := theme.Palette.Surface
				return base.Background(surface.Muted).Foreground(surface.OnBase)
			},
		}
	default:
		return []StyleFunc{
			Background(PaletteSurface),
			Border(BorderVariantRounded),
			BorderColor(PaletteNeutral),
		}
	}
}

// stateAppliers layers hover and focus treatment over the variant chrome.
// Focus takes precedence when both are set.
func stateAppliers(variant CardVariant, hover, focus bool) []StyleFunc {
	switch {
	case focus:
		return []StyleFunc{
			Border(BorderVariantThick),
			BorderColor(PalettePrimary),
		}
	case hover:
		appliers := []StyleFunc{BorderColor(PalettePrimary)}
		if variant == VariantFilled {
			// Filled cards have no border to tint, so hover adds one.
			appliers = []StyleFunc{
				Border(BorderVariantRounded),
				BorderColor(PalettePrimary),
			}
		}
		return appliers
	default:
		return nil
	}
}
