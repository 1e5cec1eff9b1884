package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/cardkit/cardkit/internal/ui"
)

// Panel is the minimal sibling of Card: a plain wrapper that joins its
// children without any chrome. It carries no variant, size or state options.
type Panel struct {
	BaseComponent
	children []ui.Renderable
}

// NewPanel creates a plain panel around the children.
func NewPanel(children ...ui.Renderable) *Panel {
	return &Panel{
		BaseComponent: NewBaseComponent(),
		children:      children,
	}
}

// WithAppliers applies theme-based style modifiers to the panel box.
func (p *Panel) WithAppliers(appliers ...StyleFunc) *Panel {
	p.SetAppliers(appliers...)
	return p
}

// Add appends children to the panel.
func (p *Panel) Add(children ...ui.Renderable) *Panel {
	p.children = append(p.children, children...)
	return p
}

// Children returns the child renderables.
func (p *Panel) Children() []ui.Renderable {
	return p.children
}

// View renders with the default context.
func (p *Panel) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the children joined vertically.
func (p *Panel) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(p.children))
	for _, child := range p.children {
		if view := renderChild(child, ctx); view != "" {
			views = append(views, view)
		}
	}

	var content string
	if len(views) > 0 {
		content = lipgloss.JoinVertical(lipgloss.Left, views...)
	}
	return p.ComputeStyle(ctx.Theme).Render(content)
}
