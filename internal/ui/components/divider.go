package components

import "strings"

// Divider is a horizontal rule.
type Divider struct {
	BaseComponent
	width int
	char  string
}

// HorizontalDivider creates a thin horizontal rule.
func HorizontalDivider() *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		width:         24,
		char:          "─",
	}
}

// WithWidth sets the rule width in cells.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithChar sets the rule character.
func (d *Divider) WithChar(char string) *Divider {
	d.char = char
	return d
}

// WithAppliers applies theme-based style modifiers.
func (d *Divider) WithAppliers(appliers ...StyleFunc) *Divider {
	d.SetAppliers(appliers...)
	return d
}

// View renders with the default context.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the rule.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if ctx.MaxWidth > 0 && width > ctx.MaxWidth {
		width = ctx.MaxWidth
	}
	if width < 1 {
		width = 1
	}
	return d.ComputeStyle(ctx.Theme).Render(strings.Repeat(d.char, width))
}
