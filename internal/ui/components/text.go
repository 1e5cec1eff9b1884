package components

import "github.com/charmbracelet/lipgloss"

// Text is the primitive leaf component for styled text content.
type Text struct {
	BaseComponent
	content string
}

// NewText creates a text component with the given content.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// WithStyle sets the lipgloss style directly.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers applies theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.SetAppliers(appliers...)
	return t
}

// View renders with the default context.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text with its computed style.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	return t.ComputeStyle(ctx.Theme).Render(t.content)
}

// BoldText creates bold text.
func BoldText(content string) *Text {
	return NewText(content).WithStyle(lipgloss.NewStyle().Bold(true))
}

// FaintText creates de-emphasised text.
func FaintText(content string) *Text {
	return NewText(content).WithStyle(lipgloss.NewStyle().Faint(true))
}
