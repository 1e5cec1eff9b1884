package preview

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/cardkit/cardkit/internal/ui"
	"github.com/cardkit/cardkit/internal/ui/components"
)

const helpLine = "v variant · s size · p padding · h hover · f focus · d theme · q quit"

// View renders the live card with a status line and key help underneath.
func (m Model) View() string {
	theme := components.DefaultTheme()
	if m.dark {
		theme = components.DarkTheme()
	}
	ctx := components.DefaultContext().WithTheme(theme).WithMaxWidth(m.width)

	variant, size, padding := m.Tokens()

	card := components.NewCard(
		components.NewText("A presentational card over the base container."),
		components.NewText(" "),
		ui.RenderableFunc(func() string { return m.spinner.View() + " live content keeps rendering" }),
	).
		WithTitle("Preview").
		WithVariant(components.ParseVariantToken(variant)).
		WithSize(components.ParseSizeToken(size)).
		WithPadding(padding).
		WithHover(m.hover).
		WithFocus(m.focus)

	status := components.HStack(
		components.InfoBadge(fmt.Sprintf("variant:%s", variant)),
		components.NewBadge(fmt.Sprintf("size:%s", size)),
		components.NewBadge(fmt.Sprintf("padding:%s", padding)),
		components.NewBadge(fmt.Sprintf("hover:%v", m.hover)),
		components.NewBadge(fmt.Sprintf("focus:%v", m.focus)),
	).WithGap(1)

	body := lipgloss.JoinVertical(lipgloss.Left,
		card.ViewWithContext(ctx),
		"",
		status.ViewWithContext(ctx),
		components.FaintText(helpLine).ViewWithContext(ctx),
	)

	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}
