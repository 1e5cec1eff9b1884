package preview

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cardkit/cardkit/internal/ui/components"
)

// Init starts the spinner ticking.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles preview messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "v":
		m.variantIdx = (m.variantIdx + 1) % len(components.VariantTokens)
	case "s":
		m.sizeIdx = (m.sizeIdx + 1) % len(components.SizeTokens)
	case "p":
		m.paddingIdx = (m.paddingIdx + 1) % len(components.PaddingTokens)
	case "h":
		m.hover = !m.hover
	case "f", "tab":
		m.focus = !m.focus
	case "d":
		m.dark = !m.dark
	}
	return m, nil
}

// Tokens returns the currently selected variant, size and padding tokens.
func (m Model) Tokens() (variant, size, padding string) {
	return components.VariantTokens[m.variantIdx],
		components.SizeTokens[m.sizeIdx],
		components.PaddingTokens[m.paddingIdx]
}
