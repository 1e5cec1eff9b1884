// Package preview implements the interactive card preview: a bubbletea
// program that renders one live card and lets the user walk the token space.
package preview

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// Model holds the preview state. All state is plain value data; the view is a
// pure function of it.
type Model struct {
	variantIdx int
	sizeIdx    int
	paddingIdx int
	hover      bool
	focus      bool
	dark       bool

	width   int
	height  int
	spinner spinner.Model
}

// NewModel creates the preview model with every token at its default.
func NewModel() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#3b82f6", Dark: "#60a5fa"})

	return Model{
		variantIdx: 0,
		sizeIdx:    2, // md
		paddingIdx: 2, // md
		width:      80,
		height:     24,
		spinner:    s,
	}
}
