package preview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardkit/cardkit/internal/ui/components"
)

func press(t *testing.T, m Model, key string) Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	next, ok := updated.(Model)
	require.True(t, ok)
	return next
}

func TestModelDefaults(t *testing.T) {
	m := NewModel()

	variant, size, padding := m.Tokens()
	assert.Equal(t, "default", variant)
	assert.Equal(t, "md", size)
	assert.Equal(t, "md", padding)
	assert.False(t, m.hover)
	assert.False(t, m.focus)
}

func TestVariantCyclingWraps(t *testing.T) {
	m := NewModel()

	seen := make([]string, 0, len(components.VariantTokens)+1)
	for i := 0; i <= len(components.VariantTokens); i++ {
		variant, _, _ := m.Tokens()
		seen = append(seen, variant)
		m = press(t, m, "v")
	}

	assert.Equal(t, seen[0], seen[len(components.VariantTokens)])
	assert.ElementsMatch(t, components.VariantTokens, seen[:len(components.VariantTokens)])
}

func TestPaddingCyclingWraps(t *testing.T) {
	m := NewModel()

	for range components.PaddingTokens {
		m = press(t, m, "p")
	}

	_, _, padding := m.Tokens()
	assert.Equal(t, "md", padding)
}

func TestStateToggles(t *testing.T) {
	m := NewModel()

	m = press(t, m, "h")
	assert.True(t, m.hover)
	m = press(t, m, "h")
	assert.False(t, m.hover)

	m = press(t, m, "f")
	assert.True(t, m.focus)

	m = press(t, m, "d")
	assert.True(t, m.dark)
}

func TestQuitKeys(t *testing.T) {
	m := NewModel()

	for _, key := range []string{"q"} {
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
		require.NotNil(t, cmd, "key %q should quit", key)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestWindowSizeUpdates(t *testing.T) {
	m := NewModel()

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 42, Height: 10})
	next := updated.(Model)
	assert.Equal(t, 42, next.width)
	assert.Equal(t, 10, next.height)
}

func TestViewShowsTokensAndHelp(t *testing.T) {
	m := NewModel()
	m = press(t, m, "v") // outlined

	view := m.View()
	assert.Contains(t, view, "variant:outlined")
	assert.Contains(t, view, "size:md")
	assert.Contains(t, view, "padding:md")
	assert.Contains(t, view, "q quit")
	assert.Contains(t, view, "Preview")
}

func TestViewKeepsSeparatorRow(t *testing.T) {
	m := NewModel()
	lines := strings.Split(m.View(), "\n")

	live := -1
	for i, line := range lines {
		if strings.Contains(line, "live content") {
			live = i
		}
	}
	require.Greater(t, live, 1)

	// Borders and padding aside, the row above the live line is the blank
	// separator and the row above that carries the intro text.
	interior := func(line string) string { return strings.Trim(line, "│┃ ") }
	assert.Empty(t, interior(lines[live-1]))
	assert.NotEmpty(t, interior(lines[live-2]))
}
