package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cardkit/cardkit/internal/ui"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children in a single direction with an optional gap.
// It is a join helper, not a constraint solver.
type Stack struct {
	BaseComponent
	children  []ui.Renderable
	direction Direction
	gap       int
}

// NewStack creates a vertical stack.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
	}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionVertical)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children in cells or rows.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithAppliers applies theme-based style modifiers to the stack box.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.SetAppliers(appliers...)
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}

// View renders with the default context.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the children joined along the stack direction.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if view := renderChild(child, ctx); view != "" {
			views = append(views, view)
		}
	}

	style := s.ComputeStyle(ctx.Theme)
	if len(views) == 0 {
		return style.Render("")
	}

	var content string
	if s.direction == DirectionHorizontal {
		if s.gap > 0 {
			views = interleave(views, strings.Repeat(" ", s.gap))
		}
		content = lipgloss.JoinHorizontal(lipgloss.Top, views...)
	} else {
		if s.gap > 0 {
			// A spacer block of n blank rows contains n-1 newlines.
			views = interleave(views, strings.Repeat("\n", s.gap-1))
		}
		content = lipgloss.JoinVertical(lipgloss.Left, views...)
	}

	return style.Render(content)
}

func interleave(views []string, spacer string) []string {
	spaced := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			spaced = append(spaced, spacer)
		}
		spaced = append(spaced, view)
	}
	return spaced
}
