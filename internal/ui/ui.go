// Package ui defines the rendering contract shared by all visual components.
package ui

// Renderable is anything that can draw itself to a string.
// Composition between components happens through this interface.
type Renderable interface {
	View() string
}

// RenderableFunc adapts a plain function into a Renderable.
type RenderableFunc func() string

// View implements Renderable.
func (f RenderableFunc) View() string {
	return f()
}
