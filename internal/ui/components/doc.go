// Package components provides a small, theme-aware card kit for terminal UIs.
//
// The package is organised in three layers:
//
//  1. Theme layer - immutable token tables (colours, borders, spacing, sizes)
//  2. Modifier layer - StyleFunc transformations that apply theme data to styles
//  3. Component layer - composable elements that render to strings
//
// The centrepiece is Card, a semantic wrapper that resolves a padding token,
// wraps its children in a single padding region, and delegates all variant,
// size, hover and focus treatment to the generic Container primitive:
//
//	card := components.NewCard(
//		components.NewText("42 builds passing"),
//	).WithTitle("CI").WithVariant(components.VariantOutlined).WithPadding("sm")
//
//	fmt.Println(card.View())
//
// Tokens are drawn from closed enumerations. Every token lookup is total:
// unrecognised input silently resolves to the medium/default member rather
// than producing an error. Rendering is pure; the same configuration always
// yields the same output.
//
// Themes are immutable and passed explicitly through RenderContext:
//
//	ctx := components.DefaultContext().WithTheme(components.DarkTheme())
//	out := card.ViewWithContext(ctx)
//
// View() is a shorthand that renders with the default context.
package components
