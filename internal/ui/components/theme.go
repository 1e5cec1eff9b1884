package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ColourSet groups a semantic colour with companions that work well together:
// OnBase contrasts with Base, Muted is a desaturated accent, Contrast pops
// against Base. All colours adapt to light and dark terminals.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes the semantic colour slots used by components.
type Palette struct {
	Primary ColourSet
	Surface ColourSet
	Neutral ColourSet
	Success ColourSet
	Warning ColourSet
	Danger  ColourSet
	Info    ColourSet
}

// PaletteSlot selects a semantic colour set from a Palette. Use the predefined
// slots (PalettePrimary, PaletteSurface, ...) for type-safe access.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
	PaletteSuccess PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo    PaletteSlot = func(p Palette) ColourSet { return p.Info }
)

// BorderSet groups the reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// BorderVariant is a strongly-typed border token.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
	BorderVariantDouble
)

// SpacingSize enumerates the spacing scale tokens.
type SpacingSize int

const (
	SpacingNone SpacingSize = iota
	SpacingExtraSmall
	SpacingSmall
	SpacingMedium
	SpacingLarge
)

const spacingSizeCount = int(SpacingLarge) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores distinct scales for padding and margin, in cells.
type SpacingConfig struct {
	Padding spacingTable
	Margin  spacingTable
}

// CardSize enumerates the card width presets.
type CardSize int

const (
	SizeXS CardSize = iota
	SizeSM
	SizeMD
	SizeLG
	SizeXL
)

const cardSizeCount = int(SizeXL) + 1

type sizeTable [cardSizeCount]int

// Theme is an immutable styling theme. Create once, pass through
// RenderContext; all modification happens by value.
type Theme struct {
	Palette Palette
	Borders BorderSet
	Spacing SpacingConfig
	Sizes   sizeTable
}

// Normalize returns a theme with zero-valued token tables replaced by the
// defaults, so partially specified themes still resolve every token.
func (t Theme) Normalize() Theme {
	if tableIsZero(t.Spacing.Padding[:]) {
		t.Spacing.Padding = defaultPaddingTable()
	}
	if tableIsZero(t.Spacing.Margin[:]) {
		t.Spacing.Margin = defaultMarginTable()
	}
	if tableIsZero(t.Sizes[:]) {
		t.Sizes = defaultSizeTable()
	}
	return t
}

func tableIsZero(values []int) bool {
	for _, v := range values {
		if v != 0 {
			return false
		}
	}
	return true
}

func defaultPaddingTable() spacingTable {
	return spacingTable{
		SpacingNone:       0,
		SpacingExtraSmall: 1,
		SpacingSmall:      1,
		SpacingMedium:     2,
		SpacingLarge:      3,
	}
}

func defaultMarginTable() spacingTable {
	return spacingTable{
		SpacingNone:       0,
		SpacingExtraSmall: 1,
		SpacingSmall:      1,
		SpacingMedium:     1,
		SpacingLarge:      2,
	}
}

func defaultSizeTable() sizeTable {
	return sizeTable{
		SizeXS: 20,
		SizeSM: 28,
		SizeMD: 36,
		SizeLG: 48,
		SizeXL: 60,
	}
}

// spacingLookup resolves a spacing token against a table. Out-of-range tokens
// resolve to the medium entry; the lookup never fails.
func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingMedium)
	}
	return table[index]
}

// PaddingValue returns the padding cell count for the given token.
func PaddingValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Padding, size)
}

// MarginValue returns the margin cell count for the given token.
func MarginValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Margin, size)
}

// CardWidth returns the content width for the given size token.
// Out-of-range tokens resolve to the medium width.
func CardWidth(theme Theme, size CardSize) int {
	index := int(size)
	if index < 0 || index >= len(theme.Sizes) {
		index = int(SizeMD)
	}
	return theme.Sizes[index]
}

// BorderForVariant returns the border definition for the given token.
// Unknown tokens resolve to no border.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	default:
		return theme.Borders.None
	}
}

// DefaultTheme returns the standard light-leaning adaptive theme.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:     ac("#3b82f6", "#60a5fa"),
			OnBase:   ac("#f8fafc", "#0b1120"),
			Muted:    ac("#2563eb", "#1d4ed8"),
			Contrast: ac("#facc15", "#ca8a04"),
		},
		Surface: ColourSet{
			Base:     ac("#f9fafb", "#111827"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#e2e8f0", "#1f2937"),
			Contrast: ac("#3b82f6", "#60a5fa"),
		},
		Neutral: ColourSet{
			Base:     ac("#64748b", "#94a3b8"),
			OnBase:   ac("#f1f5f9", "#0f172a"),
			Muted:    ac("#475569", "#334155"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Success: ColourSet{
			Base:     ac("#22c55e", "#4ade80"),
			OnBase:   ac("#052e16", "#022c22"),
			Muted:    ac("#16a34a", "#15803d"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Warning: ColourSet{
			Base:     ac("#eab308", "#facc15"),
			OnBase:   ac("#422006", "#422006"),
			Muted:    ac("#ca8a04", "#a16207"),
			Contrast: ac("#111827", "#111827"),
		},
		Danger: ColourSet{
			Base:     ac("#ef4444", "#f87171"),
			OnBase:   ac("#7f1d1d", "#450a0a"),
			Muted:    ac("#dc2626", "#b91c1c"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Info: ColourSet{
			Base:     ac("#06b6d4", "#22d3ee"),
			OnBase:   ac("#083344", "#04121a"),
			Muted:    ac("#0891b2", "#0e7490"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
	}

	borders := BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}

	theme := Theme{
		Palette: palette,
		Borders: borders,
	}

	return theme.Normalize()
}

// DarkTheme returns a theme tuned for dark terminals.
func DarkTheme() Theme {
	theme := DefaultTheme()

	theme.Palette.Surface = ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: "#111827", Dark: "#0b1120"},
		OnBase:   lipgloss.AdaptiveColor{Light: "#f9fafb", Dark: "#e5e7eb"},
		Muted:    lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#111827"},
		Contrast: lipgloss.AdaptiveColor{Light: "#3b82f6", Dark: "#60a5fa"},
	}
	theme.Palette.Neutral = ColourSet{
		Base:     lipgloss.AdaptiveColor{Light: "#475569", Dark: "#334155"},
		OnBase:   lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#cbd5f5"},
		Muted:    lipgloss.AdaptiveColor{Light: "#374151", Dark: "#1f2937"},
		Contrast: lipgloss.AdaptiveColor{Light: "#f8fafc", Dark: "#f8fafc"},
	}

	return theme.Normalize()
}

// Fluent style modifiers.

// Background applies a semantic background with its matching foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground without touching the background.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Foreground(cs.Base)
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant))
	}
}

// BorderColor applies a semantic colour to an existing border.
func BorderColor(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.BorderForeground(cs.Base)
	}
}

// Padding applies uniform padding from the theme scale.
func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(spacingLookup(theme.Spacing.Padding, size))
	}
}

// PaddingX applies horizontal padding from the theme scale.
func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

// PaddingY applies vertical padding from the theme scale.
func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

// PaddingRegion applies card interior padding: the scale value vertically and
// twice the value horizontally, which reads evenly in terminal cells.
func PaddingRegion(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.Padding(value, value*2)
	}
}

// Margin applies uniform margin from the theme scale.
func Margin(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Margin(spacingLookup(theme.Spacing.Margin, size))
	}
}
