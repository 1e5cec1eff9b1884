package components

// Badge is a compact status label.
type Badge struct {
	BaseComponent
	label string
	slot  PaletteSlot
}

// NewBadge creates a neutral badge.
func NewBadge(label string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		label:         label,
		slot:          PaletteNeutral,
	}
}

// SuccessBadge creates a success-coloured badge.
func SuccessBadge(label string) *Badge {
	return NewBadge(label).WithSlot(PaletteSuccess)
}

// InfoBadge creates an info-coloured badge.
func InfoBadge(label string) *Badge {
	return NewBadge(label).WithSlot(PaletteInfo)
}

// WarningBadge creates a warning-coloured badge.
func WarningBadge(label string) *Badge {
	return NewBadge(label).WithSlot(PaletteWarning)
}

// WithSlot sets the semantic colour slot.
func (b *Badge) WithSlot(slot PaletteSlot) *Badge {
	b.slot = slot
	return b
}

// Label returns the badge text.
func (b *Badge) Label() string {
	return b.label
}

// View renders with the default context.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge pill.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	style := Background(b.slot)(b.ComputeStyle(ctx.Theme), ctx.Theme)
	style = PaddingX(SpacingExtraSmall)(style, ctx.Theme)
	return style.Render(b.label)
}
