// Package config loads and validates gallery documents: YAML files that
// describe a set of cards to render. Validation catches token typos in
// authored files early; the renderer itself still degrades silently on
// unknown tokens.
package config

// Gallery is the root of a gallery document.
type Gallery struct {
	Theme string     `yaml:"theme,omitempty" validate:"omitempty,oneof=light dark"`
	Cards []CardSpec `yaml:"cards" validate:"required,min=1,dive"`
}

// CardSpec describes one card. Empty token fields mean "use the default".
type CardSpec struct {
	Title   string `yaml:"title,omitempty" validate:"max=100"`
	Body    string `yaml:"body" validate:"required"`
	Variant string `yaml:"variant,omitempty" validate:"omitempty,card_variant"`
	Size    string `yaml:"size,omitempty" validate:"omitempty,card_size"`
	Padding string `yaml:"padding,omitempty" validate:"omitempty,card_padding"`
	Hover   bool   `yaml:"hover,omitempty"`
	Focus   bool   `yaml:"focus,omitempty"`
}
