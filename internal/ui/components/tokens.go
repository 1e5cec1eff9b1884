package components

import "strings"

// Card tokens form closed enumerations. The parsers below are total over
// strings: unrecognised input resolves to the default member, never an error.
// Matching is case-insensitive and ignores surrounding whitespace.

// CardVariant is a named visual style preset for the card chrome.
type CardVariant int

const (
	VariantDefault CardVariant = iota
	VariantOutlined
	VariantFilled
)

// String returns the canonical token for the variant.
func (v CardVariant) String() string {
	switch v {
	case VariantOutlined:
		return "outlined"
	case VariantFilled:
		return "filled"
	default:
		return "default"
	}
}

// String returns the canonical token for the size.
func (s CardSize) String() string {
	switch s {
	case SizeXS:
		return "xs"
	case SizeSM:
		return "sm"
	case SizeLG:
		return "lg"
	case SizeXL:
		return "xl"
	default:
		return "md"
	}
}

// String returns the canonical token for the spacing size.
func (s SpacingSize) String() string {
	switch s {
	case SpacingNone:
		return "none"
	case SpacingExtraSmall:
		return "xs"
	case SpacingSmall:
		return "sm"
	case SpacingLarge:
		return "lg"
	default:
		return "md"
	}
}

// Token lists in cycling order, used by config validation and the preview.
var (
	VariantTokens = []string{"default", "outlined", "filled"}
	SizeTokens    = []string{"xs", "sm", "md", "lg", "xl"}
	PaddingTokens = []string{"none", "sm", "md", "lg"}
)

func normalizeToken(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}

// ParsePaddingToken resolves a padding keyword to a spacing token.
// "none" yields zero padding, "sm" compact, "lg" generous; everything else,
// "md" included, yields the medium default.
func ParsePaddingToken(token string) SpacingSize {
	switch normalizeToken(token) {
	case "none":
		return SpacingNone
	case "sm":
		return SpacingSmall
	case "lg":
		return SpacingLarge
	default:
		return SpacingMedium
	}
}

// ParseVariantToken resolves a variant keyword; unknown input yields
// VariantDefault.
func ParseVariantToken(token string) CardVariant {
	switch normalizeToken(token) {
	case "outlined":
		return VariantOutlined
	case "filled":
		return VariantFilled
	default:
		return VariantDefault
	}
}

// ParseSizeToken resolves a size keyword; unknown input yields SizeMD.
func ParseSizeToken(token string) CardSize {
	switch normalizeToken(token) {
	case "xs":
		return SizeXS
	case "sm":
		return SizeSM
	case "lg":
		return SizeLG
	case "xl":
		return SizeXL
	default:
		return SizeMD
	}
}
