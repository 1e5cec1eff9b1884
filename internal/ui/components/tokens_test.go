package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePaddingToken(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected SpacingSize
	}{
		{"none", "none", SpacingNone},
		{"small", "sm", SpacingSmall},
		{"medium", "md", SpacingMedium},
		{"large", "lg", SpacingLarge},
		{"unknown falls back to medium", "xyz", SpacingMedium},
		{"empty falls back to medium", "", SpacingMedium},
		{"uppercase is normalised", "LG", SpacingLarge},
		{"whitespace is normalised", "  sm ", SpacingSmall},
		{"xl is not a padding token", "xl", SpacingMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParsePaddingToken(tt.token))
		})
	}
}

func TestParsePaddingTokenIsTotal(t *testing.T) {
	// Any unrecognised string resolves exactly like "md".
	for _, token := range []string{"xyz", "NONE SENSE", "0", "padding-4", "🂡"} {
		assert.Equal(t, ParsePaddingToken("md"), ParsePaddingToken(token), "token %q", token)
	}
}

func TestParseVariantToken(t *testing.T) {
	tests := []struct {
		token    string
		expected CardVariant
	}{
		{"default", VariantDefault},
		{"outlined", VariantOutlined},
		{"filled", VariantFilled},
		{"Outlined", VariantOutlined},
		{"bogus", VariantDefault},
		{"", VariantDefault},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseVariantToken(tt.token), "token %q", tt.token)
	}
}

func TestParseSizeToken(t *testing.T) {
	tests := []struct {
		token    string
		expected CardSize
	}{
		{"xs", SizeXS},
		{"sm", SizeSM},
		{"md", SizeMD},
		{"lg", SizeLG},
		{"xl", SizeXL},
		{"huge", SizeMD},
		{"", SizeMD},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseSizeToken(tt.token), "token %q", tt.token)
	}
}

func TestTokenStringRoundTrip(t *testing.T) {
	for _, token := range PaddingTokens {
		assert.Equal(t, token, ParsePaddingToken(token).String())
	}
	for _, token := range VariantTokens {
		assert.Equal(t, token, ParseVariantToken(token).String())
	}
	for _, token := range SizeTokens {
		assert.Equal(t, token, ParseSizeToken(token).String())
	}
}
