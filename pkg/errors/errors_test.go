package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseErrorMessage(t *testing.T) {
	underlying := errors.New("unexpected mapping")

	withLine := NewParseError("gallery.yaml", 7, underlying)
	assert.Equal(t, "parse error: gallery.yaml:7: unexpected mapping", withLine.Error())

	withoutLine := NewParseError("gallery.yaml", 0, underlying)
	assert.Equal(t, "parse error: gallery.yaml: unexpected mapping", withoutLine.Error())
}

func TestParseErrorUnwrap(t *testing.T) {
	underlying := errors.New("boom")
	err := NewParseError("gallery.yaml", 1, underlying)

	require.ErrorIs(t, err, underlying)
}

func TestValidationErrorMessage(t *testing.T) {
	withField := NewValidationError("cards[0].variant", "unknown token", nil)
	assert.Equal(t, "validation error: cards[0].variant: unknown token", withField.Error())

	withoutField := NewValidationError("", "gallery is empty", nil)
	assert.Equal(t, "validation error: gallery is empty", withoutField.Error())
}

func TestValidationErrorUnwrap(t *testing.T) {
	underlying := errors.New("boom")
	err := NewValidationError("theme", "bad", underlying)

	require.ErrorIs(t, err, underlying)
}
