package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cardkiterrors "github.com/cardkit/cardkit/pkg/errors"
)

func writeGallery(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseGalleryValid(t *testing.T) {
	path := writeGallery(t, `
theme: dark
cards:
  - title: Status
    body: All systems nominal
    variant: outlined
    size: lg
    padding: sm
    hover: true
  - body: Plain card
`)

	gallery, err := ParseGallery(path)
	require.NoError(t, err)

	assert.Equal(t, "dark", gallery.Theme)
	require.Len(t, gallery.Cards, 2)
	assert.Equal(t, "outlined", gallery.Cards[0].Variant)
	assert.True(t, gallery.Cards[0].Hover)

	// Omitted token fields stay empty; the renderer supplies defaults.
	assert.Empty(t, gallery.Cards[1].Variant)
	assert.Empty(t, gallery.Cards[1].Padding)
}

func TestParseGalleryMissingFile(t *testing.T) {
	_, err := ParseGallery(filepath.Join(t.TempDir(), "absent.yaml"))

	var parseErr *cardkiterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseGalleryMalformedYAML(t *testing.T) {
	path := writeGallery(t, "cards:\n  - body: [unclosed\n")

	_, err := ParseGallery(path)

	var parseErr *cardkiterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseGalleryRejectsUnknownVariant(t *testing.T) {
	path := writeGallery(t, `
cards:
  - body: Bad variant
    variant: fancy
`)

	_, err := ParseGallery(path)

	var validationErr *cardkiterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Field, "Variant")
}

func TestParseGalleryRejectsUnknownPadding(t *testing.T) {
	path := writeGallery(t, `
cards:
  - body: Bad padding
    padding: xl
`)

	_, err := ParseGallery(path)

	var validationErr *cardkiterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Field, "Padding")
}

func TestParseGalleryRequiresCards(t *testing.T) {
	path := writeGallery(t, "theme: light\n")

	_, err := ParseGallery(path)

	var validationErr *cardkiterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestParseGalleryRejectsUnknownTheme(t *testing.T) {
	path := writeGallery(t, `
theme: sepia
cards:
  - body: x
`)

	_, err := ParseGallery(path)
	assert.Error(t, err)
}

func TestValidateGalleryNil(t *testing.T) {
	assert.Error(t, ValidateGallery(nil))
}
