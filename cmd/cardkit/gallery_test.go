package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardkit/cardkit/internal/config"
)

func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestGalleryPlainOutputWhenPiped(t *testing.T) {
	out, err := executeCmd(t, "gallery")
	require.NoError(t, err)

	// Non-terminal writers get the plain listing.
	assert.Contains(t, out, "variant default")
	assert.Contains(t, out, "padding none")
	assert.Contains(t, out, "size xl")
	assert.NotContains(t, out, "╭")
}

func TestGalleryFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
cards:
  - title: Greeting
    body: hello there
    variant: filled
`), 0o644))

	out, err := executeCmd(t, "gallery", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Greeting: hello there")
}

func TestGalleryRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
cards:
  - body: bad
    size: enormous
`), 0o644))

	_, err := executeCmd(t, "gallery", "--config", path)
	assert.Error(t, err)
}

func TestRootDefaultsToGallery(t *testing.T) {
	out, err := executeCmd(t)
	require.NoError(t, err)
	assert.Contains(t, out, "variant default")
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCmd(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "cardkit dev")
}

func TestBuildCardDegradesUnknownTokens(t *testing.T) {
	// The renderer never rejects tokens; unknown values fall back to defaults.
	odd := buildCard(config.CardSpec{Body: "x", Variant: "??", Size: "??", Padding: "??"})
	plain := buildCard(config.CardSpec{Body: "x"})

	assert.Equal(t, plain.View(), odd.View())
}

func TestBuiltinGalleryIsValid(t *testing.T) {
	require.NoError(t, config.ValidateGallery(builtinGallery()))
}
