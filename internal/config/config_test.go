package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriserin/gherkin2md/internal/render"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gherkin2md.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault_MatchesRenderDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, render.FormatMarkdown, cfg.Format)
	assert.Equal(t, render.DefaultOptions(), cfg.RenderOptions())
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `format: youtrack
youtrack:
  quote_color: teal
  highlight_quotes: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, render.FormatYouTrack, cfg.Format)
	assert.Equal(t, "teal", cfg.YouTrack.QuoteColor)
	assert.False(t, cfg.YouTrack.HighlightQuotes)
	assert.Equal(t, "darkorange", cfg.YouTrack.KeywordColor)
	assert.Equal(t, render.DefaultYouTrackStyle().PreStyle, cfg.YouTrack.PreStyle)
}

func TestLoad_EmptyFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestLoad_UnknownKey(t *testing.T) {
	_, err := Load(writeConfig(t, "formatt: youtrack\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "formatt")
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "format: [unterminated\n"))
	require.Error(t, err)
}
