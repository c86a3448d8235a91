// Package config loads the optional gherkin2md YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/chriserin/gherkin2md/internal/render"
)

// YouTrackConfig mirrors render.YouTrackStyle.
type YouTrackConfig struct {
	KeywordColor    string `yaml:"keyword_color"`
	QuoteColor      string `yaml:"quote_color"`
	PreStyle        string `yaml:"pre_style"`
	HighlightQuotes bool   `yaml:"highlight_quotes"`
}

// Config models the file passed with --config.
type Config struct {
	Format   string         `yaml:"format"`
	YouTrack YouTrackConfig `yaml:"youtrack"`
}

func Default() Config {
	style := render.DefaultYouTrackStyle()
	return Config{
		Format: render.FormatMarkdown,
		YouTrack: YouTrackConfig{
			KeywordColor:    style.KeywordColor,
			QuoteColor:      style.QuoteColor,
			PreStyle:        style.PreStyle,
			HighlightQuotes: style.HighlightQuotes,
		},
	}
}

// Load reads path on top of the defaults. Keys absent from the file keep
// their default values; unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) RenderOptions() render.Options {
	return render.Options{
		YouTrack: render.YouTrackStyle{
			KeywordColor:    c.YouTrack.KeywordColor,
			QuoteColor:      c.YouTrack.QuoteColor,
			PreStyle:        c.YouTrack.PreStyle,
			HighlightQuotes: c.YouTrack.HighlightQuotes,
		},
	}
}
