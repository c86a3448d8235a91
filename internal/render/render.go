package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chriserin/gherkin2md/internal/parser"
)

const (
	FormatMarkdown = "markdown"
	FormatYouTrack = "youtrack"
)

// Formats lists the accepted format names in help order.
var Formats = []string{FormatMarkdown, FormatYouTrack}

var ErrUnknownFormat = errors.New("unknown format")

// Renderer turns a parsed feature list into one output dialect.
type Renderer interface {
	Render(features []parser.Feature) string
}

type Options struct {
	YouTrack YouTrackStyle
}

// DefaultOptions matches the markup YouTrack users expect out of the box.
func DefaultOptions() Options {
	return Options{YouTrack: DefaultYouTrackStyle()}
}

// New returns the renderer registered under format.
func New(format string, opts Options) (Renderer, error) {
	switch format {
	case FormatMarkdown:
		return Markdown{}, nil
	case FormatYouTrack:
		return NewYouTrack(opts.YouTrack), nil
	default:
		return nil, fmt.Errorf("%w %q (supported: %s)", ErrUnknownFormat, format, strings.Join(Formats, ", "))
	}
}

func joinFeatures(features []parser.Feature, render func(parser.Feature) string) string {
	parts := make([]string, 0, len(features))
	for _, f := range features {
		parts = append(parts, render(f))
	}
	return strings.Join(parts, "\n\n")
}
