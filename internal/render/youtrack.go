package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/chriserin/gherkin2md/internal/parser"
)

var quotedPattern = regexp.MustCompile(`("[^"]*")`)

// YouTrackStyle holds the inline CSS used by the YouTrack renderer.
type YouTrackStyle struct {
	KeywordColor    string
	QuoteColor      string
	PreStyle        string
	HighlightQuotes bool
}

func DefaultYouTrackStyle() YouTrackStyle {
	return YouTrackStyle{
		KeywordColor:    "darkorange",
		QuoteColor:      "dodgerblue",
		PreStyle:        "padding-top: 10px; padding-bottom: 10px; margin-bottom: 20px",
		HighlightQuotes: true,
	}
}

// YouTrack renders the HTML subset accepted by YouTrack issue descriptions.
type YouTrack struct {
	style YouTrackStyle
}

func NewYouTrack(style YouTrackStyle) YouTrack {
	return YouTrack{style: style}
}

func (y YouTrack) Render(features []parser.Feature) string {
	return joinFeatures(features, y.feature)
}

func (y YouTrack) feature(f parser.Feature) string {
	scenarios := make([]string, 0, len(f.Scenarios))
	for _, s := range f.Scenarios {
		scenarios = append(scenarios, y.scenario(s))
	}
	body := strings.Join(scenarios, "\n\n")

	if f.Name == nil {
		return body
	}
	return fmt.Sprintf("## %s\n%s", *f.Name, body)
}

func (y YouTrack) scenario(s parser.Scenario) string {
	steps := make([]string, 0, len(s.Steps))
	for _, step := range s.Steps {
		steps = append(steps, y.step(step))
	}

	return fmt.Sprintf("- [ ] %s\n<pre style=\"%s\">%s</pre>", s.Name, y.style.PreStyle, strings.Join(steps, "\n"))
}

func (y YouTrack) step(s parser.Step) string {
	description := s.Description
	if y.style.HighlightQuotes {
		description = quotedPattern.ReplaceAllStringFunc(description, func(quoted string) string {
			return fmt.Sprintf(`<span style="color: %s">%s</span>`, y.style.QuoteColor, quoted)
		})
	}
	return fmt.Sprintf(`<span style="color: %s">%s</span> %s`, y.style.KeywordColor, s.Keyword, description)
}
