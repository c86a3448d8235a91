package render

import (
	"strings"

	"github.com/chriserin/gherkin2md/internal/parser"
)

const fence = "```"

// Markdown renders each scenario as a checklist item followed by a fenced
// block holding its steps.
type Markdown struct{}

func (Markdown) Render(features []parser.Feature) string {
	return joinFeatures(features, markdownFeature)
}

func markdownFeature(f parser.Feature) string {
	scenarios := make([]string, 0, len(f.Scenarios))
	for _, s := range f.Scenarios {
		scenarios = append(scenarios, markdownScenario(s))
	}
	body := strings.Join(scenarios, "\n")

	if f.Name == nil {
		return body
	}
	return strings.Join([]string{"## " + *f.Name, "", body}, "\n")
}

func markdownScenario(s parser.Scenario) string {
	steps := make([]string, 0, len(s.Steps))
	for _, step := range s.Steps {
		steps = append(steps, step.String())
	}

	return strings.Join([]string{
		"- [ ] " + s.Name,
		fence,
		strings.Join(steps, "\n"),
		fence,
		"",
	}, "\n")
}
