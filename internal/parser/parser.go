package parser

import (
	"strings"
)

const (
	featureKeyword  = "Feature:"
	scenarioKeyword = "Scenario:"

	featurePrefix  = "Feature: "
	scenarioPrefix = "Scenario: "
)

// Parse splits content into features. It never fails: input without any
// Feature: line yields a single headerless feature, and malformed blocks
// degrade to features or scenarios with nothing in them.
func Parse(content string) []Feature {
	lines := strings.Split(content, "\n")

	starts := headerIndexes(lines, featureKeyword)
	if len(starts) == 0 {
		return []Feature{parseFeature(nil, lines)}
	}

	// Lines before the first Feature: header belong to no block.
	features := make([]Feature, 0, len(starts))
	for n, start := range starts {
		end := len(lines)
		if n+1 < len(starts) {
			end = starts[n+1]
		}
		name := featureName(lines[start])
		features = append(features, parseFeature(name, lines[start+1:end]))
	}
	return features
}

// ParseStep splits a trimmed step line at its first space.
func ParseStep(line string) Step {
	keyword, description, found := strings.Cut(line, " ")
	if !found {
		return Step{Description: line}
	}
	return Step{Keyword: keyword, Description: description}
}

// featureName returns nil when the header lacks the literal "Feature: "
// prefix, e.g. a bare "Feature:" line.
func featureName(header string) *string {
	trimmed := strings.TrimSpace(header)
	if !strings.HasPrefix(trimmed, featurePrefix) {
		return nil
	}
	name := strings.TrimSpace(trimmed[len(featurePrefix):])
	return &name
}

// parseFeature parses the body of a feature block, header line excluded.
func parseFeature(name *string, body []string) Feature {
	feature := Feature{Name: name}

	starts := headerIndexes(body, scenarioKeyword)
	preambleEnd := len(body)
	if len(starts) > 0 {
		preambleEnd = starts[0]
	}

	if description := nonEmptyLines(body[:preambleEnd]); len(description) > 0 {
		joined := strings.Join(description, "\n")
		feature.Description = &joined
	}

	for n, start := range starts {
		end := len(body)
		if n+1 < len(starts) {
			end = starts[n+1]
		}
		feature.Scenarios = append(feature.Scenarios, parseScenario(body[start:end]))
	}
	return feature
}

// parseScenario parses a scenario block whose first line is the header.
func parseScenario(block []string) Scenario {
	name := strings.TrimSpace(block[0])
	if strings.HasPrefix(name, scenarioPrefix) {
		name = strings.TrimSpace(name[len(scenarioPrefix):])
	}

	scenario := Scenario{Name: name}
	for _, line := range nonEmptyLines(block[1:]) {
		scenario.Steps = append(scenario.Steps, ParseStep(line))
	}
	return scenario
}

func headerIndexes(lines []string, keyword string) []int {
	var indexes []int
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), keyword) {
			indexes = append(indexes, i)
		}
	}
	return indexes
}

func nonEmptyLines(lines []string) []string {
	var out []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
