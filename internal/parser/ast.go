package parser

// Feature is one Feature: block. Name is nil for a headerless feature,
// Description is nil when the feature has no preamble text.
type Feature struct {
	Name        *string
	Description *string
	Scenarios   []Scenario
}

// Headerless reports whether the feature was synthesized from input that
// had no Feature: line.
func (f Feature) Headerless() bool {
	return f.Name == nil
}

type Scenario struct {
	Name  string
	Steps []Step
}

type Step struct {
	Keyword     string // Given, When, Then, And, But, or empty
	Description string
}

// String rebuilds the step line. A step without a keyword keeps the
// separating space.
func (s Step) String() string {
	return s.Keyword + " " + s.Description
}
