package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chriserin/gherkin2md/internal/parser"
)

func TestYouTrack_Feature(t *testing.T) {
	features := []parser.Feature{{
		Name: strPtr("Some feature"),
		Scenarios: []parser.Scenario{
			{Name: "Some scenario", Steps: steps("Given A", `When I insert "B" into field`, "Then C")},
			{Name: "Some other scenario", Steps: steps("Given A", "When B", "Then C")},
		},
	}}

	out := NewYouTrack(DefaultYouTrackStyle()).Render(features)

	expected := `## Some feature
- [ ] Some scenario
<pre style="padding-top: 10px; padding-bottom: 10px; margin-bottom: 20px"><span style="color: darkorange">Given</span> A
<span style="color: darkorange">When</span> I insert <span style="color: dodgerblue">"B"</span> into field
<span style="color: darkorange">Then</span> C</pre>

- [ ] Some other scenario
<pre style="padding-top: 10px; padding-bottom: 10px; margin-bottom: 20px"><span style="color: darkorange">Given</span> A
<span style="color: darkorange">When</span> B
<span style="color: darkorange">Then</span> C</pre>`
	assert.Equal(t, expected, out)
}

func TestYouTrack_HighlightsEveryQuotedSubstring(t *testing.T) {
	y := NewYouTrack(DefaultYouTrackStyle())

	out := y.step(parser.ParseStep(`When I move "a" to "b c" and "unclosed`))

	assert.Equal(t, `<span style="color: darkorange">When</span> I move <span style="color: dodgerblue">"a"</span> to <span style="color: dodgerblue">"b c"</span> and "unclosed`, out)
}

func TestYouTrack_QuoteHighlightingDisabled(t *testing.T) {
	style := DefaultYouTrackStyle()
	style.HighlightQuotes = false

	out := NewYouTrack(style).step(parser.ParseStep(`When I insert "B" into field`))

	assert.Equal(t, `<span style="color: darkorange">When</span> I insert "B" into field`, out)
}

func TestYouTrack_CustomStyle(t *testing.T) {
	style := YouTrackStyle{KeywordColor: "red", QuoteColor: "$1", PreStyle: "margin: 0", HighlightQuotes: true}
	features := []parser.Feature{{Scenarios: []parser.Scenario{{Name: "s", Steps: steps(`Given "x"`)}}}}

	out := NewYouTrack(style).Render(features)

	assert.Equal(t, `- [ ] s
<pre style="margin: 0"><span style="color: red">Given</span> <span style="color: $1">"x"</span></pre>`, out)
}

func TestYouTrack_MultipleFeatures(t *testing.T) {
	features := []parser.Feature{
		{Name: strPtr("One"), Scenarios: []parser.Scenario{{Name: "a"}}},
		{Scenarios: []parser.Scenario{{Name: "b"}}},
	}
	style := DefaultYouTrackStyle()
	style.PreStyle = ""

	out := NewYouTrack(style).Render(features)

	assert.Equal(t, "## One\n- [ ] a\n<pre style=\"\"></pre>\n\n- [ ] b\n<pre style=\"\"></pre>", out)
}

func TestNew(t *testing.T) {
	r, err := New(FormatMarkdown, DefaultOptions())
	require.NoError(t, err)
	assert.IsType(t, Markdown{}, r)

	r, err = New(FormatYouTrack, DefaultOptions())
	require.NoError(t, err)
	assert.IsType(t, YouTrack{}, r)
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New("html", DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownFormat))
	assert.Contains(t, err.Error(), `"html"`)
	assert.Contains(t, err.Error(), "markdown, youtrack")
}
