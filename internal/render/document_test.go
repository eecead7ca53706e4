package render

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bethropolis/magicpad/internal/document"
	"github.com/bethropolis/magicpad/internal/style"
	"github.com/bethropolis/magicpad/internal/theme"
	"github.com/bethropolis/magicpad/internal/types"
)

var ansiEscape = regexp.MustCompile("\x1b\\[[0-9;]*m")

func rng(line, start, end int) types.Range {
	return types.Range{
		Start: types.Position{Line: line, Col: start},
		End:   types.Position{Line: line, Col: end},
	}
}

func sample(t *testing.T) (*document.Document, *style.Registry) {
	t.Helper()
	doc := document.FromText("plain bold red end\n\tsecond")
	reg := style.NewRegistry(0)
	require.NoError(t, reg.RecordRange(style.Bold, rng(1, 6, 14)))
	require.NoError(t, reg.RecordRange(style.Color("red"), rng(1, 11, 14)))
	require.NoError(t, reg.RecordRange(style.Italic, rng(2, 1, 7)))
	return doc, reg
}

func TestLineRuns(t *testing.T) {
	doc, reg := sample(t)

	runs, err := LineRuns(doc, reg, 1)
	require.NoError(t, err)
	require.Equal(t, []Run{
		{Text: "plain "},
		{Text: "bold ", Tags: []style.Tag{style.Bold}},
		{Text: "red", Tags: []style.Tag{style.Bold, style.Color("red")}},
		{Text: " end"},
	}, runs)

	runs, err = LineRuns(doc, reg, 2)
	require.NoError(t, err)
	require.Equal(t, []Run{
		{Text: "\t"},
		{Text: "second", Tags: []style.Tag{style.Italic}},
	}, runs)

	_, err = LineRuns(doc, reg, 3)
	require.Error(t, err)
}

func TestLineRuns_Empty(t *testing.T) {
	runs, err := LineRuns(document.New(), style.NewRegistry(0), 1)
	require.NoError(t, err)
	require.Empty(t, runs)
}

func TestRenderer_Document(t *testing.T) {
	doc, reg := sample(t)
	colors, err := theme.NewColorTable(nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, New(&buf, colors).Document(doc, reg))
	require.Equal(t, "plain bold red end\n\tsecond\n", ansiEscape.ReplaceAllString(buf.String(), ""))
}
