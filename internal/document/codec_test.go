package document

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"pgregory.net/rapid"

	"github.com/bethropolis/magicpad/internal/style"
	"github.com/bethropolis/magicpad/internal/types"
)

type colorSet map[string]bool

func (c colorSet) Valid(name string) bool { return c[name] }

var testColors = colorSet{"red": true, "blue": true}

func rng(line, start, end int) types.Range {
	return types.Range{
		Start: types.Position{Line: line, Col: start},
		End:   types.Position{Line: line, Col: end},
	}
}

func TestEncode_Format(t *testing.T) {
	doc := FromText("hello world\nsecond")
	reg := style.NewRegistry(0)
	require.NoError(t, reg.RecordRange(style.Color("red"), rng(2, 0, 6)))
	require.NoError(t, reg.RecordRange(style.Bold, rng(1, 0, 5)))
	require.NoError(t, reg.RecordRange(style.Bold, rng(1, 6, 11)))

	data, err := Encode(doc, reg)
	require.NoError(t, err)
	require.True(t, gjson.ValidBytes(data))
	require.Contains(t, string(data), "\n    \"text\"", "indented with four spaces")

	require.Equal(t, "hello world\nsecond", gjson.GetBytes(data, "text").String())

	var keys []string
	gjson.GetBytes(data, "tags").ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	require.Equal(t, []string{"bold_style", "dynamic_color_red"}, keys, "empty italic is omitted")

	var bold []string
	for _, v := range gjson.GetBytes(data, "tags.bold_style").Array() {
		bold = append(bold, v.String())
	}
	require.Equal(t, []string{"1.0", "1.5", "1.6", "1.11"}, bold)
}

func TestEncode_Empty(t *testing.T) {
	data, err := Encode(New(), style.NewRegistry(0))
	require.NoError(t, err)
	require.Equal(t, "", gjson.GetBytes(data, "text").String())
	require.True(t, gjson.GetBytes(data, "tags").IsObject())
}

func TestDecode(t *testing.T) {
	payload := `{
		"text": "a b\nred text",
		"tags": {
			"italic_style": ["1.2", "1.3"],
			"bold_style": ["1.0", "1.1"],
			"dynamic_color_red": ["2.0", "2.3", "2.4", "2.8"]
		}
	}`
	doc, reg, err := Decode([]byte(payload), testColors, 0)
	require.NoError(t, err)
	require.Equal(t, "a b\nred text", doc.Text())
	require.Equal(t, []types.Range{rng(1, 0, 1)}, reg.Ranges(style.Bold))
	require.Equal(t, []types.Range{rng(1, 2, 3)}, reg.Ranges(style.Italic))
	require.Equal(t, []types.Range{rng(2, 0, 3), rng(2, 4, 8)}, reg.Ranges(style.Color("red")))
}

func TestDecode_MissingTags(t *testing.T) {
	for _, payload := range []string{`{"text": "x"}`, `{"text": "x", "tags": null}`} {
		doc, reg, err := Decode([]byte(payload), testColors, 0)
		require.NoError(t, err)
		require.Equal(t, "x", doc.Text())
		require.Equal(t, 2, reg.Len())
	}
}

func TestDecode_Corrupt(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", `{"text": `},
		{"array root", `["text"]`},
		{"missing text", `{"tags": {}}`},
		{"text not string", `{"text": 3, "tags": {}}`},
		{"tags not object", `{"text": "x", "tags": []}`},
		{"odd list", `{"text": "hello", "tags": {"bold_style": ["1.0", "1.2", "1.3"]}}`},
		{"ranges not list", `{"text": "hello", "tags": {"bold_style": "1.0"}}`},
		{"position not string", `{"text": "hello", "tags": {"bold_style": [1.0, "1.2"]}}`},
		{"malformed position", `{"text": "hello", "tags": {"bold_style": ["1:0", "1.2"]}}`},
		{"line zero", `{"text": "hello", "tags": {"bold_style": ["0.0", "0.2"]}}`},
		{"column past end", `{"text": "hello", "tags": {"bold_style": ["1.0", "1.6"]}}`},
		{"line past end", `{"text": "hello", "tags": {"bold_style": ["2.0", "2.1"]}}`},
		{"reversed", `{"text": "hello", "tags": {"bold_style": ["1.3", "1.1"]}}`},
		{"empty range", `{"text": "hello", "tags": {"bold_style": ["1.3", "1.3"]}}`},
		{"multi line", `{"text": "hello\nx", "tags": {"bold_style": ["1.3", "2.1"]}}`},
		{"unknown tag", `{"text": "hello", "tags": {"underline_style": ["1.0", "1.1"]}}`},
		{"unknown color", `{"text": "hello", "tags": {"dynamic_color_bogus": ["1.0", "1.1"]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, reg, err := Decode([]byte(tt.payload), testColors, 0)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrCorruptDocument), err.Error())
			require.Nil(t, doc)
			require.Nil(t, reg)
		})
	}
}

func TestDecode_TagLimit(t *testing.T) {
	payload := `{"text": "hello", "tags": {"dynamic_color_red": ["1.0", "1.1"], "dynamic_color_blue": ["1.1", "1.2"]}}`
	_, _, err := Decode([]byte(payload), testColors, 3)
	require.True(t, errors.Is(err, ErrCorruptDocument))
	require.True(t, errors.Is(err, style.ErrTagLimitReached))

	_, reg, err := Decode([]byte(payload), testColors, 4)
	require.NoError(t, err)
	require.Equal(t, 4, reg.Len())
}

func TestCodec_RoundTrip(t *testing.T) {
	tags := []style.Tag{style.Bold, style.Italic, style.Color("red"), style.Color("blue")}
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringMatching(`[a-zé "\\{}:.*/\t]{0,12}`), 1, 5).Draw(t, "lines")
		doc := FromText(strings.Join(lines, "\n"))
		reg := style.NewRegistry(0)

		want := map[style.Tag][]types.Range{}
		n := rapid.IntRange(0, 10).Draw(t, "ranges")
		for i := 0; i < n; i++ {
			line := rapid.IntRange(1, doc.LineCount()).Draw(t, fmt.Sprintf("line%d", i))
			length := doc.LineLen(line)
			if length == 0 {
				continue
			}
			start := rapid.IntRange(0, length-1).Draw(t, fmt.Sprintf("start%d", i))
			end := rapid.IntRange(start+1, length).Draw(t, fmt.Sprintf("end%d", i))
			tag := rapid.SampledFrom(tags).Draw(t, fmt.Sprintf("tag%d", i))
			r := rng(line, start, end)
			require.NoError(t, reg.RecordRange(tag, r))
			want[tag] = append(want[tag], r)
		}

		data, err := Encode(doc, reg)
		require.NoError(t, err)

		gotDoc, gotReg, err := Decode(data, testColors, 0)
		require.NoError(t, err)
		require.Equal(t, doc.Text(), gotDoc.Text())
		for _, tag := range tags {
			require.Equal(t, want[tag], gotReg.Ranges(tag), tag.String())
		}
	})
}
