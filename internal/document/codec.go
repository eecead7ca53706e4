package document

import (
	"fmt"

	"github.com/bethropolis/magicpad/internal/style"
	"github.com/bethropolis/magicpad/internal/types"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// FileExtension is the conventional extension of saved documents.
const FileExtension = ".ntp"

// ColorOracle reports whether a color name can be rendered.
type ColorOracle interface {
	Valid(name string) bool
}

var prettyOptions = &pretty.Options{Width: 80, Indent: "    "}

// Encode produces the persisted form of a document:
//
//	{"text": "...", "tags": {"bold_style": ["1.0", "1.4", ...], ...}}
//
// Tags are written bold, italic, then colors by name; tags without ranges
// are omitted. Each consecutive pair of positions is one range.
func Encode(doc *Document, reg *style.Registry) ([]byte, error) {
	out, err := sjson.SetBytes([]byte(`{}`), "text", doc.Text())
	if err != nil {
		return nil, fmt.Errorf("encoding text: %w", err)
	}
	out, err = sjson.SetRawBytes(out, "tags", []byte(`{}`))
	if err != nil {
		return nil, fmt.Errorf("encoding tags: %w", err)
	}
	for _, tag := range reg.Tags() {
		ranges := reg.Ranges(tag)
		if len(ranges) == 0 {
			continue
		}
		bounds := make([]string, 0, 2*len(ranges))
		for _, rng := range ranges {
			bounds = append(bounds, rng.Start.String(), rng.End.String())
		}
		out, err = sjson.SetBytes(out, "tags."+tag.PersistName(), bounds)
		if err != nil {
			return nil, fmt.Errorf("encoding tag %s: %w", tag, err)
		}
	}
	return pretty.PrettyOptions(out, prettyOptions), nil
}

// Decode rebuilds a document and its registry from persisted data. Any
// structural problem fails the whole decode with ErrCorruptDocument.
func Decode(data []byte, colors ColorOracle, limit int) (*Document, *style.Registry, error) {
	if !gjson.ValidBytes(data) {
		return nil, nil, corrupt("not valid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, nil, corrupt("top level is not an object")
	}

	text := root.Get("text")
	if !text.Exists() {
		return nil, nil, corrupt("missing \"text\"")
	}
	if text.Type != gjson.String {
		return nil, nil, corrupt("\"text\" is not a string")
	}
	doc := FromText(text.String())
	reg := style.NewRegistry(limit)

	tags := root.Get("tags")
	if !tags.Exists() || tags.Type == gjson.Null {
		return doc, reg, nil
	}
	if !tags.IsObject() {
		return nil, nil, corrupt("\"tags\" is not an object")
	}

	var decodeErr error
	tags.ForEach(func(key, value gjson.Result) bool {
		decodeErr = decodeTag(doc, reg, colors, key.String(), value)
		return decodeErr == nil
	})
	if decodeErr != nil {
		return nil, nil, decodeErr
	}
	return doc, reg, nil
}

func decodeTag(doc *Document, reg *style.Registry, colors ColorOracle, name string, value gjson.Result) error {
	tag, err := style.ParsePersistName(name)
	if err != nil {
		return corruptErr(err)
	}
	if tag.Kind() == style.KindColor && (colors == nil || !colors.Valid(tag.ColorName())) {
		return corrupt(fmt.Sprintf("tag %q: unknown color %q", name, tag.ColorName()))
	}
	if !value.IsArray() {
		return corrupt(fmt.Sprintf("tag %q: ranges are not a list", name))
	}
	items := value.Array()
	if len(items)%2 != 0 {
		return corrupt(fmt.Sprintf("tag %q: odd number of positions (%d)", name, len(items)))
	}

	for i := 0; i < len(items); i += 2 {
		start, err := decodePosition(name, items[i])
		if err != nil {
			return err
		}
		end, err := decodePosition(name, items[i+1])
		if err != nil {
			return err
		}
		rng := types.Range{Start: start, End: end}
		if !rng.Valid() {
			return corrupt(fmt.Sprintf("tag %q: invalid range %s", name, rng))
		}
		if !doc.ContainsRange(rng) {
			return corrupt(fmt.Sprintf("tag %q: range %s is outside the text", name, rng))
		}
		if err := reg.RecordRange(tag, rng); err != nil {
			return corruptErr(err)
		}
	}
	return nil
}

func decodePosition(name string, item gjson.Result) (types.Position, error) {
	if item.Type != gjson.String {
		return types.Position{}, corrupt(fmt.Sprintf("tag %q: position %s is not a string", name, item.Raw))
	}
	pos, err := types.ParsePosition(item.String())
	if err != nil {
		return types.Position{}, corruptErr(err)
	}
	return pos, nil
}

func corrupt(detail string) error {
	return fmt.Errorf("%w: %s", ErrCorruptDocument, detail)
}

func corruptErr(err error) error {
	return fmt.Errorf("%w: %w", ErrCorruptDocument, err)
}
