package style

import (
	"fmt"
	"sort"

	"github.com/bethropolis/magicpad/internal/logger"
	"github.com/bethropolis/magicpad/internal/types"
)

// DefaultLimit is the default cap on distinct tags.
const DefaultLimit = 100

// TaggedRange pairs a range with the tag applied to it.
type TaggedRange struct {
	Tag   Tag
	Range types.Range
}

// Registry is the style-range store of one document: a bounded set of tags,
// each with an ordered list of ranges. Bold and Italic are always present
// and count toward the limit; color tags are added on demand.
type Registry struct {
	limit  int
	ranges map[Tag][]types.Range
}

// NewRegistry creates a registry capped at limit distinct tags.
// Limits below 2 fall back to DefaultLimit.
func NewRegistry(limit int) *Registry {
	if limit < 2 {
		limit = DefaultLimit
	}
	r := &Registry{limit: limit}
	r.Clear()
	return r
}

// Limit returns the configured cap.
func (r *Registry) Limit() int { return r.limit }

// Len returns the number of distinct tags currently registered.
func (r *Registry) Len() int { return len(r.ranges) }

// Has reports whether tag is registered.
func (r *Registry) Has(tag Tag) bool {
	_, ok := r.ranges[tag]
	return ok
}

// Ensure registers tag if it is not present yet. Creating a tag when the
// registry is full fails with ErrTagLimitReached; existing tags always pass.
func (r *Registry) Ensure(tag Tag) error {
	if r.Has(tag) {
		return nil
	}
	if len(r.ranges) >= r.limit {
		return fmt.Errorf("%w: %d distinct tags, cannot add %s", ErrTagLimitReached, r.limit, tag)
	}
	r.ranges[tag] = nil
	logger.DebugTagf("style", "Registry: created tag %s (%d/%d)", tag, len(r.ranges), r.limit)
	return nil
}

// RecordRange appends rng to the ranges of tag, creating the tag if needed.
func (r *Registry) RecordRange(tag Tag, rng types.Range) error {
	if !rng.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidRange, rng)
	}
	if err := r.Ensure(tag); err != nil {
		return err
	}
	r.ranges[tag] = append(r.ranges[tag], rng)
	return nil
}

// Ranges returns a copy of the ranges recorded for tag.
func (r *Registry) Ranges(tag Tag) []types.Range {
	src := r.ranges[tag]
	if len(src) == 0 {
		return nil
	}
	out := make([]types.Range, len(src))
	copy(out, src)
	return out
}

// Tags returns every registered tag in Less order.
func (r *Registry) Tags() []Tag {
	tags := make([]Tag, 0, len(r.ranges))
	for tag := range r.ranges {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return Less(tags[i], tags[j]) })
	return tags
}

// TagsAndRanges returns a copy of the full mapping, including tags that
// currently have no ranges.
func (r *Registry) TagsAndRanges() map[Tag][]types.Range {
	out := make(map[Tag][]types.Range, len(r.ranges))
	for tag := range r.ranges {
		out[tag] = r.Ranges(tag)
	}
	return out
}

// Clear drops every range and every color tag.
func (r *Registry) Clear() {
	r.ranges = map[Tag][]types.Range{
		Bold:   nil,
		Italic: nil,
	}
}

// LineRanges returns the ranges on line, ordered by tag then insertion.
func (r *Registry) LineRanges(line int) []TaggedRange {
	var out []TaggedRange
	for _, tag := range r.Tags() {
		for _, rng := range r.ranges[tag] {
			if rng.Start.Line == line {
				out = append(out, TaggedRange{Tag: tag, Range: rng})
			}
		}
	}
	return out
}

// TagsAt returns the tags covering pos in Less order.
func (r *Registry) TagsAt(pos types.Position) []Tag {
	var out []Tag
	for _, tr := range r.LineRanges(pos.Line) {
		if pos.Col >= tr.Range.Start.Col && pos.Col < tr.Range.End.Col {
			if len(out) == 0 || out[len(out)-1] != tr.Tag {
				out = append(out, tr.Tag)
			}
		}
	}
	return out
}

// ApplyEdit moves ranges on the edited line so they stay attached to their
// text. Text inserted strictly inside a range joins it; text inserted at a
// range boundary does not. Ranges that become empty are dropped.
func (r *Registry) ApplyEdit(e types.Edit) {
	r.rewrite(func(rng types.Range) []types.Range {
		if rng.Start.Line != e.Line {
			return []types.Range{rng}
		}
		if e.IsInsertion() {
			if rng.Start.Col >= e.Start {
				rng.Start.Col += e.NewLen
			}
			if rng.End.Col > e.Start {
				rng.End.Col += e.NewLen
			}
		} else {
			rng.Start.Col = e.MapCol(rng.Start.Col)
			rng.End.Col = e.MapCol(rng.End.Col)
		}
		if !rng.Valid() {
			return nil
		}
		return []types.Range{rng}
	})
}

// SplitLine follows a line break inserted at col on line: later lines move
// down by one and ranges past col move to the new line. A range straddling
// col is split in two.
func (r *Registry) SplitLine(line, col int) {
	r.rewrite(func(rng types.Range) []types.Range {
		switch {
		case rng.Start.Line > line:
			rng.Start.Line++
			rng.End.Line++
			return []types.Range{rng}
		case rng.Start.Line < line || rng.End.Col <= col:
			return []types.Range{rng}
		case rng.Start.Col >= col:
			return []types.Range{shiftRange(rng, line+1, -col)}
		}
		head := types.Range{Start: rng.Start, End: types.Position{Line: line, Col: col}}
		tail := types.Range{
			Start: types.Position{Line: line + 1, Col: 0},
			End:   types.Position{Line: line + 1, Col: rng.End.Col - col},
		}
		return []types.Range{head, tail}
	})
}

// JoinLines follows the removal of the line break after line, whose text
// was prevLen runes long: ranges on line+1 move onto line and later lines
// move up by one.
func (r *Registry) JoinLines(line, prevLen int) {
	r.rewrite(func(rng types.Range) []types.Range {
		switch {
		case rng.Start.Line == line+1:
			return []types.Range{shiftRange(rng, line, prevLen)}
		case rng.Start.Line > line+1:
			rng.Start.Line--
			rng.End.Line--
		}
		return []types.Range{rng}
	})
}

func (r *Registry) rewrite(fn func(types.Range) []types.Range) {
	for tag, list := range r.ranges {
		if len(list) == 0 {
			continue
		}
		out := make([]types.Range, 0, len(list))
		for _, rng := range list {
			out = append(out, fn(rng)...)
		}
		r.ranges[tag] = out
	}
}

func shiftRange(rng types.Range, line, delta int) types.Range {
	return types.Range{
		Start: types.Position{Line: line, Col: rng.Start.Col + delta},
		End:   types.Position{Line: line, Col: rng.End.Col + delta},
	}
}
