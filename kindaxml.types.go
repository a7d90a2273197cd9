package kindaxml

import (
	"encoding/json"

	"github.com/soraxas/kindaxml/internal"
)

// AttrValue is a single attribute's value: either the boolean flag true
// (a value-less attribute like <todo done/>) or a string, with an empty
// string distinct from the flag.
type AttrValue struct {
	IsFlag bool
	Text   string
}

// MarshalJSON renders a flag attribute as JSON true and a string
// attribute as its JSON string, matching how an LLM-facing consumer
// would expect to read back a tag's attributes.
func (v AttrValue) MarshalJSON() ([]byte, error) {
	if v.IsFlag {
		return json.Marshal(true)
	}
	return json.Marshal(v.Text)
}

// UnmarshalJSON accepts either a JSON boolean (the flag variant) or a
// JSON string (the string variant), the inverse of MarshalJSON.
func (v *AttrValue) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		v.IsFlag = b
		v.Text = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v.IsFlag = false
	v.Text = s
	return nil
}

// Annotation is a (tag, attributes) label bound to a range of text.
type Annotation struct {
	Tag   string               `json:"tag"`
	Attrs map[string]AttrValue `json:"attrs,omitempty"`
}

// Segment is a contiguous, non-empty run of output text sharing an
// identical, ordered set of annotations.
type Segment struct {
	Text        string       `json:"text"`
	Annotations []Annotation `json:"annotations,omitempty"`
}

// Marker is a zero-width annotation at a byte offset in the output
// text, produced by a self-closing tag.
type Marker struct {
	Pos        int        `json:"pos"`
	Annotation Annotation `json:"annotation"`
}

// ParseResult is the output of Parse: the flattened plain text plus the
// annotations and markers bound to it.
type ParseResult struct {
	Text     string    `json:"text"`
	Segments []Segment `json:"segments"`
	Markers  []Marker  `json:"markers,omitempty"`
}

func attrValueFromInternal(v internal.AttrValue) AttrValue {
	return AttrValue{IsFlag: v.IsFlag, Text: v.Text}
}

func annotationFromInternal(a internal.Annotation) Annotation {
	ann := Annotation{Tag: a.Tag}
	if len(a.Attrs) > 0 {
		ann.Attrs = make(map[string]AttrValue, len(a.Attrs))
		for k, v := range a.Attrs {
			ann.Attrs[k] = attrValueFromInternal(v)
		}
	}
	return ann
}

func resultFromInternal(r internal.Result) *ParseResult {
	out := &ParseResult{Text: r.Text}
	if len(r.Segments) > 0 {
		out.Segments = make([]Segment, len(r.Segments))
		for i, s := range r.Segments {
			seg := Segment{Text: s.Text}
			if len(s.Annotations) > 0 {
				seg.Annotations = make([]Annotation, len(s.Annotations))
				for j, a := range s.Annotations {
					seg.Annotations[j] = annotationFromInternal(a)
				}
			}
			out.Segments[i] = seg
		}
	}
	if len(r.Markers) > 0 {
		out.Markers = make([]Marker, len(r.Markers))
		for i, m := range r.Markers {
			out.Markers[i] = Marker{Pos: m.Pos, Annotation: annotationFromInternal(m.Annotation)}
		}
	}
	return out
}
