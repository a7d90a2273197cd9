package internal

// AttrValue is either the boolean flag true (a value-less attribute) or
// a string, with an empty string distinct from the flag per spec's data
// model. Root package kindaxml.AttrValue mirrors this shape; Parse()
// converts between the two (grounded on the teacher's
// internalAttributesAdapter in prompty.template.go).
type AttrValue struct {
	IsFlag bool
	Text   string
}

// Annotation is a (tag, attrs) label bound to a range of emitted text.
type Annotation struct {
	Tag   string
	Attrs map[string]AttrValue
}

// Segment is a contiguous, non-empty run of emitted text sharing an
// identical annotation set, in binding order.
type Segment struct {
	Text        string
	Annotations []Annotation
}

// Marker is a zero-width annotation at a byte position in emitted text.
type Marker struct {
	Pos        int
	Annotation Annotation
}

// Result is the engine's output before root-package conversion to
// kindaxml.ParseResult.
type Result struct {
	Text     string
	Segments []Segment
	Markers  []Marker
}

func attrsFromRaw(raw []RawAttr) map[string]AttrValue {
	if len(raw) == 0 {
		return nil
	}
	out := make(map[string]AttrValue, len(raw))
	for _, a := range raw {
		if a.HasValue {
			out[a.Name] = AttrValue{Text: a.Value}
		} else {
			out[a.Name] = AttrValue{IsFlag: true}
		}
	}
	return out
}
