package internal

import "sort"

// spanRecord is a retroactive annotation over [Start, End) of the
// emitted text, recorded at AnnotateRange time and resolved into
// Segments only at Finish. This is design option (b) from the teacher's
// closest analogue, the two-pass resolver in
// internal/prompty.parser.ast.go, which also separates "record now,
// resolve later" from "mutate a live tree as you go": rather than
// splitting a live segment list on every annotate call, every span is
// recorded flat and the final segmentation is computed once by a single
// sweep over sorted boundaries.
type spanRecord struct {
	start, end int
	ann        Annotation
}

// Builder accumulates emitted plain text plus the annotations and
// markers bound to it, and materializes the final Segment/Marker slices
// at Finish. It has no notion of tags, strategies, or the input byte
// stream — those live in the engine; the Builder only ever sees emitted
// bytes and resolved ranges over them.
type Builder struct {
	text    []byte
	spans   []spanRecord
	markers []Marker
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Len returns the number of bytes emitted so far — the "emit offset"
// referenced throughout spec §4.6's strategy descriptions.
func (b *Builder) Len() int {
	return len(b.text)
}

// Snapshot returns the text emitted so far, for strategies that must
// inspect trailing content at close time (forward_next_token).
func (b *Builder) Snapshot() string {
	return string(b.text)
}

// EmitText appends s verbatim to the emitted stream.
func (b *Builder) EmitText(s string) {
	b.text = append(b.text, s...)
}

// AnnotateRange records that every emitted byte in [start, end) carries
// ann, binding ann after every other annotation already recorded for
// any byte in that range (spec §4.4: "order ... is the order in which
// they were bound").
func (b *Builder) AnnotateRange(start, end int, ann Annotation) {
	if start >= end {
		return
	}
	b.spans = append(b.spans, spanRecord{start: start, end: end, ann: ann})
}

// EmitMarker records a zero-width annotation at the current emit
// offset. Markers never participate in segment boundary computation
// (spec §4.4: "independent of segments; they do not split or merge
// segments").
func (b *Builder) EmitMarker(ann Annotation) {
	b.markers = append(b.markers, Marker{Pos: len(b.text), Annotation: ann})
}

// Finish sweeps the recorded spans into the final flat Segment slice
// and returns it alongside the emitted text and markers.
//
// Boundary offsets are collected from 0, len(text), and every span's
// start/end; because every emitted chunk is copied verbatim from the
// raw input and only ASCII bytes are ever trimmed off a span's edges
// (see retro_line in the engine), no boundary computed here can split a
// multi-byte UTF-8 codepoint.
func (b *Builder) Finish() (string, []Segment, []Marker) {
	text := string(b.text)
	n := len(text)

	boundSet := make(map[int]struct{}, len(b.spans)*2+2)
	boundSet[0] = struct{}{}
	boundSet[n] = struct{}{}
	for _, sp := range b.spans {
		if sp.start >= 0 && sp.start <= n {
			boundSet[sp.start] = struct{}{}
		}
		if sp.end >= 0 && sp.end <= n {
			boundSet[sp.end] = struct{}{}
		}
	}
	bounds := make([]int, 0, len(boundSet))
	for k := range boundSet {
		bounds = append(bounds, k)
	}
	sort.Ints(bounds)

	var segments []Segment
	for i := 0; i+1 < len(bounds); i++ {
		a, bnd := bounds[i], bounds[i+1]
		if a >= bnd {
			continue
		}
		chunk := text[a:bnd]
		if chunk == "" {
			continue
		}
		var anns []Annotation
		for _, sp := range b.spans {
			if sp.start <= a && bnd <= sp.end {
				anns = append(anns, sp.ann)
			}
		}
		segments = append(segments, Segment{Text: chunk, Annotations: anns})
	}

	return text, segments, b.markers
}
