package internal

import "fmt"

// Position marks a byte offset, line and column in the raw input. The
// scanner and engine do not construct one; RawTag carries plain byte
// offsets instead (see RawTag below).
type Position struct {
	Offset int
	Line   int
	Column int
}

// String returns a human-readable position string.
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// RawTagKind discriminates what TryScan recognized at a cursor position.
type RawTagKind int

const (
	// KindNone is never attached to a RawTag; it signals "not a tag" via
	// TryScan's third (ok) return value instead.
	KindNone RawTagKind = iota
	KindCData
	KindStart
	KindEnd
	KindSelfClose
)

// String returns a human-readable tag kind name.
func (k RawTagKind) String() string {
	switch k {
	case KindCData:
		return "CDATA"
	case KindStart:
		return "Start"
	case KindEnd:
		return "End"
	case KindSelfClose:
		return "SelfClose"
	default:
		return "None"
	}
}

// RawAttr is a single parsed attribute, in source order. Duplicates are
// resolved by the caller (last occurrence wins) since the scanner emits
// every occurrence it sees.
type RawAttr struct {
	Name     string
	Value    string
	HasValue bool // false means a value-less (boolean true) attribute
}

// RawTag is the structured result of a single TryScan call.
type RawTag struct {
	Kind       RawTagKind
	Name       string // tag/CDATA-n/a name, raw case (caller folds case)
	Attrs      []RawAttr
	CDataText  string // populated only for KindCData
	Start, End int    // byte range [Start, End) in the raw input
}
