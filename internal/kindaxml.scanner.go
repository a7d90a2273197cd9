package internal

import "strings"

// cursor is the byte-position bookkeeping shared by the tag scanner and
// the attribute parser, grounded on the teacher's Lexer peek/advance/
// matchStr helpers (internal/prompty.lexer.go) but operating over a
// plain string+offset pair instead of a stateful object, since TryScan
// is a pure function of (input, i) per spec §4.2.
type cursor struct {
	input string
	pos   int
}

func (c *cursor) atEnd() bool { return c.pos >= len(c.input) }

func (c *cursor) peek() byte {
	if c.atEnd() {
		return 0
	}
	return c.input[c.pos]
}

func (c *cursor) peekAt(offset int) byte {
	i := c.pos + offset
	if i < 0 || i >= len(c.input) {
		return 0
	}
	return c.input[i]
}

func (c *cursor) matchStr(s string) bool {
	return strings.HasPrefix(c.input[c.pos:], s)
}

// TryScan implements spec §4.2: at input[i] == '<', attempt in priority
// order CDATA, end tag, start/self-closing tag, else "not a tag".
func TryScan(input string, i int) (RawTag, int, bool) {
	if i >= len(input) || input[i] != CharLt {
		return RawTag{}, i, false
	}
	c := &cursor{input: input, pos: i}

	if c.matchStr(StrCDataOpen) {
		return scanCData(c)
	}
	if c.matchStr(StrEndOpen) {
		return scanEndTag(c)
	}
	if isTagNameStart(c.peekAt(1)) {
		return scanStartOrSelfClose(c)
	}
	return RawTag{}, i, false
}

// scanCData implements spec §4.2.1: CDATA runs to the next "]]>", or to
// end of input if unterminated — never an error, per §7.
func scanCData(c *cursor) (RawTag, int, bool) {
	start := c.pos
	bodyStart := start + len(StrCDataOpen)
	closeIdx := strings.Index(c.input[bodyStart:], StrCDataClose)
	var end int
	var content string
	if closeIdx < 0 {
		content = c.input[bodyStart:]
		end = len(c.input)
	} else {
		content = c.input[bodyStart : bodyStart+closeIdx]
		end = bodyStart + closeIdx + len(StrCDataClose)
	}
	return RawTag{Kind: KindCData, CDataText: content, Start: start, End: end}, end, true
}

// scanEndTag implements spec §4.2.2. A missing '>' before end of input
// fails the scan entirely — the caller reverts and treats '<' as text.
func scanEndTag(c *cursor) (RawTag, int, bool) {
	start := c.pos
	c.pos += len(StrEndOpen)

	nameStart := c.pos
	if c.atEnd() || !isTagNameStart(c.peek()) {
		return RawTag{}, start, false
	}
	c.pos++
	for !c.atEnd() && isTagNameChar(c.peek()) {
		c.pos++
	}
	name := c.input[nameStart:c.pos]

	for !c.atEnd() && isWhitespace(c.peek()) {
		c.pos++
	}
	if c.atEnd() || c.peek() != CharGt {
		return RawTag{}, start, false
	}
	c.pos++
	return RawTag{Kind: KindEnd, Name: name, Start: start, End: c.pos}, c.pos, true
}

// scanStartOrSelfClose implements spec §4.2.3: scan name, then attributes
// with bounded quote recovery, then '>' or '/>'.
func scanStartOrSelfClose(c *cursor) (RawTag, int, bool) {
	start := c.pos
	c.pos++ // consume '<'

	nameStart := c.pos
	c.pos++ // first char already validated as isTagNameStart by caller
	for !c.atEnd() && isTagNameChar(c.peek()) {
		c.pos++
	}
	name := c.input[nameStart:c.pos]

	attrs, selfClose, ok := scanAttributes(c)
	if !ok {
		return RawTag{}, start, false
	}
	kind := KindStart
	if selfClose {
		kind = KindSelfClose
	}
	return RawTag{Kind: kind, Name: name, Attrs: attrs, Start: start, End: c.pos}, c.pos, true
}
