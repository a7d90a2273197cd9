package internal

// scanAttributes implements spec §4.3, repeatedly reading attributes
// until the tag's '>' or '/>' terminator. Grounded on the teacher's
// scanAttribute/scanAttrName/scanAttrValue (internal/prompty.lexer.go),
// generalized to allow value-less (boolean) attributes and to skip
// garbage bytes instead of raising a lexer error, and to let bounded
// quote recovery close the tag itself when a quoted value runs into an
// unescaped '>' or "/>" before its closing quote.
//
// Returns ok=false only when input is exhausted before a terminator is
// found — the caller then fails the whole tag scan (§4.2: "no tag scan
// advances past the first '>' that is not demonstrably inside a closed
// quoted region", and absent any '>' at all the tag never closes).
func scanAttributes(c *cursor) (attrs []RawAttr, selfClose bool, ok bool) {
	for {
		for !c.atEnd() && isWhitespace(c.peek()) {
			c.pos++
		}
		if c.atEnd() {
			return attrs, false, false
		}
		if c.matchStr(StrSelfClose) {
			c.pos += len(StrSelfClose)
			return attrs, true, true
		}
		if c.peek() == CharGt {
			c.pos++
			return attrs, false, true
		}

		if !isAttrNameStart(c.peek()) {
			// Rule 2: pure garbage is ignored one byte at a time.
			c.pos++
			continue
		}

		nameStart := c.pos
		c.pos++
		for !c.atEnd() && isAttrNameChar(c.peek()) {
			c.pos++
		}
		name := c.input[nameStart:c.pos]

		for !c.atEnd() && isWhitespace(c.peek()) {
			c.pos++
		}

		if c.atEnd() {
			return attrs, false, false
		}
		if c.peek() != CharEquals {
			attrs = append(attrs, RawAttr{Name: name, HasValue: false})
			continue
		}
		c.pos++ // consume '='
		for !c.atEnd() && isWhitespace(c.peek()) {
			c.pos++
		}
		if c.atEnd() {
			return attrs, false, false
		}

		if c.peek() == CharSingleQuote || c.peek() == CharDoubleQuote {
			quote := c.peek()
			c.pos++
			valStart := c.pos
			for {
				if c.atEnd() {
					return attrs, false, false
				}
				ch := c.peek()
				if ch == quote {
					attrs = append(attrs, RawAttr{Name: name, Value: c.input[valStart:c.pos], HasValue: true})
					c.pos++ // consume closing quote
					break
				}
				if ch == CharGt {
					// Bounded quote recovery: the '>' terminates both the
					// value and the tag itself.
					attrs = append(attrs, RawAttr{Name: name, Value: c.input[valStart:c.pos], HasValue: true})
					c.pos++
					return attrs, false, true
				}
				if c.matchStr(StrSelfClose) {
					attrs = append(attrs, RawAttr{Name: name, Value: c.input[valStart:c.pos], HasValue: true})
					c.pos += len(StrSelfClose)
					return attrs, true, true
				}
				c.pos++
			}
			continue
		}

		valStart := c.pos
		for !c.atEnd() && !isWhitespace(c.peek()) && c.peek() != CharGt && !c.matchStr(StrSelfClose) {
			c.pos++
		}
		attrs = append(attrs, RawAttr{Name: name, Value: c.input[valStart:c.pos], HasValue: true})
	}
}
