package internal

// Character constants, named the way the teacher's lexer names them
// rather than spelled out as byte literals at each call site.
const (
	CharLt           = '<'
	CharGt           = '>'
	CharSlash        = '/'
	CharBang         = '!'
	CharEquals       = '='
	CharDoubleQuote  = '"'
	CharSingleQuote  = '\''
	CharUnderscore   = '_'
	CharColon        = ':'
	CharHyphen       = '-'
	CharDot          = '.'
	CharNewline      = '\n'
	CharSpace        = ' '
	CharTab          = '\t'
	CharCarriageRet  = '\r'
)

// Literal markers recognized by the scanner.
const (
	StrCDataOpen  = "<![CDATA["
	StrCDataClose = "]]>"
	StrEndOpen    = "</"
	StrSelfClose  = "/>"
)

// ASCII punctuation trimmed from a retro_line span's edges when
// Config.TrimPunctuation is set. Matches spec §4.1's literal list.
const TrimPunctuationChars = ".,;:!?)]}\"' \t"

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isWhitespace(ch byte) bool {
	return ch == CharSpace || ch == CharTab || ch == CharNewline || ch == CharCarriageRet
}

// isTagNameStart reports whether ch can start a tag name: [A-Za-z].
func isTagNameStart(ch byte) bool {
	return isLetter(ch)
}

// isTagNameChar reports whether ch can continue a tag name:
// [A-Za-z0-9_\-:.]
func isTagNameChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == CharUnderscore || ch == CharHyphen || ch == CharColon || ch == CharDot
}

// isAttrNameStart reports whether ch can start an attribute name:
// [A-Za-z_:]
func isAttrNameStart(ch byte) bool {
	return isLetter(ch) || ch == CharUnderscore || ch == CharColon
}

// isAttrNameChar reports whether ch can continue an attribute name:
// [A-Za-z0-9_\-:.]
func isAttrNameChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == CharUnderscore || ch == CharHyphen || ch == CharColon || ch == CharDot
}
