package pylit

import (
	"fmt"
	"unicode/utf8"
)

// tokenType represents a type of a token.
type tokenType int

// token types.
const (
	tokEOF      tokenType = iota // End of input
	tokLParen                    // Left parenthesis
	tokRParen                    // Right parenthesis
	tokLBracket                  // Left bracket
	tokRBracket                  // Right bracket
	tokLBrace                    // Left brace
	tokRBrace                    // Right brace
	tokComma                     // Comma
	tokColon                     // Colon
	tokPlus                      // Plus sign
	tokMinus                     // Minus sign
	tokInt                       // Integer literal
	tokFloat                     // Float literal
	tokImag                      // Imaginary literal
	tokString                    // String literal (body, escapes undecoded)
	tokBytes                     // Bytes literal (body, escapes undecoded)
	tokTrue                      // True keyword
	tokFalse                     // False keyword
	tokNone                      // None keyword
)

// token represents a token of the literal grammar. For string and bytes
// tokens Lit holds the raw body between the quotes with escape sequences
// left undecoded; for number tokens it holds the raw literal text including
// digit separators.
type token struct {
	Lit  string    // Literal text of the token
	Type tokenType // Type of the token
	Line int       // Line number of the token
	Col  int       // Column number of the token
}

// position represents a position in the input.
type position struct {
	line int // Line number
	col  int // Column number
}

// lexer represents a scanner over literal source text.
type lexer struct {
	src string   // Input text
	off int      // Offset of the current character
	pos position // Position of the current character
}

// newLexer creates a new lexer over the input text.
func newLexer(src string) *lexer {
	l := &lexer{src: src, pos: position{line: 1, col: 1}}
	if len(src) >= 3 && src[0] == 0xEF && src[1] == 0xBB && src[2] == 0xBF {
		// Skip UTF-8 BOM if present.
		l.off = 3
	}

	return l
}

// next returns the next token from the input.
func (l *lexer) next() (token, error) {
	l.skipWhitespace()
	if l.eof() {
		return token{Type: tokEOF, Line: l.pos.line, Col: l.pos.col}, nil
	}

	start := l.pos

	// Tokenize the current character.
	switch ch := l.src[l.off]; ch {
	case '(':
		l.advance()
		return token{Type: tokLParen, Lit: "(", Line: start.line, Col: start.col}, nil
	case ')':
		l.advance()
		return token{Type: tokRParen, Lit: ")", Line: start.line, Col: start.col}, nil
	case '[':
		l.advance()
		return token{Type: tokLBracket, Lit: "[", Line: start.line, Col: start.col}, nil
	case ']':
		l.advance()
		return token{Type: tokRBracket, Lit: "]", Line: start.line, Col: start.col}, nil
	case '{':
		l.advance()
		return token{Type: tokLBrace, Lit: "{", Line: start.line, Col: start.col}, nil
	case '}':
		l.advance()
		return token{Type: tokRBrace, Lit: "}", Line: start.line, Col: start.col}, nil
	case ',':
		l.advance()
		return token{Type: tokComma, Lit: ",", Line: start.line, Col: start.col}, nil
	case ':':
		l.advance()
		return token{Type: tokColon, Lit: ":", Line: start.line, Col: start.col}, nil
	case '+':
		l.advance()
		return token{Type: tokPlus, Lit: "+", Line: start.line, Col: start.col}, nil
	case '-':
		l.advance()
		return token{Type: tokMinus, Lit: "-", Line: start.line, Col: start.col}, nil

	case '\'', '"':
		return l.scanString(tokString, start)

	case '.':
		if isDigit(l.byteAt(l.off + 1)) {
			return l.scanNumber(start)
		}
		return token{}, l.errorf("unexpected character '.'")

	default:
		if isDigit(ch) {
			return l.scanNumber(start)
		}

		if (ch == 'b' || ch == 'B') && isQuote(l.byteAt(l.off+1)) {
			l.advance() // consume prefix
			return l.scanString(tokBytes, start)
		}

		if isWordStart(ch) {
			return l.scanWord(start)
		}

		r, _ := utf8.DecodeRuneInString(l.src[l.off:])
		return token{}, l.errorf("unexpected character %q", r)
	}
}

// eof reports whether the input is exhausted.
func (l *lexer) eof() bool {
	return l.off >= len(l.src)
}

// advance consumes the current character.
func (l *lexer) advance() {
	r, size := utf8.DecodeRuneInString(l.src[l.off:])
	l.off += size
	if r == '\n' {
		l.pos.line++
		l.pos.col = 1
	} else {
		l.pos.col++
	}
}

// byteAt returns the byte at the given offset, or 0 past the end.
func (l *lexer) byteAt(i int) byte {
	if i >= len(l.src) {
		return 0
	}
	return l.src[i]
}

// skipWhitespace skips whitespace characters between tokens.
func (l *lexer) skipWhitespace() {
	for !l.eof() {
		switch l.src[l.off] {
		case ' ', '\t', '\r', '\n', '\v', '\f':
			l.advance()
		default:
			return
		}
	}
}

// scanWord reads a keyword. Identifiers other than the literal keywords are
// not part of the grammar.
func (l *lexer) scanWord(start position) (token, error) {
	begin := l.off
	for !l.eof() && isWordPart(l.src[l.off]) {
		l.advance()
	}

	lit := l.src[begin:l.off]
	switch lit {
	case "True":
		return token{Type: tokTrue, Lit: lit, Line: start.line, Col: start.col}, nil
	case "False":
		return token{Type: tokFalse, Lit: lit, Line: start.line, Col: start.col}, nil
	case "None":
		return token{Type: tokNone, Lit: lit, Line: start.line, Col: start.col}, nil
	default:
		return token{}, l.errorfAt(start, "unexpected identifier %q, expected a literal", lit)
	}
}

// scanString reads a string or bytes literal starting at the opening quote.
// The returned token holds the raw body between the quotes; escapes are
// decoded later so that escape errors carry the token position.
func (l *lexer) scanString(tt tokenType, start position) (token, error) {
	quote := l.src[l.off]
	triple := l.byteAt(l.off+1) == quote && l.byteAt(l.off+2) == quote

	l.advance() // opening quote
	if triple {
		l.advance()
		l.advance()
	}

	begin := l.off
	for {
		if l.eof() {
			return token{}, l.errorfAt(start, "unterminated string literal")
		}

		ch := l.src[l.off]

		// A backslash always consumes the next character, so an escaped
		// quote never terminates the literal. A CRLF pair after a
		// backslash counts as one line continuation.
		if ch == '\\' {
			l.advance()
			if l.eof() {
				return token{}, l.errorfAt(start, "unterminated string literal")
			}
			esc := l.src[l.off]
			l.advance()
			if esc == '\r' && !l.eof() && l.src[l.off] == '\n' {
				l.advance()
			}
			continue
		}

		if ch == quote {
			if !triple {
				end := l.off
				l.advance()
				return token{Type: tt, Lit: l.src[begin:end], Line: start.line, Col: start.col}, nil
			}
			if l.byteAt(l.off+1) == quote && l.byteAt(l.off+2) == quote {
				end := l.off
				l.advance()
				l.advance()
				l.advance()
				return token{Type: tt, Lit: l.src[begin:end], Line: start.line, Col: start.col}, nil
			}
			l.advance()
			continue
		}

		if !triple && (ch == '\n' || ch == '\r') {
			return token{}, l.errorf("newline in string literal")
		}

		l.advance()
	}
}

// scanNumber reads an integer, float, or imaginary literal. The raw text is
// kept as-is, including digit separators; validation here is purely lexical.
func (l *lexer) scanNumber(start position) (token, error) {
	begin := l.off

	// Radix-prefixed integers.
	if l.src[l.off] == '0' {
		switch l.byteAt(l.off + 1) {
		case 'b', 'B':
			return l.scanRadixInt(start, begin, isBinDigit)
		case 'o', 'O':
			return l.scanRadixInt(start, begin, isOctDigit)
		case 'x', 'X':
			return l.scanRadixInt(start, begin, isHexDigit)
		}
	}

	hasDot := false
	hasExp := false

	// The integer part is absent in leading-dot floats such as .5.
	if l.src[l.off] != '.' {
		if err := l.scanDigitRun(); err != nil {
			return token{}, err
		}
	}

	if !l.eof() && l.src[l.off] == '.' {
		hasDot = true
		l.advance()
		if isDigit(l.byteAt(l.off)) {
			if err := l.scanDigitRun(); err != nil {
				return token{}, err
			}
		}
	}

	if !l.eof() && (l.src[l.off] == 'e' || l.src[l.off] == 'E') {
		// An exponent marker must be followed by at least one digit.
		if sep := l.byteAt(l.off + 1); isDigit(sep) ||
			((sep == '+' || sep == '-') && isDigit(l.byteAt(l.off+2))) {
			hasExp = true
			l.advance()
			if c := l.src[l.off]; c == '+' || c == '-' {
				l.advance()
			}
			if err := l.scanDigitRun(); err != nil {
				return token{}, err
			}
		} else {
			return token{}, l.errorfAt(start, "invalid number literal: exponent has no digits")
		}
	}

	tt := tokInt
	if hasDot || hasExp {
		tt = tokFloat
	}
	if !l.eof() && (l.src[l.off] == 'j' || l.src[l.off] == 'J') {
		l.advance()
		tt = tokImag
	}

	if err := l.checkNumberEnd(start); err != nil {
		return token{}, err
	}

	return token{Type: tt, Lit: l.src[begin:l.off], Line: start.line, Col: start.col}, nil
}

// scanRadixInt reads a 0b/0o/0x integer starting at the '0'.
func (l *lexer) scanRadixInt(start position, begin int, digit func(byte) bool) (token, error) {
	l.advance() // 0
	l.advance() // radix marker

	// A separator may directly follow the radix prefix (0x_ff).
	n := 0
	for !l.eof() {
		ch := l.src[l.off]
		if ch == '_' {
			if !digit(l.byteAt(l.off + 1)) {
				return token{}, l.errorfAt(start, "invalid number literal: misplaced digit separator")
			}
			l.advance()
			continue
		}
		if !digit(ch) {
			break
		}
		n++
		l.advance()
	}
	if n == 0 {
		return token{}, l.errorfAt(start, "invalid number literal: no digits after radix prefix")
	}

	if err := l.checkNumberEnd(start); err != nil {
		return token{}, err
	}

	return token{Type: tokInt, Lit: l.src[begin:l.off], Line: start.line, Col: start.col}, nil
}

// scanDigitRun reads a run of decimal digits with optional separators
// between digits.
func (l *lexer) scanDigitRun() error {
	n := 0
	for !l.eof() {
		ch := l.src[l.off]
		if ch == '_' {
			if n == 0 || !isDigit(l.byteAt(l.off+1)) {
				return l.errorf("invalid number literal: misplaced digit separator")
			}
			l.advance()
			continue
		}
		if !isDigit(ch) {
			break
		}
		n++
		l.advance()
	}
	if n == 0 {
		return l.errorf("invalid number literal: expected digits")
	}

	return nil
}

// checkNumberEnd rejects junk glued to the end of a number (e.g. 0b12,
// 1.5x) so that the error points at the literal rather than confusing the
// parser downstream.
func (l *lexer) checkNumberEnd(start position) error {
	if l.eof() {
		return nil
	}
	if ch := l.src[l.off]; isWordPart(ch) || ch == '.' {
		return l.errorfAt(start, "invalid number literal")
	}

	return nil
}

// errorf formats a syntax error at the current position.
func (l *lexer) errorf(format string, args ...any) error {
	return l.errorfAt(l.pos, format, args...)
}

// errorfAt formats a syntax error at the given position.
func (l *lexer) errorfAt(pos position, format string, args ...any) error {
	return fmt.Errorf("%w at %d:%d: %s", ErrSyntax, pos.line, pos.col, fmt.Sprintf(format, args...))
}

// isQuote checks if a byte is a quote character.
func isQuote(b byte) bool {
	return b == '\'' || b == '"'
}

// isDigit checks if a byte is a decimal digit.
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// isBinDigit checks if a byte is a binary digit.
func isBinDigit(b byte) bool {
	return b == '0' || b == '1'
}

// isOctDigit checks if a byte is an octal digit.
func isOctDigit(b byte) bool {
	return b >= '0' && b <= '7'
}

// isHexDigit checks if a byte is a hexadecimal digit.
func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// isWordStart checks if a byte can start a keyword.
func isWordStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isWordPart checks if a byte can continue a keyword.
func isWordPart(b byte) bool {
	return isWordStart(b) || isDigit(b)
}

// tokenName returns the grammar name of a token type.
func tokenName(tt tokenType) string {
	switch tt {
	case tokEOF:
		return "end of input"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokLBracket:
		return "'['"
	case tokRBracket:
		return "']'"
	case tokLBrace:
		return "'{'"
	case tokRBrace:
		return "'}'"
	case tokComma:
		return "','"
	case tokColon:
		return "':'"
	case tokPlus:
		return "'+'"
	case tokMinus:
		return "'-'"
	case tokInt:
		return "integer"
	case tokFloat:
		return "float"
	case tokImag:
		return "imaginary number"
	case tokString:
		return "string"
	case tokBytes:
		return "bytes"
	case tokTrue:
		return "True"
	case tokFalse:
		return "False"
	case tokNone:
		return "None"
	default:
		return "token"
	}
}
