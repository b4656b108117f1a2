package pylit

import (
	"fmt"
	"io"
	"os"
)

// Parse parses a single literal from bytes.
func Parse(data []byte, opt *ParseOptions) (Value, error) {
	popt := opt.normalize()
	p := newParser(string(data), popt)
	return p.parseDocument()
}

// Decode parses a single literal from a reader. The reader is consumed to
// EOF before parsing starts.
func Decode(r io.Reader, opt *ParseOptions) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Value{}, err
	}
	return Parse(data, opt)
}

// DecodeFile parses a single literal from a file.
func DecodeFile(path string, opt *ParseOptions) (Value, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Value{}, err
	}
	return Parse(b, opt)
}

// parser represents a parser for the literal grammar.
type parser struct {
	l   *lexer       // Lexer over the input
	buf token        // Buffered token
	has bool         // Has buffered token
	opt ParseOptions // Options for the parser
}

// newParser creates a new parser over the input text.
func newParser(src string, opt ParseOptions) *parser {
	return &parser{l: newLexer(src), opt: opt}
}

// next returns the next token from the input.
func (p *parser) next() (token, error) {
	if p.has {
		p.has = false
		return p.buf, nil
	}

	return p.l.next()
}

// peek returns the next token from the input without consuming it.
func (p *parser) peek() (token, error) {
	if p.has {
		return p.buf, nil
	}

	tok, err := p.l.next()
	if err != nil {
		return tok, err
	}

	p.buf = tok
	p.has = true
	return tok, nil
}

// parseDocument parses exactly one value followed by end of input.
func (p *parser) parseDocument() (Value, error) {
	v, err := p.parseValue(0)
	if err != nil {
		return Value{}, err
	}

	if _, err := p.expect(tokEOF); err != nil {
		return Value{}, err
	}

	return v, nil
}

// parseValue parses a single value.
func (p *parser) parseValue(depth int) (Value, error) {
	if depth >= p.opt.MaxDepth {
		tok, _ := p.peek()
		return Value{}, fmt.Errorf("%w at %d:%d: value nested deeper than %d",
			ErrDepth, tok.Line, tok.Col, p.opt.MaxDepth)
	}

	tok, err := p.peek()
	if err != nil {
		return Value{}, err
	}

	switch tok.Type {
	case tokString:
		_, _ = p.next()
		s, err := decodeStringEscapes(tok)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: KindString, str: s}, nil

	case tokBytes:
		_, _ = p.next()
		b, err := decodeBytesEscapes(tok)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: KindBytes, raw: b}, nil

	case tokPlus, tokMinus, tokInt, tokFloat, tokImag:
		return p.parseNumberExpr()

	case tokLParen:
		return p.parseTuple(depth)

	case tokLBracket:
		return p.parseList(depth)

	case tokLBrace:
		return p.parseBraced(depth)

	case tokTrue:
		_, _ = p.next()
		return Value{kind: KindBool, b: true}, nil

	case tokFalse:
		_, _ = p.next()
		return Value{kind: KindBool, b: false}, nil

	case tokNone:
		_, _ = p.next()
		return Value{}, nil

	default:
		return Value{}, p.errorf(tok, "expected a value, found %s", tokenName(tok.Type))
	}
}

// parseNumberExpr folds a signed sequence of numeric terms left to right.
// Runs of unary signs toggle a negation flag; each term is then added to or
// subtracted from the running result depending on the flag.
func (p *parser) parseNumberExpr() (Value, error) {
	result := Value{kind: KindInteger, num: bigZero()}
	neg := false

	for {
		tok, err := p.next()
		if err != nil {
			return Value{}, err
		}

		switch tok.Type {
		case tokPlus:
			// No-op for the sign flag.

		case tokMinus:
			neg = !neg

		case tokInt, tokFloat, tokImag:
			num, err := convertNumber(tok)
			if err != nil {
				return Value{}, err
			}
			if neg {
				result, err = subValues(result, num)
			} else {
				result, err = addValues(result, num)
			}
			if err != nil {
				return Value{}, err
			}
			neg = false

			// Another term follows only after a binary sign.
			nxt, err := p.peek()
			if err != nil {
				return Value{}, err
			}
			if nxt.Type != tokPlus && nxt.Type != tokMinus {
				return result, nil
			}

		default:
			return Value{}, p.errorf(tok, "expected a number, found %s", tokenName(tok.Type))
		}
	}
}

// parseTuple parses a tuple. Parentheses are tuple delimiters only, so a
// single parenthesized value requires a trailing comma.
func (p *parser) parseTuple(depth int) (Value, error) {
	if _, err := p.expect(tokLParen); err != nil {
		return Value{}, err
	}

	// Check if tuple is empty
	if tok, err := p.peek(); err != nil {
		return Value{}, err
	} else if tok.Type == tokRParen {
		_, _ = p.next()
		return Value{kind: KindTuple}, nil
	}

	first, err := p.parseValue(depth + 1)
	if err != nil {
		return Value{}, err
	}

	tok, err := p.peek()
	if err != nil {
		return Value{}, err
	}
	if tok.Type != tokComma {
		return Value{}, p.errorf(tok, "expected ',' in tuple, found %s", tokenName(tok.Type))
	}
	_, _ = p.next()

	elems := []Value{first}
	for {
		tok, err := p.peek()
		if err != nil {
			return Value{}, err
		}

		if tok.Type == tokRParen {
			_, _ = p.next()
			return Value{kind: KindTuple, seq: elems}, nil
		}

		v, err := p.parseValue(depth + 1)
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, v)

		tok, err = p.peek()
		if err != nil {
			return Value{}, err
		}

		if tok.Type == tokComma {
			_, _ = p.next()
			continue
		}

		// Check if reached end of tuple
		if tok.Type == tokRParen {
			continue
		}

		return Value{}, p.errorf(tok, "expected ',' or ')' in tuple, found %s", tokenName(tok.Type))
	}
}

// parseList parses a list.
func (p *parser) parseList(depth int) (Value, error) {
	if _, err := p.expect(tokLBracket); err != nil {
		return Value{}, err
	}

	elems, err := p.parseElems(tokRBracket, "list", depth)
	if err != nil {
		return Value{}, err
	}

	return Value{kind: KindList, seq: elems}, nil
}

// parseBraced parses a dict or a set. An empty pair of braces is always an
// empty dict; there is no literal syntax for an empty set.
func (p *parser) parseBraced(depth int) (Value, error) {
	if _, err := p.expect(tokLBrace); err != nil {
		return Value{}, err
	}

	tok, err := p.peek()
	if err != nil {
		return Value{}, err
	}
	if tok.Type == tokRBrace {
		_, _ = p.next()
		return Value{kind: KindDict}, nil
	}

	first, err := p.parseValue(depth + 1)
	if err != nil {
		return Value{}, err
	}

	tok, err = p.peek()
	if err != nil {
		return Value{}, err
	}

	if tok.Type == tokColon {
		return p.parseDictRest(first, depth)
	}

	return p.parseSetRest(first, depth)
}

// parseDictRest parses the remainder of a dict after its first key.
func (p *parser) parseDictRest(firstKey Value, depth int) (Value, error) {
	if _, err := p.expect(tokColon); err != nil {
		return Value{}, err
	}

	firstVal, err := p.parseValue(depth + 1)
	if err != nil {
		return Value{}, err
	}

	entries := []DictEntry{{Key: firstKey, Value: firstVal}}
	for {
		tok, err := p.peek()
		if err != nil {
			return Value{}, err
		}

		if tok.Type == tokRBrace {
			_, _ = p.next()
			return Value{kind: KindDict, dict: entries}, nil
		}

		if tok.Type != tokComma {
			return Value{}, p.errorf(tok, "expected ',' or '}' in dict, found %s", tokenName(tok.Type))
		}
		_, _ = p.next()

		// Check if trailing comma closes the dict
		tok, err = p.peek()
		if err != nil {
			return Value{}, err
		}
		if tok.Type == tokRBrace {
			continue
		}

		key, err := p.parseValue(depth + 1)
		if err != nil {
			return Value{}, err
		}
		if _, err := p.expect(tokColon); err != nil {
			return Value{}, err
		}
		val, err := p.parseValue(depth + 1)
		if err != nil {
			return Value{}, err
		}

		entries = append(entries, DictEntry{Key: key, Value: val})
	}
}

// parseSetRest parses the remainder of a set after its first element.
func (p *parser) parseSetRest(first Value, depth int) (Value, error) {
	elems := []Value{first}
	for {
		tok, err := p.peek()
		if err != nil {
			return Value{}, err
		}

		if tok.Type == tokRBrace {
			_, _ = p.next()
			return Value{kind: KindSet, seq: elems}, nil
		}

		if tok.Type != tokComma {
			return Value{}, p.errorf(tok, "expected ',' or '}' in set, found %s", tokenName(tok.Type))
		}
		_, _ = p.next()

		// Check if trailing comma closes the set
		tok, err = p.peek()
		if err != nil {
			return Value{}, err
		}
		if tok.Type == tokRBrace {
			continue
		}

		v, err := p.parseValue(depth + 1)
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, v)
	}
}

// parseElems parses comma-separated values up to the terminator.
func (p *parser) parseElems(term tokenType, what string, depth int) ([]Value, error) {
	var elems []Value
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}

		if tok.Type == term {
			_, _ = p.next()
			return elems, nil
		}

		v, err := p.parseValue(depth + 1)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)

		tok, err = p.peek()
		if err != nil {
			return nil, err
		}

		if tok.Type == tokComma {
			_, _ = p.next()
			continue
		}

		// Check if reached end of sequence
		if tok.Type == term {
			continue
		}

		return nil, p.errorf(tok, "expected ',' or %s in %s, found %s",
			tokenName(term), what, tokenName(tok.Type))
	}
}

// expect expects a token of the given type.
func (p *parser) expect(tt tokenType) (token, error) {
	tok, err := p.next()
	if err != nil {
		return tok, err
	}

	if tok.Type != tt {
		return tok, p.errorf(tok, "expected %s, found %s", tokenName(tt), tokenName(tok.Type))
	}

	return tok, nil
}

// errorf formats a syntax error at the token position.
func (p *parser) errorf(tok token, format string, args ...any) error {
	return fmt.Errorf("%w at %d:%d: %s", ErrSyntax, tok.Line, tok.Col, fmt.Sprintf(format, args...))
}
