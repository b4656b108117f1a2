package pylit

import (
	"fmt"
	"strings"
)

// decodeStringEscapes decodes the raw body of a string token into the
// string payload. Recognized escapes are replaced by their code point,
// backslash-newline pairs are elided, and any other backslash sequence is
// kept literally.
func decodeStringEscapes(tok token) (string, error) {
	body := tok.Lit
	if !strings.ContainsRune(body, '\\') {
		return body, nil
	}

	var out strings.Builder
	out.Grow(len(body))

	for i := 0; i < len(body); {
		if body[i] != '\\' {
			out.WriteByte(body[i])
			i++
			continue
		}
		if i+1 >= len(body) {
			// The lexer never ends a body on a bare backslash.
			out.WriteByte('\\')
			break
		}

		switch c := body[i+1]; c {
		case '\n':
			i += 2 // line continuation
		case '\r':
			i += 2
			if i < len(body) && body[i] == '\n' {
				i++
			}
		case '\\', '\'', '"':
			out.WriteByte(c)
			i += 2
		case 'a':
			out.WriteByte(0x07)
			i += 2
		case 'b':
			out.WriteByte(0x08)
			i += 2
		case 'f':
			out.WriteByte(0x0C)
			i += 2
		case 'n':
			out.WriteByte('\n')
			i += 2
		case 'r':
			out.WriteByte('\r')
			i += 2
		case 't':
			out.WriteByte('\t')
			i += 2
		case 'v':
			out.WriteByte(0x0B)
			i += 2

		case '0', '1', '2', '3', '4', '5', '6', '7':
			v, n := octalValue(body[i+1:])
			out.WriteRune(rune(v))
			i += 1 + n

		case 'x':
			v, ok := hexValue(body[i+2:], 2)
			if !ok {
				// Too few digits: fall back to literal passthrough.
				out.WriteByte('\\')
				i++
				continue
			}
			out.WriteRune(rune(v))
			i += 4

		case 'u':
			v, ok := hexValue(body[i+2:], 4)
			if !ok {
				out.WriteByte('\\')
				i++
				continue
			}
			if !validCodePoint(v) {
				return "", escapeErr(tok, `unicode escape \u%04x is not a valid code point`, v)
			}
			out.WriteRune(rune(v))
			i += 6

		case 'U':
			v, ok := hexValue(body[i+2:], 8)
			if !ok {
				out.WriteByte('\\')
				i++
				continue
			}
			if !validCodePoint(v) {
				return "", escapeErr(tok, `unicode escape \U%08x is not a valid code point`, v)
			}
			out.WriteRune(rune(v))
			i += 10

		case 'N':
			if i+2 < len(body) && body[i+2] == '{' {
				return "", escapeErr(tok, "unicode name escapes are not supported")
			}
			out.WriteByte('\\')
			i++

		default:
			// Unknown escape: keep the backslash and let the next
			// character pass through unchanged.
			out.WriteByte('\\')
			i++
		}
	}

	return out.String(), nil
}

// decodeBytesEscapes decodes the raw body of a bytes token. Escapes are
// decoded byte-wise; unicode escapes have no meaning in bytes literals and
// pass through literally, matching the unknown-escape rule.
func decodeBytesEscapes(tok token) ([]byte, error) {
	body := tok.Lit
	out := make([]byte, 0, len(body))

	for i := 0; i < len(body); {
		if body[i] != '\\' {
			out = append(out, body[i])
			i++
			continue
		}
		if i+1 >= len(body) {
			out = append(out, '\\')
			break
		}

		switch c := body[i+1]; c {
		case '\n':
			i += 2 // line continuation
		case '\r':
			i += 2
			if i < len(body) && body[i] == '\n' {
				i++
			}
		case '\\', '\'', '"':
			out = append(out, c)
			i += 2
		case 'a':
			out = append(out, 0x07)
			i += 2
		case 'b':
			out = append(out, 0x08)
			i += 2
		case 'f':
			out = append(out, 0x0C)
			i += 2
		case 'n':
			out = append(out, '\n')
			i += 2
		case 'r':
			out = append(out, '\r')
			i += 2
		case 't':
			out = append(out, '\t')
			i += 2
		case 'v':
			out = append(out, 0x0B)
			i += 2

		case '0', '1', '2', '3', '4', '5', '6', '7':
			v, n := octalValue(body[i+1:])
			if v > 0xFF {
				return nil, escapeErr(tok, `octal escape \%s exceeds a byte`, body[i+1:i+1+n])
			}
			out = append(out, byte(v))
			i += 1 + n

		case 'x':
			v, ok := hexValue(body[i+2:], 2)
			if !ok {
				out = append(out, '\\')
				i++
				continue
			}
			out = append(out, byte(v))
			i += 4

		default:
			out = append(out, '\\')
			i++
		}
	}

	return out, nil
}

// octalValue reads one to three octal digits and returns the value and the
// number of digits consumed. The first digit is guaranteed by the caller.
func octalValue(s string) (int, int) {
	v := 0
	n := 0
	for n < 3 && n < len(s) && s[n] >= '0' && s[n] <= '7' {
		v = v*8 + int(s[n]-'0')
		n++
	}

	return v, n
}

// hexValue reads exactly n hexadecimal digits. It reports failure when the
// input is shorter or contains a non-hex digit.
func hexValue(s string, n int) (int, bool) {
	if len(s) < n {
		return 0, false
	}

	v := 0
	for i := 0; i < n; i++ {
		d, ok := hexDigitValue(s[i])
		if !ok {
			return 0, false
		}
		v = v*16 + d
	}

	return v, true
}

// hexDigitValue returns the value of a hexadecimal digit.
func hexDigitValue(b byte) (int, bool) {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0'), true
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10, true
	default:
		return 0, false
	}
}

// validCodePoint reports whether v is a Unicode scalar value.
func validCodePoint(v int) bool {
	if v > 0x10FFFF {
		return false
	}
	if v >= 0xD800 && v <= 0xDFFF {
		return false
	}

	return true
}

// escapeErr formats an illegal escape error at the token position.
func escapeErr(tok token, format string, args ...any) error {
	return fmt.Errorf("%w at %d:%d: %s", ErrIllegalEscape, tok.Line, tok.Col, fmt.Sprintf(format, args...))
}
