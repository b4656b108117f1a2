package pylit

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Encode writes a value to writer as canonical ASCII text.
func Encode(w io.Writer, v Value, opt *FormatOptions) error {
	fopt := opt.normalize()
	// Buffered writer reduces syscall overhead and short writes.
	bw := bufio.NewWriter(w)
	wr := &writer{w: bw, maxDepth: fopt.MaxDepth}
	if err := wr.writeValue(v, 0); err != nil {
		return err
	}

	return bw.Flush()
}

// EncodeFile writes a value to a file.
func EncodeFile(path string, v Value, opt *FormatOptions) error {
	b, err := Format(v, opt)
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, 0o600)
}

// Format renders a value to bytes.
func Format(v Value, opt *FormatOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, v, opt); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteASCII writes the value to w as canonical ASCII text. Unlike Encode
// it performs no buffering of its own; wrap expensive-write destinations in
// a bufio.Writer.
func (v Value) WriteASCII(w io.Writer) error {
	wr := &writer{w: w, maxDepth: defaultMaxDepth}
	return wr.writeValue(v, 0)
}

// ASCII renders the value as a canonical ASCII string.
func (v Value) ASCII() (string, error) {
	b, err := Format(v, nil)
	if err != nil {
		return "", err
	}

	return asciiString(b), nil
}

// writer writes a value tree to a writer.
type writer struct {
	w        io.Writer // Writer to write to
	maxDepth int       // Nesting depth limit
}

// writeValue writes a single value.
func (w *writer) writeValue(v Value, depth int) error {
	if depth >= w.maxDepth {
		return fmt.Errorf("%w: value nested deeper than %d", ErrDepth, w.maxDepth)
	}

	switch v.kind {
	case KindNone:
		return w.writeString("None")

	case KindBool:
		if v.b {
			return w.writeString("True")
		}
		return w.writeString("False")

	case KindString:
		return w.writeStr(v.str)

	case KindBytes:
		return w.writeBytes(v.raw)

	case KindInteger:
		return w.writeString(v.num.String())

	case KindFloat:
		return w.writeString(formatFloat(v.flt))

	case KindComplex:
		return w.writeComplex(v.cplx)

	case KindTuple:
		return w.writeTuple(v.seq, depth)

	case KindList:
		return w.writeSeq(v.seq, "[", "]", depth)

	case KindSet:
		if len(v.seq) == 0 {
			return ErrEmptySet
		}
		return w.writeSeq(v.seq, "{", "}", depth)

	case KindDict:
		return w.writeDict(v.dict, depth)

	default:
		panic("pylit: internal error: invalid value kind " + strconv.Itoa(int(v.kind)))
	}
}

// writeStr writes a string literal, escaping everything outside printable
// ASCII so the output is guaranteed ASCII-only.
func (w *writer) writeStr(s string) error {
	if err := w.writeString("'"); err != nil {
		return err
	}

	for _, r := range s {
		var err error
		switch r {
		case '\\':
			err = w.writeString(`\\`)
		case '\'':
			err = w.writeString(`\'`)
		case '\r':
			err = w.writeString(`\r`)
		case '\n':
			err = w.writeString(`\n`)
		case '\t':
			err = w.writeString(`\t`)
		default:
			switch {
			case r >= 0x20 && r < 0x7F:
				err = w.writeString(string(r))
			case r <= 0xFF:
				err = w.writeString(fmt.Sprintf(`\x%02x`, r))
			case r <= 0xFFFF:
				err = w.writeString(fmt.Sprintf(`\u%04x`, r))
			default:
				err = w.writeString(fmt.Sprintf(`\U%08x`, r))
			}
		}
		if err != nil {
			return err
		}
	}

	return w.writeString("'")
}

// writeBytes writes a bytes literal. Escaping is byte-wise; anything
// outside printable ASCII becomes a \xHH escape.
func (w *writer) writeBytes(b []byte) error {
	if err := w.writeString("b'"); err != nil {
		return err
	}

	for _, c := range b {
		var err error
		switch c {
		case '\\':
			err = w.writeString(`\\`)
		case '\'':
			err = w.writeString(`\'`)
		case '\r':
			err = w.writeString(`\r`)
		case '\n':
			err = w.writeString(`\n`)
		case '\t':
			err = w.writeString(`\t`)
		default:
			if c >= 0x20 && c < 0x7F {
				err = w.writeString(string(rune(c)))
			} else {
				err = w.writeString(fmt.Sprintf(`\x%02x`, c))
			}
		}
		if err != nil {
			return err
		}
	}

	return w.writeString("'")
}

// writeComplex writes a complex literal: real part, explicit sign,
// imaginary part, trailing j.
func (w *writer) writeComplex(c complex128) error {
	if err := w.writeString(formatFloat(real(c))); err != nil {
		return err
	}

	im := formatFloat(imag(c))
	if !strings.HasPrefix(im, "-") {
		if err := w.writeString("+"); err != nil {
			return err
		}
	}
	if err := w.writeString(im); err != nil {
		return err
	}

	return w.writeString("j")
}

// writeTuple writes a tuple literal. A one-element tuple carries a
// mandatory trailing comma to distinguish it from a parenthesized value.
func (w *writer) writeTuple(elems []Value, depth int) error {
	if err := w.writeString("("); err != nil {
		return err
	}

	for i, v := range elems {
		if i > 0 {
			if err := w.writeString(", "); err != nil {
				return err
			}
		}
		if err := w.writeValue(v, depth+1); err != nil {
			return err
		}
	}

	if len(elems) == 1 {
		if err := w.writeString(","); err != nil {
			return err
		}
	}

	return w.writeString(")")
}

// writeSeq writes a delimited sequence of values.
func (w *writer) writeSeq(elems []Value, open, closing string, depth int) error {
	if err := w.writeString(open); err != nil {
		return err
	}

	for i, v := range elems {
		if i > 0 {
			if err := w.writeString(", "); err != nil {
				return err
			}
		}
		if err := w.writeValue(v, depth+1); err != nil {
			return err
		}
	}

	return w.writeString(closing)
}

// writeDict writes a dict literal in insertion order.
func (w *writer) writeDict(entries []DictEntry, depth int) error {
	if err := w.writeString("{"); err != nil {
		return err
	}

	for i, e := range entries {
		if i > 0 {
			if err := w.writeString(", "); err != nil {
				return err
			}
		}
		if err := w.writeValue(e.Key, depth+1); err != nil {
			return err
		}
		if err := w.writeString(": "); err != nil {
			return err
		}
		if err := w.writeValue(e.Value, depth+1); err != nil {
			return err
		}
	}

	return w.writeString("}")
}

// writeString writes a string to the writer.
func (w *writer) writeString(s string) error {
	_, err := io.WriteString(w.w, s)
	return err
}

// formatFloat renders a float in exponential notation so the text is
// unambiguously a float, never an integer. The exponent is canonicalized
// to its shortest form (4.5e0, 1e-7).
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	s := strconv.FormatFloat(f, 'e', -1, 64)
	i := strings.IndexByte(s, 'e')
	mant, exp := s[:i], s[i+1:]

	sign := ""
	switch exp[0] {
	case '+':
		exp = exp[1:]
	case '-':
		sign, exp = "-", exp[1:]
	}
	for len(exp) > 1 && exp[0] == '0' {
		exp = exp[1:]
	}

	return mant + "e" + sign + exp
}

// asciiString converts a formatted buffer to a string, asserting the
// formatter's ASCII-only guarantee.
func asciiString(b []byte) string {
	for _, c := range b {
		if c >= 0x80 {
			panic("pylit: internal error: formatter produced non-ASCII output")
		}
	}

	return string(b)
}
