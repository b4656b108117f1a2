package pylit

import (
	"bytes"
	"errors"
	"math"
	"math/big"
	"path/filepath"
	"strings"
	"testing"
)

func mustASCII(t *testing.T, v Value) string {
	t.Helper()
	s, err := v.ASCII()
	if err != nil {
		t.Fatalf("format: %v", err)
	}

	return s
}

func TestFormatScalars(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{None(), "None"},
		{NewBool(true), "True"},
		{NewBool(false), "False"},
		{NewInt(0), "0"},
		{NewInt(2346), "2346"},
		{NewInt(-17), "-17"},
		{NewFloat(4.5), "4.5e0"},
		{NewFloat(-4.5), "-4.5e0"},
		{NewFloat(0), "0e0"},
		{NewFloat(1e-7), "1e-7"},
		{NewFloat(300), "3e2"},
		{NewFloat(351.46e-27), "3.5146e-25"},
		{NewString(""), "''"},
		{NewString("hi"), "'hi'"},
		{NewBytes(nil), "b''"},
		{NewBytes([]byte("hi")), "b'hi'"},
	}
	for _, tt := range tests {
		if got := mustASCII(t, tt.v); got != tt.want {
			t.Fatalf("format: got %q, want %q", got, tt.want)
		}
	}
}

func TestFormatBigInteger(t *testing.T) {
	digits := "123456789012345678901234567890"
	n, _ := new(big.Int).SetString(digits, 10)
	if got := mustASCII(t, NewInteger(n)); got != digits {
		t.Fatalf("big integer format: got %q", got)
	}
}

func TestFormatComplexSigns(t *testing.T) {
	tests := []struct {
		c    complex128
		want string
	}{
		{complex(1, 3), "1e0+3e0j"},
		{complex(1, -3), "1e0-3e0j"},
		{complex(-1, 3), "-1e0+3e0j"},
		{complex(-1, -3), "-1e0-3e0j"},
		{complex(0, 5), "0e0+5e0j"},
	}
	for _, tt := range tests {
		if got := mustASCII(t, NewComplex(tt.c)); got != tt.want {
			t.Fatalf("format %v: got %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestFormatStringEscapes(t *testing.T) {
	v := NewString("hello\th\x03ÿo\x1bware\x07'yሴo\U00031234u")
	want := `'hello\th\x03\xffo\x1bware\x07\'y\u1234o\U00031234u'`
	if got := mustASCII(t, v); got != want {
		t.Fatalf("string escapes: got %q, want %q", got, want)
	}
}

func TestFormatBytesEscapes(t *testing.T) {
	v := NewBytes([]byte("hello\th\x03\xffo\x1bware\x07'you"))
	want := `b'hello\th\x03\xffo\x1bware\x07\'you'`
	if got := mustASCII(t, v); got != want {
		t.Fatalf("bytes escapes: got %q, want %q", got, want)
	}
}

func TestFormatASCIIOnly(t *testing.T) {
	v := NewList(NewString("héllo ☃ \U0001F600"), NewBytes([]byte{0x00, 0x7F, 0x80, 0xFF}))
	s := mustASCII(t, v)
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			t.Fatalf("non-ASCII byte %#x in output %q", s[i], s)
		}
	}
}

func TestFormatCollections(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{NewTuple(), "()"},
		{NewTuple(NewInt(1)), "(1,)"},
		{NewTuple(NewInt(1), NewInt(2)), "(1, 2)"},
		{NewTuple(NewInt(1), NewInt(2), NewString("hi")), "(1, 2, 'hi')"},
		{NewList(), "[]"},
		{NewList(NewInt(1)), "[1]"},
		{NewList(NewInt(1), NewInt(2), NewString("hi")), "[1, 2, 'hi']"},
		{NewDict(), "{}"},
		{
			NewDict(
				DictEntry{Key: NewInt(1), Value: NewInt(2)},
				DictEntry{Key: NewString("foo"), Value: NewString("bar")},
			),
			"{1: 2, 'foo': 'bar'}",
		},
		{NewSet(NewInt(1)), "{1}"},
		{NewSet(NewInt(1), NewInt(2), NewString("hi")), "{1, 2, 'hi'}"},
		{
			NewDict(
				DictEntry{
					Key:   NewString("foo"),
					Value: NewList(NewInt(1), NewBool(true)),
				},
				DictEntry{
					Key:   NewSet(NewComplex(complex(2, 3))),
					Value: NewInt(4),
				},
			),
			"{'foo': [1, True], {2e0+3e0j}: 4}",
		},
	}
	for _, tt := range tests {
		if got := mustASCII(t, tt.v); got != tt.want {
			t.Fatalf("format: got %q, want %q", got, tt.want)
		}
	}
}

func TestFormatEmptySet(t *testing.T) {
	if _, err := NewSet().ASCII(); !errors.Is(err, ErrEmptySet) {
		t.Fatalf("expected empty set error")
	}

	// An empty set nested inside a collection fails the whole format.
	v := NewList(NewInt(1), NewSet())
	if _, err := Format(v, nil); !errors.Is(err, ErrEmptySet) {
		t.Fatalf("expected empty set error from nested set")
	}

	// An empty dict is fine.
	if got := mustASCII(t, NewDict()); got != "{}" {
		t.Fatalf("empty dict: got %q", got)
	}
}

func TestFormatIdempotent(t *testing.T) {
	v := NewDict(
		DictEntry{Key: NewString("descr"), Value: NewString("<f8")},
		DictEntry{Key: NewString("shape"), Value: NewTuple(NewInt(3), NewInt(4))},
	)
	a := mustASCII(t, v)
	b := mustASCII(t, v)
	if a != b {
		t.Fatalf("formatting not idempotent: %q vs %q", a, b)
	}
}

func TestFormatOrderPreserved(t *testing.T) {
	got := mustASCII(t, mustParse(t, "{3: 'a', 1: 'b'}"))
	if got != "{3: 'a', 1: 'b'}" {
		t.Fatalf("dict order not preserved: %q", got)
	}
}

func TestRoundTrip(t *testing.T) {
	values := []Value{
		None(),
		NewBool(true),
		NewInt(-2346),
		NewFloat(351.46e-27),
		NewFloat(math.MaxFloat64),
		NewComplex(complex(-326.3, -5)),
		NewString("a\n\tb"),
		NewString("snow☃man \U0001F600"),
		NewBytes([]byte{0, 1, 2, 0xFE, 0xFF, '\'', '\\'}),
		NewTuple(),
		NewTuple(NewInt(1)),
		NewSet(NewInt(2), NewInt(1), NewInt(2)),
		NewDict(
			DictEntry{Key: NewInt(3), Value: NewString("a")},
			DictEntry{Key: NewInt(1), Value: NewString("b")},
			DictEntry{Key: NewInt(3), Value: NewString("c")},
		),
		NewDict(
			DictEntry{
				Key:   NewString("foo"),
				Value: NewList(NewInt(5), NewTuple(NewFloat(7e3))),
			},
			DictEntry{
				Key:   NewComplex(complex(2, -5)),
				Value: NewSet(NewBytes([]byte("bar"))),
			},
		),
	}
	for _, v := range values {
		text := mustASCII(t, v)
		back, err := Parse([]byte(text), nil)
		if err != nil {
			t.Fatalf("reparse %q: %v", text, err)
		}
		if !back.Equal(v) {
			t.Fatalf("round trip mismatch for %q", text)
		}
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	v := mustParse(t, `'a\n\tb'`)
	if s, _ := v.Str(); s != "a\n\tb" {
		t.Fatalf("escape decode mismatch: %q", s)
	}
	if got := mustASCII(t, v); got != `'a\n\tb'` {
		t.Fatalf("escape format mismatch: %q", got)
	}
}

func TestFormatDepthLimit(t *testing.T) {
	v := NewInt(1)
	for i := 0; i < 200; i++ {
		v = NewList(v)
	}
	if _, err := Format(v, nil); !errors.Is(err, ErrDepth) {
		t.Fatalf("expected depth error")
	}
	if _, err := Format(v, &FormatOptions{MaxDepth: 300}); err != nil {
		t.Fatalf("raised depth limit: %v", err)
	}
}

// failWriter fails after accepting a fixed number of bytes.
type failWriter struct {
	n   int
	err error
}

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, w.err
	}
	if len(p) > w.n {
		n := w.n
		w.n = 0
		return n, w.err
	}
	w.n -= len(p)

	return len(p), nil
}

func TestWriteASCIIPropagatesWriterError(t *testing.T) {
	wantErr := errors.New("destination full")
	v := NewList(NewInt(1), NewInt(2), NewInt(3))
	w := &failWriter{n: 4, err: wantErr}
	if err := v.WriteASCII(w); !errors.Is(err, wantErr) {
		t.Fatalf("expected writer error, got %v", err)
	}
}

func TestWriteASCIIStream(t *testing.T) {
	var sb strings.Builder
	v := NewTuple(NewInt(1), NewString("x"))
	if err := v.WriteASCII(&sb); err != nil {
		t.Fatalf("write: %v", err)
	}
	if sb.String() != "(1, 'x')" {
		t.Fatalf("stream write mismatch: %q", sb.String())
	}
}

func TestEncodeFile(t *testing.T) {
	v := NewDict(
		DictEntry{Key: NewString("descr"), Value: NewString("<f8")},
		DictEntry{Key: NewString("shape"), Value: NewTuple(NewInt(3), NewInt(4))},
	)
	path := filepath.Join(t.TempDir(), "header.txt")
	if err := EncodeFile(path, v, nil); err != nil {
		t.Fatalf("encode file: %v", err)
	}
	back, err := DecodeFile(path, nil)
	if err != nil {
		t.Fatalf("decode file: %v", err)
	}
	if !back.Equal(v) {
		t.Fatalf("file round trip mismatch")
	}
}

func TestEncodeBuffer(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, NewList(NewInt(1), NewFloat(2)), nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if buf.String() != "[1, 2e0]" {
		t.Fatalf("encode mismatch: %q", buf.String())
	}
}
