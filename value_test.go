package pylit

import (
	"math"
	"math/big"
	"testing"
)

func TestZeroValueIsNone(t *testing.T) {
	var v Value
	if !v.IsNone() || v.Kind() != KindNone {
		t.Fatalf("zero value kind: got %s", v.Kind())
	}
	if !v.Equal(None()) {
		t.Fatalf("zero value not equal to None()")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindNone, "None"},
		{KindString, "str"},
		{KindBytes, "bytes"},
		{KindInteger, "int"},
		{KindFloat, "float"},
		{KindComplex, "complex"},
		{KindTuple, "tuple"},
		{KindList, "list"},
		{KindDict, "dict"},
		{KindSet, "set"},
		{KindBool, "bool"},
		{Kind(99), "invalid"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Fatalf("kind name: got %q, want %q", got, tt.want)
		}
	}
}

func TestAccessors(t *testing.T) {
	if s, ok := NewString("hi").Str(); !ok || s != "hi" {
		t.Fatalf("Str: got %q, %v", s, ok)
	}
	if b, ok := NewBytes([]byte{1, 2}).Bytes(); !ok || len(b) != 2 {
		t.Fatalf("Bytes: got %v, %v", b, ok)
	}
	if n, ok := NewInt(42).Int(); !ok || n.Int64() != 42 {
		t.Fatalf("Int: got %v, %v", n, ok)
	}
	if f, ok := NewFloat(1.5).Float(); !ok || f != 1.5 {
		t.Fatalf("Float: got %v, %v", f, ok)
	}
	if c, ok := NewComplex(complex(1, 2)).Complex(); !ok || c != complex(1, 2) {
		t.Fatalf("Complex: got %v, %v", c, ok)
	}
	if b, ok := NewBool(true).Bool(); !ok || !b {
		t.Fatalf("Bool: got %v, %v", b, ok)
	}
	if e, ok := NewTuple(NewInt(1)).Tuple(); !ok || len(e) != 1 {
		t.Fatalf("Tuple: got %v, %v", e, ok)
	}
	if e, ok := NewList(NewInt(1), NewInt(2)).List(); !ok || len(e) != 2 {
		t.Fatalf("List: got %v, %v", e, ok)
	}
	if e, ok := NewSet(NewInt(1)).Set(); !ok || len(e) != 1 {
		t.Fatalf("Set: got %v, %v", e, ok)
	}
	if e, ok := NewDict(DictEntry{Key: NewInt(1), Value: NewInt(2)}).Dict(); !ok || len(e) != 1 {
		t.Fatalf("Dict: got %v, %v", e, ok)
	}

	// Mismatched accessors report absence.
	if _, ok := NewString("hi").Int(); ok {
		t.Fatalf("Int on a string reported ok")
	}
	if _, ok := NewInt(1).List(); ok {
		t.Fatalf("List on an integer reported ok")
	}
	if _, ok := None().Len(); ok {
		t.Fatalf("Len on None reported ok")
	}
}

func TestLen(t *testing.T) {
	tests := []struct {
		v    Value
		want int
	}{
		{NewTuple(), 0},
		{NewList(NewInt(1), NewInt(2)), 2},
		{NewSet(NewInt(1)), 1},
		{NewDict(DictEntry{Key: NewInt(1), Value: NewInt(2)}), 1},
	}
	for _, tt := range tests {
		if n, ok := tt.v.Len(); !ok || n != tt.want {
			t.Fatalf("Len of %s: got %d, %v", tt.v.Kind(), n, ok)
		}
	}
}

func TestValueImmutable(t *testing.T) {
	src := []byte{1, 2, 3}
	v := NewBytes(src)
	src[0] = 99
	if b, _ := v.Bytes(); b[0] != 1 {
		t.Fatalf("constructor shared the input slice")
	}

	b, _ := v.Bytes()
	b[1] = 99
	if b2, _ := v.Bytes(); b2[1] != 2 {
		t.Fatalf("accessor shared the payload slice")
	}

	n := big.NewInt(7)
	iv := NewInteger(n)
	n.SetInt64(100)
	if got, _ := iv.Int(); got.Int64() != 7 {
		t.Fatalf("constructor shared the big.Int")
	}
	got, _ := iv.Int()
	got.SetInt64(100)
	if again, _ := iv.Int(); again.Int64() != 7 {
		t.Fatalf("accessor shared the big.Int")
	}

	elems := []Value{NewInt(1)}
	lv := NewList(elems...)
	elems[0] = NewInt(9)
	if e, _ := lv.List(); !e[0].Equal(NewInt(1)) {
		t.Fatalf("constructor shared the element slice")
	}
}

func TestEqual(t *testing.T) {
	big1, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	big2, _ := new(big.Int).SetString("123456789012345678901234567890", 10)

	equal := [][2]Value{
		{None(), None()},
		{NewBool(true), NewBool(true)},
		{NewInt(5), NewInt(5)},
		{NewInteger(big1), NewInteger(big2)},
		{NewFloat(1.5), NewFloat(1.5)},
		{NewComplex(complex(1, 2)), NewComplex(complex(1, 2))},
		{NewString("a"), NewString("a")},
		{NewBytes([]byte("a")), NewBytes([]byte("a"))},
		{NewTuple(NewInt(1), NewString("x")), NewTuple(NewInt(1), NewString("x"))},
		{
			NewDict(DictEntry{Key: NewInt(1), Value: NewInt(2)}),
			NewDict(DictEntry{Key: NewInt(1), Value: NewInt(2)}),
		},
	}
	for _, pair := range equal {
		if !pair[0].Equal(pair[1]) {
			t.Fatalf("expected equal: %s", pair[0].Kind())
		}
	}

	unequal := [][2]Value{
		{None(), NewBool(false)},
		{NewInt(5), NewInt(6)},
		{NewInt(5), NewFloat(5)},
		{NewFloat(math.NaN()), NewFloat(math.NaN())},
		{NewString("a"), NewBytes([]byte("a"))},
		{NewTuple(NewInt(1)), NewList(NewInt(1))},
		{NewTuple(NewInt(1)), NewTuple(NewInt(1), NewInt(2))},
		{NewSet(NewInt(1), NewInt(2)), NewSet(NewInt(2), NewInt(1))},
		{
			NewDict(DictEntry{Key: NewInt(1), Value: NewInt(2)}),
			NewDict(DictEntry{Key: NewInt(1), Value: NewInt(3)}),
		},
	}
	for _, pair := range unequal {
		if pair[0].Equal(pair[1]) {
			t.Fatalf("expected unequal: %s vs %s", pair[0].Kind(), pair[1].Kind())
		}
	}
}
