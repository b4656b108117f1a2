package pylit

import "math/big"

// Kind identifies the variant stored in a Value.
type Kind int

// Value kinds.
const (
	KindNone    Kind = iota // None
	KindString              // Unicode string
	KindBytes               // Byte sequence
	KindInteger             // Arbitrary-precision integer
	KindFloat               // 64-bit float
	KindComplex             // Complex number
	KindTuple               // Tuple
	KindList                // List
	KindDict                // Dict (ordered key/value pairs)
	KindSet                 // Set (ordered, no deduplication)
	KindBool                // Boolean
)

// String returns a human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindString:
		return "str"
	case KindBytes:
		return "bytes"
	case KindInteger:
		return "int"
	case KindFloat:
		return "float"
	case KindComplex:
		return "complex"
	case KindTuple:
		return "tuple"
	case KindList:
		return "list"
	case KindDict:
		return "dict"
	case KindSet:
		return "set"
	case KindBool:
		return "bool"
	default:
		return "invalid"
	}
}

// DictEntry is a single key/value pair of a dict.
//
// Dict entries keep source order and are never deduplicated; two entries with
// equal keys may coexist.
type DictEntry struct {
	Key   Value // Entry key
	Value Value // Entry value
}

// Value is a parsed or constructed literal.
//
// A Value is immutable once built; constructors copy mutable inputs and
// accessors return copies, so a Value may be shared between goroutines
// without coordination. The zero Value is None.
type Value struct {
	str  string      // String payload
	raw  []byte      // Bytes payload
	num  *big.Int    // Integer payload
	seq  []Value     // Tuple/List/Set payload
	dict []DictEntry // Dict payload
	cplx complex128  // Complex payload
	flt  float64     // Float payload
	kind Kind        // Variant tag
	b    bool        // Bool payload
}

// None returns the None value.
func None() Value {
	return Value{}
}

// NewString creates a string Value.
func NewString(s string) Value {
	return Value{kind: KindString, str: s}
}

// NewBytes creates a bytes Value. The input slice is copied.
func NewBytes(b []byte) Value {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Value{kind: KindBytes, raw: cp}
}

// NewInteger creates an integer Value. The input is copied.
func NewInteger(i *big.Int) Value {
	return Value{kind: KindInteger, num: new(big.Int).Set(i)}
}

// NewInt creates an integer Value from an int64.
func NewInt(i int64) Value {
	return Value{kind: KindInteger, num: big.NewInt(i)}
}

// NewFloat creates a float Value.
func NewFloat(f float64) Value {
	return Value{kind: KindFloat, flt: f}
}

// NewComplex creates a complex Value.
func NewComplex(c complex128) Value {
	return Value{kind: KindComplex, cplx: c}
}

// NewTuple creates a tuple Value. The elements are copied in order.
func NewTuple(elems ...Value) Value {
	return Value{kind: KindTuple, seq: copyValues(elems)}
}

// NewList creates a list Value. The elements are copied in order.
func NewList(elems ...Value) Value {
	return Value{kind: KindList, seq: copyValues(elems)}
}

// NewSet creates a set Value. The elements are copied in order; no
// deduplication is performed. An empty set is a valid Value but cannot be
// formatted.
func NewSet(elems ...Value) Value {
	return Value{kind: KindSet, seq: copyValues(elems)}
}

// NewDict creates a dict Value. The entries are copied in order; keys are
// not deduplicated.
func NewDict(entries ...DictEntry) Value {
	cp := make([]DictEntry, len(entries))
	copy(cp, entries)
	return Value{kind: KindDict, dict: cp}
}

// NewBool creates a boolean Value.
func NewBool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Kind returns the variant tag of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNone reports whether the value is None.
func (v Value) IsNone() bool { return v.kind == KindNone }

// IsString reports whether the value is a string.
func (v Value) IsString() bool { return v.kind == KindString }

// IsBytes reports whether the value is a byte sequence.
func (v Value) IsBytes() bool { return v.kind == KindBytes }

// IsInteger reports whether the value is an integer.
func (v Value) IsInteger() bool { return v.kind == KindInteger }

// IsFloat reports whether the value is a float.
func (v Value) IsFloat() bool { return v.kind == KindFloat }

// IsComplex reports whether the value is a complex number.
func (v Value) IsComplex() bool { return v.kind == KindComplex }

// IsTuple reports whether the value is a tuple.
func (v Value) IsTuple() bool { return v.kind == KindTuple }

// IsList reports whether the value is a list.
func (v Value) IsList() bool { return v.kind == KindList }

// IsDict reports whether the value is a dict.
func (v Value) IsDict() bool { return v.kind == KindDict }

// IsSet reports whether the value is a set.
func (v Value) IsSet() bool { return v.kind == KindSet }

// IsBool reports whether the value is a boolean.
func (v Value) IsBool() bool { return v.kind == KindBool }

// Str returns the string payload, if any.
func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// Bytes returns a copy of the bytes payload, if any.
func (v Value) Bytes() ([]byte, bool) {
	if v.kind != KindBytes {
		return nil, false
	}
	cp := make([]byte, len(v.raw))
	copy(cp, v.raw)
	return cp, true
}

// Int returns a copy of the integer payload, if any.
func (v Value) Int() (*big.Int, bool) {
	if v.kind != KindInteger {
		return nil, false
	}
	return new(big.Int).Set(v.num), true
}

// Float returns the float payload, if any.
func (v Value) Float() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return v.flt, true
}

// Complex returns the complex payload, if any.
func (v Value) Complex() (complex128, bool) {
	if v.kind != KindComplex {
		return 0, false
	}
	return v.cplx, true
}

// Tuple returns a copy of the tuple elements, if any.
func (v Value) Tuple() ([]Value, bool) {
	if v.kind != KindTuple {
		return nil, false
	}
	return copyValues(v.seq), true
}

// List returns a copy of the list elements, if any.
func (v Value) List() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return copyValues(v.seq), true
}

// Set returns a copy of the set elements in insertion order, if any.
func (v Value) Set() ([]Value, bool) {
	if v.kind != KindSet {
		return nil, false
	}
	return copyValues(v.seq), true
}

// Dict returns a copy of the dict entries in insertion order, if any.
func (v Value) Dict() ([]DictEntry, bool) {
	if v.kind != KindDict {
		return nil, false
	}
	cp := make([]DictEntry, len(v.dict))
	copy(cp, v.dict)
	return cp, true
}

// Bool returns the boolean payload, if any.
func (v Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// Len returns the number of elements of a tuple, list, set, or dict, and
// false for any other kind.
func (v Value) Len() (int, bool) {
	switch v.kind {
	case KindTuple, KindList, KindSet:
		return len(v.seq), true
	case KindDict:
		return len(v.dict), true
	default:
		return 0, false
	}
}

// Equal reports whether two values are structurally equal: same kind and
// equal payloads, recursively for collections. Element order matters for
// every collection kind, including dicts and sets.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}

	switch v.kind {
	case KindNone:
		return true
	case KindString:
		return v.str == o.str
	case KindBytes:
		return string(v.raw) == string(o.raw)
	case KindInteger:
		return v.num.Cmp(o.num) == 0
	case KindFloat:
		return v.flt == o.flt
	case KindComplex:
		return v.cplx == o.cplx
	case KindBool:
		return v.b == o.b
	case KindTuple, KindList, KindSet:
		if len(v.seq) != len(o.seq) {
			return false
		}
		for i := range v.seq {
			if !v.seq[i].Equal(o.seq[i]) {
				return false
			}
		}
		return true
	case KindDict:
		if len(v.dict) != len(o.dict) {
			return false
		}
		for i := range v.dict {
			if !v.dict[i].Key.Equal(o.dict[i].Key) || !v.dict[i].Value.Equal(o.dict[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// copyValues copies a slice of values.
func copyValues(vs []Value) []Value {
	cp := make([]Value, len(vs))
	copy(cp, vs)
	return cp
}
