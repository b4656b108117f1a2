package pylit

import "errors"

var (
	// ErrSyntax indicates the grammar rejected the input.
	ErrSyntax = errors.New("syntax error")

	// ErrIllegalEscape indicates an invalid escape sequence in a string or bytes literal.
	ErrIllegalEscape = errors.New("illegal escape sequence")

	// ErrFloatParse indicates a float literal is not representable as a float64.
	ErrFloatParse = errors.New("float parse error")

	// ErrNumericCast indicates an integer could not be represented in a target numeric type.
	ErrNumericCast = errors.New("numeric cast error")

	// ErrEmptySet indicates an attempt to format a set with no elements.
	// There is no literal representation of an empty set ({} is an empty dict).
	ErrEmptySet = errors.New("empty set has no literal representation")

	// ErrDepth indicates the nesting depth limit was exceeded.
	ErrDepth = errors.New("nesting too deep")
)
