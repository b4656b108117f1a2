package pylit

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// convertNumber converts a numeric literal token into a Value.
func convertNumber(tok token) (Value, error) {
	switch tok.Type {
	case tokInt:
		return Value{kind: KindInteger, num: parseIntegerLit(tok.Lit)}, nil

	case tokFloat:
		f, err := parseFloatLit(tok)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: KindFloat, flt: f}, nil

	case tokImag:
		return parseImagLit(tok)

	default:
		panic("pylit: internal error: non-numeric token in number conversion")
	}
}

// parseIntegerLit converts an integer literal, honoring the radix prefix
// and stripping digit separators. The lexer guarantees the literal shape,
// so conversion cannot fail.
func parseIntegerLit(lit string) *big.Int {
	radix := 10
	digits := lit
	if len(lit) > 2 && lit[0] == '0' {
		switch lit[1] {
		case 'b', 'B':
			radix, digits = 2, lit[2:]
		case 'o', 'O':
			radix, digits = 8, lit[2:]
		case 'x', 'X':
			radix, digits = 16, lit[2:]
		}
	}

	digits = strings.ReplaceAll(digits, "_", "")
	n, ok := new(big.Int).SetString(digits, radix)
	if !ok {
		panic("pylit: internal error: lexer accepted unparseable integer " + strconv.Quote(lit))
	}

	return n
}

// parseFloatLit converts a float literal with standard double-precision
// rules. A literal the double type cannot represent (including exponent
// overflow) is a float parse error.
func parseFloatLit(tok token) (float64, error) {
	f, err := strconv.ParseFloat(strings.ReplaceAll(tok.Lit, "_", ""), 64)
	if err != nil {
		return 0, floatErr(tok)
	}

	return f, nil
}

// parseImagLit converts an imaginary literal into a pure-imaginary complex
// value. The magnitude reuses the float conversion.
func parseImagLit(tok token) (Value, error) {
	body := strings.ReplaceAll(tok.Lit[:len(tok.Lit)-1], "_", "")
	f, err := strconv.ParseFloat(body, 64)
	if err != nil {
		return Value{}, floatErr(tok)
	}

	return Value{kind: KindComplex, cplx: complex(0, f)}, nil
}

// floatErr formats a float parse error at the token position.
func floatErr(tok token) error {
	return fmt.Errorf("%w at %d:%d: %q is not representable as a float64",
		ErrFloatParse, tok.Line, tok.Col, tok.Lit)
}

// bigZero returns a fresh zero big integer.
func bigZero() *big.Int {
	return new(big.Int)
}

// addValues adds two numeric values using the promotion table.
//
// The grammar guarantees only numeric operands reach this point; any other
// pairing panics.
func addValues(lhs, rhs Value) (Value, error) {
	switch {
	case lhs.kind == KindInteger && rhs.kind == KindInteger:
		return Value{kind: KindInteger, num: new(big.Int).Add(lhs.num, rhs.num)}, nil

	case lhs.kind == KindFloat && rhs.kind == KindFloat:
		return Value{kind: KindFloat, flt: lhs.flt + rhs.flt}, nil

	case lhs.kind == KindComplex && rhs.kind == KindComplex:
		return Value{kind: KindComplex, cplx: lhs.cplx + rhs.cplx}, nil

	case lhs.kind == KindInteger && rhs.kind == KindFloat:
		f, err := intToFloat(lhs.num)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: KindFloat, flt: f + rhs.flt}, nil

	case lhs.kind == KindFloat && rhs.kind == KindInteger:
		f, err := intToFloat(rhs.num)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: KindFloat, flt: lhs.flt + f}, nil

	case lhs.kind == KindInteger && rhs.kind == KindComplex:
		f, err := intToFloat(lhs.num)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: KindComplex, cplx: complex(f, 0) + rhs.cplx}, nil

	case lhs.kind == KindComplex && rhs.kind == KindInteger:
		f, err := intToFloat(rhs.num)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: KindComplex, cplx: lhs.cplx + complex(f, 0)}, nil

	case lhs.kind == KindFloat && rhs.kind == KindComplex:
		return Value{kind: KindComplex, cplx: complex(lhs.flt, 0) + rhs.cplx}, nil

	case lhs.kind == KindComplex && rhs.kind == KindFloat:
		return Value{kind: KindComplex, cplx: lhs.cplx + complex(rhs.flt, 0)}, nil

	default:
		panic("pylit: internal error: non-numeric operands in numeric fold")
	}
}

// subValues subtracts rhs from lhs using the promotion table. Operand order
// is preserved; subtraction is not commutative.
func subValues(lhs, rhs Value) (Value, error) {
	switch {
	case lhs.kind == KindInteger && rhs.kind == KindInteger:
		return Value{kind: KindInteger, num: new(big.Int).Sub(lhs.num, rhs.num)}, nil

	case lhs.kind == KindFloat && rhs.kind == KindFloat:
		return Value{kind: KindFloat, flt: lhs.flt - rhs.flt}, nil

	case lhs.kind == KindComplex && rhs.kind == KindComplex:
		return Value{kind: KindComplex, cplx: lhs.cplx - rhs.cplx}, nil

	case lhs.kind == KindInteger && rhs.kind == KindFloat:
		f, err := intToFloat(lhs.num)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: KindFloat, flt: f - rhs.flt}, nil

	case lhs.kind == KindFloat && rhs.kind == KindInteger:
		f, err := intToFloat(rhs.num)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: KindFloat, flt: lhs.flt - f}, nil

	case lhs.kind == KindInteger && rhs.kind == KindComplex:
		f, err := intToFloat(lhs.num)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: KindComplex, cplx: complex(f, 0) - rhs.cplx}, nil

	case lhs.kind == KindComplex && rhs.kind == KindInteger:
		f, err := intToFloat(rhs.num)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: KindComplex, cplx: lhs.cplx - complex(f, 0)}, nil

	case lhs.kind == KindFloat && rhs.kind == KindComplex:
		return Value{kind: KindComplex, cplx: complex(lhs.flt, 0) - rhs.cplx}, nil

	case lhs.kind == KindComplex && rhs.kind == KindFloat:
		return Value{kind: KindComplex, cplx: lhs.cplx - complex(rhs.flt, 0)}, nil

	default:
		panic("pylit: internal error: non-numeric operands in numeric fold")
	}
}

// intToFloat casts an integer to a float64. Only magnitudes the double type
// cannot hold at all fail; ordinary precision loss is silent.
func intToFloat(i *big.Int) (float64, error) {
	f, _ := new(big.Float).SetInt(i).Float64()
	if math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %s to float64", ErrNumericCast, i.String())
	}

	return f, nil
}
