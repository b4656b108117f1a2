/*
Package pylit parses Python literal expressions into a structured Value and
formats a Value back into canonical ASCII text.

It covers the literal subset that Python's ast.literal_eval() accepts:
strings, bytes, numbers (including a restricted +/- expression grammar over
numeric literals), tuples, lists, dicts, sets, booleans, and None. It is
meant for reading and writing data expressed in this syntax, such as the
header dictionaries embedded in NPY files, without a Python runtime.

Collections preserve source order exactly: dict keys are not deduplicated or
hashed, sets are plain ordered sequences. Integers have arbitrary precision;
floats and the parts of complex numbers are float64.

Reader example:

	v, err := pylit.Parse([]byte(`{'descr': '<f8', 'shape': (3, 4)}`), nil)
	if err != nil {
		// handle error
	}

Writer example:

	out, err := v.ASCII()
	if err != nil {
		// handle error
	}

Streaming writer example:

	err := v.WriteASCII(dst)
	if err != nil {
		// handle error
	}

Validator example:

	issues := pylit.Validate(v, nil)
	if len(issues) != 0 {
		// handle validation issues
	}

Formatted output is guaranteed ASCII-only; everything else is escaped.
Formatting an empty set fails with ErrEmptySet since Python has no literal
syntax for one ({} is an empty dict).
*/
package pylit
