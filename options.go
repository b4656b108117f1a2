package pylit

// defaultMaxDepth bounds recursive descent over nested collections in both
// directions to keep adversarial input from exhausting the call stack.
const defaultMaxDepth = 128

// ParseOptions controls parsing behavior.
type ParseOptions struct {
	// MaxDepth is the collection nesting limit (default 128). Input nested
	// deeper fails with ErrDepth.
	MaxDepth int
}

// FormatOptions controls formatting behavior.
type FormatOptions struct {
	// MaxDepth is the collection nesting limit (default 128). A value tree
	// nested deeper fails with ErrDepth.
	MaxDepth int
}

// ValidateOptions controls validation rules.
type ValidateOptions struct {
	// DisableNonFiniteCheck disables reporting of NaN and infinite
	// float/complex values, which format to text the grammar cannot reparse.
	DisableNonFiniteCheck bool
	// DisableUnhashableCheck disables reporting of dict keys and set
	// elements that Python could not hash (lists, dicts, sets).
	DisableUnhashableCheck bool
	// DisableDuplicateKeyCheck disables reporting of structurally equal
	// keys within a dict.
	DisableDuplicateKeyCheck bool
	// MaxDepth is the nesting depth above which validation reports the tree
	// as too deep and stops descending (default 128).
	MaxDepth int
}

// normalize normalizes the ParseOptions.
func (o *ParseOptions) normalize() ParseOptions {
	if o == nil {
		return ParseOptions{MaxDepth: defaultMaxDepth}
	}

	out := *o
	if out.MaxDepth <= 0 {
		out.MaxDepth = defaultMaxDepth
	}

	return out
}

// normalize normalizes the FormatOptions.
func (o *FormatOptions) normalize() FormatOptions {
	if o == nil {
		return FormatOptions{MaxDepth: defaultMaxDepth}
	}

	out := *o
	if out.MaxDepth <= 0 {
		out.MaxDepth = defaultMaxDepth
	}

	return out
}

// normalize normalizes the ValidateOptions.
func (o *ValidateOptions) normalize() ValidateOptions {
	if o == nil {
		return ValidateOptions{MaxDepth: defaultMaxDepth}
	}

	out := *o
	if out.MaxDepth <= 0 {
		out.MaxDepth = defaultMaxDepth
	}

	return out
}
