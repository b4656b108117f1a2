package pylit

import (
	"fmt"
	"math"
)

// IssueLevel represents severity of validation issue.
type IssueLevel string

const (
	// IssueError indicates a validation error.
	IssueError IssueLevel = "error"
	// IssueWarning indicates a validation warning.
	IssueWarning IssueLevel = "warning"
)

// Issue represents a validation issue.
type Issue struct {
	Level   IssueLevel `json:"level" yaml:"level"`                   // Severity level
	Code    string     `json:"code,omitempty" yaml:"code,omitempty"` // Machine-readable code
	Message string     `json:"message" yaml:"message"`               // Issue message
	Path    string     `json:"path,omitempty" yaml:"path,omitempty"` // Path to the affected value
}

// Validate inspects a value tree and returns issues without failing.
//
// Errors mark values that cannot round-trip through formatting (empty sets,
// non-finite floats); warnings mark values that format fine but could not be
// evaluated back by Python itself (unhashable dict keys or set elements,
// duplicate dict keys). Paths use subscript notation rooted at $, such as
// $[0] or $[2].key.
func Validate(v Value, opt *ValidateOptions) []Issue {
	vopt := opt.normalize()
	var out []Issue
	validateValue(v, "$", 0, vopt, &out)

	return out
}

// validateValue appends issues for a single value and recurses into
// collections.
func validateValue(v Value, path string, depth int, opt ValidateOptions, out *[]Issue) {
	if depth >= opt.MaxDepth {
		*out = append(*out, Issue{
			Level:   IssueWarning,
			Code:    "deep-nesting",
			Message: fmt.Sprintf("value nested deeper than %d", opt.MaxDepth),
			Path:    path,
		})
		return
	}

	switch v.kind {
	case KindFloat:
		validateFinite(v.flt, path, opt, out)

	case KindComplex:
		validateFinite(real(v.cplx), path, opt, out)
		validateFinite(imag(v.cplx), path, opt, out)

	case KindTuple, KindList:
		for i, e := range v.seq {
			validateValue(e, fmt.Sprintf("%s[%d]", path, i), depth+1, opt, out)
		}

	case KindSet:
		if len(v.seq) == 0 {
			*out = append(*out, Issue{
				Level:   IssueError,
				Code:    "empty-set",
				Message: "empty set has no literal representation",
				Path:    path,
			})
		}
		for i, e := range v.seq {
			epath := fmt.Sprintf("%s[%d]", path, i)
			if !opt.DisableUnhashableCheck && !hashable(e) {
				*out = append(*out, Issue{
					Level:   IssueWarning,
					Code:    "unhashable-element",
					Message: fmt.Sprintf("set element of kind %s is not hashable", e.kind),
					Path:    epath,
				})
			}
			validateValue(e, epath, depth+1, opt, out)
		}

	case KindDict:
		for i, entry := range v.dict {
			kpath := fmt.Sprintf("%s[%d].key", path, i)
			if !opt.DisableUnhashableCheck && !hashable(entry.Key) {
				*out = append(*out, Issue{
					Level:   IssueWarning,
					Code:    "unhashable-key",
					Message: fmt.Sprintf("dict key of kind %s is not hashable", entry.Key.kind),
					Path:    kpath,
				})
			}
			if !opt.DisableDuplicateKeyCheck {
				for j := 0; j < i; j++ {
					if v.dict[j].Key.Equal(entry.Key) {
						*out = append(*out, Issue{
							Level:   IssueWarning,
							Code:    "duplicate-key",
							Message: fmt.Sprintf("key duplicates entry %d", j),
							Path:    kpath,
						})
						break
					}
				}
			}
			validateValue(entry.Key, kpath, depth+1, opt, out)
			validateValue(entry.Value, fmt.Sprintf("%s[%d].value", path, i), depth+1, opt, out)
		}
	}
}

// validateFinite reports NaN and infinite parts, which have no literal
// syntax and therefore cannot be reparsed once formatted.
func validateFinite(f float64, path string, opt ValidateOptions, out *[]Issue) {
	if opt.DisableNonFiniteCheck {
		return
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		*out = append(*out, Issue{
			Level:   IssueError,
			Code:    "non-finite",
			Message: "non-finite number cannot be reparsed once formatted",
			Path:    path,
		})
	}
}

// hashable reports whether Python could hash the value: scalars always, a
// tuple only when every element is hashable, and containers never.
func hashable(v Value) bool {
	switch v.kind {
	case KindList, KindDict, KindSet:
		return false
	case KindTuple:
		for _, e := range v.seq {
			if !hashable(e) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
