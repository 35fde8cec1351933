package main

import "fmt"

// failureCode is the §7 error taxonomy. Grounded on gothird's typed errors
// (errOOM, progError, storError in internals.go) generalized into a single
// coded type, since TTM's taxonomy is an enumerated list rather than a
// handful of ad-hoc conditions.
type failureCode int

const (
	errNoName failureCode = iota + 1
	errPrimitive
	errNotDefined
	errTooFewParams
	errTooManyParams
	errDecimalRequired
	errTooManyDigits
	errPositiveRequired
	errBufferOverflow
	errStackOverflow
	errStackUnderflow
	errMemoryExhausted
	errTooManyIncludes
	errTooManySegmentMarks
	errOutOfRange
	errUnexpectedEOS
	errIO
	errIncludeOpenFailed
	errNonASCII
	errBadCodeUnit
	errBadCodePoint
	errIllegalMeta
)

var failureLabels = map[failureCode]string{
	errNoName:              "name not found",
	errPrimitive:           "primitives not allowed",
	errNotDefined:          "not defined",
	errTooFewParams:        "too few parameters given",
	errTooManyParams:       "too many parameters",
	errDecimalRequired:     "decimal integer required",
	errTooManyDigits:       "too many digits",
	errPositiveRequired:    "positive value required",
	errBufferOverflow:      "buffer overflow",
	errStackOverflow:       "stack overflow",
	errStackUnderflow:      "stack underflow",
	errMemoryExhausted:     "memory exhausted",
	errTooManyIncludes:     "too many includes",
	errTooManySegmentMarks: "too many segment marks",
	errOutOfRange:          "out of range",
	errUnexpectedEOS:       "unexpected end of string",
	errIO:                  "i/o error",
	errIncludeOpenFailed:   "include open failed",
	errNonASCII:            "non-ASCII where ASCII required",
	errBadCodeUnit:         "bad 8-bit code unit",
	errBadCodePoint:        "bad code point",
	errIllegalMeta:         "illegal ttm subcommand",
}

func (c failureCode) String() string {
	if label, ok := failureLabels[c]; ok {
		return label
	}
	return fmt.Sprintf("failure(%d)", int(c))
}

// failure is the single fatal-error type raised by every builtin and the
// scanner. Every error is fatal (§4.7, §7) — there is no recover point
// inside expansion, only the one at the top of Interp.Run.
type failure struct {
	code    failureCode
	message string
}

func (f *failure) Error() string {
	if f.message == "" {
		return fmt.Sprintf("(%d) %v", int(f.code), f.code)
	}
	return fmt.Sprintf("(%d) %v: %v", int(f.code), f.code, f.message)
}

func failuref(code failureCode, format string, args ...interface{}) *failure {
	return &failure{code: code, message: fmt.Sprintf(format, args...)}
}
