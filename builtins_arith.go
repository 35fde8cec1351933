package main

import "strings"

// arithBuiltins: 64-bit signed integer arithmetic and the numeric/lexical
// comparison pairs, grounded on original_source's ttm_abs/ttm_ad/ttm_su/
// ttm_mu/ttm_dv/ttm_dvr/ttm_eq/ttm_gt/ttm_lt/ttm_eql/ttm_gtl/ttm_ltl.
var arithBuiltins = []builtin{
	{name: "abs", minArgs: 1, maxArgs: 1, noValue: false, fn: biAbs},
	{name: "ad", minArgs: 2, maxArgs: -1, noValue: false, fn: biAd},
	{name: "su", minArgs: 2, maxArgs: 2, noValue: false, fn: biSu},
	{name: "mu", minArgs: 2, maxArgs: -1, noValue: false, fn: biMu},
	{name: "dv", minArgs: 2, maxArgs: 2, noValue: false, fn: biDv},
	{name: "dvr", minArgs: 2, maxArgs: 2, noValue: false, fn: biDvr},
	{name: "eq", minArgs: 4, maxArgs: 4, noValue: false, fn: numericCompare(func(l, r int64) bool { return l == r })},
	{name: "gt", minArgs: 4, maxArgs: 4, noValue: false, fn: numericCompare(func(l, r int64) bool { return l > r })},
	{name: "lt", minArgs: 4, maxArgs: 4, noValue: false, fn: numericCompare(func(l, r int64) bool { return l < r })},
	{name: "eq?", minArgs: 4, maxArgs: 4, noValue: false, fn: lexicalCompare(func(c int) bool { return c == 0 })},
	{name: "gt?", minArgs: 4, maxArgs: 4, noValue: false, fn: lexicalCompare(func(c int) bool { return c > 0 })},
	{name: "lt?", minArgs: 4, maxArgs: 4, noValue: false, fn: lexicalCompare(func(c int) bool { return c < 0 })},
}

func biAbs(tt *Interp, fr *frame) ([]codePoint, error) {
	n, err := argInt(tt, fr, 1)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		n = -n
	}
	return textResult(formatInt(n)), nil
}

func biAd(tt *Interp, fr *frame) ([]codePoint, error) {
	var total int64
	for i := 1; i < fr.argc(); i++ {
		n, err := argInt(tt, fr, i)
		if err != nil {
			return nil, err
		}
		total += n
	}
	return textResult(formatInt(total)), nil
}

func biSu(tt *Interp, fr *frame) ([]codePoint, error) {
	l, r, err := binaryInts(tt, fr)
	if err != nil {
		return nil, err
	}
	return textResult(formatInt(l - r)), nil
}

func biMu(tt *Interp, fr *frame) ([]codePoint, error) {
	total := int64(1)
	for i := 1; i < fr.argc(); i++ {
		n, err := argInt(tt, fr, i)
		if err != nil {
			return nil, err
		}
		total *= n
	}
	return textResult(formatInt(total)), nil
}

func biDv(tt *Interp, fr *frame) ([]codePoint, error) {
	l, r, err := binaryInts(tt, fr)
	if err != nil {
		return nil, err
	}
	if r == 0 {
		return nil, failuref(errDecimalRequired, "division by zero")
	}
	return textResult(formatInt(l / r)), nil
}

func biDvr(tt *Interp, fr *frame) ([]codePoint, error) {
	l, r, err := binaryInts(tt, fr)
	if err != nil {
		return nil, err
	}
	if r == 0 {
		return nil, failuref(errDecimalRequired, "division by zero")
	}
	return textResult(formatInt(l % r)), nil
}

func binaryInts(tt *Interp, fr *frame) (int64, int64, error) {
	l, err := argInt(tt, fr, 1)
	if err != nil {
		return 0, 0, err
	}
	r, err := argInt(tt, fr, 2)
	if err != nil {
		return 0, 0, err
	}
	return l, r, nil
}

func argInt(tt *Interp, fr *frame, i int) (int64, error) {
	return parseInt(fr.argString(tt, i))
}

func numericCompare(pred func(l, r int64) bool) builtinFunc {
	return func(tt *Interp, fr *frame) ([]codePoint, error) {
		l, r, err := binaryInts(tt, fr)
		if err != nil {
			return nil, err
		}
		return branch(pred(l, r), fr.argString(tt, 3), fr.argString(tt, 4)), nil
	}
}

func lexicalCompare(pred func(c int) bool) builtinFunc {
	return func(tt *Interp, fr *frame) ([]codePoint, error) {
		c := strings.Compare(fr.argString(tt, 1), fr.argString(tt, 2))
		return branch(pred(c), fr.argString(tt, 3), fr.argString(tt, 4)), nil
	}
}
