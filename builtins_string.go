package main

// stringBuiltins: plain string-transform operations that take and return
// text directly rather than reading through a name's residual, grounded on
// original_source's ttm_gn/ttm_zlc/ttm_zlcp/ttm_flip/ttm_norm.
var stringBuiltins = []builtin{
	{name: "gn", minArgs: 2, maxArgs: 2, noValue: false, fn: biGn},
	{name: "zlc", minArgs: 1, maxArgs: 1, noValue: false, fn: biZlc},
	{name: "zlcp", minArgs: 1, maxArgs: 1, noValue: false, fn: biZlcp},
	{name: "flip", minArgs: 1, maxArgs: 1, noValue: false, fn: biFlip},
	{name: "norm", minArgs: 1, maxArgs: 1, noValue: false, fn: biNorm},
}

// biGn implements `gn(k,s)`: give the first k characters of s if k > 0, or
// everything past the first |k| if k < 0 (ttm_gn).
func biGn(tt *Interp, fr *frame) ([]codePoint, error) {
	k, err := argInt(tt, fr, 1)
	if err != nil {
		return nil, err
	}
	s := fr.argText(tt, 2)
	slen := int64(len(s))
	switch {
	case k > 0:
		if k > slen {
			k = slen
		}
		return append([]codePoint(nil), s[:k]...), nil
	case k < 0:
		k = -k
		if k >= slen {
			return nil, nil
		}
		return append([]codePoint(nil), s[k:]...), nil
	default:
		return nil, nil
	}
}

// biZlc implements `zlc(s)`: rewrite zero-parenthesis-depth commas to
// semicolons, leaving escape sequences and parenthesis nesting untouched
// (ttm_zlc).
func biZlc(tt *Interp, fr *frame) ([]codePoint, error) {
	s := fr.argText(tt, 1)
	var out []codePoint
	depth := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		r := c.rune()
		switch {
		case r == tt.meta.escape:
			out = append(out, c)
			i++
			if i < len(s) {
				out = append(out, s[i])
			}
		case r == ',' && depth == 0:
			out = append(out, codePoint(tt.meta.semi))
		case r == '(':
			depth++
			out = append(out, c)
		case r == ')':
			depth--
			out = append(out, c)
		default:
			out = append(out, c)
		}
	}
	return out, nil
}

// biZlcp implements `zlcp(s)`: the zero-level comma-and-paren rewrite of
// spec §9's documented-as-incomplete original behavior, reproduced
// literally from ttm_zlcp rather than "fixed".
func biZlcp(tt *Interp, fr *frame) ([]codePoint, error) {
	s := fr.argText(tt, 1)
	var out []codePoint
	depth := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		r := c.rune()
		switch {
		case r == tt.meta.escape:
			out = append(out, c)
			i++
			if i < len(s) {
				out = append(out, s[i])
			}
		case depth == 0 && r == ',':
			if i+1 >= len(s) || s[i+1].rune() != '(' {
				out = append(out, codePoint(tt.meta.semi))
			}
		case r == '(':
			if depth == 0 && i > 0 {
				out = append(out, codePoint(tt.meta.semi))
			}
			if depth > 0 {
				out = append(out, c)
			}
			depth++
		case r == ')':
			depth--
			switch {
			case depth == 0 && i+1 < len(s) && s[i+1].rune() == ',':
			case depth == 0 && i+1 >= len(s):
			case depth == 0:
				out = append(out, codePoint(tt.meta.semi))
			default:
				out = append(out, c)
			}
		default:
			out = append(out, c)
		}
	}
	return out, nil
}

// biFlip implements `flip(s)`: reverse s.
func biFlip(tt *Interp, fr *frame) ([]codePoint, error) {
	s := fr.argText(tt, 1)
	out := make([]codePoint, len(s))
	for i, c := range s {
		out[len(s)-1-i] = c
	}
	return out, nil
}

// biNorm implements `norm(s)`: s's length as a decimal string.
func biNorm(tt *Interp, fr *frame) ([]codePoint, error) {
	return textResult(formatInt(int64(len(fr.argText(tt, 1))))), nil
}
