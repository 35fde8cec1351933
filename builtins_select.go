package main

// selectBuiltins: residual-advancing reads over a name's body (spec §6.2's
// "Residual reads" group), grounded on original_source's
// ttm_cc/ttm_cn/ttm_cp/ttm_cs/ttm_sn/ttm_isc/ttm_scn/ttm_rrp/ttm_eos.
var selectBuiltins = []builtin{
	{name: "cc", minArgs: 1, maxArgs: 1, noValue: false, locked: true, fn: biCc},
	{name: "cn", minArgs: 2, maxArgs: 2, noValue: false, fn: biCn},
	{name: "cp", minArgs: 1, maxArgs: 1, noValue: false, locked: true, fn: biCp},
	{name: "cs", minArgs: 1, maxArgs: 1, noValue: false, locked: true, fn: biCs},
	{name: "sn", minArgs: 2, maxArgs: 2, noValue: true, fn: biSn},
	{name: "isc", minArgs: 4, maxArgs: 4, noValue: false, fn: biIsc},
	{name: "scn", minArgs: 3, maxArgs: 3, noValue: false, fn: biScn},
	{name: "rrp", minArgs: 1, maxArgs: 1, noValue: true, fn: biRrp},
	{name: "eos", minArgs: 3, maxArgs: 3, noValue: false, fn: biEos},
}

// biCc implements `cc(n)`: call one character from n's residual, advancing
// it by one; returns empty at end of body.
func biCc(tt *Interp, fr *frame) ([]codePoint, error) {
	nm, err := tt.lookupUserName(fr, 1)
	if err != nil {
		return nil, err
	}
	if nm.residual >= uint(len(nm.body)) {
		return nil, nil
	}
	c := nm.body[nm.residual]
	nm.residual++
	return []codePoint{c}, nil
}

// biCn implements `cn(k,n)`: call |k| characters, from the residual forward
// if k > 0 or from the tail backward if k < 0 (ttm_cn).
func biCn(tt *Interp, fr *frame) ([]codePoint, error) {
	nm, err := tt.lookupUserName(fr, 2)
	if err != nil {
		return nil, err
	}
	k, err := argInt(tt, fr, 1)
	if err != nil {
		return nil, err
	}
	negative := k < 0
	if negative {
		k = -k
	}
	n := uint(k)
	bodyLen := uint(len(nm.body))
	var avail uint
	if nm.residual < bodyLen {
		avail = bodyLen - nm.residual
	}
	if n == 0 || avail == 0 {
		return nil, nil
	}
	if avail < n {
		n = avail
	}
	var start uint
	if negative {
		start = bodyLen - n
	} else {
		start = nm.residual
	}
	result := append([]codePoint(nil), nm.body[start:start+n]...)
	nm.residual += n
	return result, nil
}

// biCp implements `cp(n)`: call the parameter up to the next unnested
// semicolon (ttm_cp), tracking bracket depth with the current meta chars.
func biCp(tt *Interp, fr *frame) ([]codePoint, error) {
	nm, err := tt.lookupUserName(fr, 1)
	if err != nil {
		return nil, err
	}
	body := nm.body
	start := nm.residual
	p := start
	depth := 0
	for p < uint(len(body)) {
		c := body[p]
		r := c.rune()
		if r == tt.meta.semi && depth == 0 {
			break
		} else if r == tt.meta.open {
			depth++
		} else if r == tt.meta.close {
			depth--
		}
		p++
	}
	result := append([]codePoint(nil), body[start:p]...)
	nm.residual = p
	if nm.residual < uint(len(body)) {
		nm.residual++
	}
	return result, nil
}

// biCs implements `cs(n)`: call the text up to (not including) the next
// segment or creation mark (ttm_cs; creation marks end a segment too).
func biCs(tt *Interp, fr *frame) ([]codePoint, error) {
	nm, err := tt.lookupUserName(fr, 1)
	if err != nil {
		return nil, err
	}
	body := nm.body
	start := nm.residual
	p := start
	for p < uint(len(body)) && !body[p].isMark() {
		p++
	}
	result := append([]codePoint(nil), body[start:p]...)
	nm.residual = p
	if nm.residual < uint(len(body)) {
		nm.residual++
	}
	return result, nil
}

// biSn implements `sn(k,n)`: skip k characters of n's residual.
func biSn(tt *Interp, fr *frame) ([]codePoint, error) {
	nm, err := tt.lookupUserName(fr, 2)
	if err != nil {
		return nil, err
	}
	k, err := argInt(tt, fr, 1)
	if err != nil {
		return nil, err
	}
	if k < 0 {
		return nil, failuref(errPositiveRequired, "sn needs a non-negative count")
	}
	nm.residual += uint(k)
	if bodyLen := uint(len(nm.body)); nm.residual > bodyLen {
		nm.residual = bodyLen
	}
	return nil, nil
}

// biIsc implements `isc(pat,n,t,f)`: initial character scan — if n's
// residual begins with pat, advance past it and return t, else return f
// (ttm_isc).
func biIsc(tt *Interp, fr *frame) ([]codePoint, error) {
	nm, err := tt.lookupUserName(fr, 2)
	if err != nil {
		return nil, err
	}
	pat := codePointsOf(fr.argString(tt, 1))
	t, f := fr.argString(tt, 3), fr.argString(tt, 4)
	if matchesAt(nm.body, int(nm.residual), pat) {
		nm.residual += uint(len(pat))
		if bodyLen := uint(len(nm.body)); nm.residual > bodyLen {
			nm.residual = bodyLen
		}
		return textResult(t), nil
	}
	return textResult(f), nil
}

// biScn implements `scn(pat,n,f)`: character scan — search for pat from the
// residual forward; on match, return the text before it and advance past the
// match; on failure, return f without moving residual (ttm_scn).
func biScn(tt *Interp, fr *frame) ([]codePoint, error) {
	nm, err := tt.lookupUserName(fr, 2)
	if err != nil {
		return nil, err
	}
	pat := codePointsOf(fr.argString(tt, 1))
	f := fr.argString(tt, 3)
	body := nm.body
	start := int(nm.residual)
	for p := start; p <= len(body)-len(pat); p++ {
		if matchesAt(body, p, pat) {
			result := append([]codePoint(nil), body[start:p]...)
			nm.residual = uint(p + len(pat))
			if bodyLen := uint(len(body)); nm.residual > bodyLen {
				nm.residual = bodyLen
			}
			return result, nil
		}
	}
	return textResult(f), nil
}

func biRrp(tt *Interp, fr *frame) ([]codePoint, error) {
	nm, err := tt.lookupUserName(fr, 1)
	if err != nil {
		return nil, err
	}
	nm.residual = 0
	return nil, nil
}

func biEos(tt *Interp, fr *frame) ([]codePoint, error) {
	nm, err := tt.lookupUserName(fr, 1)
	if err != nil {
		return nil, err
	}
	return branch(nm.residual >= uint(len(nm.body)), fr.argString(tt, 2), fr.argString(tt, 3)), nil
}
