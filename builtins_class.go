package main

// classBuiltins: character-class definition and residual-advancing class
// scans, grounded on original_source's ttm_dcl0/ttm_ecl/ttm_ccl/ttm_scl/
// ttm_tcl.
var classBuiltins = []builtin{
	{name: "dcl", minArgs: 2, maxArgs: 2, noValue: true, fn: biDcl},
	{name: "dncl", minArgs: 2, maxArgs: 2, noValue: true, fn: biDncl},
	{name: "ecl", minArgs: 1, maxArgs: -1, noValue: true, fn: biEcl},
	{name: "ccl", minArgs: 2, maxArgs: 2, noValue: false, fn: biCcl},
	{name: "scl", minArgs: 2, maxArgs: 2, noValue: true, fn: biScl},
	{name: "tcl", minArgs: 4, maxArgs: 4, noValue: false, fn: biTcl},
}

func biDcl(tt *Interp, fr *frame) ([]codePoint, error) { return nil, defineClass(tt, fr, false) }
func biDncl(tt *Interp, fr *frame) ([]codePoint, error) { return nil, defineClass(tt, fr, true) }

// defineClass implements `dcl`/`dncl`(cls,chars): create or replace a
// character class (ttm_dcl0).
func defineClass(tt *Interp, fr *frame, negative bool) error {
	key := fr.argString(tt, 1)
	chars := []rune(fr.argString(tt, 2))
	tt.classes.remove(key)
	tt.classes.insert(newClass(key, chars, negative))
	return nil
}

func biEcl(tt *Interp, fr *frame) ([]codePoint, error) {
	for i := 1; i < fr.argc(); i++ {
		tt.classes.remove(fr.argString(tt, i))
	}
	return nil, nil
}

// biCcl implements `ccl(cls,n)`: call characters of n's residual that belong
// to cls, advancing past them (ttm_ccl).
func biCcl(tt *Interp, fr *frame) ([]codePoint, error) {
	cl, nm, err := lookupClassAndName(tt, fr)
	if err != nil {
		return nil, err
	}
	start := nm.residual
	p := start
	for p < uint(len(nm.body)) && cl.matches(nm.body[p].rune()) {
		p++
	}
	result := append([]codePoint(nil), nm.body[start:p]...)
	nm.residual = p
	return result, nil
}

// biScl implements `scl(cls,n)`: skip characters of n's residual that belong
// to cls, without returning them (ttm_scl).
func biScl(tt *Interp, fr *frame) ([]codePoint, error) {
	cl, nm, err := lookupClassAndName(tt, fr)
	if err != nil {
		return nil, err
	}
	p := nm.residual
	for p < uint(len(nm.body)) && cl.matches(nm.body[p].rune()) {
		p++
	}
	nm.residual = p
	return nil, nil
}

// biTcl implements `tcl(cls,n,t,f)`: test whether the character at n's
// residual belongs to cls, without advancing; an undefined name takes the
// false branch (ttm_tcl).
func biTcl(tt *Interp, fr *frame) ([]codePoint, error) {
	cl, ok := tt.classes.lookup(fr.argString(tt, 1))
	if !ok {
		return nil, failuref(errNoName, "%q", fr.argString(tt, 1))
	}
	nm, ok := tt.dict.lookup(fr.argString(tt, 2))
	if !ok {
		return textResult(fr.argString(tt, 4)), nil
	}
	if nm.isBuiltin() {
		return nil, failuref(errPrimitive, "%q is a primitive", fr.argString(tt, 2))
	}
	var r rune
	if nm.residual < uint(len(nm.body)) {
		r = nm.body[nm.residual].rune()
	}
	return branch(cl.matches(r), fr.argString(tt, 3), fr.argString(tt, 4)), nil
}

func lookupClassAndName(tt *Interp, fr *frame) (*class, *name, error) {
	cl, ok := tt.classes.lookup(fr.argString(tt, 1))
	if !ok {
		return nil, nil, failuref(errNoName, "%q", fr.argString(tt, 1))
	}
	nm, err := tt.lookupUserName(fr, 2)
	if err != nil {
		return nil, nil, err
	}
	return cl, nm, nil
}
