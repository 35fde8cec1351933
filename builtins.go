package main

// registerBuiltins populates tt.dict with the full built-in table of spec
// §6.2, grouped across builtins_*.go the way spec.md groups them.
// Grounded on gothird's vmCodeTable/vmCodeNames in first.go: a flat
// {name, minargs, maxargs, novalue, fn} table walked once at startup.
func registerBuiltins(tt *Interp) {
	for _, group := range [][]builtin{
		dictBuiltins,
		selectBuiltins,
		stringBuiltins,
		arithBuiltins,
		classBuiltins,
		ioBuiltins,
		envBuiltins,
		metaBuiltins,
	} {
		for i := range group {
			b := group[i]
			tt.dict.insert(&name{
				key:     b.name,
				builtin: &b,
				locked:  b.locked,
			})
		}
	}
}

// textResult wraps a plain Go string as builtin result text.
func textResult(s string) []codePoint { return codePointsOf(s) }

// lookupUserName resolves argument i to a non-builtin dictionary entry, the
// shared precondition of every residual-reading/segmenting builtin (cc, cn,
// cp, cs, sn, isc, scn, ccl, scl, ss, sc, cr, rrp, eos): absent raises
// no-name, builtin raises primitives-not-allowed. tcl does its own lookup,
// since it takes its false branch on an absent name.
func (tt *Interp) lookupUserName(fr *frame, i int) (*name, error) {
	key := fr.argString(tt, i)
	nm, ok := tt.dict.lookup(key)
	if !ok {
		return nil, failuref(errNoName, "%q", key)
	}
	if nm.isBuiltin() {
		return nil, failuref(errPrimitive, "%q is a primitive", key)
	}
	return nm, nil
}

func branch(cond bool, t, f string) []codePoint {
	if cond {
		return textResult(t)
	}
	return textResult(f)
}
