package main

import (
	"sort"
	"strings"
)

// dictBuiltins: the dictionary-manipulation group of spec §6.2 — define,
// append, clone, mark, segment, erase, lock/unlock, query, and enumerate.
// Grounded on original_source's ttm_ds/ttm_ap/ttm_cf/ttm_cr/ttm_ss/ttm_sc/
// ttm_es/ttm_lf/ttm_uf/ttm_ndf/ttm_names.
var dictBuiltins = []builtin{
	{name: "ds", minArgs: 2, maxArgs: 2, noValue: true, locked: true, fn: biDs},
	{name: "ap", minArgs: 2, maxArgs: 2, noValue: true, fn: biAp},
	{name: "cf", minArgs: 2, maxArgs: 2, noValue: true, fn: biCf},
	{name: "cr", minArgs: 2, maxArgs: 2, noValue: true, locked: true, fn: biCr},
	{name: "ss", minArgs: 2, maxArgs: 2, noValue: true, locked: true, fn: biSs},
	{name: "sc", minArgs: 2, maxArgs: 63, noValue: false, fn: biSc},
	{name: "es", minArgs: 1, maxArgs: -1, noValue: true, locked: true, fn: biEs},
	{name: "lf", minArgs: 0, maxArgs: -1, noValue: true, fn: biLf},
	{name: "uf", minArgs: 0, maxArgs: -1, noValue: true, fn: biUf},
	{name: "ndf", minArgs: 3, maxArgs: 3, noValue: false, fn: biNdf},
	{name: "names", minArgs: 0, maxArgs: 1, noValue: false, fn: biNames},
}

// biDs implements `ds(n,b)`: define or redefine name n with body b. On
// redefinition the builtin/residual/segment-mark state resets but the lock
// and trace flags survive (ttm_ds).
func biDs(tt *Interp, fr *frame) ([]codePoint, error) {
	body := append([]codePoint(nil), fr.argText(tt, 2)...)
	tt.defineName(fr.argString(tt, 1), body)
	return nil, nil
}

// defineName is ds's define-or-redefine discipline, shared with the -D
// predefine option.
func (tt *Interp) defineName(key string, body []codePoint) {
	if existing, ok := tt.dict.lookup(key); ok {
		existing.builtin = nil
		existing.body = body
		existing.residual = 0
		existing.maxSegMark = 0
	} else {
		tt.dict.insert(&name{key: key, body: body})
	}
}

// biAp implements `ap(n,s)`: append s to n's body, defining n if absent
// (ttm_ap's "if(str == NULL) { ttm_ds(...); return; }" fallback).
func biAp(tt *Interp, fr *frame) ([]codePoint, error) {
	nm, ok := tt.dict.lookup(fr.argString(tt, 1))
	if !ok {
		return biDs(tt, fr)
	}
	if nm.isBuiltin() {
		return nil, failuref(errPrimitive, "%q is a primitive", fr.argString(tt, 1))
	}
	nm.body = append(nm.body, fr.argText(tt, 2)...)
	nm.residual = uint(len(nm.body))
	return nil, nil
}

// biCf implements `cf(new,old)`: clone old's fields onto new (creating new if
// absent), then deep-copy the body so the two names don't alias storage
// (ttm_cf's field-copy-then-fixup).
func biCf(tt *Interp, fr *frame) ([]codePoint, error) {
	newKey, oldKey := fr.argString(tt, 1), fr.argString(tt, 2)
	oldNm, ok := tt.dict.lookup(oldKey)
	if !ok {
		return nil, failuref(errNoName, "%q", oldKey)
	}
	newNm, ok := tt.dict.lookup(newKey)
	if !ok {
		newNm = &name{key: newKey}
		tt.dict.insert(newNm)
	}
	key := newNm.key
	*newNm = *oldNm
	newNm.key = key
	if oldNm.body != nil {
		newNm.body = append([]codePoint(nil), oldNm.body...)
	}
	return nil, nil
}

// biCr implements `cr(n,s)`: mark every occurrence of s in n's body (from
// its residual onward) with a single shared creation mark.
func biCr(tt *Interp, fr *frame) ([]codePoint, error) {
	nm, err := tt.lookupUserName(fr, 1)
	if err != nil {
		return nil, err
	}
	_, err = segmentName(nm, []string{fr.argString(tt, 2)}, true)
	return nil, err
}

func biSs(tt *Interp, fr *frame) ([]codePoint, error) {
	_, err := ssImpl(tt, fr)
	return nil, err
}

func biSc(tt *Interp, fr *frame) ([]codePoint, error) {
	count, err := ssImpl(tt, fr)
	if err != nil {
		return nil, err
	}
	return textResult(formatInt(int64(count))), nil
}

// ssImpl is shared by `ss` and `sc` (§4.5): segment-mark every occurrence of
// each value argument within name's body.
func ssImpl(tt *Interp, fr *frame) (int, error) {
	nm, err := tt.lookupUserName(fr, 1)
	if err != nil {
		return 0, err
	}
	values := make([]string, 0, fr.argc()-2)
	for i := 2; i < fr.argc(); i++ {
		values = append(values, fr.argString(tt, i))
	}
	return segmentName(nm, values, false)
}

// biEs implements `es(n…)`: erase each named entry unless locked.
func biEs(tt *Interp, fr *frame) ([]codePoint, error) {
	for i := 1; i < fr.argc(); i++ {
		key := fr.argString(tt, i)
		if nm, ok := tt.dict.lookup(key); ok && !nm.locked {
			tt.dict.remove(key)
		}
	}
	return nil, nil
}

func biLf(tt *Interp, fr *frame) ([]codePoint, error) { return nil, setLocked(tt, fr, true) }
func biUf(tt *Interp, fr *frame) ([]codePoint, error) { return nil, setLocked(tt, fr, false) }

func setLocked(tt *Interp, fr *frame, locked bool) error {
	for i := 1; i < fr.argc(); i++ {
		key := fr.argString(tt, i)
		nm, ok := tt.dict.lookup(key)
		if !ok {
			return failuref(errNoName, "%q", key)
		}
		nm.locked = locked
	}
	return nil
}

func biNdf(tt *Interp, fr *frame) ([]codePoint, error) {
	_, ok := tt.dict.lookup(fr.argString(tt, 1))
	return branch(ok, fr.argString(tt, 2), fr.argString(tt, 3)), nil
}

// biNames implements `names([any])`: sorted list of user-defined names, or
// of every name (including builtins) when an argument is given.
func biNames(tt *Interp, fr *frame) ([]codePoint, error) {
	all := fr.argc() > 1
	var keys []string
	for key, nm := range tt.dict {
		if all || !nm.isBuiltin() {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return textResult(strings.Join(keys, ",")), nil
}
