package main

import (
	"strconv"
	"strings"
)

// metaBuiltins: the mutable-meta-character and introspection dispatch
// group, grounded on original_source's ttm_cm and ttm_ttm_meta/ttm_ttm.
var metaBuiltins = []builtin{
	{name: "cm", minArgs: 1, maxArgs: 1, noValue: true, fn: biCm},
	{name: "ttm", minArgs: 1, maxArgs: -1, noValue: false, fn: biTtm},
}

// biCm implements `cm(c)`: change the meta character at which `rs` stops
// reading (ttm_cm rewrites ttm->metac, the read-EOF character, which is
// distinct from the call-open sharp).
func biCm(tt *Interp, fr *frame) ([]codePoint, error) {
	s := fr.argString(tt, 1)
	if s == "" {
		return nil, nil
	}
	r := []rune(s)[0]
	if r > 127 {
		return nil, failuref(errNonASCII, "meta-character must be ASCII")
	}
	tt.meta.readEOF = r
	return nil, nil
}

// biTtm implements the `ttm` subcommand dispatcher (ttm_ttm): `ttm;meta;s`
// rewrites all five control characters at once from the single
// five-character argument s, in the order sharp, open, semicolon, close,
// escape; `ttm;info;name;n…` and `ttm;info;class;c…` render introspection
// text.
func biTtm(tt *Interp, fr *frame) ([]codePoint, error) {
	switch fr.argString(tt, 1) {
	case "meta":
		return nil, ttmMeta(tt, fr)
	case "info":
		return ttmInfo(tt, fr)
	default:
		return nil, failuref(errIllegalMeta, "unknown ttm subcommand %q", fr.argString(tt, 1))
	}
}

func ttmMeta(tt *Interp, fr *frame) error {
	chars := []rune(fr.argString(tt, 2))
	if len(chars) != 5 {
		return failuref(errIllegalMeta, "ttm;meta needs exactly 5 characters, got %d", len(chars))
	}
	// order: sharp, open, semicolon, close, escape
	tt.meta.sharp = chars[0]
	tt.meta.open = chars[1]
	tt.meta.semi = chars[2]
	tt.meta.close = chars[3]
	tt.meta.escape = chars[4]
	return nil
}

func ttmInfo(tt *Interp, fr *frame) ([]codePoint, error) {
	if fr.argc() < 3 {
		return nil, failuref(errTooFewParams, "ttm;info needs a kind")
	}
	switch fr.argString(tt, 2) {
	case "name":
		return ttmInfoNames(tt, fr), nil
	case "class":
		return ttmInfoClasses(tt, fr), nil
	default:
		return nil, failuref(errIllegalMeta, "unknown ttm;info kind %q", fr.argString(tt, 2))
	}
}

func ttmInfoNames(tt *Interp, fr *frame) []codePoint {
	var lines []string
	for i := 3; i < fr.argc(); i++ {
		key := fr.argString(tt, i)
		nm, ok := tt.dict.lookup(key)
		if !ok {
			lines = append(lines, key+": <undefined>")
			continue
		}
		if nm.isBuiltin() {
			max := "*"
			if nm.builtin.maxArgs >= 0 {
				max = strconv.Itoa(nm.builtin.maxArgs)
			}
			lines = append(lines, key+": <builtin> "+strconv.Itoa(nm.builtin.minArgs)+","+max)
			continue
		}
		lines = append(lines, key+": "+renderMarks(nm.body))
	}
	return textResult(strings.Join(lines, "\n"))
}

func ttmInfoClasses(tt *Interp, fr *frame) []codePoint {
	var lines []string
	for i := 3; i < fr.argc(); i++ {
		key := fr.argString(tt, i)
		cl, ok := tt.classes.lookup(key)
		if !ok {
			lines = append(lines, key+": <undefined>")
			continue
		}
		chars := make([]rune, 0, len(cl.characters))
		for r := range cl.characters {
			chars = append(chars, r)
		}
		prefix := ""
		if cl.negative {
			prefix = "^"
		}
		lines = append(lines, key+": "+prefix+string(chars))
	}
	return textResult(strings.Join(lines, "\n"))
}
