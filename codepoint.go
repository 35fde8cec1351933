package main

import "fmt"

// codePoint is a single element of a buffer. Ordinary text lives below
// ordinaryMax; the two top bits distinguish the two mark flavors from real
// text, per spec §3.
type codePoint uint32

const (
	segMarkFlag      codePoint = 1 << 31
	creationMarkFlag codePoint = 1 << 30
	markIndexMask    codePoint = 0xff
	ordinaryMax      codePoint = 1 << 29
)

// isSegMark reports whether cp is a segment mark, i.e. "substitute argument
// N here" inside a stored body.
func (cp codePoint) isSegMark() bool { return cp&segMarkFlag != 0 }

// isCreationMark reports whether cp is a creation mark, i.e. "substitute a
// fresh sequence number here" inside a stored body.
func (cp codePoint) isCreationMark() bool { return cp&creationMarkFlag != 0 && cp&segMarkFlag == 0 }

func (cp codePoint) isMark() bool { return cp.isSegMark() || cp.isCreationMark() }

// segMarkIndex extracts the argument index carried by a segment mark. Only
// the low byte is consulted, per spec §9 ("Segment-mark index extraction
// uses only the low byte").
func (cp codePoint) segMarkIndex() int { return int(cp & markIndexMask) }

func newSegMark(index int) codePoint { return segMarkFlag | codePoint(index&int(markIndexMask)) }

func newCreationMark() codePoint { return creationMarkFlag }

func (cp codePoint) rune() rune { return rune(cp) }

func codePointsOf(s string) []codePoint {
	rs := []rune(s)
	cps := make([]codePoint, len(rs))
	for i, r := range rs {
		cps[i] = codePoint(r)
	}
	return cps
}

func stringOf(cps []codePoint) string {
	rs := make([]rune, len(cps))
	for i, cp := range cps {
		rs[i] = cp.rune()
	}
	return string(rs)
}

// String renders cp the way diagnostics and ttm;info do: ordinary
// characters print as themselves, marks print as the "^NN" token of §6.4.
func (cp codePoint) String() string {
	switch {
	case cp.isSegMark():
		return fmt.Sprintf("^%02d", cp.segMarkIndex())
	case cp.isCreationMark():
		return "^00"
	default:
		return string(cp.rune())
	}
}

// renderMarks renders a body the way ttm;info does, with every mark spelled
// out as its "^NN" token rather than as raw (unprintable) bits.
func renderMarks(cps []codePoint) string {
	var out []rune
	for _, cp := range cps {
		if cp.isMark() {
			out = append(out, []rune(cp.String())...)
		} else {
			out = append(out, cp.rune())
		}
	}
	return string(out)
}
