package main

import (
	"strings"

	"github.com/jcorbin/gottm/internal/runeio"
)

// reportFailure prints the fatal diagnostic of spec §4.7/§7: the failure
// code and label, the frame stack newest-first with each call's name and
// argument preview, then the buffer context around passive and active with
// elision markers. Grounded on gothird's dumper.go (vmDumper), which walks
// the teacher's own memory/dictionary for a fatal dump; the shape (walk the
// stack, walk the data) carries over even though the data being walked is
// now a call-frame stack and a single text buffer instead of paged VM
// memory.
func (tt *Interp) reportFailure(f *failure) {
	tt.logf("ERROR", "Fatal error: (%d) %v", int(f.code), f.code)
	if f.message != "" {
		tt.logf("", "  %s", f.message)
	}
	tt.dumpFrames()
	tt.dumpBufferContext()
	if tt.out != nil {
		tt.out.Flush()
	}
}

func (tt *Interp) dumpFrames() {
	depth := tt.frames.depth()
	for i := 0; i < depth; i++ {
		fr, ok := tt.frames.at(i)
		if !ok {
			break
		}
		tt.logf("", "  #%d %s", i, tt.frameSyntax(&fr))
	}
}

// frameSyntax renders a call frame the way it appeared in source: its
// disposition marker, name, and a length-bounded preview of each argument.
func (tt *Interp) frameSyntax(fr *frame) string {
	open := string(tt.meta.sharp) + string(tt.meta.open)
	if !fr.activeDisposition {
		open = string(tt.meta.sharp) + open
	}
	s := open + fr.argString(tt, 0)
	for i := 1; i < fr.argc(); i++ {
		s += string(tt.meta.semi) + previewText(visibleText(fr.argText(tt, i)))
	}
	return s + string(tt.meta.close)
}

const previewLimit = 40

func previewText(s string) string {
	rs := []rune(s)
	if len(rs) <= previewLimit {
		return s
	}
	return string(rs[:previewLimit]) + "..."
}

// visibleText renders buffer text for a diagnostic line: marks as their
// ^NN token, C0 controls in caret form, everything else as itself.
func visibleText(cps []codePoint) string {
	var sb strings.Builder
	for _, cp := range cps {
		if cp.isMark() {
			sb.WriteString(cp.String())
		} else if caret := runeio.CaretForm(cp.rune()); caret != "" {
			sb.WriteString(caret)
		} else {
			sb.WriteRune(cp.rune())
		}
	}
	return sb.String()
}

// dumpBufferContext prints the text around passive (finalized output so
// far) and active (what remains to scan), eliding long stretches.
func (tt *Interp) dumpBufferContext() {
	b := &tt.buf
	const window = 40

	before := elidedWindow(b.content[:b.passive], window, true)
	tt.logf("", "  ...passive -> %s", before)

	var after string
	if b.active < b.end {
		after = elidedWindow(b.content[b.active:b.end], window, false)
	}
	tt.logf("", "  active -> %s...", after)
}

func elidedWindow(cps []codePoint, window int, fromEnd bool) string {
	if len(cps) <= window {
		return visibleText(cps)
	}
	if fromEnd {
		return "..." + visibleText(cps[len(cps)-window:])
	}
	return visibleText(cps[:window])
}
