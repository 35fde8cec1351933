package main

import "io"

// ioBuiltins: peripheral I/O, grounded on original_source's ttm_ps/ttm_rs/
// ttm_psr/ttm_pf, adapted to gothird's flushio.WriteFlusher output plumbing
// instead of raw stdio FILE*s.
var ioBuiltins = []builtin{
	{name: "ps", minArgs: 1, maxArgs: 2, noValue: true, locked: true, fn: biPs},
	{name: "rs", minArgs: 0, maxArgs: 0, noValue: false, locked: true, fn: biRs},
	{name: "psr", minArgs: 1, maxArgs: 1, noValue: false, fn: biPsr},
	{name: "pf", minArgs: 0, maxArgs: 1, noValue: true, fn: biPf},
}

// biPs implements `ps(s[,dest])`: print s to stdout, or stderr if dest is
// the literal string "stderr"; escape sequences collapse and control
// characters other than newline are suppressed (ttm_ps via printstring).
func biPs(tt *Interp, fr *frame) ([]codePoint, error) {
	s := tt.renderText(fr.argText(tt, 1), false)
	w := tt.out
	if fr.argc() > 2 && fr.argString(tt, 2) == "stderr" {
		w = nil // stderr routed through the logger, not the data stream
	}
	if w == nil {
		tt.logf("", "%s", s)
		return nil, nil
	}
	if _, err := io.WriteString(w, s); err != nil {
		return nil, failuref(errIO, "%v", err)
	}
	return nil, nil
}

// biRs implements `rs()`: flush pending output, then read from the `-r` data
// source up to EOF or the current read meta-character, '\n' until changed by
// `cm` (ttm_rs).
func biRs(tt *Interp, fr *frame) ([]codePoint, error) {
	if tt.rsInput == nil {
		return nil, nil
	}
	if tt.out != nil {
		if err := tt.out.Flush(); err != nil {
			return nil, failuref(errIO, "%v", err)
		}
	}
	var out []codePoint
	for {
		r, _, err := tt.rsInput.ReadRune()
		if err != nil {
			break
		}
		if r == tt.meta.readEOF {
			break
		}
		out = append(out, codePoint(r))
	}
	return out, nil
}

// biPsr implements `psr(s)`: print s then read a reply (ttm_psr, which
// temporarily clips frame->argc so ttm_ps doesn't see a spurious dest arg).
func biPsr(tt *Interp, fr *frame) ([]codePoint, error) {
	if _, err := biPs(tt, fr); err != nil {
		return nil, err
	}
	return biRs(tt, fr)
}

// biPf implements `pf([dest])`: flush the primary output stream; the dest
// argument is not consulted.
func biPf(tt *Interp, fr *frame) ([]codePoint, error) {
	if tt.out != nil {
		if err := tt.out.Flush(); err != nil {
			return nil, failuref(errIO, "%v", err)
		}
	}
	return nil, nil
}
