package main

import "context"

// scan runs the top-level loop of spec §4.3: classify the code point at
// active without advancing, and dispatch. Returns when active reaches end
// (sentinel), ctx is cancelled, or a call raises the exit flag.
//
// Grounded on gothird's step/exec dispatch loop in internals.go, generalized
// from FIRST's word-threaded dispatch to TTM's single-character classify-
// then-branch discipline.
func (tt *Interp) scan(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		done, err := tt.step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// step performs one scanner decision. The bool result reports whether
// scanning has terminated.
func (tt *Interp) step() (bool, error) {
	b := &tt.buf
	if b.active >= b.end {
		b.end = b.passive
		b.active = b.passive
		return true, nil
	}

	c := b.at(b.active)
	r := c.rune()

	switch {
	case r == 0:
		b.end = b.passive
		b.active = b.passive
		return true, nil

	case r == tt.meta.escape:
		b.active++
		if b.active >= b.end {
			return false, failuref(errUnexpectedEOS, "escape at end of input")
		}
		next := b.at(b.active)
		b.active++
		if err := b.putPassive(next); err != nil {
			return false, err
		}
		return false, nil

	case r == tt.meta.sharp:
		isCall, width := tt.peekCallOpen(b.active)
		if isCall {
			if err := tt.doCall(width); err != nil {
				return false, err
			}
			if tt.exiting {
				return true, nil
			}
			return false, nil
		}
		b.active++
		if err := b.putPassive(c); err != nil {
			return false, err
		}
		return false, nil

	case r == tt.meta.open:
		if err := tt.dequoteToPassive(); err != nil {
			return false, err
		}
		return false, nil

	default:
		b.active++
		if err := b.putPassive(c); err != nil {
			return false, err
		}
		return false, nil
	}
}

// peekCallOpen reports whether a call starts at position at, i.e. sharp
// optionally followed by another sharp, then open-bracket, and how many
// code points the leading marker occupies (2 for "#<", 3 for "##<").
func (tt *Interp) peekCallOpen(at uint) (bool, uint) {
	b := &tt.buf
	if b.at(at).rune() != tt.meta.sharp {
		return false, 0
	}
	if b.at(at+1).rune() == tt.meta.sharp {
		if b.at(at+2).rune() == tt.meta.open {
			return true, 3
		}
		return false, 0
	}
	if b.at(at+1).rune() == tt.meta.open {
		return true, 2
	}
	return false, 0
}

// dequoteToPassive implements the scanner's bracket-stripping dequote
// (§4.3): copy the interior of a balanced <...> to passive, dropping the
// outer brackets. An escape sequence is copied through as a unit, escape
// character included, so that an escaped bracket neither opens nor closes
// a nesting level.
func (tt *Interp) dequoteToPassive() error {
	b := &tt.buf
	b.skipActive() // consume the opening '<'
	depth := 1
	for {
		if b.active >= b.end {
			return failuref(errUnexpectedEOS, "unterminated quote")
		}
		c := b.at(b.active)
		r := c.rune()
		switch r {
		case 0:
			return failuref(errUnexpectedEOS, "unterminated quote")
		case tt.meta.escape:
			b.active++
			if err := b.putPassive(c); err != nil {
				return err
			}
			if b.active >= b.end {
				return failuref(errUnexpectedEOS, "escape at end of quote")
			}
			next := b.at(b.active)
			b.active++
			if err := b.putPassive(next); err != nil {
				return err
			}
		case tt.meta.open:
			depth++
			b.active++
			if err := b.putPassive(c); err != nil {
				return err
			}
		case tt.meta.close:
			depth--
			if depth == 0 {
				b.skipActive()
				return nil
			}
			b.active++
			if err := b.putPassive(c); err != nil {
				return err
			}
		default:
			b.active++
			if err := b.putPassive(c); err != nil {
				return err
			}
		}
	}
}
