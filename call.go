package main

const (
	maxArgs  = 63
	maxMarks = 62
)

// doCall implements spec §4.4 steps 1-8. width is how many code points the
// leading marker occupies at the current active cursor: 2 for "#<" (active
// disposition), 3 for "##<" (passive disposition). Reentrant: called both
// from the top-level scanner and recursively from argument collection,
// sharing the same buffer cursors per spec §5's reentrancy guarantee.
func (tt *Interp) doCall(width uint) error {
	if err := tt.countExec(); err != nil {
		return err
	}
	b := &tt.buf
	b.active += width
	activeDisposition := width == 2
	passiveSave := b.passive

	// the frame is pushed before collection so that nesting depth during
	// argument parsing is bounded too; on failure the stack is left intact
	// for the diagnostic dump, since every failure ends the run
	idx, err := tt.frames.push(frame{activeDisposition: activeDisposition})
	if err != nil {
		return err
	}

	argv, err := tt.collectArgs()
	if err != nil {
		return err
	}
	b.passive = passiveSave
	tt.frames.frames[idx].argv = argv

	if tt.exiting {
		tt.frames.pop()
		return nil
	}

	if len(argv) == 0 || argv[0].length == 0 {
		return failuref(errNoName, "empty call")
	}
	callName := stringOf(b.text(argv[0]))
	nm, ok := tt.dict.lookup(callName)
	if !ok {
		return failuref(errNoName, "%q", callName)
	}

	// only minargs is enforced before dispatch; maxargs is advisory table
	// metadata (ttm;info reports it) and the collector's MAXARGS cap is the
	// real upper bound
	argc := len(argv) - 1
	if nm.isBuiltin() && argc < nm.builtin.minArgs {
		return failuref(errTooFewParams, "%q needs at least %d args, got %d", callName, nm.builtin.minArgs, argc)
	}

	fr := &tt.frames.frames[idx]
	if tt.traceNames || nm.trace {
		tt.logf("TRACE", "%s", tt.frameSyntax(fr))
	}

	var result []codePoint
	if nm.isBuiltin() {
		result, err = nm.builtin.fn(tt, fr)
		if nm.builtin.noValue {
			result = nil
		}
	} else {
		result, err = tt.substituteBody(nm, fr)
	}
	if err != nil {
		return err
	}

	tt.frames.pop()

	if tt.exiting {
		return nil
	}

	if len(result) > 0 {
		if err := b.insertResult(result, activeDisposition); err != nil {
			return err
		}
	}
	return nil
}

// collectArgs runs the argument collection loop of spec §4.4 step 2,
// writing argument text to the passive cursor (which doCall restores
// afterward) and recursing into doCall for nested calls encountered inline.
func (tt *Interp) collectArgs() ([]arg, error) {
	b := &tt.buf
	var argv []arg
	argStart := b.passive

	for {
		if b.active >= b.end {
			return nil, failuref(errUnexpectedEOS, "unterminated call")
		}
		c := b.at(b.active)
		r := c.rune()

		switch {
		case r == 0:
			return nil, failuref(errUnexpectedEOS, "unterminated call")

		case r == tt.meta.escape:
			b.active++
			if b.active >= b.end {
				return nil, failuref(errUnexpectedEOS, "escape at end of call")
			}
			next := b.at(b.active)
			b.active++
			if err := b.putPassive(next); err != nil {
				return nil, err
			}

		case r == tt.meta.semi:
			b.active++
			argv = append(argv, arg{start: argStart, length: b.passive - argStart})
			if len(argv) >= maxArgs {
				return nil, failuref(errTooManyParams, "exceeds %d arguments", maxArgs)
			}
			argStart = b.passive

		case r == tt.meta.close:
			b.active++
			argv = append(argv, arg{start: argStart, length: b.passive - argStart})
			return argv, nil

		default:
			if isCall, markerWidth := tt.peekCallOpen(b.active); isCall {
				if err := tt.doCall(markerWidth); err != nil {
					return nil, err
				}
				if tt.exiting {
					return argv, nil
				}
				continue
			}
			if r == tt.meta.open {
				if err := tt.dequoteForArg(); err != nil {
					return nil, err
				}
				continue
			}
			b.active++
			if err := b.putPassive(c); err != nil {
				return nil, err
			}
		}
	}
}

// dequoteForArg is the call parser's dequote (§4.4 step 2, the open-bracket
// case): unlike the scanner's dequote, an escape sequence inside keeps its
// leading escape character in the captured argument text, since the
// argument's later consumer (not this parse step) owns escape semantics.
func (tt *Interp) dequoteForArg() error {
	b := &tt.buf
	b.active++ // consume opening '<'
	depth := 1
	for {
		if b.active >= b.end {
			return failuref(errUnexpectedEOS, "unterminated quote in call")
		}
		c := b.at(b.active)
		r := c.rune()
		switch {
		case r == 0:
			return failuref(errUnexpectedEOS, "unterminated quote in call")
		case r == tt.meta.escape:
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
		case r == tt.meta.open:
			depth++
			b.active++
			if err := b.putPassive(c); err != nil {
				return err
			}
		case r == tt.meta.close:
			depth--
			b.active++
			if depth == 0 {
				return nil
			}
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

// substituteBody performs spec §4.4's body substitution: walk a
// user-defined Name's body, expanding segment marks to the referenced
// argument's text and creation marks to a fresh counter value.
func (tt *Interp) substituteBody(nm *name, fr *frame) ([]codePoint, error) {
	out := make([]codePoint, 0, len(nm.body))
	for _, cp := range nm.body {
		switch {
		case cp.isSegMark():
			k := cp.segMarkIndex()
			if k < fr.argc() {
				out = append(out, fr.argText(tt, k)...)
			}
		case cp.isCreationMark():
			out = append(out, codePointsOf(tt.nextCreationMark())...)
		default:
			out = append(out, cp)
		}
	}
	return out, nil
}

// segmentName implements the shared rewrite behind `ss`/`sc`/`cr` (§4.5):
// each needle in needles is matched leftmost-non-overlapping within
// nm.body[nm.residual:], and every match is compressed to a single mark
// code point. creation selects cr's single shared creation mark; otherwise
// each distinct matching needle is assigned the next segment-mark index.
// Returns the total number of replacements performed.
func segmentName(nm *name, needles []string, creation bool) (int, error) {
	total := 0
	prefix := append([]codePoint(nil), nm.body[:nm.residual]...)
	suffix := append([]codePoint(nil), nm.body[nm.residual:]...)

	for _, v := range needles {
		needle := codePointsOf(v)
		if len(needle) == 0 {
			continue
		}
		var mark codePoint
		if creation {
			mark = newCreationMark()
		}

		rewritten := make([]codePoint, 0, len(suffix))
		matched := false
		i := 0
		for i < len(suffix) {
			if matchesAt(suffix, i, needle) {
				if !creation && !matched {
					k := nm.maxSegMark + 1
					if k > maxMarks {
						return total, failuref(errTooManySegmentMarks, "exceeds %d segment marks", maxMarks)
					}
					nm.maxSegMark = k
					mark = newSegMark(k)
				}
				rewritten = append(rewritten, mark)
				i += len(needle)
				total++
				matched = true
				continue
			}
			rewritten = append(rewritten, suffix[i])
			i++
		}
		suffix = rewritten
	}

	nm.body = append(prefix, suffix...)
	return total, nil
}

func matchesAt(haystack []codePoint, pos int, needle []codePoint) bool {
	if pos+len(needle) > len(haystack) {
		return false
	}
	for i, n := range needle {
		if haystack[pos+i] != n {
			return false
		}
	}
	return true
}
