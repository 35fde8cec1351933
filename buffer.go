package main

// Buffer is the single mutable region the scanner walks (spec §3, §4.1):
// content[0:passive) is finalized output, content[passive:active) is a gap
// of already-consumed text available for overwrite, content[active:end) is
// the text still to be scanned.
//
// Unlike gothird's sparse, paged VM memory (internal/mem, memcore.go) built
// for FIRST/THIRD's randomly addressed word space, TTM's buffer is always
// written near its cursors and never sparse, so a single growing slice
// serves; growth is bounds-checked against limit the same way vm.grow checks
// against memLimit in gothird's internals.go.
type Buffer struct {
	content []codePoint
	passive uint
	active  uint
	end     uint
	limit   uint
}

// arg is a non-owning reference into a Buffer: a (start, length) offset pair
// rather than a raw slice, so that it stays valid across buffer growth
// (which may reallocate the backing array) for as long as the referenced
// region itself isn't overwritten. Mirrors the spirit of gothird's
// address-based (not pointer-based) memory references.
type arg struct {
	start, length uint
}

func (b *Buffer) reset() {
	b.content = b.content[:0]
	b.passive, b.active, b.end = 0, 0, 0
}

func (b *Buffer) text(a arg) []codePoint { return b.content[a.start : a.start+a.length] }

func (b *Buffer) at(i uint) codePoint {
	if i < b.end {
		return b.content[i]
	}
	return 0
}

// load replaces the buffer's contents with cps, resetting passive and active
// to the origin and end to len(cps), so that the whole text is yet to be
// scanned.
func (b *Buffer) load(cps []codePoint) error {
	n := uint(len(cps))
	if err := b.ensure(n); err != nil {
		return err
	}
	copy(b.content, cps)
	b.passive, b.active, b.end = 0, 0, n
	return nil
}

// ensure grows the backing array so that indices up to n-1 are addressable,
// respecting limit.
func (b *Buffer) ensure(n uint) error {
	if b.limit != 0 && n > b.limit {
		return failuref(errBufferOverflow, "buffer overflow at %d", n)
	}
	if uint(len(b.content)) < n {
		grown := make([]codePoint, n)
		copy(grown, b.content)
		b.content = grown
	}
	return nil
}

// makeRoom opens k slots at position at by shifting content[at:end)
// rightward, growing the backing array as needed.
func (b *Buffer) makeRoom(at uint, k uint) error {
	if k == 0 {
		return nil
	}
	if err := b.ensure(b.end + k); err != nil {
		return err
	}
	copy(b.content[at+k:b.end+k], b.content[at:b.end])
	for i := at; i < at+k; i++ {
		b.content[i] = 0
	}
	b.end += k
	return nil
}

// putPassive appends one code point to the finalized-output region,
// extending the buffer if the gap is empty (the common case when no call is
// mid-parse).
func (b *Buffer) putPassive(cp codePoint) error {
	if b.passive == b.end {
		if err := b.ensure(b.end + 1); err != nil {
			return err
		}
		b.end++
	}
	b.content[b.passive] = cp
	b.passive++
	return nil
}

// skipActive discards the code point at active without copying it anywhere
// (used for consumed delimiters like the closing '>' of a dequote).
func (b *Buffer) skipActive() { b.active++ }

// insertResult splices result into the buffer per spec §4.4 step 7: if the
// gap isn't big enough it is grown first, then the result lands either just
// before active (active disposition, so it gets rescanned) or at passive
// (passive disposition, so it doesn't).
func (b *Buffer) insertResult(result []codePoint, activeDisposition bool) error {
	if len(result) == 0 {
		return nil
	}
	avail := b.active - b.passive
	need := uint(len(result))
	if avail < need {
		deficit := need - avail
		if err := b.makeRoom(b.active, deficit); err != nil {
			return err
		}
		b.active += deficit
	}
	if activeDisposition {
		copy(b.content[b.active-need:b.active], result)
		b.active -= need
	} else {
		copy(b.content[b.passive:b.passive+need], result)
		b.passive += need
	}
	return nil
}

// output returns the finalized text, content[0:passive).
func (b *Buffer) output() []codePoint { return b.content[:b.passive] }
