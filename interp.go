package main

import (
	"io"
	"strings"
	"time"

	"github.com/jcorbin/gottm/internal/fileinput"
	"github.com/jcorbin/gottm/internal/flushio"
	"github.com/jcorbin/gottm/internal/logio"
	"github.com/jcorbin/gottm/internal/runeio"
)

// metaChars holds the five mutable control characters of spec §4.2/§6.7,
// overridable at runtime through the ttm;meta subcommand, plus the rs read
// terminator that cm changes.
type metaChars struct {
	sharp   rune // call-open lead character, default '#'
	open    rune // call-open bracket, default '<'
	close   rune // call-close bracket, default '>'
	semi    rune // argument separator, default ';'
	escape  rune // escape character, default '\\'
	readEOF rune // rs read terminator, default '\n', changed by cm
}

func defaultMetaChars() metaChars {
	return metaChars{sharp: '#', open: '<', close: '>', semi: ';', escape: '\\', readEOF: '\n'}
}

// limits bounds the resources spec §5 calls out by name.
type limits struct {
	buffer   uint // MINBUFFERSIZE
	frames   int  // MINSTACKSIZE
	execs    int  // MINEXECCOUNT
	includes int
}

func defaultLimits() limits {
	return limits{
		buffer:   1 << 20,
		frames:   64,
		execs:    1 << 16,
		includes: 32,
	}
}

// Interp is the TTM engine: one Buffer, one dictionary/classtable, the call
// stack, the mutable meta characters, and the I/O/logging plumbing around
// them. Grounded on gothird's VM struct in first.go, which likewise
// aggregates its memory, its symbols table, and its ioCore/logging fields
// into a single value threaded through every builtin.
type Interp struct {
	buf     Buffer
	dict    dictionary
	classes classtable
	frames  frameStack

	meta   metaChars
	limits limits

	creationCounter int
	execCount       int

	exiting  bool
	exitCode int

	includeRoots []string
	includeDepth int

	in      *fileinput.Input
	rsInput io.RuneReader
	out     flushio.WriteFlusher

	log         *logio.Logger
	logOverride func(level, mess string, args ...interface{})

	traceNames bool

	argv    []string
	started time.Time
}

// newInterp builds a zero-value-safe Interp; New in api.go applies Options on
// top of this before use.
func newInterp() *Interp {
	tt := &Interp{
		dict:    make(dictionary),
		classes: make(classtable),
		meta:    defaultMetaChars(),
		limits:  defaultLimits(),
		log:     new(logio.Logger),
		started: time.Now(),
	}
	tt.buf.limit = tt.limits.buffer
	tt.frames.limit = tt.limits.frames
	return tt
}

// logf writes a trace/info line through the logger, matching gothird's
// logging.logfn indirection so that callers don't need to know whether
// logging is wired to stderr, a test buffer, or /dev/null.
func (tt *Interp) logf(level, mess string, args ...interface{}) {
	if tt.logOverride != nil {
		tt.logOverride(level, mess, args...)
		return
	}
	if tt.log != nil {
		tt.log.Printf(level, mess, args...)
	}
}

// convertEscape maps the character following an escape the way printing
// does: named C0 escapes collapse, an escaped end-of-line is elided (mapped
// to zero), anything else passes through unchanged.
func convertEscape(r rune) rune {
	switch r {
	case 'r':
		return '\r'
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	case '\n':
		return 0
	}
	return r
}

// renderText prepares buffer text for printing: escape sequences collapse
// to their control equivalents, marks render as their ^NN token, and unless
// printAll is set control characters other than newline are suppressed.
// This is the output half of the escape discipline — the scanner and call
// parser pass escapes through so that this, the final consumer, resolves
// them.
func (tt *Interp) renderText(cps []codePoint, printAll bool) string {
	var sb strings.Builder
	for i := 0; i < len(cps); i++ {
		c := cps[i]
		if !c.isMark() && c.rune() == tt.meta.escape {
			i++
			if i >= len(cps) {
				break
			}
			c = codePoint(convertEscape(cps[i].rune()))
			if c == 0 {
				continue
			}
		}
		if c.isMark() {
			sb.WriteString(c.String())
			continue
		}
		r := c.rune()
		if !printAll && r != '\n' && runeio.CaretForm(r) != "" {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func (tt *Interp) nextCreationMark() string {
	tt.creationCounter++
	return formatCreationCount(tt.creationCounter)
}

// countExec charges one unit against the process-wide execution budget
// (spec §5's MINEXECCOUNT), raising errMemoryExhausted once the limit is
// exceeded — TTM's guard against runaway recursive expansion.
func (tt *Interp) countExec() error {
	tt.execCount++
	if tt.limits.execs != 0 && tt.execCount > tt.limits.execs {
		return failuref(errMemoryExhausted, "execution count exceeds %d", tt.limits.execs)
	}
	return nil
}
