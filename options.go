package main

import (
	"io"
	"io/ioutil"

	"github.com/jcorbin/gottm/internal/fileinput"
	"github.com/jcorbin/gottm/internal/flushio"
)

// Option configures an Interp at construction time. Grounded on gothird's
// VMOption/options.go functional-options machinery: a slice-flattening
// composite option plus a handful of typed leaf options.
type Option interface{ apply(tt *Interp) }

var defaultOptions = Options(
	withOutput{ioutil.Discard},
)

// Options flattens any number of Option values into one, exactly as
// gothird's VMOptions does for VMOption.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil, noption:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	switch len(res) {
	case 0:
		return noption{}
	case 1:
		return res[0]
	default:
		return res
	}
}

type noption struct{}

func (noption) apply(*Interp) {}

type options []Option

func (opts options) apply(tt *Interp) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(tt)
		}
	}
}

// WithInput queues r as a source of program text (gothird: WithInput).
func WithInput(r io.Reader) Option { return withInput{r} }

type withInput struct{ io.Reader }

func (i withInput) apply(tt *Interp) {
	if tt.in == nil {
		tt.in = new(fileinput.Input)
	}
	tt.in.Queue = append(tt.in.Queue, i.Reader)
}

// WithRSSource sets the data source read by the `rs`/`psr` builtins (the
// `-r` flag of §6.5).
func WithRSSource(r io.RuneReader) Option { return withRS{r} }

type withRS struct{ io.RuneReader }

func (w withRS) apply(tt *Interp) { tt.rsInput = w.RuneReader }

// WithOutput sets the primary output stream (gothird: WithOutput).
func WithOutput(w io.Writer) Option { return withOutput{w} }

type withOutput struct{ io.Writer }

func (o withOutput) apply(tt *Interp) {
	if tt.out != nil {
		tt.out.Flush()
	}
	tt.out = flushio.NewWriteFlusher(o.Writer)
}

// WithTee adds an additional output sink alongside the primary one.
func WithTee(w io.Writer) Option { return withTee{w} }

type withTee struct{ io.Writer }

func (o withTee) apply(tt *Interp) {
	tt.out = flushio.WriteFlushers(tt.out, flushio.NewWriteFlusher(o.Writer))
}

// WithBufferLimit overrides MINBUFFERSIZE (the `-B`/`-X b=` flag).
func WithBufferLimit(n uint) Option { return withBufferLimit(n) }

type withBufferLimit uint

func (n withBufferLimit) apply(tt *Interp) {
	tt.limits.buffer = uint(n)
	tt.buf.limit = uint(n)
}

// WithStackLimit overrides MINSTACKSIZE (the `-X s=` flag).
func WithStackLimit(n int) Option { return withStackLimit(n) }

type withStackLimit int

func (n withStackLimit) apply(tt *Interp) {
	tt.limits.frames = int(n)
	tt.frames.limit = int(n)
}

// WithExecLimit overrides MINEXECCOUNT (the `-X x=` flag).
func WithExecLimit(n int) Option { return withExecLimit(n) }

type withExecLimit int

func (n withExecLimit) apply(tt *Interp) { tt.limits.execs = int(n) }

// WithIncludeRoot adds a directory searched by `include` (the `-I` flag,
// repeatable).
func WithIncludeRoot(dir string) Option { return withIncludeRoot(dir) }

type withIncludeRoot string

func (d withIncludeRoot) apply(tt *Interp) {
	tt.includeRoots = append(tt.includeRoots, string(d))
}

// WithPredefined seeds the dictionary with name=value before the program
// runs (the `-D` flag, equivalent to `##<ds;name;value>`).
func WithPredefined(name, value string) Option { return withPredefined{name, value} }

type withPredefined struct{ name, value string }

func (p withPredefined) apply(tt *Interp) {
	tt.defineName(p.name, codePointsOf(p.value))
}

// WithArgv sets the tokens `argv(i)` returns (the `--`-delimited tail of
// the command line).
func WithArgv(args []string) Option { return withArgv(args) }

type withArgv []string

func (a withArgv) apply(tt *Interp) { tt.argv = []string(a) }

// WithLogf installs a custom leveled logging function, overriding the
// default logio.Logger destination.
func WithLogf(logf func(level, mess string, args ...interface{})) Option { return withLogf{logf} }

type withLogf struct {
	fn func(level, mess string, args ...interface{})
}

func (w withLogf) apply(tt *Interp) {
	if w.fn != nil {
		tt.log = nil
		tt.logOverride = w.fn
	}
}
