package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jcorbin/gottm/internal/panicerr"
)

// New builds an Interp with builtins registered and opts applied, ready for
// Run. Grounded on gothird's New(opts ...VMOption) *VM in api.go.
func New(opts ...Option) *Interp {
	tt := newInterp()
	registerBuiltins(tt)
	defaultOptions.apply(tt)
	Options(opts...).apply(tt)
	return tt
}

// Run loads queued input into the buffer and scans it to completion,
// printing a fatal diagnostic and returning a non-nil error for any failure
// (§4.7). Grounded on gothird's Run(ctx) wrapping panicerr.Recover around
// vm.run — the one top-level recover point of the whole engine.
func (tt *Interp) Run(ctx context.Context) error {
	return tt.guarded(func() error { return tt.run(ctx) })
}

// RunString expands one program text to completion, replacing whatever the
// buffer held before; the interactive driver feeds one balanced read at a
// time through this, keeping dictionary and class state across reads.
func (tt *Interp) RunString(ctx context.Context, program string) error {
	return tt.guarded(func() error {
		if err := tt.buf.load(codePointsOf(program)); err != nil {
			return err
		}
		if err := tt.scan(ctx); err != nil {
			return err
		}
		return tt.emitOutput()
	})
}

// guarded runs f under the engine's single recover point, rendering any
// failure's stack/context diagnostic before returning it.
func (tt *Interp) guarded(f func() error) error {
	err := panicerr.Recover("ttm", f)
	if err == nil {
		return nil
	}
	var fl *failure
	if errors.As(err, &fl) {
		tt.reportFailure(fl)
		return fl
	}
	return err
}

func (tt *Interp) run(ctx context.Context) error {
	if err := tt.loadInput(); err != nil {
		return err
	}
	if err := tt.scan(ctx); err != nil {
		return err
	}
	return tt.emitOutput()
}

// emitOutput writes the finalized text left of the passive cursor to the
// output stream and flushes; this is what makes a clean program's stdout
// hold its expanded output (§7).
func (tt *Interp) emitOutput() error {
	if tt.out == nil {
		return nil
	}
	if out := tt.buf.output(); len(out) > 0 {
		if _, err := io.WriteString(tt.out, tt.renderText(out, true)); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	if err := tt.out.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}

// loadInput drains tt.in's queued readers into the buffer ahead of the
// active cursor, establishing the text the scanner will walk.
func (tt *Interp) loadInput() error {
	if tt.in == nil {
		return nil
	}
	var cps []codePoint
	for {
		r, size, err := tt.in.ReadRune()
		if err != nil {
			break
		}
		if size == 0 {
			continue // the zero rune fileinput reports between queued readers
		}
		cps = append(cps, codePoint(r))
	}
	return tt.buf.load(cps)
}

// ExitCode reports the process exit status requested by an `exit` builtin,
// or 0 if the program completed without calling it.
func (tt *Interp) ExitCode() int {
	if tt.exiting {
		return tt.exitCode
	}
	return 0
}
