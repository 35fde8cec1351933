package main

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// ttmTestCase is a fluent test builder in the shape of gothird's vmTestCase:
// accumulate options and expectations, then run once. Grounded on vm_test.go.
type ttmTestCase struct {
	name    string
	program string
	opts    []Option
	expect  []func(t *testing.T, tt *Interp, out string)
	wantErr failureCode
	timeout time.Duration
}

func ttmTest(name string) ttmTestCase {
	return ttmTestCase{name: name}
}

func (vt ttmTestCase) withProgram(s string) ttmTestCase {
	vt.program = s
	return vt
}

func (vt ttmTestCase) withOptions(opts ...Option) ttmTestCase {
	vt.opts = append(vt.opts, opts...)
	return vt
}

func (vt ttmTestCase) withPredefined(name, value string) ttmTestCase {
	vt.opts = append(vt.opts, WithPredefined(name, value))
	return vt
}

func (vt ttmTestCase) withTimeout(d time.Duration) ttmTestCase {
	vt.timeout = d
	return vt
}

func (vt ttmTestCase) expectOutput(s string) ttmTestCase {
	vt.expect = append(vt.expect, func(t *testing.T, tt *Interp, out string) {
		assert.Equal(t, s, out, "expected output")
	})
	return vt
}

func (vt ttmTestCase) expectExitCode(code int) ttmTestCase {
	vt.expect = append(vt.expect, func(t *testing.T, tt *Interp, out string) {
		assert.Equal(t, code, tt.ExitCode(), "expected exit code")
	})
	return vt
}

func (vt ttmTestCase) expectError(code failureCode) ttmTestCase {
	vt.wantErr = code
	return vt
}

func (vt ttmTestCase) run(t *testing.T) {
	var out strings.Builder
	opts := append([]Option{WithInput(strings.NewReader(vt.program)), WithOutput(&out)}, vt.opts...)
	tt := New(opts...)

	timeout := vt.timeout
	if timeout == 0 {
		timeout = time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	err := tt.Run(ctx)
	if vt.wantErr != 0 {
		var f *failure
		if assert.True(t, errors.As(err, &f), "expected a failure, got %v", err) {
			assert.Equal(t, vt.wantErr, f.code, "expected failure code")
		}
		return
	}
	if !assert.NoError(t, err, "unexpected run error") {
		return
	}
	for _, expect := range vt.expect {
		expect(t, tt, out.String())
	}
}
