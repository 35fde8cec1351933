package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// envBuiltins: environment introspection and process control, grounded on
// original_source's ttm_argv/ttm_time/ttm_xtime/ttm_ctime/ttm_include/
// ttm_exit, plus the class-table counterpart of `names`.
var envBuiltins = []builtin{
	{name: "argv", minArgs: 1, maxArgs: 1, noValue: false, fn: biArgv},
	{name: "classes", minArgs: 0, maxArgs: 0, noValue: false, fn: biClasses},
	{name: "time", minArgs: 0, maxArgs: 0, noValue: false, fn: biTime},
	{name: "xtime", minArgs: 0, maxArgs: 0, noValue: false, fn: biXtime},
	{name: "ctime", minArgs: 1, maxArgs: 1, noValue: false, fn: biCtime},
	{name: "tf", minArgs: 0, maxArgs: 0, noValue: true, fn: biTf},
	{name: "tn", minArgs: 0, maxArgs: 0, noValue: true, fn: biTn},
	{name: "include", minArgs: 1, maxArgs: 1, noValue: true, fn: biInclude},
	{name: "exit", minArgs: 0, maxArgs: 1, noValue: true, fn: biExit},
}

// biArgv implements `argv(i)`: the i-th command-line argument captured past
// `--` (ttm_argv).
func biArgv(tt *Interp, fr *frame) ([]codePoint, error) {
	i, err := argInt(tt, fr, 1)
	if err != nil {
		return nil, err
	}
	if i < 0 || int(i) >= len(tt.argv) {
		return nil, failuref(errOutOfRange, "argv index %d out of range", i)
	}
	return textResult(tt.argv[i]), nil
}

// biClasses implements `classes()`: sorted list of defined class names,
// mirroring `names()` for the class table.
func biClasses(tt *Interp, fr *frame) ([]codePoint, error) {
	keys := make([]string, 0, len(tt.classes))
	for key := range tt.classes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return textResult(strings.Join(keys, ",")), nil
}

// biTime implements `time()`: wall-clock time in hundredths of a second
// since the Unix epoch (ttm_time).
func biTime(tt *Interp, fr *frame) ([]codePoint, error) {
	return textResult(formatInt(time.Now().UnixNano() / 1e7)), nil
}

// biXtime implements `xtime()`: process CPU time in milliseconds since
// start (ttm_xtime's getRunTime, approximated via wall-clock since Interp
// construction since Go does not expose per-process user CPU time without
// the runtime/pprof machinery this domain has no other use for).
func biXtime(tt *Interp, fr *frame) ([]codePoint, error) {
	return textResult(formatInt(time.Since(tt.started).Milliseconds())), nil
}

// biCtime implements `ctime(t)`: render a time()-style hundredths-of-a-
// second value as a human-readable timestamp (ttm_ctime).
func biCtime(tt *Interp, fr *frame) ([]codePoint, error) {
	hundredths, err := argInt(tt, fr, 1)
	if err != nil {
		return nil, err
	}
	sec := hundredths / 100
	return textResult(time.Unix(sec, 0).UTC().Format("Mon Jan  2 15:04:05 2006")), nil
}

func biTf(tt *Interp, fr *frame) ([]codePoint, error) { return nil, setTrace(tt, fr, false) }
func biTn(tt *Interp, fr *frame) ([]codePoint, error) { return nil, setTrace(tt, fr, true) }

// setTrace implements `tf`/`tn`: with no arguments toggle tracing of every
// call; with name arguments toggle only the named entries' trace flags.
func setTrace(tt *Interp, fr *frame, on bool) error {
	if fr.argc() < 2 {
		tt.traceNames = on
		return nil
	}
	for i := 1; i < fr.argc(); i++ {
		key := fr.argString(tt, i)
		nm, ok := tt.dict.lookup(key)
		if !ok {
			return failuref(errNoName, "%q", key)
		}
		nm.trace = on
	}
	return nil
}

// biInclude implements `include(path)`: load and scan a file's text as
// though it appeared at the call site, resolved against the configured
// include roots (ttm_include), refusing absolute paths and `..` escapes the
// way a sandboxed macro processor should.
func biInclude(tt *Interp, fr *frame) ([]codePoint, error) {
	tt.includeDepth++
	defer func() { tt.includeDepth-- }()
	if tt.limits.includes != 0 && tt.includeDepth > tt.limits.includes {
		return nil, failuref(errTooManyIncludes, "include depth exceeds %d", tt.limits.includes)
	}

	path := fr.argString(tt, 1)
	data, err := readInclude(tt.includeRoots, path)
	if err != nil {
		return nil, failuref(errIncludeOpenFailed, "%v", err)
	}

	b := &tt.buf
	cps := codePointsOf(data)
	k := uint(len(cps))
	if err := b.makeRoom(b.active, k); err != nil {
		return nil, err
	}
	copy(b.content[b.active:b.active+k], cps)
	return nil, nil
}

func readInclude(roots []string, path string) (string, error) {
	if filepath.IsAbs(path) {
		return "", fmt.Errorf("include path must be relative: %q", path)
	}
	for _, root := range roots {
		full := filepath.Join(root, path)
		if !strings.HasPrefix(full, filepath.Clean(root)+string(filepath.Separator)) {
			continue // path escapes the root
		}
		data, err := os.ReadFile(full)
		if err == nil {
			return string(data), nil
		}
	}
	return "", fmt.Errorf("%q not found on any include root", path)
}

func biExit(tt *Interp, fr *frame) ([]codePoint, error) {
	code := 0
	if fr.argc() > 1 {
		n, err := argInt(tt, fr, 1)
		if err == nil {
			if n < 0 {
				n = -n
			}
			code = int(n)
		} else {
			code = 1
		}
	}
	tt.exiting = true
	tt.exitCode = code
	return nil, nil
}
