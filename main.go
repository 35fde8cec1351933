/* Package main implements ttm, an interpreter for TTM, a string-oriented
macro-expansion language descended from the GAP family: a buffer is scanned
left to right, macro calls are recognized and expanded in place, and the
result is rescanned until nothing remains but finished output.

See interp.go for the engine's central type, scanner.go/call.go for the
scan loop and call protocol, and the builtins_*.go files for the ~50
built-in operations.
*/
package main

import (
	"bufio"
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jcorbin/gottm/internal/logio"
)

func main() {
	var (
		bufferSize  stringList
		xSettings   stringList
		debug       stringList
		defines     stringList
		snippets    stringList
		includes    stringList
		progFile    string
		interactive bool
		outFile     string
		rsFile      string
		version     bool
	)

	flag.Var(&bufferSize, "B", "set buffer size limit (K/M suffix accepted)")
	flag.Var(&xSettings, "X", "set a resource limit: b=<size>, s=<size>, or x=<count>")
	flag.Var(&debug, "d", "enable a debug flag")
	flag.Var(&defines, "D", "predefine name=value")
	flag.Var(&snippets, "e", "execute a program snippet")
	flag.StringVar(&progFile, "f", "", "main program file")
	flag.Var(&includes, "I", "add an include root")
	flag.BoolVar(&interactive, "i", false, "run interactively")
	flag.StringVar(&outFile, "o", "", "redirect output to file")
	flag.StringVar(&rsFile, "r", "", "data source for rs")
	flag.BoolVar(&version, "V", false, "print version and exit")
	flag.Parse()

	if version {
		fmt.Println("ttm (gottm)")
		os.Exit(0)
	}

	log := logio.Logger{}
	log.SetOutput(os.Stderr)

	var tt *Interp
	defer func() {
		// §6.5: fatal errors and usage complaints exit 1; a voluntary
		// exit(code) wins with its absolute value.
		code := log.ExitCode()
		if tt != nil && tt.ExitCode() != 0 {
			code = tt.ExitCode()
		}
		os.Exit(code)
	}()

	// tokens after -- are argv(1..); argv(0) names the program source
	argv0 := progFile
	if argv0 == "" {
		argv0 = "ttm"
	}
	opts := []Option{
		WithLogf(log.Printf),
		WithOutput(os.Stdout),
		WithArgv(append([]string{argv0}, flag.Args()...)),
	}

	for _, setting := range xSettings {
		opt, err := parseXSetting(setting)
		if err != nil {
			log.Errorf("%v", err)
			return
		}
		opts = append(opts, opt)
	}
	for _, s := range bufferSize {
		n, err := parseInt(s)
		if err != nil {
			log.Errorf("invalid -B size %q: %v", s, err)
			return
		}
		opts = append(opts, WithBufferLimit(uint(n)))
	}
	for _, dir := range includes {
		opts = append(opts, WithIncludeRoot(dir))
	}
	for _, kv := range defines {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			log.Errorf("invalid -D %q: want name=value", kv)
			return
		}
		opts = append(opts, WithPredefined(k, v))
	}

	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			log.Errorf("%v", err)
			return
		}
		defer f.Close()
		opts = append(opts, WithOutput(f))
	}

	if rsFile != "" {
		f, err := os.Open(rsFile)
		if err != nil {
			log.Errorf("%v", err)
			return
		}
		defer f.Close()
		opts = append(opts, WithRSSource(bufio.NewReader(f)))
	}

	for _, snippet := range snippets {
		opts = append(opts, WithInput(strings.NewReader(snippet+"\n")))
	}

	if progFile != "" {
		f, err := os.Open(progFile)
		if err != nil {
			log.Errorf("%v", err)
			return
		}
		defer f.Close()
		opts = append(opts, WithInput(f))
	}

	tt = New(opts...)
	for _, d := range debug {
		if strings.Contains(d, "t") {
			tt.traceNames = true
		}
	}

	ctx := context.Background()
	if len(snippets) > 0 || progFile != "" || !interactive {
		log.ErrorIf(tt.Run(ctx))
		finishOutput(tt)
	}
	if interactive && log.ExitCode() == 0 && !tt.exiting {
		runInteractive(ctx, tt, &log)
	}
}

// finishOutput appends the trailing newline §7 promises when the finalized
// output doesn't already end with one.
func finishOutput(tt *Interp) {
	if out := tt.renderText(tt.buf.output(), true); out != "" && !strings.HasSuffix(out, "\n") {
		io.WriteString(tt.out, "\n")
		tt.out.Flush()
	}
}

// runInteractive implements the `-i` read loop of spec §6.6: read stdin up
// to a balanced `<...>` (outer depth returning to zero) then through the
// next newline, expand it, and repeat; an empty read at EOF ends the
// session. The `ttm>` prompt is printed before each read when stdin is a
// terminal.
func runInteractive(ctx context.Context, tt *Interp, log *logio.Logger) {
	isTerminal := isTerminalFile(os.Stdin)
	r := bufio.NewReader(os.Stdin)
	for {
		if isTerminal {
			fmt.Fprint(os.Stderr, "ttm>")
		}
		chunk, ok := readBalanced(r)
		if !ok {
			return
		}
		if err := tt.RunString(ctx, chunk); err != nil {
			log.ErrorIf(err)
			return
		}
		finishOutput(tt)
		if tt.exiting {
			return
		}
	}
}

// parseXSetting parses one `-X b=<size>`/`-X s=<size>`/`-X x=<count>`
// resource-limit flag (§6.5).
func parseXSetting(s string) (Option, error) {
	kind, val, ok := strings.Cut(s, "=")
	if !ok {
		return nil, fmt.Errorf("invalid -X setting %q: want kind=value", s)
	}
	n, err := parseInt(val)
	if err != nil {
		return nil, fmt.Errorf("invalid -X %s value %q: %w", kind, val, err)
	}
	switch kind {
	case "b":
		return WithBufferLimit(uint(n)), nil
	case "s":
		return WithStackLimit(int(n)), nil
	case "x":
		return WithExecLimit(int(n)), nil
	default:
		return nil, fmt.Errorf("unknown -X kind %q", kind)
	}
}

// stringList is a repeatable flag.Value collecting every occurrence.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }
func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// readBalanced reads code points up to and including the first `<...>`
// group whose nesting depth returns to zero, then discards through the next
// newline. Returns false at EOF with nothing read.
func readBalanced(r *bufio.Reader) (string, bool) {
	var out bytes.Buffer
	depth := 0
	seenOpen := false
	for {
		c, _, err := r.ReadRune()
		if err != nil {
			return out.String(), out.Len() > 0
		}
		out.WriteRune(c)
		switch c {
		case '<':
			depth++
			seenOpen = true
		case '>':
			depth--
		}
		if seenOpen && depth <= 0 {
			break
		}
		if c == '\n' && !seenOpen {
			return out.String(), true
		}
	}
	for {
		c, _, err := r.ReadRune()
		if err != nil || c == '\n' {
			break
		}
	}
	return out.String(), true
}

func isTerminalFile(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
