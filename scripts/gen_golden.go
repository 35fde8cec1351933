// Command gen_golden runs every testdata/*.ttm fixture through the
// interpreter and writes its output alongside as testdata/*.golden,
// concurrently bounded by an errgroup the same way gothird's
// scripts/gen_vm_expects.go fans its work out across a context-scoped group.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"
)

func main() {
	dir := flag.String("dir", "testdata", "directory of .ttm fixtures")
	timeout := flag.Duration("timeout", 10*time.Second, "per-fixture run timeout")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout*10)
	defer cancel()

	matches, err := filepath.Glob(filepath.Join(*dir, "*.ttm"))
	if err != nil {
		log.Fatalf("glob failed: %v", err)
	}

	eg, ctx := errgroup.WithContext(ctx)
	for _, name := range matches {
		name := name
		eg.Go(func() error {
			return renderGolden(ctx, name, *timeout)
		})
	}
	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}
}

// renderGolden runs one fixture through its own `go run . -f` invocation
// and writes stdout to the fixture's .golden sibling; the ttm binary is not
// built once and reused across fixtures.
func renderGolden(ctx context.Context, src string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	golden := src[:len(src)-len(filepath.Ext(src))] + ".golden"

	cmd := exec.CommandContext(ctx, "go", "run", ".", "-f", src)
	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w: %s", src, err, errBuf.String())
	}
	return os.WriteFile(golden, out.Bytes(), 0o644)
}
