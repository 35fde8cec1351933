package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestGoldenFixtures runs every testdata/*.ttm program through the
// interpreter and compares its output against the sibling .golden file
// written by scripts/gen_golden.go, the same fixture-based round trip
// gothird's own generated vm_expects_test.go runs for FIRST/THIRD programs.
func TestGoldenFixtures(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("testdata", "*.ttm"))
	require.NoError(t, err)
	require.NotEmpty(t, matches)

	for _, src := range matches {
		src := src
		name := strings.TrimSuffix(filepath.Base(src), ".ttm")
		t.Run(name, func(t *testing.T) {
			golden := strings.TrimSuffix(src, ".ttm") + ".golden"
			want, err := os.ReadFile(golden)
			require.NoError(t, err)

			f, err := os.Open(src)
			require.NoError(t, err)
			defer f.Close()

			var out strings.Builder
			tt := New(WithInput(f), WithOutput(&out))

			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			require.NoError(t, tt.Run(ctx))

			require.Equal(t, string(want), out.String())
		})
	}
}
