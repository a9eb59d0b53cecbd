package pkgbuild

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"go.aurforge.dev/pkgsum/internal/core/domain"
)

func TestApplyToLinesSubstitutes(t *testing.T) {
	lines := []string{
		`sha256sums=('aaa' "bbb")`,
	}

	out, changed, err := ApplyToLines(lines, Rewrite{
		Array:        "sha256sums",
		Replacements: map[int]string{1: "xxx", 2: "yyy"},
		TargetCount:  2,
	})
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, `sha256sums=('xxx' "yyy")`, out[0])
}

func TestApplyToLinesPreservesQuoteStyleAndSpacing(t *testing.T) {
	lines := []string{
		`sha256sums=( 'aaa'   "bbb" )  # trailing comment`,
	}

	out, changed, err := ApplyToLines(lines, Rewrite{
		Array:        "sha256sums",
		Replacements: map[int]string{2: "yyy"},
		TargetCount:  2,
	})
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, `sha256sums=( 'aaa'   "yyy" )  # trailing comment`, out[0])
}

func TestApplyToLinesNoOp(t *testing.T) {
	lines := []string{
		`pkgname=tool-bin`,
		`sha256sums=('aaa' 'bbb')`,
	}

	out, changed, err := ApplyToLines(lines, Rewrite{
		Array:        "sha256sums",
		Replacements: map[int]string{1: "aaa", 2: "bbb"},
		TargetCount:  2,
	})
	require.NoError(t, err)
	require.False(t, changed)
	require.Equal(t, lines, out)
}

func TestApplyToLinesInsertsMissingTrailing(t *testing.T) {
	lines := []string{
		`sha256sums=('aaa')`,
	}

	out, changed, err := ApplyToLines(lines, Rewrite{
		Array:        "sha256sums",
		Replacements: map[int]string{1: "xxx", 2: "yyy", 3: "zzz"},
		TargetCount:  3,
	})
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, `sha256sums=('xxx' 'yyy' 'zzz')`, out[0])
}

func TestApplyToLinesInsertIntoEmptyArray(t *testing.T) {
	lines := []string{
		`sha256sums=()`,
	}

	out, changed, err := ApplyToLines(lines, Rewrite{
		Array:        "sha256sums",
		Replacements: map[int]string{1: "xxx"},
		TargetCount:  1,
	})
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, `sha256sums=('xxx')`, out[0])
}

func TestApplyToLinesPadsGapWithSkip(t *testing.T) {
	// Slot 2 has no computed digest but slot 3 does; the gap is filled with
	// SKIP so positions stay aligned with the source array.
	lines := []string{
		`sha256sums=('aaa')`,
	}

	out, changed, err := ApplyToLines(lines, Rewrite{
		Array:        "sha256sums",
		Replacements: map[int]string{3: "zzz"},
		TargetCount:  3,
	})
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, `sha256sums=('aaa' 'SKIP' 'zzz')`, out[0])
}

func TestApplyToLinesNoInventedTrailingSlots(t *testing.T) {
	// TargetCount exceeds the highest computed slot; nothing is appended for
	// the slots past it.
	lines := []string{
		`sha256sums=('aaa' 'bbb')`,
	}

	out, changed, err := ApplyToLines(lines, Rewrite{
		Array:        "sha256sums",
		Replacements: map[int]string{1: "xxx"},
		TargetCount:  4,
	})
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, `sha256sums=('xxx' 'bbb')`, out[0])
}

func TestApplyToLinesArrayNotFound(t *testing.T) {
	_, _, err := ApplyToLines([]string{`pkgname=tool-bin`}, Rewrite{
		Array:        "sha256sums",
		Replacements: map[int]string{1: "xxx"},
		TargetCount:  1,
	})
	require.True(t, errors.Is(err, domain.ErrArrayNotFound))
}

func TestApplyToLinesLeavesOtherLinesAlone(t *testing.T) {
	lines := []string{
		`# comment with 'quoted' text`,
		`pkgname=tool-bin`,
		`sha256sums=('aaa')`,
		`md5sums=('bbb')`,
	}

	out, changed, err := ApplyToLines(lines, Rewrite{
		Array:        "sha256sums",
		Replacements: map[int]string{1: "xxx"},
		TargetCount:  1,
	})
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, lines[0], out[0])
	require.Equal(t, lines[1], out[1])
	require.Equal(t, `sha256sums=('xxx')`, out[2])
	require.Equal(t, lines[3], out[3])
}

func TestApplyWritesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "PKGBUILD")

	src, err := os.ReadFile(filepath.Join("testdata", "PKGBUILD"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, src, 0o644))

	changed, err := Apply(path, Rewrite{
		Array: "sha256sums",
		Replacements: map[int]string{
			1: strings.Repeat("a", 64),
			2: strings.Repeat("b", 64),
			3: strings.Repeat("c", 64),
		},
		TargetCount: 3,
	})
	require.NoError(t, err)
	require.True(t, changed)

	got, err := os.ReadFile(path)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "rewrite", got)

	// No temp files left behind next to the target.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestApplyNoOpLeavesFileUntouched(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "PKGBUILD")

	content := "sha256sums=('aaa')\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	before, err := os.Stat(path)
	require.NoError(t, err)

	changed, err := Apply(path, Rewrite{
		Array:        "sha256sums",
		Replacements: map[int]string{1: "aaa"},
		TargetCount:  1,
	})
	require.NoError(t, err)
	require.False(t, changed)

	after, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, before.ModTime(), after.ModTime())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, content, string(got))
}
