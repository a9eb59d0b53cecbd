package pkgbuild

import (
	"os"
	"path/filepath"
	"strings"

	"go.aurforge.dev/pkgsum/internal/core/domain"
	"go.trai.ch/zerr"
)

// Rewrite describes one checksum-array update: which array to touch, the
// replacement payload per 1-based slot, and how many slots the array should
// end up with (the source-array length, capped upstream).
type Rewrite struct {
	Array        string
	Replacements map[int]string
	TargetCount  int
}

// ApplyToLines applies the rewrite to an in-memory copy of the file and
// reports whether anything changed. Only the quoted payloads of matched
// tokens are substituted; whitespace, comments, quote style, and every line
// outside the array are preserved byte for byte. Missing trailing entries are
// synthesized before the closing parenthesis, single-quoted, space-separated.
func ApplyToLines(lines []string, rw Rewrite) ([]string, bool, error) {
	st := stateOutside
	idx := 0
	changed := false

	out := make([]string, len(lines))
	copy(out, lines)

	for i, line := range lines {
		if st == stateOutside {
			if !opensArray(line, rw.Array) {
				continue
			}
			st = stateInArray
		}

		newLine := line
		var b strings.Builder
		last := 0
		for _, sp := range quotedSpans(line) {
			idx++
			v, ok := rw.Replacements[idx]
			if !ok || v == line[sp.start:sp.end] {
				continue
			}
			b.WriteString(line[last:sp.start])
			b.WriteString(v)
			last = sp.end
			changed = true
		}
		if last > 0 {
			b.WriteString(line[last:])
			newLine = b.String()
		}

		if strings.ContainsRune(line, ')') {
			if insert := synthesize(idx, rw); insert != "" {
				pos := strings.IndexByte(newLine, ')')
				sep := " "
				if pos > 0 && newLine[pos-1] == '(' {
					sep = ""
				}
				newLine = newLine[:pos] + sep + insert + newLine[pos:]
				changed = true
			}
			out[i] = newLine
			st = stateClosed
			break
		}
		out[i] = newLine
	}

	if st == stateOutside {
		return nil, false, zerr.With(domain.ErrArrayNotFound, "array", rw.Array)
	}
	return out, changed, nil
}

// synthesize renders the missing trailing entries after the last existing
// token. Slots past the last computed digest are not invented; gaps before a
// later digest are padded with SKIP so positional alignment with the source
// array holds.
func synthesize(existing int, rw Rewrite) string {
	maxSlot := 0
	for j := existing + 1; j <= rw.TargetCount; j++ {
		if _, ok := rw.Replacements[j]; ok {
			maxSlot = j
		}
	}
	if maxSlot == 0 {
		return ""
	}

	parts := make([]string, 0, maxSlot-existing)
	for j := existing + 1; j <= maxSlot; j++ {
		v, ok := rw.Replacements[j]
		if !ok {
			v = domain.SkipChecksum
		}
		parts = append(parts, "'"+v+"'")
	}
	return strings.Join(parts, " ")
}

// Apply performs the rewrite on the file at path. The new content is written
// to a temporary file in the same directory and renamed over the original, so
// an interrupted run can never leave a half-written PKGBUILD behind.
func Apply(path string, rw Rewrite) (bool, error) {
	// #nosec G304 -- path was resolved from user flags or directory scan
	data, err := os.ReadFile(path)
	if err != nil {
		return false, zerr.Wrap(err, "failed to read PKGBUILD")
	}

	lines := strings.Split(string(data), "\n")
	out, changed, err := ApplyToLines(lines, rw)
	if err != nil {
		return false, err
	}
	if !changed {
		return false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, zerr.Wrap(err, "failed to stat PKGBUILD")
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".PKGBUILD-*")
	if err != nil {
		return false, zerr.Wrap(err, "failed to create temp file")
	}
	tmpName := tmp.Name()
	defer func() {
		// Best effort: the temp file only survives if rename never happened.
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.WriteString(strings.Join(out, "\n")); err != nil {
		_ = tmp.Close()
		return false, zerr.Wrap(err, "failed to write temp file")
	}
	if err := tmp.Close(); err != nil {
		return false, zerr.Wrap(err, "failed to close temp file")
	}
	if err := os.Chmod(tmpName, info.Mode().Perm()); err != nil {
		return false, zerr.Wrap(err, "failed to preserve file mode")
	}
	if err := os.Rename(tmpName, path); err != nil {
		return false, zerr.Wrap(err, "failed to replace PKGBUILD")
	}
	return true, nil
}
