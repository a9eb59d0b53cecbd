// Package pkgbuild implements reading and rewriting of PKGBUILD shell-array
// literals. Arrays are parsed with a small line state machine rather than a
// full shell parser: that is all the format needs, and it keeps the rewrite
// path byte-preserving for everything outside the quoted payloads.
package pkgbuild

import (
	"regexp"
	"strings"

	"go.aurforge.dev/pkgsum/internal/core/domain"
	"go.trai.ch/zerr"
)

// state tracks the scanner's position relative to the target array.
type state int

const (
	stateOutside state = iota
	stateInArray
	stateClosed
)

// Token is one quoted entry of an array literal, with enough position
// information for the rewriter to substitute the payload in place.
type Token struct {
	// Value is the payload between the quotes.
	Value string
	// Line is the 0-based index of the physical line holding the token.
	Line int
	// Start and End delimit the payload within the line (End exclusive,
	// quotes not included).
	Start, End int
	// Quote is the quoting character, '\'' or '"'.
	Quote byte
}

// span is a quoted region found on a single line.
type span struct {
	start, end int
	quote      byte
}

// quotedSpans extracts every single- or double-quoted span of line, left to
// right. An unterminated quote is ignored; array entries do not span lines.
func quotedSpans(line string) []span {
	var spans []span
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c != '\'' && c != '"' {
			continue
		}
		rest := strings.IndexByte(line[i+1:], c)
		if rest < 0 {
			break
		}
		spans = append(spans, span{start: i + 1, end: i + 1 + rest, quote: c})
		i += rest + 1
	}
	return spans
}

// opensArray reports whether the left-trimmed line begins the declaration of
// the named array, accepting both name=( and name( forms.
func opensArray(line, name string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, name+"=(") || strings.HasPrefix(trimmed, name+"(")
}

// ScanArray returns the quoted tokens of the named array in order. The array
// may span any number of lines; scanning stops at the first line containing
// the closing parenthesis, after that line's tokens are extracted, so quotes
// belonging to later arrays are never picked up.
func ScanArray(lines []string, name string) ([]Token, error) {
	st := stateOutside
	var tokens []Token

	for i, line := range lines {
		if st == stateOutside {
			if !opensArray(line, name) {
				continue
			}
			st = stateInArray
		}

		for _, sp := range quotedSpans(line) {
			tokens = append(tokens, Token{
				Value: line[sp.start:sp.end],
				Line:  i,
				Start: sp.start,
				End:   sp.end,
				Quote: sp.quote,
			})
		}

		if strings.ContainsRune(line, ')') {
			st = stateClosed
			break
		}
	}

	if st == stateOutside {
		return nil, zerr.With(domain.ErrArrayNotFound, "array", name)
	}
	return tokens, nil
}

var sourceArrayRe = regexp.MustCompile(`^\s*source(_[A-Za-z0-9_]+)?=\(`)

// SourceArrayName picks the source array to work from and returns its name
// together with the architecture suffix, so the caller can target the
// matching checksum array (sha256sums plus the same suffix). Preference
// order: source_x86_64, plain source, then the first suffixed variant found.
func SourceArrayName(lines []string) (name, suffix string, err error) {
	var firstVariant string
	plain := false

	for _, line := range lines {
		m := sourceArrayRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		switch m[1] {
		case "_x86_64":
			return "source_x86_64", "_x86_64", nil
		case "":
			plain = true
		default:
			if firstVariant == "" {
				firstVariant = m[1]
			}
		}
	}

	if plain {
		return "source", "", nil
	}
	if firstVariant != "" {
		return "source" + firstVariant, firstVariant, nil
	}
	return "", "", zerr.With(domain.ErrArrayNotFound, "array", "source")
}
