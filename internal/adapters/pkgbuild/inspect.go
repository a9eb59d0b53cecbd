package pkgbuild

import (
	"os"
	"regexp"
	"strings"
)

// ReadLines loads a PKGBUILD into memory. The rewriter needs the exact line
// split later, so the trailing-newline state is tracked by the caller via
// the raw content.
func ReadLines(path string) ([]string, error) {
	// #nosec G304 -- path was resolved from user flags or directory scan
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return strings.Split(string(data), "\n"), nil
}

var assignRe = regexp.MustCompile(`^\s*([A-Za-z_][A-Za-z0-9_]*)=([^(].*)$`)

// ReadVar returns the value of a simple name=value assignment, with
// surrounding quotes stripped. The second return is false when no such
// assignment exists. Array assignments are not matched.
func ReadVar(lines []string, name string) (string, bool) {
	for _, line := range lines {
		m := assignRe.FindStringSubmatch(line)
		if m == nil || m[1] != name {
			continue
		}
		return strings.Trim(strings.TrimSpace(m[2]), `'"`), true
	}
	return "", false
}

var githubRe = regexp.MustCompile(`github\.com/([A-Za-z0-9._-]+)/([A-Za-z0-9._-]+)`)

// GitHubRepo extracts owner and name from any string containing a GitHub
// URL. It tolerates git+https:// prefixes, #tag= fragments, deeper paths
// (release and archive URLs), and a trailing .git suffix.
func GitHubRepo(s string) (owner, name string, ok bool) {
	m := githubRe.FindStringSubmatch(s)
	if m == nil {
		return "", "", false
	}
	name = strings.TrimSuffix(m[2], ".git")
	name = strings.SplitN(name, "#", 2)[0]
	if name == "" {
		return "", "", false
	}
	return m[1], name, true
}

// InferRepo derives GitHub coordinates from the PKGBUILD contents. The url=
// assignment wins; source array entries (any arch variant) are the fallback.
func InferRepo(lines []string) (owner, name string, ok bool) {
	if url, found := ReadVar(lines, "url"); found {
		if o, n, match := GitHubRepo(url); match {
			return o, n, true
		}
	}

	srcName, _, err := SourceArrayName(lines)
	if err != nil {
		return "", "", false
	}
	tokens, err := ScanArray(lines, srcName)
	if err != nil {
		return "", "", false
	}
	for _, tok := range tokens {
		if o, n, match := GitHubRepo(tok.Value); match {
			return o, n, true
		}
	}
	return "", "", false
}
