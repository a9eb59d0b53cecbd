package pkgbuild

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadVar(t *testing.T) {
	lines := []string{
		`pkgname=tool-bin`,
		`pkgver="1.2.3"`,
		`url='https://github.com/acme/tool'`,
		`source=('a')`,
	}

	v, ok := ReadVar(lines, "pkgname")
	require.True(t, ok)
	require.Equal(t, "tool-bin", v)

	v, ok = ReadVar(lines, "pkgver")
	require.True(t, ok)
	require.Equal(t, "1.2.3", v)

	v, ok = ReadVar(lines, "url")
	require.True(t, ok)
	require.Equal(t, "https://github.com/acme/tool", v)

	_, ok = ReadVar(lines, "pkgrel")
	require.False(t, ok)

	// Array assignments are not plain variables.
	_, ok = ReadVar(lines, "source")
	require.False(t, ok)
}

func TestGitHubRepo(t *testing.T) {
	tests := []struct {
		in        string
		wantOwner string
		wantName  string
		wantOK    bool
	}{
		{"https://github.com/acme/tool", "acme", "tool", true},
		{"git+https://github.com/acme/tool.git#tag=v1.0.0", "acme", "tool", true},
		{"https://github.com/acme/tool/releases/download/v1.0.0/tool", "acme", "tool", true},
		{"https://github.com/acme/tool/archive/refs/tags/v1.0.0.tar.gz", "acme", "tool", true},
		{"https://gitlab.com/acme/tool", "", "", false},
		{"local.patch", "", "", false},
	}

	for _, tt := range tests {
		owner, name, ok := GitHubRepo(tt.in)
		require.Equal(t, tt.wantOK, ok, tt.in)
		require.Equal(t, tt.wantOwner, owner, tt.in)
		require.Equal(t, tt.wantName, name, tt.in)
	}
}

func TestInferRepoURLWins(t *testing.T) {
	lines := []string{
		`url='https://github.com/acme/tool'`,
		`source=('https://github.com/other/thing/archive/refs/tags/v1.tar.gz')`,
	}

	owner, name, ok := InferRepo(lines)
	require.True(t, ok)
	require.Equal(t, "acme", owner)
	require.Equal(t, "tool", name)
}

func TestInferRepoFallsBackToSource(t *testing.T) {
	lines := []string{
		`url='https://acme.example.com'`,
		`source=('tool-1.0.0.tar.gz::https://github.com/acme/tool/archive/refs/tags/v1.0.0.tar.gz')`,
	}

	owner, name, ok := InferRepo(lines)
	require.True(t, ok)
	require.Equal(t, "acme", owner)
	require.Equal(t, "tool", name)
}

func TestInferRepoNoMatch(t *testing.T) {
	lines := []string{
		`pkgname=tool-bin`,
		`source=('local.patch')`,
	}

	_, _, ok := InferRepo(lines)
	require.False(t, ok)
}
