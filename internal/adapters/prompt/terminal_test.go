package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"\n", false},
		{"maybe\n", false},
	}

	for _, tt := range tests {
		var out strings.Builder
		term := newTerminal(strings.NewReader(tt.answer), &out, true)

		ok, err := term.Confirm("Apply changes?")
		require.NoError(t, err)
		require.Equal(t, tt.want, ok, "answer %q", tt.answer)
		require.Contains(t, out.String(), "Apply changes? [y/N]")
	}
}

func TestInputTakesSuggestionOnEmpty(t *testing.T) {
	var out strings.Builder
	term := newTerminal(strings.NewReader("\n"), &out, true)

	v, err := term.Input("Version", "1.2.3")
	require.NoError(t, err)
	require.Equal(t, "1.2.3", v)
	require.Contains(t, out.String(), "[1.2.3]")
}

func TestInputOverride(t *testing.T) {
	var out strings.Builder
	term := newTerminal(strings.NewReader("2.0.0\n"), &out, true)

	v, err := term.Input("Version", "1.2.3")
	require.NoError(t, err)
	require.Equal(t, "2.0.0", v)
}

func TestSelect(t *testing.T) {
	var out strings.Builder
	term := newTerminal(strings.NewReader("2\n"), &out, true)

	v, err := term.Select("Select package", []string{"tool-bin", "other-bin"})
	require.NoError(t, err)
	require.Equal(t, "other-bin", v)
	require.Contains(t, out.String(), "1) tool-bin")
	require.Contains(t, out.String(), "2) other-bin")
}

func TestSelectInvalid(t *testing.T) {
	var out strings.Builder
	term := newTerminal(strings.NewReader("9\n"), &out, true)

	_, err := term.Select("Select package", []string{"tool-bin"})
	require.Error(t, err)
}

func TestInteractive(t *testing.T) {
	require.False(t, newTerminal(strings.NewReader(""), &strings.Builder{}, false).Interactive())
	require.True(t, newTerminal(strings.NewReader(""), &strings.Builder{}, true).Interactive())
}
