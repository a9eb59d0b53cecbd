package logger

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

func TestInfoAndWarn(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf strings.Builder

	log := NewWithWriter(&buf)
	log.Info("resolving package")
	log.Warn("skipping extra slot 3")

	g := goldie.New(t)
	g.Assert(t, "info_warn", []byte(buf.String()))
}

func TestErrorWalksCauseChain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf strings.Builder

	log := NewWithWriter(&buf)
	err := zerr.Wrap(zerr.New("connection refused"), "download failed")
	log.Error(err)

	out := buf.String()
	require.Contains(t, out, "Error: download failed")
	require.Contains(t, out, "Caused by:")
	require.Contains(t, out, "connection refused")
}

func TestErrorNil(t *testing.T) {
	var buf strings.Builder
	log := NewWithWriter(&buf)
	log.Error(nil)
	require.Empty(t, buf.String())
}
