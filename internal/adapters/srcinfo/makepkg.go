// Package srcinfo regenerates .SRCINFO by invoking makepkg. Only the
// command's stdout/exit-code contract is consumed; the output is written
// verbatim to the companion file.
package srcinfo

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"

	"go.aurforge.dev/pkgsum/internal/core/domain"
	"go.aurforge.dev/pkgsum/internal/core/ports"
)

// FileName is the companion metadata file next to the PKGBUILD.
const FileName = ".SRCINFO"

// Makepkg implements ports.SrcinfoGenerator by running makepkg
// --printsrcinfo in the package directory.
type Makepkg struct {
	logger ports.Logger

	// command overrides the invoked binary. Tests point it at a stub.
	command string
}

// NewMakepkg creates the generator.
func NewMakepkg(logger ports.Logger) *Makepkg {
	return &Makepkg{logger: logger, command: "makepkg"}
}

// Generate runs makepkg and returns its stdout.
func (m *Makepkg) Generate(ctx context.Context, dir string) ([]byte, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, m.command, "--printsrcinfo")
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		e := zerr.Wrap(err, domain.ErrSrcinfoFailed.Error())
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			e = zerr.With(e, "stderr", msg)
		}
		return nil, e
	}
	return stdout.Bytes(), nil
}

// Update regenerates the companion file in dir. The write goes through a
// temp file and rename, same as the PKGBUILD rewrite.
func Update(ctx context.Context, gen ports.SrcinfoGenerator, dir string) error {
	data, err := gen.Generate(ctx, dir)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".SRCINFO-*")
	if err != nil {
		return zerr.Wrap(err, domain.ErrSrcinfoFailed.Error())
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, domain.ErrSrcinfoFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrSrcinfoFailed.Error())
	}
	if err := os.Rename(tmpName, filepath.Join(dir, FileName)); err != nil {
		return zerr.Wrap(err, domain.ErrSrcinfoFailed.Error())
	}
	return nil
}
