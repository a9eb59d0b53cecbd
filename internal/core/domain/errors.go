package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrNoPackageFound is returned when no PKGBUILD can be resolved from
	// flags, the working directory, or the package base directory.
	ErrNoPackageFound = zerr.New("no PKGBUILD found")

	// ErrNonInteractiveInput is returned when a required value could only be
	// obtained by prompting and stdin is not a terminal.
	ErrNonInteractiveInput = zerr.New("required input missing in non-interactive mode")

	// ErrInvalidVersion is returned when an interactively entered version does
	// not match the x.y.z format.
	ErrInvalidVersion = zerr.New("invalid version format, expected x.y.z")

	// ErrDownloadFailed is returned when the binary asset or source tarball
	// cannot be downloaded after all retries.
	ErrDownloadFailed = zerr.New("download failed")

	// ErrArrayNotFound is returned when the target array declaration never
	// appears in the PKGBUILD.
	ErrArrayNotFound = zerr.New("array not found in PKGBUILD")

	// ErrConfirmationRequired is returned when the rewrite needs confirmation
	// but the session is non-interactive and --yes was not given.
	ErrConfirmationRequired = zerr.New("confirmation required, pass --yes in non-interactive mode")

	// ErrSrcinfoFailed is returned when .SRCINFO regeneration fails. The
	// rewrite has already been applied at that point, so callers treat this
	// as a warning, not a fatal condition.
	ErrSrcinfoFailed = zerr.New("failed to regenerate .SRCINFO")
)

// Exit codes of the pkgsum CLI. These are part of the tool's contract and
// must not be renumbered.
const (
	ExitOK              = 0
	ExitNoPackage       = 10
	ExitInvalidVersion  = 11
	ExitDownloadFailed  = 12
	ExitParseError      = 13
	ExitInputRequired   = 14
	ExitInternalFailure = 1
)

// ExitCode maps an error to the documented process exit code.
// Unrecognized errors map to ExitInternalFailure.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrNoPackageFound):
		return ExitNoPackage
	case errors.Is(err, ErrInvalidVersion):
		return ExitInvalidVersion
	case errors.Is(err, ErrDownloadFailed):
		return ExitDownloadFailed
	case errors.Is(err, ErrArrayNotFound):
		return ExitParseError
	case errors.Is(err, ErrNonInteractiveInput), errors.Is(err, ErrConfirmationRequired):
		return ExitInputRequired
	default:
		return ExitInternalFailure
	}
}
