// Package app implements the application layer of pkgsum: the update pipeline
// from resolution through fetch, diff, confirmation, and rewrite.
package app

import (
	"context"
	"fmt"
	"io"

	"go.trai.ch/zerr"

	"go.aurforge.dev/pkgsum/internal/adapters/pkgbuild"
	"go.aurforge.dev/pkgsum/internal/adapters/resolver"
	"go.aurforge.dev/pkgsum/internal/adapters/srcinfo"
	"go.aurforge.dev/pkgsum/internal/core/domain"
	"go.aurforge.dev/pkgsum/internal/core/ports"
	"go.aurforge.dev/pkgsum/internal/ui/summary"
)

// Resolver produces the package descriptor and the PKGBUILD lines.
type Resolver interface {
	Resolve(in resolver.Inputs) (domain.PackageDescriptor, []string, error)
}

// Fetcher executes a fetch plan and returns the digest per slot.
type Fetcher interface {
	Run(ctx context.Context, plan domain.FetchPlan, noCache bool) (map[int]string, error)
}

// RunOptions carries the per-invocation flags beyond the resolver inputs.
type RunOptions struct {
	Inputs resolver.Inputs

	BinaryURL string
	SourceURL string

	Yes           bool
	DryRun        bool
	UpdateSrcinfo bool
	NoCache       bool
}

// App wires the pipeline stages together.
type App struct {
	resolver Resolver
	fetcher  Fetcher
	srcinfo  ports.SrcinfoGenerator
	prompter ports.Prompter
	logger   ports.Logger
	stdout   io.Writer
}

// New creates a new App instance.
func New(
	res Resolver,
	fetcher Fetcher,
	gen ports.SrcinfoGenerator,
	prompter ports.Prompter,
	logger ports.Logger,
	stdout io.Writer,
) *App {
	return &App{
		resolver: res,
		fetcher:  fetcher,
		srcinfo:  gen,
		prompter: prompter,
		logger:   logger,
		stdout:   stdout,
	}
}

// Run executes one checksum update.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	d, lines, err := a.resolver.Resolve(opts.Inputs)
	if err != nil {
		return err
	}

	srcName, suffix, err := pkgbuild.SourceArrayName(lines)
	if err != nil {
		return err
	}
	srcTokens, err := pkgbuild.ScanArray(lines, srcName)
	if err != nil {
		return err
	}
	sources := make([]domain.SourceEntry, len(srcTokens))
	for i, tok := range srcTokens {
		sources[i] = domain.SourceEntry(tok.Value)
	}

	sumName := "sha256sums" + suffix
	existingTokens, err := pkgbuild.ScanArray(lines, sumName)
	if err != nil {
		return err
	}

	plan := domain.BuildFetchPlan(d, sources, opts.BinaryURL, opts.SourceURL)
	digests, err := a.fetcher.Run(ctx, plan, opts.NoCache)
	if err != nil {
		return err
	}

	target := targetCount(len(sources))
	diffs := buildDiffs(existingTokens, digests, target)

	if !anyChanged(diffs) {
		a.logger.Info(fmt.Sprintf("%s already up to date for %s", sumName, d.Tag))
		return nil
	}

	fmt.Fprint(a.stdout, summary.Render(diffs))

	if opts.DryRun {
		a.logger.Info("dry run, no changes written")
		return nil
	}

	if !opts.Yes {
		if !a.prompter.Interactive() {
			return zerr.With(domain.ErrConfirmationRequired, "hint", "pass --yes")
		}
		ok, err := a.prompter.Confirm("Apply these changes?")
		if err != nil {
			return err
		}
		if !ok {
			a.logger.Info("aborted, file left untouched")
			return nil
		}
	}

	changed, err := pkgbuild.Apply(d.Path, pkgbuild.Rewrite{
		Array:        sumName,
		Replacements: digests,
		TargetCount:  target,
	})
	if err != nil {
		return err
	}
	if changed {
		a.logger.Info("updated " + d.Path)
	}

	if opts.UpdateSrcinfo {
		if err := srcinfo.Update(ctx, a.srcinfo, d.Dir()); err != nil {
			a.logger.Warn("checksums updated but .SRCINFO regeneration failed: " + err.Error())
		} else {
			a.logger.Info("regenerated " + srcinfo.FileName)
		}
	}
	return nil
}

// targetCount is the source-array length capped at MaxSlots, never below the
// two fixed slots (binary asset and source tarball).
func targetCount(sources int) int {
	if sources < 2 {
		return 2
	}
	if sources > domain.MaxSlots {
		return domain.MaxSlots
	}
	return sources
}

// buildDiffs pairs existing checksum tokens with computed digests per slot.
func buildDiffs(existing []pkgbuild.Token, digests map[int]string, target int) []domain.ChecksumDiff {
	diffs := make([]domain.ChecksumDiff, 0, target)
	for slot := 1; slot <= target; slot++ {
		diff := domain.ChecksumDiff{Slot: slot, Computed: digests[slot]}
		if slot-1 < len(existing) {
			diff.Existing = existing[slot-1].Value
		}
		diffs = append(diffs, diff)
	}
	return diffs
}

func anyChanged(diffs []domain.ChecksumDiff) bool {
	for _, d := range diffs {
		if d.Changed() {
			return true
		}
	}
	return false
}
