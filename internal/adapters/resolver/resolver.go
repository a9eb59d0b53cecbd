// Package resolver turns flags, environment defaults, file contents, and
// prompts into a fully populated package descriptor. All prompting happens
// here; the stages after it are pure given the resolved inputs.
package resolver

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"go.trai.ch/zerr"

	"go.aurforge.dev/pkgsum/internal/adapters/pkgbuild"
	"go.aurforge.dev/pkgsum/internal/core/domain"
	"go.aurforge.dev/pkgsum/internal/core/ports"
)

// Inputs carries the raw flag values. Empty fields fall through the
// documented resolution chain.
type Inputs struct {
	PKGBUILDPath string
	Package      string
	Repo         string
	Asset        string
	Version      string
	Tag          string
	TagPrefix    string
}

var versionRe = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// Resolver resolves package identity. It only reads; the single file
// mutation of a run happens much later in the rewriter.
type Resolver struct {
	Prompter ports.Prompter
	Logger   ports.Logger
	Defaults domain.Defaults
}

// New creates a Resolver with the given collaborators.
func New(prompter ports.Prompter, logger ports.Logger, defaults domain.Defaults) *Resolver {
	return &Resolver{Prompter: prompter, Logger: logger, Defaults: defaults}
}

// Resolve produces the descriptor plus the PKGBUILD's lines, which later
// stages reuse for array scanning.
func (r *Resolver) Resolve(in Inputs) (domain.PackageDescriptor, []string, error) {
	path, err := r.resolvePath(in)
	if err != nil {
		return domain.PackageDescriptor{}, nil, err
	}

	lines, err := pkgbuild.ReadLines(path)
	if err != nil {
		return domain.PackageDescriptor{}, nil, zerr.Wrap(err, "failed to read PKGBUILD")
	}

	d := domain.PackageDescriptor{Path: path}
	d.AssetName = resolveAsset(in, path)

	d.RepoOwner, d.RepoName, err = r.resolveRepo(in, lines, d.AssetName)
	if err != nil {
		return domain.PackageDescriptor{}, nil, err
	}

	d.TagPrefix = firstNonEmpty(in.TagPrefix, r.Defaults.TagPrefix, "v")
	d.Version, d.Tag, err = r.resolveVersion(in, lines, d.TagPrefix)
	if err != nil {
		return domain.PackageDescriptor{}, nil, err
	}

	r.Logger.Info(fmt.Sprintf("resolved %s %s (tag %s) from %s", d.Repo(), d.Version, d.Tag, d.Path))
	return d, lines, nil
}

// resolvePath walks the path chain: explicit flag, ./PKGBUILD, the package
// shortcut under the base directory, then interactive selection among the
// base directory's *-bin packages.
func (r *Resolver) resolvePath(in Inputs) (string, error) {
	if in.PKGBUILDPath != "" {
		if _, err := os.Stat(in.PKGBUILDPath); err != nil {
			return "", zerr.With(domain.ErrNoPackageFound, "path", in.PKGBUILDPath)
		}
		return in.PKGBUILDPath, nil
	}

	if _, err := os.Stat("PKGBUILD"); err == nil {
		return "PKGBUILD", nil
	}

	if in.Package != "" {
		for _, dir := range []string{in.Package, in.Package + "-bin"} {
			candidate := filepath.Join(r.Defaults.Base, dir, "PKGBUILD")
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
		return "", zerr.With(domain.ErrNoPackageFound, "package", in.Package)
	}

	matches, _ := filepath.Glob(filepath.Join(r.Defaults.Base, "*-bin", "PKGBUILD"))
	if len(matches) > 0 && r.Prompter.Interactive() {
		sort.Strings(matches)
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = filepath.Base(filepath.Dir(m))
		}
		choice, err := r.Prompter.Select("Select package", names)
		if err != nil {
			return "", err
		}
		return filepath.Join(r.Defaults.Base, choice, "PKGBUILD"), nil
	}

	return "", zerr.With(domain.ErrNoPackageFound, "hint", "pass --pkgbuild or --package")
}

// resolveAsset derives the release artifact name from the flag or the
// PKGBUILD's directory, stripping the conventional -bin suffix.
func resolveAsset(in Inputs, path string) string {
	if in.Asset != "" {
		return in.Asset
	}
	dir := filepath.Base(filepath.Dir(path))
	if dir == "." || dir == "/" {
		if wd, err := os.Getwd(); err == nil {
			dir = filepath.Base(wd)
		}
	}
	return strings.TrimSuffix(dir, "-bin")
}

// resolveRepo walks the repo chain: flag, url= assignment, source array
// URLs, default owner plus derived name, then an interactive prompt.
func (r *Resolver) resolveRepo(in Inputs, lines []string, asset string) (string, string, error) {
	if in.Repo != "" {
		if owner, name, ok := splitRepo(in.Repo); ok {
			return owner, name, nil
		}
		if r.Defaults.Owner != "" {
			return r.Defaults.Owner, in.Repo, nil
		}
		// Bare name without a default owner; keep the name and let the
		// prompt fill the owner.
		return r.promptRepo(suggestRepo(r.Defaults.Owner, in.Repo))
	}

	if owner, name, ok := pkgbuild.InferRepo(lines); ok {
		return owner, name, nil
	}

	if r.Defaults.Owner != "" && asset != "" {
		return r.Defaults.Owner, asset, nil
	}

	return r.promptRepo(suggestRepo(r.Defaults.Owner, asset))
}

func (r *Resolver) promptRepo(suggestion string) (string, string, error) {
	if !r.Prompter.Interactive() {
		return "", "", zerr.With(domain.ErrNonInteractiveInput, "hint", "pass --repo owner/name")
	}
	answer, err := r.Prompter.Input("GitHub repository (owner/name)", suggestion)
	if err != nil {
		return "", "", err
	}
	owner, name, ok := splitRepo(answer)
	if !ok {
		return "", "", zerr.New(fmt.Sprintf("invalid repository %q, expected owner/name", answer))
	}
	return owner, name, nil
}

// resolveVersion settles version and tag. An explicit tag wins, then an
// explicit version; otherwise the file's pkgver= is the suggestion in a
// terminal and the silent fallback outside one.
func (r *Resolver) resolveVersion(in Inputs, lines []string, prefix string) (version, tag string, err error) {
	if in.Tag != "" {
		return strings.TrimPrefix(in.Tag, prefix), in.Tag, nil
	}

	if in.Version != "" {
		if !versionRe.MatchString(in.Version) {
			return "", "", zerr.With(domain.ErrInvalidVersion, "version", in.Version)
		}
		return in.Version, prefix + in.Version, nil
	}

	pkgver, found := pkgbuild.ReadVar(lines, "pkgver")

	if !r.Prompter.Interactive() {
		if !found || pkgver == "" {
			return "", "", zerr.With(domain.ErrNonInteractiveInput, "hint", "pass --version or --tag")
		}
		return pkgver, prefix + pkgver, nil
	}

	answer, err := r.Prompter.Input("Version (x.y.z)", pkgver)
	if err != nil {
		return "", "", err
	}
	if !versionRe.MatchString(answer) {
		return "", "", zerr.With(domain.ErrInvalidVersion, "version", answer)
	}
	return answer, prefix + answer, nil
}

func splitRepo(s string) (owner, name string, ok bool) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func suggestRepo(owner, name string) string {
	if owner != "" && name != "" {
		return owner + "/" + name
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
