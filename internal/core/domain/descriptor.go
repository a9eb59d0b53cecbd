// Package domain holds the core types of pkgsum: the resolved package
// identity, the fetch plan derived from it, and the source/checksum array
// snapshots read from a PKGBUILD.
package domain

import "strings"

// MaxSlots is the maximum number of checksum slots pkgsum manages. Source
// arrays longer than this are processed up to this bound and the remainder is
// left untouched.
const MaxSlots = 9

// URL templates for GitHub release artifacts.
const (
	BinaryURLTemplate = "https://github.com/%s/releases/download/%s/%s"
	SourceURLTemplate = "https://github.com/%s/archive/refs/tags/%s.tar.gz"
)

// PackageDescriptor is the fully resolved identity of one PKGBUILD. It is
// built once by the resolver and never mutated afterwards; every later stage
// receives it by value.
type PackageDescriptor struct {
	// Path is the filesystem location of the PKGBUILD.
	Path string

	// RepoOwner and RepoName are the GitHub coordinates, possibly inferred
	// from url= or source=() contents.
	RepoOwner string
	RepoName  string

	// AssetName is the release artifact filename, derived from the containing
	// directory name with a default -bin suffix stripped.
	AssetName string

	// Version is the bare semantic version; Tag is the VCS release identifier.
	// Exactly one of them is authoritative input, the other is derived via
	// TagPrefix.
	Version   string
	Tag       string
	TagPrefix string
}

// Repo returns the owner/name form used in GitHub URLs.
func (d PackageDescriptor) Repo() string {
	return d.RepoOwner + "/" + d.RepoName
}

// Dir returns the directory containing the PKGBUILD. Relative source entries
// resolve against it.
func (d PackageDescriptor) Dir() string {
	if i := strings.LastIndexByte(d.Path, '/'); i >= 0 {
		return d.Path[:i]
	}
	return "."
}

// FetchKind describes how a fetch plan entry is materialized.
type FetchKind int

const (
	// FetchHTTP entries are downloaded; failure is fatal for the binary and
	// source slots, a soft skip for extras.
	FetchHTTP FetchKind = iota
	// FetchLocal entries are read from disk relative to the PKGBUILD.
	FetchLocal
)

// FetchEntry binds one artifact reference to a checksum slot.
type FetchEntry struct {
	// Slot is the 1-based checksum array position this entry fills.
	Slot int
	// Kind selects between HTTP download and local file read.
	Kind FetchKind
	// Ref is the URL for FetchHTTP entries or the resolved filesystem path
	// for FetchLocal entries.
	Ref string
	// Required marks entries whose failure aborts the run (slots 1 and 2).
	Required bool
}

// FetchPlan is the ordered set of artifacts to materialize and hash. Slot 1
// is always the binary release asset and slot 2 the tagged source tarball;
// slots 3 onward come from the source array.
type FetchPlan struct {
	Entries []FetchEntry
}

// Required returns the entries whose failure is fatal.
func (p FetchPlan) Required() []FetchEntry {
	var out []FetchEntry
	for _, e := range p.Entries {
		if e.Required {
			out = append(out, e)
		}
	}
	return out
}
