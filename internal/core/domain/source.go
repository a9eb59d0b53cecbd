package domain

import "strings"

// SkipChecksum is the PKGBUILD sentinel for "do not verify this source".
const SkipChecksum = "SKIP"

// SourceEntry is one raw token of a source=() array. Entries may be bare
// filenames, URLs, or destination::url pairs.
type SourceEntry string

// Ref returns the actual reference of the entry, stripping a destination-name
// prefix if the token uses the name::url form.
func (s SourceEntry) Ref() string {
	raw := string(s)
	if i := strings.Index(raw, "::"); i >= 0 {
		return raw[i+2:]
	}
	return raw
}

// IsURL reports whether the entry's reference is fetched over HTTP.
func (s SourceEntry) IsURL() bool {
	ref := strings.ToLower(s.Ref())
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// SlotLabel names a checksum slot for user-facing output: slot 1 is the
// binary release asset, slot 2 the source tarball, the rest are extra
// declared sources.
func SlotLabel(slot int) string {
	switch slot {
	case 1:
		return "binary"
	case 2:
		return "source"
	default:
		return "extra"
	}
}

// ChecksumDiff is one row of the pre-rewrite summary: the existing token at a
// slot and the digest computed for it. Slots without a computed digest keep
// their existing value.
type ChecksumDiff struct {
	Slot     int
	Existing string
	Computed string
}

// Changed reports whether applying this diff would modify the file.
func (c ChecksumDiff) Changed() bool {
	return c.Computed != "" && c.Computed != c.Existing
}
