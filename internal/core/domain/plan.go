package domain

import (
	"fmt"
	"path/filepath"
)

// Defaults are the environment-level fallbacks feeding the resolver: the AUR
// package base directory, the default GitHub owner, and the tag prefix.
type Defaults struct {
	Base      string
	Owner     string
	TagPrefix string
}

// BuildFetchPlan derives the fetch plan from a resolved descriptor and the
// source array snapshot. Slot 1 is the binary release asset and slot 2 the
// tagged source tarball; both are required. Slots 3 onward mirror the source
// array entries: URLs are fetched, anything else is read relative to the
// PKGBUILD directory, and failures there are soft skips. binaryURL and
// sourceURL override the constructed GitHub URLs when non-empty.
func BuildFetchPlan(d PackageDescriptor, sources []SourceEntry, binaryURL, sourceURL string) FetchPlan {
	if binaryURL == "" {
		binaryURL = fmt.Sprintf(BinaryURLTemplate, d.Repo(), d.Tag, d.AssetName)
	}
	if sourceURL == "" {
		sourceURL = fmt.Sprintf(SourceURLTemplate, d.Repo(), d.Tag)
	}

	plan := FetchPlan{Entries: []FetchEntry{
		{Slot: 1, Kind: FetchHTTP, Ref: binaryURL, Required: true},
		{Slot: 2, Kind: FetchHTTP, Ref: sourceURL, Required: true},
	}}

	for i := 2; i < len(sources) && i < MaxSlots; i++ {
		src := sources[i]
		entry := FetchEntry{Slot: i + 1}
		if src.IsURL() {
			entry.Kind = FetchHTTP
			entry.Ref = src.Ref()
		} else {
			entry.Kind = FetchLocal
			entry.Ref = filepath.Join(d.Dir(), src.Ref())
		}
		plan.Entries = append(plan.Entries, entry)
	}
	return plan
}
