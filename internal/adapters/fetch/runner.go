package fetch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"go.aurforge.dev/pkgsum/internal/core/domain"
	"go.aurforge.dev/pkgsum/internal/core/ports"
)

// maxParallel bounds concurrent downloads. Fetches are independent, so
// running a few at once is safe; digests land in indexed slots, never shared
// accumulators.
const maxParallel = 4

// Runner executes a fetch plan and returns the digest per slot.
type Runner struct {
	Fetcher ports.Fetcher
	Cache   *Cache
	Logger  ports.Logger
}

// NewRunner creates a Runner. cache may be nil to disable disk caching.
func NewRunner(fetcher ports.Fetcher, cache *Cache, logger ports.Logger) *Runner {
	return &Runner{Fetcher: fetcher, Cache: cache, Logger: logger}
}

// Run materializes every plan entry and computes its SHA-256 digest. Failures
// on required entries abort the run; optional entries that cannot be fetched
// or read are logged and skipped, leaving their slot absent from the result.
func (r *Runner) Run(ctx context.Context, plan domain.FetchPlan, noCache bool) (map[int]string, error) {
	digests := make([]string, len(plan.Entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)

	for i, entry := range plan.Entries {
		g.Go(func() error {
			data, err := r.materialize(ctx, entry, noCache)
			if err != nil {
				if entry.Required {
					e := zerr.With(domain.ErrDownloadFailed, "slot", entry.Slot)
					e = zerr.With(e, "ref", entry.Ref)
					return zerr.With(e, "cause", err.Error())
				}
				r.Logger.Warn(fmt.Sprintf("skipping %s slot %d: %s unavailable", domain.SlotLabel(entry.Slot), entry.Slot, entry.Ref))
				return nil
			}
			sum := sha256.Sum256(data)
			digests[i] = hex.EncodeToString(sum[:])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[int]string, len(plan.Entries))
	for i, entry := range plan.Entries {
		if digests[i] != "" {
			out[entry.Slot] = digests[i]
		}
	}
	return out, nil
}

func (r *Runner) materialize(ctx context.Context, entry domain.FetchEntry, noCache bool) ([]byte, error) {
	switch entry.Kind {
	case domain.FetchLocal:
		// #nosec G304 -- ref is a source entry resolved against the PKGBUILD dir
		return os.ReadFile(entry.Ref)
	case domain.FetchHTTP:
		if r.Cache != nil && !noCache {
			if data, ok := r.Cache.Get(entry.Ref); ok {
				r.Logger.Info(fmt.Sprintf("cache hit for %s", entry.Ref))
				return data, nil
			}
		}
		data, err := r.Fetcher.Fetch(ctx, entry.Ref)
		if err != nil {
			return nil, err
		}
		if r.Cache != nil && !noCache {
			if err := r.Cache.Put(entry.Ref, data); err != nil {
				r.Logger.Warn(fmt.Sprintf("failed to cache %s: %v", entry.Ref, err))
			}
		}
		return data, nil
	default:
		return nil, zerr.With(zerr.New("unknown fetch kind"), "kind", int(entry.Kind))
	}
}
