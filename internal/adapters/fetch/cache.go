package fetch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Cache stores downloaded artifacts on disk, keyed by the xxhash of their
// URL. Release artifacts are immutable for a given tag, so a hit is always
// valid; stale entries only cost disk space.
type Cache struct {
	Dir string
}

// NewCache places the cache under the user cache directory.
func NewCache() (*Cache, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to locate cache directory")
	}
	return &Cache{Dir: filepath.Join(base, "pkgsum")}, nil
}

func (c *Cache) path(url string) string {
	return filepath.Join(c.Dir, fmt.Sprintf("%016x", xxhash.Sum64String(url)))
}

// Get returns the cached bytes for the URL, if present.
func (c *Cache) Get(url string) ([]byte, bool) {
	data, err := os.ReadFile(c.path(url))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Put stores the bytes for the URL. The write goes through a temp file and
// rename so a concurrent reader never sees a partial entry.
func (c *Cache) Put(url string, data []byte) error {
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return zerr.Wrap(err, "failed to create cache directory")
	}

	tmp, err := os.CreateTemp(c.Dir, ".entry-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create cache entry")
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to write cache entry")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to close cache entry")
	}
	return os.Rename(tmpName, c.path(url))
}
