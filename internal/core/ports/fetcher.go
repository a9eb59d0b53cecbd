// Package ports defines the core interfaces for the application.
package ports

import "context"

// Fetcher defines the interface for retrieving a remote artifact's bytes.
// Implementations own retry policy and caching; a returned error means the
// artifact is unavailable for good.
//
//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type Fetcher interface {
	// Fetch downloads the artifact at url and returns its full content.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
