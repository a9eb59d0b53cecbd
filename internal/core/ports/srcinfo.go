package ports

import "context"

// SrcinfoGenerator defines the interface for regenerating a package's
// .SRCINFO companion file via an external packaging tool.
//
//go:generate go run go.uber.org/mock/mockgen -source=srcinfo.go -destination=mocks/mock_srcinfo.go -package=mocks
type SrcinfoGenerator interface {
	// Generate runs the metadata generator in dir and returns its stdout,
	// which callers write verbatim to the companion file.
	Generate(ctx context.Context, dir string) ([]byte, error)
}
