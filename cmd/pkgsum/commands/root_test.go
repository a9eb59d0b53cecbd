package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.aurforge.dev/pkgsum/internal/adapters/fetch"
	"go.aurforge.dev/pkgsum/internal/adapters/resolver"
	"go.aurforge.dev/pkgsum/internal/app"
	"go.aurforge.dev/pkgsum/internal/core/domain"
	"go.aurforge.dev/pkgsum/internal/core/ports/mocks"
)

func hexDigest(data string) string {
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}

// newCLI builds a CLI over real resolver and fetch stages, a mocked prompter
// in non-interactive mode, and a mocked srcinfo generator.
func newCLI(t *testing.T, base string) (*CLI, *strings.Builder) {
	t.Helper()
	ctrl := gomock.NewController(t)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	prompter := mocks.NewMockPrompter(ctrl)
	prompter.EXPECT().Interactive().Return(false).AnyTimes()

	defaults := domain.Defaults{Base: base, TagPrefix: "v"}
	res := resolver.New(prompter, log, defaults)
	fetcher := fetch.NewHTTPFetcher(log, false)
	fetcher.Backoff = time.Millisecond
	runner := fetch.NewRunner(fetcher, nil, log)
	gen := mocks.NewMockSrcinfoGenerator(ctrl)

	var stdout strings.Builder
	return New(app.New(res, runner, gen, prompter, log, &stdout)), &stdout
}

func TestUpdateEndToEnd(t *testing.T) {
	t.Chdir(t.TempDir())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/bin":
			_, _ = w.Write([]byte("binary payload"))
		case "/src.tar.gz":
			_, _ = w.Write([]byte("source payload"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	base := t.TempDir()
	dir := filepath.Join(base, "tool-bin")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "PKGBUILD")
	content := `pkgname=tool-bin
pkgver=0.9.0
url='https://github.com/acme/tool'
source=('tool::https://github.com/acme/tool/releases/download/v1.0.0/tool'
        'tool-1.0.0.tar.gz::https://github.com/acme/tool/archive/refs/tags/v1.0.0.tar.gz')
sha256sums=('oldbin'
            'oldsrc')
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cli, stdout := newCLI(t, base)
	cli.SetArgs([]string{
		"--pkgbuild", path,
		"--tag", "v1.0.0",
		"--yes",
		"--no-cache",
		"-B", srv.URL + "/bin",
		"-S", srv.URL + "/src.tar.gz",
	})
	require.NoError(t, cli.Execute(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	updated := string(data)
	require.Contains(t, updated, "'"+hexDigest("binary payload")+"'")
	require.Contains(t, updated, "'"+hexDigest("source payload")+"'")
	require.NotContains(t, updated, "oldbin")
	require.Contains(t, updated, "pkgver=0.9.0")
	require.Contains(t, stdout.String(), "binary")

	// Second run is a no-op and leaves the file byte-identical.
	after := updated
	cli2, _ := newCLI(t, base)
	cli2.SetArgs([]string{
		"--pkgbuild", path,
		"--tag", "v1.0.0",
		"--yes",
		"--no-cache",
		"-B", srv.URL + "/bin",
		"-S", srv.URL + "/src.tar.gz",
	})
	require.NoError(t, cli2.Execute(context.Background()))

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, after, string(data))
}

func TestUpdateDownloadFailureExitCode(t *testing.T) {
	t.Chdir(t.TempDir())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	base := t.TempDir()
	dir := filepath.Join(base, "tool-bin")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "PKGBUILD")
	content := `pkgver=1.0.0
url='https://github.com/acme/tool'
source=('a' 'b')
sha256sums=('x' 'y')
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cli, _ := newCLI(t, base)
	cli.SetArgs([]string{
		"--pkgbuild", path,
		"--yes",
		"--no-cache",
		"-B", srv.URL + "/bin",
		"-S", srv.URL + "/src.tar.gz",
	})

	err := cli.Execute(context.Background())
	require.True(t, errors.Is(err, domain.ErrDownloadFailed))
	require.Equal(t, domain.ExitDownloadFailed, domain.ExitCode(err))
}

func TestFlagParsing(t *testing.T) {
	cli, _ := newCLI(t, t.TempDir())
	// Parse without running.
	require.NoError(t, cli.rootCmd.ParseFlags([]string{
		"-p", "/tmp/PKGBUILD",
		"-P", "tool",
		"-r", "acme/tool",
		"-a", "tool",
		"-v", "1.2.3",
		"-T", "release-",
	}))

	in := cli.Inputs()
	require.Equal(t, "/tmp/PKGBUILD", in.PKGBUILDPath)
	require.Equal(t, "tool", in.Package)
	require.Equal(t, "acme/tool", in.Repo)
	require.Equal(t, "tool", in.Asset)
	require.Equal(t, "1.2.3", in.Version)
	require.Equal(t, "release-", in.TagPrefix)
}

func TestVersionCommand(t *testing.T) {
	cli, _ := newCLI(t, t.TempDir())
	var out strings.Builder
	cli.rootCmd.SetOut(&out)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	require.Contains(t, out.String(), "pkgsum version")
}
