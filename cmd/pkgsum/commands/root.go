// Package commands implements the CLI commands for pkgsum.
package commands

import (
	"context"

	"github.com/spf13/cobra"

	"go.aurforge.dev/pkgsum/internal/adapters/resolver"
	"go.aurforge.dev/pkgsum/internal/app"
)

// CLI represents the command line interface for pkgsum.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command

	opts app.RunOptions
}

// New creates a new CLI instance with the given app. The root command runs
// the checksum update; everything is a flag with a documented fallback.
func New(a *app.App) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "pkgsum",
		Short:         "Update sha256sums arrays in GitHub -bin PKGBUILDs",
		Long: `pkgsum resolves a PKGBUILD, downloads the release artifacts its source
array references, and rewrites the sha256sums array in place, preserving
everything else in the file byte for byte.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Run(cmd.Context(), c.opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&c.opts.Inputs.PKGBUILDPath, "pkgbuild", "p", "", "Path to the PKGBUILD to update")
	flags.StringVarP(&c.opts.Inputs.Package, "package", "P", "", "Package name under the AUR base directory")
	flags.StringVarP(&c.opts.Inputs.Repo, "repo", "r", "", "GitHub repository (name or owner/name)")
	flags.StringVarP(&c.opts.Inputs.Asset, "asset", "a", "", "Release asset filename")
	flags.StringVarP(&c.opts.Inputs.Version, "version", "v", "", "Release version (x.y.z)")
	flags.StringVarP(&c.opts.Inputs.Tag, "tag", "t", "", "Release tag")
	flags.StringVarP(&c.opts.Inputs.TagPrefix, "tag-prefix", "T", "", "Tag prefix prepended to the version (default v)")
	flags.StringVarP(&c.opts.BinaryURL, "binary-url", "B", "", "Override the binary asset URL")
	flags.StringVarP(&c.opts.SourceURL, "source-url", "S", "", "Override the source tarball URL")
	flags.BoolVarP(&c.opts.Yes, "yes", "y", false, "Skip the confirmation prompt")
	flags.BoolVarP(&c.opts.UpdateSrcinfo, "update-srcinfo", "U", false, "Regenerate .SRCINFO after a successful rewrite")
	flags.BoolVarP(&c.opts.DryRun, "dry-run", "n", false, "Show planned changes without writing")
	flags.BoolVar(&c.opts.NoCache, "no-cache", false, "Bypass the download cache")

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())
	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// Inputs exposes the parsed resolver inputs. Used for testing.
func (c *CLI) Inputs() resolver.Inputs {
	return c.opts.Inputs
}
