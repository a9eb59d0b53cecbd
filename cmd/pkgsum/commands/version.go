package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.aurforge.dev/pkgsum/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			if build.Commit != "" {
				fmt.Fprintf(out, "pkgsum version %s (%s)\n", build.Version, build.Commit)
				return
			}
			fmt.Fprintf(out, "pkgsum version %s\n", build.Version)
		},
	}
}
