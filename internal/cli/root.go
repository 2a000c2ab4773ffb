// Package cli provides the command-line interface for pulp-announce.
package cli

import (
	"github.com/bmbouter/pulp-demos/internal/app"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for pulp-announce.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "pulp-announce",
		Short: "Generate Pulp community announcement text",
		Long: `pulp-announce generates the announcement text for Pulp community
demos and releases: emails, blog posts, tweets, and video descriptions.

The output is printed to stdout as plain-text sections meant for manual
copy-paste into the mailing list, the blog, and social media.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.AddCommand(
		newDemoCommand(c),
		newReleaseCommand(c),
	)

	return root
}
