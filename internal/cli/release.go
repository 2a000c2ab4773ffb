package cli

import (
	"fmt"

	"github.com/bmbouter/pulp-demos/internal/app"
	"github.com/bmbouter/pulp-demos/internal/domain"
	"github.com/bmbouter/pulp-demos/internal/usecase"
	"github.com/spf13/cobra"
)

// releaseDivider separates the rendered sections in the output.
const releaseDivider = "---------------------------------------------------"

// newReleaseCommand creates the release command.
func newReleaseCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Version  string
		Author   string
		QueryNum int
		Beta     int
		RC       int
	}

	cmd := &cobra.Command{
		Use:   "release",
		Short: "Generate release announcements from a tracker query",
		Long: `Generate the email, blog post, and tweet announcing a Pulp release.

The issues included in the release come from a saved query on the Redmine
tracker; --query-num is the number in the query's URL. The REDMINE_KEY
environment variable must hold your API key (a .env file works too).

Note: --beta and --rc are mutually exclusive. Leaving both unset announces
a stable release.

Examples:
  # Announce the 2.14.3 stable release
  pulp-announce release --version 2.14.3 --author "Jane Doe" --query-num 108

  # Announce the second beta of 2.15.0
  pulp-announce release --version 2.15.0 --author "Jane Doe" --query-num 112 --beta 2

  # Announce a release candidate
  pulp-announce release --version 2.15.0 --author "Jane Doe" --query-num 112 --rc 1`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			version, err := domain.ParseVersion(opts.Version)
			if err != nil {
				return err
			}
			channel, err := resolveChannel(cmd, opts.Beta, opts.RC)
			if err != nil {
				return err
			}

			uc := c.AnnounceReleaseUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.AnnounceReleaseInput{
				Author:  opts.Author,
				Version: version,
				Channel: channel,
				QueryID: opts.QueryNum,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(w, out.Email)
			_, _ = fmt.Fprintf(w, "%s\n\n", releaseDivider)
			_, _ = fmt.Fprintln(w, out.BlogPost)
			_, _ = fmt.Fprintf(w, "%s\n\n", releaseDivider)
			_, _ = fmt.Fprintln(w, out.Tweet)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Version, "version", "", "The x.y.z version to create release notes for")
	cmd.Flags().StringVar(&opts.Author, "author", "", "The full name of the author used in the blog post")
	cmd.Flags().IntVar(&opts.QueryNum, "query-num", 0, "The number in the tracker URL that shows all issues for this release")
	cmd.Flags().IntVar(&opts.Beta, "beta", 0, "The Beta build number. Only set if it is a Beta build")
	cmd.Flags().IntVar(&opts.RC, "rc", 0, "The RC build number. Only set if it is an RC build")
	_ = cmd.MarkFlagRequired("version")
	_ = cmd.MarkFlagRequired("author")
	_ = cmd.MarkFlagRequired("query-num")

	return cmd
}

// resolveChannel maps the beta/rc flags onto a release channel.
// Setting both flags is rejected.
func resolveChannel(cmd *cobra.Command, beta, rc int) (domain.Channel, error) {
	betaSet := cmd.Flags().Changed("beta")
	rcSet := cmd.Flags().Changed("rc")
	switch {
	case betaSet && rcSet:
		return domain.Channel{}, domain.ErrChannelConflict
	case betaSet:
		return domain.Beta(beta), nil
	case rcSet:
		return domain.ReleaseCandidate(rc), nil
	default:
		return domain.Stable(), nil
	}
}
