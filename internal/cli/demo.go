package cli

import (
	"fmt"
	"io"

	"github.com/bmbouter/pulp-demos/internal/app"
	"github.com/bmbouter/pulp-demos/internal/usecase"
	"github.com/spf13/cobra"
)

// newDemoCommand creates the demo command.
func newDemoCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Filename string
		Date     string
		Author   string
	}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Generate community demo announcements from a schedule CSV",
		Long: `Generate the youtube description, blog post, and mailing-list email
for a community demo.

The CSV's first row holds the youtube watch URL; every later row is
title,nick,MM:SS with an optional fourth column naming the affected
Pulp version:

  https://www.youtube.com/watch?v=0T84sdEfBWE
  State of Pulp,mhrivnak,0:15
  Debian Content Support for Pulp 2,misa,7:42,2.14

Examples:
  # Announce the demo recorded in 30.csv
  pulp-announce demo --filename 30.csv

  # Override the date and author
  pulp-announce demo --filename 30.csv --date "Aug 30, 2026" --author "Jane Doe"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.AnnounceDemoUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.AnnounceDemoInput{
				Filename: opts.Filename,
				Date:     opts.Date,
				Author:   opts.Author,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printSection(w, "youtube comments", out.YouTubeDescription)
			printSection(w, "blog", out.BlogPost)
			printSection(w, "email", out.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Filename, "filename", "", "Path to the demo schedule CSV")
	cmd.Flags().StringVar(&opts.Date, "date", "", "The date the demo occurred (default: today)")
	cmd.Flags().StringVar(&opts.Author, "author", "", "The author of the announcements")
	_ = cmd.MarkFlagRequired("filename")

	return cmd
}

// printSection writes a labelled divider followed by the section body.
func printSection(w io.Writer, label, body string) {
	_, _ = fmt.Fprintf(w, "\n--------------------   %s   ---------------------\n\n", label)
	_, _ = fmt.Fprintln(w, body)
}
