package render

import (
	"fmt"
	"strings"

	"github.com/bmbouter/pulp-demos/internal/domain"
)

const releaseEmailTemplate = `Pulp {{.FullVersion}}{{.Suffix}} is now available, and can be downloaded from the {{.XY}} {{.RepoDir}} repositories:

{{.ReposBase}}/{{.RepoDir}}/{{.XY}}/

This release includes {{.Wording}} for: {{.Projects}}

Upgrading
=========

The Pulp {{.XY}} {{.RepoDir}} repository is included in the pulp repo files:
    {{.ReposBase}}/fedora-pulp.repo for Fedora
    {{.ReposBase}}/rhel-pulp.repo for RHEL 7

After enabling the pulp-{{.RepoDir}} repository, you'll want to follow the standard upgrade path
with migrations:

$ sudo systemctl stop httpd pulp_workers pulp_resource_manager pulp_celerybeat pulp_streamer goferd
$ sudo yum upgrade
$ sudo -u apache pulp-manage-db
$ sudo systemctl start httpd pulp_workers pulp_resource_manager pulp_celerybeat pulp_streamer goferd

The pulp_streamer and goferd services should be omitted if those services are not installed.

Issues Addressed
================
{{.IssueList}}`

const releaseBlogTemplate = `{{.FrontMatter}}
Pulp {{.FullVersion}}{{.Suffix}} is now available in the {{.RepoDir}} repositories:

* [pulp-2-{{.RepoDir}}]({{.ReposBase}}/{{.RepoDir}}/2/)
* [pulp-{{.RepoDir}}]({{.ReposBase}}/{{.RepoDir}}/latest/)

This release includes {{.Wording}} for {{.Projects}}.

## Upgrading

The Pulp 2 {{.RepoDir}} repositories are included in the pulp repo files:

- [Fedora]({{.ReposBase}}/fedora-pulp.repo)
- [RHEL 7]({{.ReposBase}}/rhel-pulp.repo)

After enabling the pulp-{{.RepoDir}} or pulp-2-{{.RepoDir}} repository, you'll want to
follow the standard upgrade path with migrations:

` + "```sh" + `
$ sudo systemctl stop httpd pulp_workers pulp_resource_manager pulp_celerybeat pulp_streamer goferd
$ sudo yum upgrade
$ sudo -u apache pulp-manage-db
$ sudo systemctl start httpd pulp_workers pulp_resource_manager pulp_celerybeat pulp_streamer goferd
` + "```" + `

The ` + "`pulp_streamer`" + ` and ` + "`goferd`" + ` services should be omitted if those services are not installed.

## Pulp 3

Please consider upgrading your installation to Pulp3, as Pulp 2 is entering its end-of-life phase.
You can find the [Migration Process](https://pulpproject.org/migrate-to-pulp-3/) directions on
Pulp's documentation site!

## Issues Addressed
{{.IssueList}}`

const releaseTweetTemplate = `Pulp {{.FullVersion}}{{.Suffix}} is available with {{.Wording}} for {{.Projects}}. {{.Audience}} is recommended. Read more here: `

// releaseData feeds the three release templates. Only the blog post uses
// FrontMatter; only the tweet uses Audience.
type releaseData struct {
	FrontMatter string
	FullVersion string
	Suffix      string
	XY          string
	RepoDir     string
	Wording     string
	Projects    string
	ReposBase   string
	Audience    string
	IssueList   string
}

// ReleaseInput carries everything the release renderers need.
type ReleaseInput struct {
	Groups       *domain.ProjectGroups
	Author       string
	ReposBaseURL string
	Version      domain.Version
	Channel      domain.Channel
}

// ReleaseEmail renders the release announcement email.
func ReleaseEmail(in ReleaseInput) (string, error) {
	data := newReleaseData(in)
	data.IssueList = plainIssueList(in.Groups)
	return renderTemplate("release_email", releaseEmailTemplate, data)
}

// ReleaseBlogPost renders the release blog post.
func ReleaseBlogPost(in ReleaseInput) (string, error) {
	fm, err := frontMatter(frontMatterData{
		Title:  fmt.Sprintf("Pulp %s%s", in.Version, in.Channel.Suffix()),
		Author: in.Author,
		Tags:   []string{"release"},
	})
	if err != nil {
		return "", err
	}
	data := newReleaseData(in)
	data.FrontMatter = fm
	data.IssueList = markdownIssueList(in.Groups)
	return renderTemplate("release_blog", releaseBlogTemplate, data)
}

// ReleaseTweet renders the one-line tweet. The trailing space leaves room to
// paste the blog link.
func ReleaseTweet(in ReleaseInput) (string, error) {
	return renderTemplate("release_tweet", releaseTweetTemplate, newReleaseData(in))
}

func newReleaseData(in ReleaseInput) releaseData {
	return releaseData{
		FullVersion: in.Version.String(),
		Suffix:      in.Channel.Suffix(),
		XY:          in.Version.XY(),
		RepoDir:     in.Channel.RepoDir(),
		Wording:     in.Version.Wording(),
		Projects:    domain.NaturalJoin(in.Groups.Names()),
		ReposBase:   in.ReposBaseURL,
		Audience:    in.Channel.Audience(),
	}
}

// plainIssueList builds the email form: each project on its own line with
// its issues tab-indented below it.
func plainIssueList(groups *domain.ProjectGroups) string {
	var b strings.Builder
	for _, project := range groups.Names() {
		b.WriteString("\n" + project + "\n")
		for _, issue := range groups.Issues(project) {
			fmt.Fprintf(&b, "\t%d\t%s\n", issue.ID, issue.Subject)
		}
	}
	return b.String()
}

// markdownIssueList builds the blog form: a heading per project with one
// linked bullet per issue.
func markdownIssueList(groups *domain.ProjectGroups) string {
	var b strings.Builder
	for _, project := range groups.Names() {
		b.WriteString("\n### " + project + "\n")
		for _, issue := range groups.Issues(project) {
			fmt.Fprintf(&b, "- [%d\t%s](%s)\n", issue.ID, issue.Subject, issue.URL)
		}
	}
	return b.String()
}
