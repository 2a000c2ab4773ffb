// Package render fills the fixed announcement templates with typed field
// sets. Each renderer is a pure function of its inputs; nothing here touches
// the file system or the network.
package render

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/bmbouter/pulp-demos/internal/domain"
)

const demoBlogTemplate = `{{.FrontMatter}}The Community Demo is available on the [Pulp YouTube Channel]({{.Channel}}). See the agenda below.

<iframe width="560" height="315" src="https://www.youtube.com/embed/{{.Slug}}" frameborder="0" allowfullscreen></iframe>

{{range .Lines}}{{.}}

{{end}}`

const demoEmailTemplate = `The Pulp Community Demo video is available on the Pulp YouTube Channel [0] and on the Pulp blog [1].


Sections from the demo:

{{range .Lines}}{{.}}

{{end}}
You can find the presenter IRC nicknames in the links above along with the version numbers they are being released in. You can ask questions via the mailing list or come chat on IRC.

[0]: {{.Channel}}
[1]:
`

// demoBlogData feeds demoBlogTemplate.
type demoBlogData struct {
	FrontMatter string
	Channel     string
	Slug        string
	Lines       []string
}

// demoEmailData feeds demoEmailTemplate.
type demoEmailData struct {
	Channel string
	Lines   []string
}

// DemoInput carries everything the demo renderers need.
type DemoInput struct {
	Slug    string        // YouTube video slug
	Date    string        // Human-readable demo date
	Author  string        // Blog post author
	Channel string        // YouTube channel URL
	Demos   []domain.Demo // Segments in file order
}

// YouTubeDescription renders the video description: one timestamped line per
// segment so youtube turns the offsets into chapter links.
func YouTubeDescription(in DemoInput) string {
	var b strings.Builder
	for _, d := range in.Demos {
		fmt.Fprintf(&b, "%d:%02d %s (%s)%s\n\n", d.Min, d.Sec, d.Title, d.Nick, d.VersionSuffix())
	}
	return b.String()
}

// DemoBlogPost renders the blog post with YAML front matter and one Markdown
// link per segment.
func DemoBlogPost(in DemoInput) (string, error) {
	fm, err := frontMatter(frontMatterData{
		Title:  "Community Demo " + in.Date,
		Author: in.Author,
		Tags:   []string{"demo"},
	})
	if err != nil {
		return "", err
	}
	lines := make([]string, 0, len(in.Demos))
	for _, d := range in.Demos {
		lines = append(lines, fmt.Sprintf("[%s (%s)%s](%s)",
			d.Title, d.Nick, d.VersionSuffix(), watchLink(in.Slug, d)))
	}
	return renderTemplate("demo_blog", demoBlogTemplate, demoBlogData{
		FrontMatter: fm,
		Channel:     in.Channel,
		Slug:        in.Slug,
		Lines:       lines,
	})
}

// DemoEmail renders the mailing-list email with one bulleted link per segment.
func DemoEmail(in DemoInput) (string, error) {
	lines := make([]string, 0, len(in.Demos))
	for _, d := range in.Demos {
		lines = append(lines, fmt.Sprintf("* %s (%s)%s - %s",
			d.Title, d.Nick, d.VersionSuffix(), watchLink(in.Slug, d)))
	}
	return renderTemplate("demo_email", demoEmailTemplate, demoEmailData{
		Channel: in.Channel,
		Lines:   lines,
	})
}

// watchLink builds the timestamped watch URL for a segment.
func watchLink(slug string, d domain.Demo) string {
	return fmt.Sprintf("http://www.youtube.com/watch?v=%s&t=%s", slug, d.Timestamp())
}

func renderTemplate(name, tmplStr string, data any) (string, error) {
	tmpl, err := template.New(name).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("parse %s template: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s template: %w", name, err)
	}
	return buf.String(), nil
}
