package render

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// frontMatterData is the YAML front matter of a generated blog post.
type frontMatterData struct {
	Title  string   `yaml:"title"`
	Author string   `yaml:"author"`
	Tags   []string `yaml:"tags"`
}

// frontMatter marshals the data into a "---" delimited YAML block, including
// the trailing newline after the closing delimiter.
func frontMatter(data frontMatterData) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return "", fmt.Errorf("encode front matter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode front matter: %w", err)
	}
	buf.WriteString("---\n")
	return buf.String(), nil
}
