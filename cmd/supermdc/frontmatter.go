package main

import (
	"bytes"

	"github.com/adrg/frontmatter"
)

// frontMatter is the subset of a document's front matter supermdc cares
// about: just enough to label a report entry, not a full content model.
type frontMatter struct {
	Title string `yaml:"title" toml:"title"`
}

// stripFrontMatter removes a leading YAML or TOML front matter block, if
// any, and returns it alongside the remaining Markdown body. Files with no
// front matter delimiter pass through unchanged.
func stripFrontMatter(source []byte) (frontMatter, []byte, error) {
	var matter frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &matter)
	if err != nil {
		return frontMatter{}, nil, err
	}
	return matter, body, nil
}
