// Package sidecar frames converted Markdown with a YAML frontmatter header
// carrying the page metadata (title, identifier, revision, status) that the
// conversion core itself does not own.
package sidecar

import (
	"bytes"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/frherrer/adfsync/internal/domain"
)

// Meta is the file-metadata sidecar wrapped around converted Markdown.
type Meta struct {
	Title   string `yaml:"title,omitempty"`
	ID      string `yaml:"id,omitempty"`
	Version int    `yaml:"version,omitempty"`
	Status  string `yaml:"status,omitempty"`
}

// IsZero reports whether no metadata field is set.
func (m Meta) IsZero() bool {
	return m == Meta{}
}

// Wrap prepends a frontmatter header to the Markdown body. Pure string
// concatenation; an empty Meta returns the body unchanged.
func Wrap(meta Meta, body string) (string, error) {
	if meta.IsZero() {
		return body, nil
	}
	header, err := yaml.Marshal(meta)
	if err != nil {
		return "", domain.NewSyncError("convert", "", "failed to marshal frontmatter", err)
	}
	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(body)
	return b.String(), nil
}

// Strip splits a Markdown file into its metadata header and body. A file
// without frontmatter returns a zero Meta and the content unchanged.
func Strip(content []byte) (Meta, string, error) {
	var meta Meta
	body, err := frontmatter.Parse(bytes.NewReader(content), &meta)
	if err != nil {
		return Meta{}, "", domain.NewSyncError("convert", "", "failed to parse frontmatter", err)
	}
	return meta, strings.TrimLeft(string(body), "\n"), nil
}
