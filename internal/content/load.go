package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

//go:embed default.yml
var defaultDocument []byte

// Default loads the content document embedded in the binary.
func Default() (*Site, error) {
	site, err := Load(bytes.NewReader(defaultDocument))
	if err != nil {
		return nil, fmt.Errorf("loading embedded content: %w", err)
	}
	return site, nil
}

// LoadFile reads and validates a content document from disk.
func LoadFile(path string) (*Site, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening content %s: %w", path, err)
	}
	defer f.Close()

	site, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading content %s: %w", path, err)
	}
	return site, nil
}

// Load decodes a content document, rejecting unknown fields, then validates
// it and renders the about narrative. A Site returned without error is
// complete and must not be modified.
func Load(r io.Reader) (*Site, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var site Site
	if err := dec.Decode(&site); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("content document is empty")
		}
		return nil, fmt.Errorf("decoding content: %w", err)
	}

	if err := site.Validate(); err != nil {
		return nil, err
	}

	html, err := RenderMarkdown(site.About)
	if err != nil {
		return nil, fmt.Errorf("rendering about: %w", err)
	}
	site.aboutHTML = html

	return &site, nil
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// RenderMarkdown converts a markdown block to HTML. Raw HTML in the source
// is omitted.
func RenderMarkdown(src string) (string, error) {
	if src == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return buf.String(), nil
}
