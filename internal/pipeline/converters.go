package pipeline

import (
	"path/filepath"
	"strings"

	"github.com/frherrer/adfsync/internal/adf"
	"github.com/frherrer/adfsync/internal/config"
	"github.com/frherrer/adfsync/internal/domain"
	"github.com/frherrer/adfsync/internal/markdown"
	"github.com/frherrer/adfsync/internal/sidecar"
)

// ExportConverter turns an exported ADF document file into editable
// Markdown with a frontmatter sidecar.
type ExportConverter struct {
	cfg *config.Config
}

// NewExportConverter creates a new ExportConverter.
func NewExportConverter(cfg *config.Config) *ExportConverter {
	return &ExportConverter{cfg: cfg}
}

// SupportedExtensions returns the document file extensions this converter handles.
func (c *ExportConverter) SupportedExtensions() []string {
	return []string{c.cfg.Output.DocumentExtension, ".json"}
}

// Convert decodes, validates and serializes one document file.
func (c *ExportConverter) Convert(path string, content []byte) (*Result, error) {
	doc, err := adf.Decode(content)
	if err != nil {
		return nil, domain.NewSyncError("decode", path, "failed to decode document", err)
	}
	if err := domain.Validate(doc); err != nil {
		return nil, domain.NewSyncError("convert", path, "document failed validation", err)
	}

	body := markdown.ToMarkdown(doc)
	meta := sidecar.Meta{
		Title:   firstHeadingText(doc),
		Version: doc.FormatVersion,
	}
	wrapped, err := sidecar.Wrap(meta, body)
	if err != nil {
		return nil, domain.NewSyncError("convert", path, "failed to wrap frontmatter", err)
	}

	return &Result{
		OutputName: swapExtension(path, c.SupportedExtensions(), c.cfg.Output.MarkdownExtension),
		Content:    []byte(wrapped + "\n"),
	}, nil
}

// PublishConverter turns an edited Markdown file back into an ADF document
// file ready for upload.
type PublishConverter struct {
	cfg *config.Config
}

// NewPublishConverter creates a new PublishConverter.
func NewPublishConverter(cfg *config.Config) *PublishConverter {
	return &PublishConverter{cfg: cfg}
}

// SupportedExtensions returns the Markdown file extensions this converter handles.
func (c *PublishConverter) SupportedExtensions() []string {
	return []string{c.cfg.Output.MarkdownExtension, ".markdown"}
}

// Convert parses one Markdown file into an ADF document. The separator
// spacing pass runs exactly once, here, and only on this direction.
func (c *PublishConverter) Convert(path string, content []byte) (*Result, error) {
	_, body, err := sidecar.Strip(content)
	if err != nil {
		return nil, domain.NewSyncError("convert", path, "failed to strip frontmatter", err)
	}

	doc := markdown.ToDocument(body)
	if c.cfg.Conversion.SeparatorSpacing == nil || *c.cfg.Conversion.SeparatorSpacing {
		doc.Blocks = markdown.AddSeparatorSpacing(doc.Blocks)
	}
	if lang := c.cfg.Conversion.DefaultLanguage; lang != "" {
		applyDefaultLanguage(doc.Blocks, lang)
	}

	encoded, err := adf.Encode(doc)
	if err != nil {
		return nil, domain.NewSyncError("convert", path, "failed to encode document", err)
	}

	return &Result{
		OutputName: swapExtension(path, c.SupportedExtensions(), c.cfg.Output.DocumentExtension),
		Content:    encoded,
	}, nil
}

func applyDefaultLanguage(blocks []domain.Block, lang string) {
	for i := range blocks {
		if blocks[i].Kind == domain.KindCodeBlock && blocks[i].Language == "" {
			blocks[i].Language = lang
		}
		applyDefaultLanguage(blocks[i].Children, lang)
	}
}

func firstHeadingText(doc *domain.Document) string {
	for _, b := range doc.Blocks {
		if b.Kind == domain.KindHeading {
			var parts []string
			for _, s := range b.Inline {
				if s.Text != "" {
					parts = append(parts, s.Text)
				}
			}
			return strings.Join(parts, "")
		}
	}
	return ""
}

// swapExtension replaces the first matching source extension with the
// target one, keeping only the basename.
func swapExtension(path string, sourceExts []string, target string) string {
	base := filepath.Base(path)
	for _, ext := range sourceExts {
		if strings.HasSuffix(base, ext) {
			return strings.TrimSuffix(base, ext) + target
		}
	}
	return base + target
}
