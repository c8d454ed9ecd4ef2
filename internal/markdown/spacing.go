package markdown

import "github.com/frherrer/adfsync/internal/domain"

// AddSeparatorSpacing inserts an empty paragraph before every rule and every
// heading of level 2 or higher, except at the start of the sequence. The
// downstream page viewer renders adjacent blocks with a cramped line height;
// the extra paragraphs compensate and carry no semantic content.
//
// Deliberately not idempotent: applying it twice doubles the spacing. Call
// sites apply it exactly once per Markdown→Document conversion and never on
// the Document→Markdown path.
func AddSeparatorSpacing(blocks []domain.Block) []domain.Block {
	var out []domain.Block
	for i, b := range blocks {
		wantsSpace := b.Kind == domain.KindRule ||
			(b.Kind == domain.KindHeading && b.Level >= 2)
		if wantsSpace && i > 0 {
			out = append(out, domain.Paragraph())
		}
		out = append(out, b)
	}
	return out
}
