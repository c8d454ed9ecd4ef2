// Package adf maps the Atlassian Document Format wire JSON onto the domain
// document tree and back. The mapping is structural: every supported wire
// node corresponds 1:1 to a block or inline variant, unknown nodes degrade
// to best-effort text extraction, and unknown marks are dropped.
package adf

import (
	"encoding/json"
	"strings"

	"github.com/frherrer/adfsync/internal/domain"
)

type wireDoc struct {
	Version int        `json:"version"`
	Type    string     `json:"type"`
	Content []wireNode `json:"content"`
}

type wireNode struct {
	Type    string         `json:"type"`
	Attrs   map[string]any `json:"attrs,omitempty"`
	Content []wireNode     `json:"content,omitempty"`
	Marks   []wireMark     `json:"marks,omitempty"`
	Text    string         `json:"text,omitempty"`
}

type wireMark struct {
	Type  string         `json:"type"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// Decode parses ADF wire JSON into a Document.
func Decode(data []byte) (*domain.Document, error) {
	var doc wireDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, domain.NewSyncError("decode", "", "malformed ADF JSON", err)
	}
	if doc.Type != "doc" {
		return nil, &domain.ModelError{
			Kind:   domain.InvalidRoot,
			Detail: "root type must be \"doc\", got \"" + doc.Type + "\"",
		}
	}
	out := &domain.Document{FormatVersion: doc.Version}
	for _, n := range doc.Content {
		if b, ok := decodeBlock(n); ok {
			out.Blocks = append(out.Blocks, b)
		}
	}
	return out, nil
}

func decodeBlock(n wireNode) (domain.Block, bool) {
	switch n.Type {
	case "paragraph":
		return domain.Block{Kind: domain.KindParagraph, Inline: decodeInline(n.Content)}, true
	case "heading":
		level := attrInt(n.Attrs, "level", 1)
		return domain.Block{Kind: domain.KindHeading, Level: level, Inline: decodeInline(n.Content)}, true
	case "bulletList":
		return domain.Block{Kind: domain.KindBulletList, Children: decodeChildren(n.Content)}, true
	case "orderedList":
		return domain.Block{Kind: domain.KindOrderedList, Children: decodeChildren(n.Content)}, true
	case "listItem":
		return domain.Block{Kind: domain.KindListItem, Children: decodeChildren(n.Content)}, true
	case "codeBlock":
		return domain.Block{
			Kind:     domain.KindCodeBlock,
			Language: attrString(n.Attrs, "language", ""),
			Literal:  wireText(n.Content),
		}, true
	case "blockquote":
		return domain.Block{Kind: domain.KindBlockquote, Children: decodeChildren(n.Content)}, true
	case "rule":
		return domain.Block{Kind: domain.KindRule}, true
	case "table":
		return domain.Block{Kind: domain.KindTable, Children: decodeChildren(n.Content)}, true
	case "tableRow":
		return domain.Block{Kind: domain.KindTableRow, Children: decodeChildren(n.Content)}, true
	case "tableHeader", "tableCell":
		return decodeTableCell(n), true
	case "taskList":
		return domain.Block{Kind: domain.KindTaskList, Children: decodeChildren(n.Content)}, true
	case "taskItem":
		return decodeTaskItem(n), true
	case "expand", "nestedExpand":
		return domain.Block{
			Kind:     domain.KindExpand,
			Title:    attrString(n.Attrs, "title", ""),
			Children: decodeChildren(n.Content),
		}, true
	case "inlineCard":
		return domain.Block{Kind: domain.KindInlineCard, URL: attrString(n.Attrs, "url", "")}, true
	case "extension", "bodiedExtension", "inlineExtension":
		return domain.Block{Kind: domain.KindExtension, Label: extensionLabel(n.Attrs)}, true
	case "mediaSingle", "media":
		// Unresolved media reference: keep a visible placeholder rather than
		// dropping the node silently.
		label := "Media"
		if id := attrString(n.Attrs, "id", ""); id != "" {
			label = "Media: " + id
		} else if len(n.Content) > 0 {
			if inner, ok := decodeBlock(n.Content[0]); ok && inner.Kind == domain.KindExtension {
				label = inner.Label
			}
		}
		return domain.Block{Kind: domain.KindExtension, Label: label}, true
	default:
		// Unknown node type: extract whatever text it carries.
		if text := wireText(n.Content); text != "" {
			return domain.TextParagraph(text), true
		}
		return domain.Block{}, false
	}
}

func decodeChildren(content []wireNode) []domain.Block {
	var out []domain.Block
	for _, n := range content {
		if b, ok := decodeBlock(n); ok {
			out = append(out, b)
		}
	}
	return out
}

// decodeTableCell flattens the cell's paragraphs into one inline run, with a
// hard break standing in for each paragraph boundary. Cell-level block
// structure does not survive the trip to the table dialect.
func decodeTableCell(n wireNode) domain.Block {
	cell := domain.Block{Kind: domain.KindTableCell, Header: n.Type == "tableHeader"}
	for _, child := range n.Content {
		spans := decodeInline(child.Content)
		if len(spans) == 0 {
			continue
		}
		if len(cell.Inline) > 0 {
			cell.Inline = append(cell.Inline, domain.InlineSpan{Kind: domain.SpanHardBreak})
		}
		cell.Inline = append(cell.Inline, spans...)
	}
	return cell
}

// decodeTaskItem wraps the item's leading inline run in a paragraph so task
// items share the list item shape; a nested taskList stays a block child.
func decodeTaskItem(n wireNode) domain.Block {
	item := domain.Block{Kind: domain.KindTaskItem, Done: attrString(n.Attrs, "state", "TODO") == "DONE"}
	var spans []domain.InlineSpan
	for _, child := range n.Content {
		if isInlineType(child.Type) {
			spans = append(spans, decodeInline([]wireNode{child})...)
			continue
		}
		if len(spans) > 0 {
			item.Children = append(item.Children, domain.Paragraph(spans...))
			spans = nil
		}
		if b, ok := decodeBlock(child); ok {
			item.Children = append(item.Children, b)
		}
	}
	if len(spans) > 0 {
		item.Children = append(item.Children, domain.Paragraph(spans...))
	}
	return item
}

func isInlineType(t string) bool {
	switch t {
	case "text", "hardBreak", "emoji", "mention":
		return true
	}
	return false
}

func decodeInline(content []wireNode) []domain.InlineSpan {
	var spans []domain.InlineSpan
	for _, n := range content {
		switch n.Type {
		case "text":
			spans = append(spans, domain.MarkedText(n.Text, decodeMarks(n.Marks)))
		case "hardBreak":
			spans = append(spans, domain.InlineSpan{Kind: domain.SpanHardBreak})
		case "emoji":
			spans = append(spans, domain.InlineSpan{
				Kind: domain.SpanEmoji,
				Text: attrString(n.Attrs, "text", attrString(n.Attrs, "shortName", "")),
			})
		case "mention":
			spans = append(spans, domain.InlineSpan{
				Kind: domain.SpanMention,
				Text: attrString(n.Attrs, "text", "@user"),
			})
		case "inlineCard":
			// An inline smart link becomes a self-titled link span.
			if url := attrString(n.Attrs, "url", ""); url != "" {
				spans = append(spans, domain.MarkedText(url, domain.MarkSet{Link: &domain.LinkMark{Href: url}}))
			}
		default:
			if n.Text != "" {
				spans = append(spans, domain.Text(n.Text))
			}
		}
	}
	return spans
}

func decodeMarks(marks []wireMark) domain.MarkSet {
	var set domain.MarkSet
	for _, m := range marks {
		switch m.Type {
		case "strong":
			set.Strong = true
		case "em":
			set.Em = true
		case "code":
			set.Code = true
		case "strike":
			set.Strike = true
		case "underline":
			set.Underline = true
		case "link":
			set.Link = &domain.LinkMark{
				Href:  attrString(m.Attrs, "href", ""),
				Title: attrString(m.Attrs, "title", ""),
			}
		}
		// Unknown marks are dropped; the text itself survives.
	}
	return set
}

// Encode serializes a Document to ADF wire JSON with the version envelope.
func Encode(doc *domain.Document) ([]byte, error) {
	version := doc.FormatVersion
	if version == 0 {
		version = 1
	}
	wire := wireDoc{Version: version, Type: "doc", Content: []wireNode{}}
	for _, b := range doc.Blocks {
		wire.Content = append(wire.Content, encodeBlock(b))
	}
	return json.Marshal(wire)
}

func encodeBlock(b domain.Block) wireNode {
	switch b.Kind {
	case domain.KindParagraph:
		return wireNode{Type: "paragraph", Content: encodeInline(b.Inline)}
	case domain.KindHeading:
		return wireNode{Type: "heading", Attrs: map[string]any{"level": b.Level}, Content: encodeInline(b.Inline)}
	case domain.KindBulletList:
		return wireNode{Type: "bulletList", Content: encodeChildren(b.Children)}
	case domain.KindOrderedList:
		return wireNode{Type: "orderedList", Content: encodeChildren(b.Children)}
	case domain.KindListItem:
		return wireNode{Type: "listItem", Content: encodeChildren(b.Children)}
	case domain.KindCodeBlock:
		n := wireNode{Type: "codeBlock"}
		if b.Language != "" {
			n.Attrs = map[string]any{"language": b.Language}
		}
		if b.Literal != "" {
			n.Content = []wireNode{{Type: "text", Text: b.Literal}}
		}
		return n
	case domain.KindBlockquote:
		return wireNode{Type: "blockquote", Content: encodeChildren(b.Children)}
	case domain.KindRule:
		return wireNode{Type: "rule"}
	case domain.KindTable:
		return wireNode{Type: "table", Content: encodeChildren(b.Children)}
	case domain.KindTableRow:
		return wireNode{Type: "tableRow", Content: encodeChildren(b.Children)}
	case domain.KindTableCell:
		cellType := "tableCell"
		if b.Header {
			cellType = "tableHeader"
		}
		return wireNode{Type: cellType, Content: []wireNode{
			{Type: "paragraph", Content: encodeInline(b.Inline)},
		}}
	case domain.KindTaskList:
		return wireNode{Type: "taskList", Content: encodeChildren(b.Children)}
	case domain.KindTaskItem:
		state := "TODO"
		if b.Done {
			state = "DONE"
		}
		n := wireNode{Type: "taskItem", Attrs: map[string]any{"state": state}}
		for _, child := range b.Children {
			if child.Kind == domain.KindParagraph {
				// Task item text sits inline on the wire, not in a paragraph.
				n.Content = append(n.Content, encodeInline(child.Inline)...)
				continue
			}
			n.Content = append(n.Content, encodeBlock(child))
		}
		return n
	case domain.KindExpand:
		return wireNode{Type: "expand", Attrs: map[string]any{"title": b.Title}, Content: encodeChildren(b.Children)}
	case domain.KindInlineCard:
		return wireNode{Type: "inlineCard", Attrs: map[string]any{"url": b.URL}}
	case domain.KindExtension:
		return wireNode{Type: "extension", Attrs: map[string]any{"text": b.Label}}
	default:
		return wireNode{Type: "paragraph", Content: encodeInline(b.Inline)}
	}
}

func encodeChildren(blocks []domain.Block) []wireNode {
	var out []wireNode
	for _, b := range blocks {
		out = append(out, encodeBlock(b))
	}
	return out
}

func encodeInline(spans []domain.InlineSpan) []wireNode {
	var out []wireNode
	for _, s := range spans {
		switch s.Kind {
		case domain.SpanText:
			out = append(out, wireNode{Type: "text", Text: s.Text, Marks: encodeMarks(s.Marks)})
		case domain.SpanHardBreak:
			out = append(out, wireNode{Type: "hardBreak"})
		case domain.SpanEmoji:
			out = append(out, wireNode{Type: "emoji", Attrs: map[string]any{"text": s.Text}})
		case domain.SpanMention:
			out = append(out, wireNode{Type: "mention", Attrs: map[string]any{"text": s.Text}})
		}
	}
	return out
}

// encodeMarks emits marks in the serializer's priority order so repeated
// encodings of the same document are byte-identical.
func encodeMarks(m domain.MarkSet) []wireMark {
	var out []wireMark
	if m.Link != nil {
		attrs := map[string]any{"href": m.Link.Href}
		if m.Link.Title != "" {
			attrs["title"] = m.Link.Title
		}
		out = append(out, wireMark{Type: "link", Attrs: attrs})
	}
	if m.Strong {
		out = append(out, wireMark{Type: "strong"})
	}
	if m.Em {
		out = append(out, wireMark{Type: "em"})
	}
	if m.Code {
		out = append(out, wireMark{Type: "code"})
	}
	if m.Strike {
		out = append(out, wireMark{Type: "strike"})
	}
	if m.Underline {
		out = append(out, wireMark{Type: "underline"})
	}
	return out
}

func wireText(content []wireNode) string {
	var b strings.Builder
	for _, n := range content {
		if n.Type == "text" {
			b.WriteString(n.Text)
		} else if len(n.Content) > 0 {
			b.WriteString(wireText(n.Content))
		}
	}
	return b.String()
}

func attrString(attrs map[string]any, key, fallback string) string {
	if v, ok := attrs[key]; ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return fallback
}

func attrInt(attrs map[string]any, key string, fallback int) int {
	if v, ok := attrs[key]; ok {
		if f, ok := v.(float64); ok {
			return int(f)
		}
	}
	return fallback
}

func extensionLabel(attrs map[string]any) string {
	if params, ok := attrs["parameters"].(map[string]any); ok {
		if title, ok := params["extensionTitle"].(string); ok && title != "" {
			return title
		}
	}
	return attrString(attrs, "text", "Unknown extension")
}
