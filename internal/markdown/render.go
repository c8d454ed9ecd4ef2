package markdown

import (
	"fmt"
	"strings"

	"github.com/frherrer/adfsync/internal/domain"
)

// ToMarkdown converts a Document to Markdown. Total over structurally valid
// documents; callers run domain.Validate first, conversion itself has no
// error path. A document with zero blocks serializes to the empty string.
func ToMarkdown(doc *domain.Document) string {
	var parts []string
	for _, b := range doc.Blocks {
		if md := renderBlock(b, 0); md != "" {
			parts = append(parts, md)
		}
	}
	return strings.Join(parts, "\n\n")
}

func renderBlock(b domain.Block, depth int) string {
	switch b.Kind {
	case domain.KindParagraph:
		return serializeInline(b.Inline)
	case domain.KindHeading:
		level := b.Level
		if level < 1 {
			level = 1
		} else if level > 6 {
			level = 6
		}
		return strings.Repeat("#", level) + " " + serializeInline(b.Inline)
	case domain.KindCodeBlock:
		// Code content goes out verbatim, never mark-escaped.
		return "```" + b.Language + "\n" + b.Literal + "\n```"
	case domain.KindBlockquote:
		return renderBlockquote(b, depth)
	case domain.KindRule:
		return "---"
	case domain.KindBulletList:
		return renderList(b, depth, false)
	case domain.KindOrderedList:
		return renderList(b, depth, true)
	case domain.KindTaskList:
		return renderTaskList(b, depth)
	case domain.KindTable:
		return renderTable(b)
	case domain.KindExpand:
		return renderExpand(b)
	case domain.KindInlineCard:
		if b.URL == "" {
			return ""
		}
		// URL-only fallback; resolving the target title needs an API call
		// that does not belong to the conversion core.
		return "[" + b.URL + "](" + b.URL + ")"
	case domain.KindExtension:
		label := b.Label
		if label == "" {
			label = "Unknown extension"
		}
		return "<!-- Extension: " + label + " -->"
	default:
		// Unknown or misplaced structural node: best-effort text extraction.
		return extractText(b)
	}
}

// renderList renders a bullet or ordered list at the given nesting depth.
// The first paragraph of each item shares the marker line; nested lists
// render one level deeper, and any other child block is indented to align
// under the marker.
func renderList(list domain.Block, depth int, ordered bool) string {
	indent := strings.Repeat("  ", depth)
	var lines []string
	n := 0
	for _, item := range list.Children {
		if item.Kind != domain.KindListItem {
			continue
		}
		n++
		marker := "- "
		if ordered {
			marker = fmt.Sprintf("%d. ", n)
		}
		lines = append(lines, renderItemLines(item, indent+marker, depth)...)
	}
	return strings.Join(lines, "\n")
}

func renderTaskList(list domain.Block, depth int) string {
	indent := strings.Repeat("  ", depth)
	var lines []string
	for _, item := range list.Children {
		if item.Kind != domain.KindTaskItem {
			continue
		}
		box := "- [ ] "
		if item.Done {
			box = "- [x] "
		}
		lines = append(lines, renderItemLines(item, indent+box, depth)...)
	}
	return strings.Join(lines, "\n")
}

func renderItemLines(item domain.Block, prefix string, depth int) []string {
	var lines []string
	first := true
	for _, child := range item.Children {
		if first && child.Kind == domain.KindParagraph {
			lines = append(lines, prefix+serializeInline(child.Inline))
			first = false
			continue
		}
		if first {
			lines = append(lines, strings.TrimRight(prefix, " "))
			first = false
		}
		lines = append(lines, renderNested(child, depth+1))
	}
	if first {
		lines = append(lines, strings.TrimRight(prefix, " "))
	}
	return lines
}

// renderNested renders a child block inside a list item. Lists manage their
// own indentation; everything else is indented to sit under the marker.
func renderNested(child domain.Block, depth int) string {
	switch child.Kind {
	case domain.KindBulletList, domain.KindOrderedList, domain.KindTaskList:
		return renderBlock(child, depth)
	default:
		return indentLines(renderBlock(child, depth), strings.Repeat("  ", depth))
	}
}

func indentLines(s, indent string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = indent + l
		}
	}
	return strings.Join(lines, "\n")
}

func renderBlockquote(b domain.Block, depth int) string {
	var parts []string
	for _, child := range b.Children {
		if md := renderBlock(child, depth); md != "" {
			parts = append(parts, md)
		}
	}
	lines := strings.Split(strings.Join(parts, "\n\n"), "\n")
	for i, l := range lines {
		if l == "" {
			lines[i] = ">"
		} else {
			lines[i] = "> " + l
		}
	}
	return strings.Join(lines, "\n")
}

// renderTable emits the first row as the header row followed by a separator
// row. Merged or spanned cells have no representation in the target dialect;
// such structure is flattened and the span is lost.
func renderTable(table domain.Block) string {
	var rows [][]string
	for _, row := range table.Children {
		if row.Kind != domain.KindTableRow {
			continue
		}
		var cells []string
		for _, cell := range row.Children {
			if cell.Kind != domain.KindTableCell {
				continue
			}
			text := serializeInline(cell.Inline)
			// A hard break would split the table line; flatten it.
			text = strings.ReplaceAll(text, "  \n", " ")
			cells = append(cells, text)
		}
		rows = append(rows, cells)
	}
	if len(rows) == 0 {
		return ""
	}
	sep := make([]string, len(rows[0]))
	for i := range sep {
		sep[i] = "---"
	}
	lines := []string{
		"| " + strings.Join(rows[0], " | ") + " |",
		"| " + strings.Join(sep, " | ") + " |",
	}
	for _, row := range rows[1:] {
		lines = append(lines, "| "+strings.Join(row, " | ")+" |")
	}
	return strings.Join(lines, "\n")
}

func renderExpand(b domain.Block) string {
	title := b.Title
	if title == "" {
		title = "Details"
	}
	var parts []string
	for _, child := range b.Children {
		if md := renderBlock(child, 0); md != "" {
			parts = append(parts, md)
		}
	}
	out := "<details>\n<summary>" + title + "</summary>\n"
	if len(parts) > 0 {
		out += "\n" + strings.Join(parts, "\n\n") + "\n"
	}
	return out + "</details>"
}

// extractText gathers the plain text of a block and its descendants.
func extractText(b domain.Block) string {
	var parts []string
	for _, s := range b.Inline {
		if s.Text != "" {
			parts = append(parts, s.Text)
		}
	}
	if b.Literal != "" {
		parts = append(parts, b.Literal)
	}
	for _, child := range b.Children {
		if t := extractText(child); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
