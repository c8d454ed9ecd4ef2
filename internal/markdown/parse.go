package markdown

import (
	"regexp"
	"strings"

	"github.com/frherrer/adfsync/internal/domain"
)

var (
	headingRe   = regexp.MustCompile(`^(#{1,6}) (.*)$`)
	bulletRe    = regexp.MustCompile(`^(\s*)[-*+] (.*)$`)
	orderedRe   = regexp.MustCompile(`^(\s*)\d+\. (.*)$`)
	taskRe      = regexp.MustCompile(`^(\s*)- \[([ xX])\] ?(.*)$`)
	summaryRe   = regexp.MustCompile(`^<summary>(.*)</summary>$`)
	extensionRe = regexp.MustCompile(`^<!-- Extension: (.*) -->$`)
	tableSepRe  = regexp.MustCompile(`^\|[\s\-:|]+\|$`)
)

// ToDocument converts Markdown text to a Document. Total over arbitrary
// input: unrecognized syntax degrades to plain paragraphs, an unterminated
// code fence closes at end of input, and nothing is ever rejected. The
// input comes from a human-editable file that must never become
// un-parseable.
func ToDocument(text string) *domain.Document {
	return domain.NewDocument(parseBlocks(strings.Split(text, "\n"))...)
}

func parseBlocks(lines []string) []domain.Block {
	var blocks []domain.Block
	i := 0
	for i < len(lines) {
		line := lines[i]
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			i++
		case isFenceLine(line):
			blocks = append(blocks, parseCodeFence(lines, &i))
		case headingRe.MatchString(trimmed):
			m := headingRe.FindStringSubmatch(trimmed)
			blocks = append(blocks, domain.Heading(len(m[1]), parseInline(m[2])...))
			i++
		case isRuleLine(trimmed):
			blocks = append(blocks, domain.Block{Kind: domain.KindRule})
			i++
		case extensionRe.MatchString(trimmed):
			m := extensionRe.FindStringSubmatch(trimmed)
			blocks = append(blocks, domain.Block{Kind: domain.KindExtension, Label: m[1]})
			i++
		case trimmed == "<details>":
			blocks = append(blocks, parseExpand(lines, &i))
		case strings.HasPrefix(trimmed, ">"):
			blocks = append(blocks, parseBlockquote(lines, &i))
		case isListLine(line):
			info, _ := listLineInfo(line)
			blocks = append(blocks, parseList(lines, &i, info.depth, info.kind))
		case strings.HasPrefix(trimmed, "|"):
			if table, ok := parseTable(lines, &i); ok {
				blocks = append(blocks, table)
			} else {
				blocks = append(blocks, parseParagraph(lines, &i))
			}
		default:
			blocks = append(blocks, parseParagraph(lines, &i))
		}
	}
	return blocks
}

func isFenceLine(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), "```")
}

// isRuleLine reports whether the stripped line is a run of three or more
// identical rule characters with no trailing content. The trailing-content
// check is what keeps a lone "---" from being read as a degenerate bullet
// item inside an active list.
func isRuleLine(t string) bool {
	if len(t) < 3 {
		return false
	}
	c := t[0]
	if c != '-' && c != '*' && c != '_' {
		return false
	}
	for k := 1; k < len(t); k++ {
		if t[k] != c {
			return false
		}
	}
	return true
}

// listLine describes one list marker line. Task markers override the plain
// bullet interpretation.
type listLine struct {
	kind  domain.BlockKind
	depth int
	done  bool
	text  string
}

func listLineInfo(line string) (listLine, bool) {
	if m := taskRe.FindStringSubmatch(line); m != nil {
		return listLine{
			kind:  domain.KindTaskList,
			depth: len(m[1]) / 2,
			done:  m[2] == "x" || m[2] == "X",
			text:  strings.TrimSpace(m[3]),
		}, true
	}
	if m := bulletRe.FindStringSubmatch(line); m != nil {
		return listLine{kind: domain.KindBulletList, depth: len(m[1]) / 2, text: strings.TrimSpace(m[2])}, true
	}
	if m := orderedRe.FindStringSubmatch(line); m != nil {
		return listLine{kind: domain.KindOrderedList, depth: len(m[1]) / 2, text: strings.TrimSpace(m[2])}, true
	}
	return listLine{}, false
}

func isListLine(line string) bool {
	_, ok := listLineInfo(line)
	return ok
}

// parseList consumes marker lines at the given depth into one list block.
// Two leading spaces map to one nesting level; a line deeper than the open
// depth nests under the previous item, a shallower line closes the list, and
// a stray deep line with nothing to nest under is clamped to the current
// depth rather than rejected.
func parseList(lines []string, i *int, base int, kind domain.BlockKind) domain.Block {
	var items []domain.Block
	for *i < len(lines) {
		info, ok := listLineInfo(lines[*i])
		if !ok || info.depth < base {
			break
		}
		if info.depth > base {
			if len(items) == 0 {
				info.depth = base
			} else {
				nested := parseList(lines, i, info.depth, info.kind)
				last := &items[len(items)-1]
				last.Children = append(last.Children, nested)
				continue
			}
		}
		if info.kind != kind {
			break // marker flavor changed at the same depth: a new list starts
		}
		*i++
		item := domain.Block{
			Kind:     itemKindFor(kind),
			Done:     info.done,
			Children: []domain.Block{domain.Paragraph(parseInline(info.text)...)},
		}
		items = append(items, item)
	}
	return domain.Block{Kind: kind, Children: items}
}

func itemKindFor(kind domain.BlockKind) domain.BlockKind {
	if kind == domain.KindTaskList {
		return domain.KindTaskItem
	}
	return domain.KindListItem
}

func parseCodeFence(lines []string, i *int) domain.Block {
	opening := lines[*i]
	prefix := opening[:len(opening)-len(strings.TrimLeft(opening, " \t"))]
	lang := strings.TrimSpace(strings.TrimPrefix(strings.TrimLeft(opening, " \t"), "```"))
	*i++
	var content []string
	for *i < len(lines) {
		if isFenceLine(lines[*i]) {
			*i++
			return codeBlock(lang, content)
		}
		// Captured verbatim, minus the shared indent of the opening fence.
		content = append(content, strings.TrimPrefix(lines[*i], prefix))
		*i++
	}
	// Unterminated fence: closes at end of input, never fatal.
	return codeBlock(lang, content)
}

func codeBlock(lang string, content []string) domain.Block {
	return domain.Block{
		Kind:     domain.KindCodeBlock,
		Language: lang,
		Literal:  strings.Join(content, "\n"),
	}
}

func parseBlockquote(lines []string, i *int) domain.Block {
	var inner []string
	for *i < len(lines) {
		t := strings.TrimSpace(lines[*i])
		if !strings.HasPrefix(t, ">") {
			break
		}
		t = strings.TrimPrefix(t, ">")
		t = strings.TrimPrefix(t, " ")
		inner = append(inner, t)
		*i++
	}
	return domain.Block{Kind: domain.KindBlockquote, Children: parseBlocks(inner)}
}

func parseExpand(lines []string, i *int) domain.Block {
	*i++ // opening <details>
	title := "Details"
	if *i < len(lines) {
		if m := summaryRe.FindStringSubmatch(strings.TrimSpace(lines[*i])); m != nil {
			title = m[1]
			*i++
		}
	}
	var inner []string
	depth := 0
	for *i < len(lines) {
		t := strings.TrimSpace(lines[*i])
		if t == "<details>" {
			depth++
		}
		if t == "</details>" {
			if depth == 0 {
				*i++
				break
			}
			depth--
		}
		inner = append(inner, lines[*i])
		*i++
	}
	// A missing closing tag swallows the rest of the input, mirroring the
	// fence behavior.
	return domain.Block{Kind: domain.KindExpand, Title: title, Children: parseBlocks(inner)}
}

func parseTable(lines []string, i *int) (domain.Block, bool) {
	start := *i
	var rows [][]string
	for *i < len(lines) {
		t := strings.TrimSpace(lines[*i])
		if !strings.HasPrefix(t, "|") {
			break
		}
		*i++
		if tableSepRe.MatchString(t) {
			continue
		}
		parts := strings.Split(t, "|")
		if len(parts) < 3 {
			continue
		}
		cells := parts[1 : len(parts)-1]
		for j := range cells {
			cells[j] = strings.TrimSpace(cells[j])
		}
		rows = append(rows, cells)
	}
	if len(rows) == 0 {
		*i = start // hand the lines back so they degrade to a paragraph
		return domain.Block{}, false
	}
	table := domain.Block{Kind: domain.KindTable}
	for ri, cells := range rows {
		row := domain.Block{Kind: domain.KindTableRow}
		for _, cell := range cells {
			row.Children = append(row.Children, domain.Block{
				Kind:   domain.KindTableCell,
				Header: ri == 0, // first data row becomes the header row
				Inline: parseInline(cell),
			})
		}
		table.Children = append(table.Children, row)
	}
	return table, true
}

func parseParagraph(lines []string, i *int) domain.Block {
	var collected []string
	for *i < len(lines) {
		line := lines[*i]
		if strings.TrimSpace(line) == "" {
			break
		}
		// The first line is always consumed: a stray block-like line that
		// reached the paragraph fallback must not stall the scan.
		if len(collected) > 0 && startsBlock(line) {
			break
		}
		collected = append(collected, line)
		*i++
	}
	var b strings.Builder
	for idx, line := range collected {
		b.WriteString(strings.TrimSpace(line))
		if idx < len(collected)-1 {
			if strings.HasSuffix(line, "  ") {
				b.WriteString("  \n") // hard break carried by trailing spaces
			} else {
				b.WriteString(" ")
			}
		}
	}
	spans := parseInline(b.String())
	if len(collected) == 1 {
		if card, ok := asInlineCard(spans); ok {
			return card
		}
	}
	return domain.Paragraph(spans...)
}

// asInlineCard recognizes a line that is exactly one self-titled link, the
// serialized form of a standalone smart link, and restores the block-level
// card.
func asInlineCard(spans []domain.InlineSpan) (domain.Block, bool) {
	if len(spans) != 1 {
		return domain.Block{}, false
	}
	s := spans[0]
	if s.Kind != domain.SpanText || s.Marks.Link == nil {
		return domain.Block{}, false
	}
	only := domain.MarkSet{Link: s.Marks.Link}
	if s.Marks != only || s.Marks.Link.Title != "" || s.Text != s.Marks.Link.Href {
		return domain.Block{}, false
	}
	return domain.Block{Kind: domain.KindInlineCard, URL: s.Text}, true
}

// startsBlock reports whether the line opens a non-paragraph block and
// should therefore terminate paragraph accumulation.
func startsBlock(line string) bool {
	t := strings.TrimSpace(line)
	switch {
	case isFenceLine(line):
	case headingRe.MatchString(t):
	case isRuleLine(t):
	case strings.HasPrefix(t, ">"):
	case strings.HasPrefix(t, "|"):
	case t == "<details>" || t == "</details>":
	case extensionRe.MatchString(t):
	case isListLine(line):
	default:
		return false
	}
	return true
}
