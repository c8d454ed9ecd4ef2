package markdown

import (
	"regexp"
	"strings"

	"github.com/frherrer/adfsync/internal/domain"
)

// inlinePatterns are the delimiter patterns tried at every scan position.
// The scan picks the earliest-starting match across all patterns, not the
// first pattern that matches; list order only breaks ties at the same offset
// (strong before em, so "**x**" is bold rather than a stray pair of
// asterisks).
var inlinePatterns = []struct {
	re   *regexp.Regexp
	kind string
}{
	{regexp.MustCompile(`\[([^\[\]]+)\]\(([^)\s]+)(?:\s+"([^"]*)")?\)`), "link"},
	// The triple-asterisk form must be tried before strong: the lazy strong
	// pattern would otherwise stop one asterisk short on "***x***".
	{regexp.MustCompile(`\*\*\*(.+?)\*\*\*`), "strongEm"},
	{regexp.MustCompile(`\*\*(.+?)\*\*`), "strong"},
	{regexp.MustCompile(`\*(.+?)\*`), "em"},
	{regexp.MustCompile("`([^`]+)`"), "code"},
	{regexp.MustCompile(`~~(.+?)~~`), "strike"},
	{regexp.MustCompile(`<u>(.+?)</u>`), "underline"},
	{regexp.MustCompile(` {2,}\n`), "hardBreak"},
}

// serializeInline converts spans to Markdown inline syntax. Total over all
// valid input: hard breaks become two trailing spaces plus a newline, emoji
// and mentions emit their display text verbatim (identifiers are not
// recoverable), and unmarked text is escaped so metacharacters survive the
// next parse as literal text.
func serializeInline(spans []domain.InlineSpan) string {
	var b strings.Builder
	for _, s := range spans {
		switch s.Kind {
		case domain.SpanHardBreak:
			b.WriteString("  \n")
		case domain.SpanEmoji, domain.SpanMention:
			b.WriteString(s.Text)
		case domain.SpanText:
			b.WriteString(wrapMarks(s.Text, s.Marks))
		}
	}
	return b.String()
}

// wrapMarks applies mark delimiters in fixed priority order: link wraps
// outermost, then strong, em, code, strike, underline.
func wrapMarks(text string, m domain.MarkSet) string {
	if m.IsZero() {
		return escapeText(text)
	}
	if m.Underline {
		text = "<u>" + text + "</u>"
	}
	if m.Strike {
		text = "~~" + text + "~~"
	}
	if m.Code {
		text = "`" + text + "`"
	}
	if m.Em {
		text = "*" + text + "*"
	}
	if m.Strong {
		text = "**" + text + "**"
	}
	if m.Link != nil {
		if m.Link.Title != "" {
			text = "[" + text + "](" + m.Link.Href + " \"" + m.Link.Title + "\")"
		} else {
			text = "[" + text + "](" + m.Link.Href + ")"
		}
	}
	return text
}

// escaper covers every character that could open a delimiter on reparse.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`_`, `\_`,
	"`", "\\`",
	`[`, `\[`,
	`]`, `\]`,
	`~`, `\~`,
	`<`, `\<`,
)

func escapeText(s string) string {
	return escaper.Replace(s)
}

func unescape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && isEscapable(s[i+1]) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isEscapable(c byte) bool {
	switch c {
	case '\\', '*', '_', '`', '[', ']', '~', '<':
		return true
	}
	return false
}

// parseInline tokenizes Markdown inline syntax into spans. Single
// left-to-right scan; at each position the earliest-starting match across
// all delimiter patterns wins. Unmatched trailing text becomes a final plain
// span. Total over arbitrary text.
func parseInline(text string) []domain.InlineSpan {
	if text == "" {
		return nil
	}
	var spans []domain.InlineSpan
	pos := 0
	for pos < len(text) {
		kind, loc := earliestMatch(text, pos)
		if loc == nil {
			spans = append(spans, domain.Text(unescape(text[pos:])))
			break
		}
		if loc[0] > pos {
			spans = append(spans, domain.Text(unescape(text[pos:loc[0]])))
		}
		spans = append(spans, matchedSpans(kind, text, loc)...)
		pos = loc[1]
	}
	return spans
}

// earliestMatch returns the kind and submatch indexes of the
// earliest-starting unescaped delimiter match at or after pos.
func earliestMatch(text string, pos int) (string, []int) {
	var bestKind string
	var best []int
	for _, p := range inlinePatterns {
		loc := findUnescaped(text, pos, p.re)
		if loc == nil {
			continue
		}
		if best == nil || loc[0] < best[0] {
			best, bestKind = loc, p.kind
		}
	}
	return bestKind, best
}

// findUnescaped searches for re from pos, skipping matches whose opening
// character is backslash-escaped.
func findUnescaped(text string, pos int, re *regexp.Regexp) []int {
	for pos <= len(text) {
		loc := re.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			return nil
		}
		abs := make([]int, len(loc))
		for i, v := range loc {
			if v < 0 {
				abs[i] = -1
			} else {
				abs[i] = pos + v
			}
		}
		if !escapedAt(text, abs[0]) {
			return abs
		}
		pos = abs[0] + 1
	}
	return nil
}

func escapedAt(text string, pos int) bool {
	n := 0
	for i := pos - 1; i >= 0 && text[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

func matchedSpans(kind, text string, loc []int) []domain.InlineSpan {
	switch kind {
	case "hardBreak":
		return []domain.InlineSpan{{Kind: domain.SpanHardBreak}}
	case "code":
		// Code content is literal; no interior re-parse, no unescaping.
		return []domain.InlineSpan{domain.MarkedText(text[loc[2]:loc[3]], domain.MarkSet{Code: true})}
	case "link":
		link := &domain.LinkMark{Href: text[loc[4]:loc[5]]}
		if loc[6] >= 0 {
			link.Title = text[loc[6]:loc[7]]
		}
		return applyMark(text[loc[2]:loc[3]], func(m *domain.MarkSet) { m.Link = link })
	case "strongEm":
		return applyMark(text[loc[2]:loc[3]], func(m *domain.MarkSet) { m.Strong = true; m.Em = true })
	case "strong":
		return applyMark(text[loc[2]:loc[3]], func(m *domain.MarkSet) { m.Strong = true })
	case "em":
		return applyMark(text[loc[2]:loc[3]], func(m *domain.MarkSet) { m.Em = true })
	case "strike":
		return applyMark(text[loc[2]:loc[3]], func(m *domain.MarkSet) { m.Strike = true })
	case "underline":
		return applyMark(text[loc[2]:loc[3]], func(m *domain.MarkSet) { m.Underline = true })
	}
	return nil
}

// applyMark re-parses the interior of a matched delimiter so nested marks
// combine, then merges the outer mark into every resulting text span.
func applyMark(interior string, set func(*domain.MarkSet)) []domain.InlineSpan {
	inner := parseInline(interior)
	if len(inner) == 0 {
		s := domain.Text("")
		set(&s.Marks)
		return []domain.InlineSpan{s}
	}
	for i := range inner {
		if inner[i].Kind == domain.SpanText {
			set(&inner[i].Marks)
		}
	}
	return inner
}
