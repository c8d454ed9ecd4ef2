package domain

// Document is the root of an ADF document tree. It is constructed fresh per
// conversion call and owns its block tree exclusively.
type Document struct {
	FormatVersion int
	Blocks        []Block
}

// NewDocument creates an empty Document of the current format generation.
func NewDocument(blocks ...Block) *Document {
	return &Document{FormatVersion: 1, Blocks: blocks}
}

// BlockKind identifies the variant of a Block.
type BlockKind string

const (
	KindParagraph   BlockKind = "paragraph"
	KindHeading     BlockKind = "heading"
	KindBulletList  BlockKind = "bulletList"
	KindOrderedList BlockKind = "orderedList"
	KindListItem    BlockKind = "listItem"
	KindCodeBlock   BlockKind = "codeBlock"
	KindBlockquote  BlockKind = "blockquote"
	KindRule        BlockKind = "rule"
	KindTable       BlockKind = "table"
	KindTableRow    BlockKind = "tableRow"
	KindTableCell   BlockKind = "tableCell"
	KindTaskList    BlockKind = "taskList"
	KindTaskItem    BlockKind = "taskItem"
	KindExpand      BlockKind = "expand"
	KindInlineCard  BlockKind = "inlineCard"
	KindExtension   BlockKind = "extension"
)

// Block is a single structural content unit. Exactly one variant applies,
// selected by Kind; the attribute fields are only meaningful for the variants
// that declare them.
type Block struct {
	Kind BlockKind

	Level    int    // heading: 1..6
	Language string // codeBlock: optional fence language
	Header   bool   // tableCell: header cell
	Done     bool   // taskItem: checkbox state
	Title    string // expand: summary text
	URL      string // inlineCard: target URL
	Label    string // extension: human-readable placeholder label

	Literal  string       // codeBlock: raw content, never mark-escaped
	Inline   []InlineSpan // paragraph, heading, tableCell
	Children []Block      // container variants
}

// SpanKind identifies the variant of an InlineSpan.
type SpanKind string

const (
	SpanText      SpanKind = "text"
	SpanHardBreak SpanKind = "hardBreak"
	SpanEmoji     SpanKind = "emoji"
	SpanMention   SpanKind = "mention"
)

// InlineSpan is a run of text or an atomic inline element. Text spans carry a
// mark set; Emoji and Mention carry only their display text (identifiers are
// lost at the conversion boundary).
type InlineSpan struct {
	Kind  SpanKind
	Text  string
	Marks MarkSet
}

// MarkSet is the set of style marks applied to a text run. Multiple marks may
// apply simultaneously; serialization order is fixed (link outermost, then
// strong, em, code, strike, underline) so round-trips are stable.
type MarkSet struct {
	Strong    bool
	Em        bool
	Code      bool
	Strike    bool
	Underline bool
	Link      *LinkMark
}

// LinkMark holds the attributes of a link mark.
type LinkMark struct {
	Href  string
	Title string
}

// IsZero reports whether no mark is set.
func (m MarkSet) IsZero() bool {
	return !m.Strong && !m.Em && !m.Code && !m.Strike && !m.Underline && m.Link == nil
}

// Text creates a plain text span.
func Text(content string) InlineSpan {
	return InlineSpan{Kind: SpanText, Text: content}
}

// MarkedText creates a text span with the given mark set.
func MarkedText(content string, marks MarkSet) InlineSpan {
	return InlineSpan{Kind: SpanText, Text: content, Marks: marks}
}

// Paragraph creates a paragraph block over the given spans.
func Paragraph(spans ...InlineSpan) Block {
	return Block{Kind: KindParagraph, Inline: spans}
}

// TextParagraph creates a paragraph holding a single plain text span.
func TextParagraph(content string) Block {
	return Paragraph(Text(content))
}

// Heading creates a heading block.
func Heading(level int, spans ...InlineSpan) Block {
	return Block{Kind: KindHeading, Level: level, Inline: spans}
}
