package markdown_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frherrer/adfsync/internal/domain"
	"github.com/frherrer/adfsync/internal/markdown"
)

var _ = Describe("Round trips", func() {
	It("should reproduce a document across serialize and parse", func() {
		doc := domain.NewDocument(
			domain.Heading(1, domain.Text("Release notes")),
			domain.Paragraph(
				domain.Text("plain "),
				domain.MarkedText("bold", domain.MarkSet{Strong: true}),
				domain.Text(" and "),
				domain.MarkedText("code", domain.MarkSet{Code: true}),
			),
			bulletList(
				listItem("a", bulletList(
					listItem("b", bulletList(
						listItem("c"),
					)),
				)),
			),
			domain.Block{Kind: domain.KindCodeBlock, Language: "go", Literal: "x := 1"},
			domain.Block{Kind: domain.KindRule},
			domain.Block{
				Kind: domain.KindTaskList,
				Children: []domain.Block{
					taskItem("shipped", true),
					taskItem("pending", false),
				},
			},
			table(
				tableRow(true, "Name", "Value"),
				tableRow(false, "a", "1"),
			),
			domain.Block{
				Kind:     domain.KindBlockquote,
				Children: []domain.Block{domain.TextParagraph("wise words")},
			},
			domain.Block{
				Kind:     domain.KindExpand,
				Title:    "More",
				Children: []domain.Block{domain.TextParagraph("hidden")},
			},
			domain.Block{Kind: domain.KindInlineCard, URL: "https://x.test/page"},
			domain.Block{Kind: domain.KindExtension, Label: "Chart"},
		)
		Expect(markdown.ToDocument(markdown.ToMarkdown(doc))).To(Equal(doc))
	})

	It("should keep a hard break across the cycle", func() {
		doc := domain.NewDocument(domain.Paragraph(
			domain.Text("first"),
			domain.InlineSpan{Kind: domain.SpanHardBreak},
			domain.Text("second"),
		))
		Expect(markdown.ToDocument(markdown.ToMarkdown(doc))).To(Equal(doc))
	})

	It("should keep literal metacharacters across the cycle", func() {
		doc := domain.NewDocument(domain.TextParagraph("literal *stars*, [brackets] and `ticks`"))
		Expect(markdown.ToDocument(markdown.ToMarkdown(doc))).To(Equal(doc))
	})

	It("should serialize stably after one parse", func() {
		md := "# Title\n\nSome **bold** text.\n\n- one\n- two\n\n```sh\nmake\n```"
		once := markdown.ToMarkdown(markdown.ToDocument(md))
		Expect(markdown.ToMarkdown(markdown.ToDocument(once))).To(Equal(once))
	})

	It("should degrade emoji and mentions to plain text, then stay stable", func() {
		doc := domain.NewDocument(domain.Paragraph(
			domain.InlineSpan{Kind: domain.SpanEmoji, Text: ":tada:"},
			domain.Text(" shipped by "),
			domain.InlineSpan{Kind: domain.SpanMention, Text: "@sam"},
		))
		md := markdown.ToMarkdown(doc)
		Expect(md).To(Equal(":tada: shipped by @sam"))

		reparsed := markdown.ToDocument(md)
		Expect(reparsed.Blocks[0].Inline).To(Equal([]domain.InlineSpan{
			domain.Text(":tada: shipped by @sam"),
		}))
		Expect(markdown.ToMarkdown(reparsed)).To(Equal(md))
	})
})
