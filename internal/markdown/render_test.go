package markdown_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frherrer/adfsync/internal/domain"
	"github.com/frherrer/adfsync/internal/markdown"
)

var _ = Describe("ToMarkdown", func() {
	It("should serialize an empty document to the empty string", func() {
		Expect(markdown.ToMarkdown(domain.NewDocument())).To(Equal(""))
	})

	It("should join blocks with a single blank line", func() {
		doc := domain.NewDocument(
			domain.Heading(1, domain.Text("Title")),
			domain.TextParagraph("Body text."),
		)
		Expect(markdown.ToMarkdown(doc)).To(Equal("# Title\n\nBody text."))
	})

	It("should clamp heading levels to the valid range", func() {
		doc := domain.NewDocument(
			domain.Heading(0, domain.Text("low")),
			domain.Heading(9, domain.Text("high")),
		)
		Expect(markdown.ToMarkdown(doc)).To(Equal("# low\n\n###### high"))
	})

	It("should emit code block content verbatim inside fences", func() {
		doc := domain.NewDocument(domain.Block{
			Kind:     domain.KindCodeBlock,
			Language: "go",
			Literal:  "a := \"*not em*\"\nb := 2",
		})
		Expect(markdown.ToMarkdown(doc)).To(Equal("```go\na := \"*not em*\"\nb := 2\n```"))
	})

	It("should prefix every blockquote line, including blank separators", func() {
		doc := domain.NewDocument(domain.Block{
			Kind: domain.KindBlockquote,
			Children: []domain.Block{
				domain.TextParagraph("one"),
				domain.TextParagraph("two"),
			},
		})
		Expect(markdown.ToMarkdown(doc)).To(Equal("> one\n>\n> two"))
	})

	It("should indent nested bullet lists two spaces per level", func() {
		doc := domain.NewDocument(bulletList(
			listItem("a", bulletList(
				listItem("b", bulletList(
					listItem("c"),
				)),
			)),
		))
		Expect(markdown.ToMarkdown(doc)).To(Equal("- a\n  - b\n    - c"))
	})

	It("should number ordered list items sequentially", func() {
		doc := domain.NewDocument(domain.Block{
			Kind: domain.KindOrderedList,
			Children: []domain.Block{
				listItem("first"),
				listItem("second"),
			},
		})
		Expect(markdown.ToMarkdown(doc)).To(Equal("1. first\n2. second"))
	})

	It("should render task markers by completion state", func() {
		doc := domain.NewDocument(domain.Block{
			Kind: domain.KindTaskList,
			Children: []domain.Block{
				taskItem("shipped", true),
				taskItem("pending", false),
			},
		})
		Expect(markdown.ToMarkdown(doc)).To(Equal("- [x] shipped\n- [ ] pending"))
	})

	It("should emit the first table row as a header with a separator", func() {
		doc := domain.NewDocument(table(
			tableRow(true, "Name", "Value"),
			tableRow(false, "a", "1"),
		))
		Expect(markdown.ToMarkdown(doc)).To(Equal(
			"| Name | Value |\n| --- | --- |\n| a | 1 |"))
	})

	It("should flatten hard breaks inside table cells", func() {
		doc := domain.NewDocument(table(
			tableRow(true, "H"),
			domain.Block{Kind: domain.KindTableRow, Children: []domain.Block{{
				Kind: domain.KindTableCell,
				Inline: []domain.InlineSpan{
					domain.Text("up"),
					{Kind: domain.SpanHardBreak},
					domain.Text("down"),
				},
			}}},
		))
		Expect(markdown.ToMarkdown(doc)).To(Equal("| H |\n| --- |\n| up down |"))
	})

	It("should wrap expand blocks in a details element", func() {
		doc := domain.NewDocument(domain.Block{
			Kind:     domain.KindExpand,
			Title:    "More",
			Children: []domain.Block{domain.TextParagraph("hidden")},
		})
		Expect(markdown.ToMarkdown(doc)).To(Equal(
			"<details>\n<summary>More</summary>\n\nhidden\n</details>"))
	})

	It("should default an empty expand title", func() {
		doc := domain.NewDocument(domain.Block{Kind: domain.KindExpand})
		Expect(markdown.ToMarkdown(doc)).To(Equal(
			"<details>\n<summary>Details</summary>\n</details>"))
	})

	It("should fall back to a self-titled link for inline cards", func() {
		doc := domain.NewDocument(domain.Block{
			Kind: domain.KindInlineCard,
			URL:  "https://x.test/page",
		})
		Expect(markdown.ToMarkdown(doc)).To(Equal("[https://x.test/page](https://x.test/page)"))
	})

	It("should skip an inline card with no URL", func() {
		doc := domain.NewDocument(
			domain.Block{Kind: domain.KindInlineCard},
			domain.TextParagraph("after"),
		)
		Expect(markdown.ToMarkdown(doc)).To(Equal("after"))
	})

	It("should annotate extensions with a placeholder comment", func() {
		doc := domain.NewDocument(
			domain.Block{Kind: domain.KindExtension, Label: "Chart"},
			domain.Block{Kind: domain.KindExtension},
		)
		Expect(markdown.ToMarkdown(doc)).To(Equal(
			"<!-- Extension: Chart -->\n\n<!-- Extension: Unknown extension -->"))
	})

	It("should render a horizontal rule", func() {
		doc := domain.NewDocument(domain.Block{Kind: domain.KindRule})
		Expect(markdown.ToMarkdown(doc)).To(Equal("---"))
	})

	It("should indent a code block under its list item", func() {
		doc := domain.NewDocument(bulletList(
			domain.Block{
				Kind: domain.KindListItem,
				Children: []domain.Block{
					domain.TextParagraph("setup"),
					{Kind: domain.KindCodeBlock, Language: "sh", Literal: "make"},
				},
			},
		))
		Expect(markdown.ToMarkdown(doc)).To(Equal(
			"- setup\n  ```sh\n  make\n  ```"))
	})
})

func bulletList(items ...domain.Block) domain.Block {
	return domain.Block{Kind: domain.KindBulletList, Children: items}
}

func listItem(text string, nested ...domain.Block) domain.Block {
	children := []domain.Block{domain.TextParagraph(text)}
	children = append(children, nested...)
	return domain.Block{Kind: domain.KindListItem, Children: children}
}

func taskItem(text string, done bool) domain.Block {
	return domain.Block{
		Kind:     domain.KindTaskItem,
		Done:     done,
		Children: []domain.Block{domain.TextParagraph(text)},
	}
}

func table(rows ...domain.Block) domain.Block {
	return domain.Block{Kind: domain.KindTable, Children: rows}
}

func tableRow(header bool, cells ...string) domain.Block {
	row := domain.Block{Kind: domain.KindTableRow}
	for _, c := range cells {
		row.Children = append(row.Children, domain.Block{
			Kind:   domain.KindTableCell,
			Header: header,
			Inline: []domain.InlineSpan{domain.Text(c)},
		})
	}
	return row
}
