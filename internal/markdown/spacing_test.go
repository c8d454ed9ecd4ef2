package markdown_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frherrer/adfsync/internal/domain"
	"github.com/frherrer/adfsync/internal/markdown"
)

var _ = Describe("AddSeparatorSpacing", func() {
	It("should insert an empty paragraph before rules and deep headings", func() {
		blocks := []domain.Block{
			domain.TextParagraph("text"),
			{Kind: domain.KindRule},
			domain.Heading(2, domain.Text("Section")),
		}
		out := markdown.AddSeparatorSpacing(blocks)
		Expect(out).To(Equal([]domain.Block{
			domain.TextParagraph("text"),
			domain.Paragraph(),
			{Kind: domain.KindRule},
			domain.Paragraph(),
			domain.Heading(2, domain.Text("Section")),
		}))
	})

	It("should not pad a level-one heading", func() {
		blocks := []domain.Block{
			domain.TextParagraph("intro"),
			domain.Heading(1, domain.Text("Title")),
		}
		Expect(markdown.AddSeparatorSpacing(blocks)).To(HaveLen(2))
	})

	It("should not pad the first block", func() {
		blocks := []domain.Block{domain.Heading(2, domain.Text("Top"))}
		Expect(markdown.AddSeparatorSpacing(blocks)).To(HaveLen(1))
	})

	It("should double the padding when applied twice", func() {
		blocks := []domain.Block{
			domain.TextParagraph("text"),
			{Kind: domain.KindRule},
			domain.Heading(2, domain.Text("Section")),
		}
		once := markdown.AddSeparatorSpacing(blocks)
		twice := markdown.AddSeparatorSpacing(once)
		Expect(once).To(HaveLen(5))
		Expect(twice).To(HaveLen(7))
	})

	It("should leave the input slice untouched", func() {
		blocks := []domain.Block{
			domain.TextParagraph("text"),
			{Kind: domain.KindRule},
		}
		_ = markdown.AddSeparatorSpacing(blocks)
		Expect(blocks).To(HaveLen(2))
	})
})
