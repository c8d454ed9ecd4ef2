package pipeline_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frherrer/adfsync/internal/config"
	"github.com/frherrer/adfsync/internal/pipeline"
)

var _ = Describe("DefaultRegistry", func() {
	var (
		registry *pipeline.DefaultRegistry
		export   *pipeline.ExportConverter
		publish  *pipeline.PublishConverter
	)

	BeforeEach(func() {
		cfg := config.DefaultConfig()
		registry = pipeline.NewRegistry()
		export = pipeline.NewExportConverter(cfg)
		publish = pipeline.NewPublishConverter(cfg)
		registry.Register(export)
		registry.Register(publish)
	})

	It("should prefer the longest matching extension", func() {
		conv, err := registry.ConverterFor("pages/release.adf.json")
		Expect(err).ToNot(HaveOccurred())
		Expect(conv).To(BeIdenticalTo(export))
	})

	It("should route plain json to the export converter", func() {
		conv, err := registry.ConverterFor("pages/release.json")
		Expect(err).ToNot(HaveOccurred())
		Expect(conv).To(BeIdenticalTo(export))
	})

	It("should route markdown to the publish converter", func() {
		conv, err := registry.ConverterFor("pages/release.md")
		Expect(err).ToNot(HaveOccurred())
		Expect(conv).To(BeIdenticalTo(publish))
	})

	It("should fail for an unknown extension", func() {
		_, err := registry.ConverterFor("pages/notes.txt")
		Expect(err).To(HaveOccurred())
	})
})
