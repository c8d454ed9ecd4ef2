package pipeline_test

import (
	"io"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"

	"github.com/frherrer/adfsync/internal/config"
	"github.com/frherrer/adfsync/internal/pipeline"
	"github.com/frherrer/adfsync/internal/scanner"
)

var _ = Describe("Pipeline", func() {
	var (
		cfg *config.Config
		p   *pipeline.Pipeline
		in  string
		out string
	)

	BeforeEach(func() {
		in = GinkgoT().TempDir()
		out = filepath.Join(GinkgoT().TempDir(), "out")

		cfg = config.DefaultConfig()
		cfg.Input.Directories = []string{in}
		cfg.Output.Directory = out

		log := logrus.New()
		log.SetOutput(io.Discard)

		registry := pipeline.NewRegistry()
		registry.Register(pipeline.NewExportConverter(cfg))
		registry.Register(pipeline.NewPublishConverter(cfg))
		p = pipeline.New(scanner.NewScanner(true), registry, log)
	})

	writeInput := func(name, content string) {
		Expect(os.WriteFile(filepath.Join(in, name), []byte(content), 0644)).To(Succeed())
	}

	It("should convert both directions in one run", func() {
		writeInput("exported.adf.json", pageADF)
		writeInput("edited.md", "# Edited\n\nNew text.\n")

		Expect(p.Run(cfg)).To(Succeed())

		md, err := os.ReadFile(filepath.Join(out, "exported.md"))
		Expect(err).ToNot(HaveOccurred())
		Expect(string(md)).To(ContainSubstring("# Release notes"))

		adf, err := os.ReadFile(filepath.Join(out, "edited.adf.json"))
		Expect(err).ToNot(HaveOccurred())
		Expect(string(adf)).To(ContainSubstring(`"type":"doc"`))
	})

	It("should write nothing in dry-run mode", func() {
		writeInput("edited.md", "# Edited\n")
		cfg.DryRun = true

		Expect(p.Run(cfg)).To(Succeed())
		_, err := os.Stat(out)
		Expect(os.IsNotExist(err)).To(BeTrue())
	})

	It("should succeed when no content files exist", func() {
		Expect(p.Run(cfg)).To(Succeed())
	})

	It("should abort the run on a conversion failure", func() {
		writeInput("broken.adf.json", "{nope")
		Expect(p.Run(cfg)).ToNot(Succeed())
	})

	It("should skip files without a registered converter", func() {
		writeInput("notes.txt", "ignore me")
		writeInput("edited.md", "# Edited\n")
		cfg.Input.Include = []string{"*.txt", "*.md"}

		Expect(p.Run(cfg)).To(Succeed())
		entries, err := os.ReadDir(out)
		Expect(err).ToNot(HaveOccurred())
		Expect(entries).To(HaveLen(1))
	})
})
