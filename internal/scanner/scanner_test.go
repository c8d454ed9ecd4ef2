package scanner_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frherrer/adfsync/internal/scanner"
)

var _ = Describe("FileScanner", func() {
	var root string

	BeforeEach(func() {
		root = GinkgoT().TempDir()
		touch(root, "a.md")
		touch(root, "b.adf.json")
		touch(root, "notes.txt")
		touch(root, "sub/c.md")
		touch(root, "vendor/d.md")
	})

	It("should return sorted files matching any include pattern", func() {
		s := scanner.NewScanner(true)
		files, err := s.Scan(root, []string{"*.md", "*.adf.json"}, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(files).To(Equal([]string{
			filepath.Join(root, "a.md"),
			filepath.Join(root, "b.adf.json"),
			filepath.Join(root, "sub", "c.md"),
			filepath.Join(root, "vendor", "d.md"),
		}))
	})

	It("should skip excluded directories", func() {
		s := scanner.NewScanner(true)
		files, err := s.Scan(root, []string{"*.md"}, []string{"vendor/**"})
		Expect(err).ToNot(HaveOccurred())
		Expect(files).To(Equal([]string{
			filepath.Join(root, "a.md"),
			filepath.Join(root, "sub", "c.md"),
		}))
	})

	It("should stay at the top level when not recursive", func() {
		s := scanner.NewScanner(false)
		files, err := s.Scan(root, []string{"*.md"}, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(files).To(Equal([]string{filepath.Join(root, "a.md")}))
	})

	It("should fail for a missing root directory", func() {
		s := scanner.NewScanner(true)
		_, err := s.Scan(filepath.Join(root, "missing"), []string{"*.md"}, nil)
		Expect(err).To(HaveOccurred())
	})

	It("should match double-star patterns against path tails", func() {
		s := scanner.NewScanner(true)
		files, err := s.Scan(root, []string{"sub/**"}, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(files).To(Equal([]string{filepath.Join(root, "sub", "c.md")}))
	})
})

func touch(root, rel string) {
	path := filepath.Join(root, filepath.FromSlash(rel))
	Expect(os.MkdirAll(filepath.Dir(path), 0755)).To(Succeed())
	Expect(os.WriteFile(path, []byte("x"), 0644)).To(Succeed())
}
