package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"pkt.systems/flyer/pdf/internal/pdfgolden"
)

func main() {
	if _, err := exec.LookPath("pdftoppm"); err != nil {
		fmt.Fprintln(os.Stderr, "pdftoppm not found in PATH")
		os.Exit(2)
	}
	nicePath, _ := exec.LookPath("nice")
	root, err := pdfgolden.FindPackageRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "find package root: %v\n", err)
		os.Exit(1)
	}
	goldenDir := pdfgolden.GoldenDir(root)
	if err := os.MkdirAll(goldenDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir goldens: %v\n", err)
		os.Exit(1)
	}

	for _, sample := range pdfgolden.Samples() {
		if err := generate(sample, nicePath, goldenDir); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", sample.Name, err)
			os.Exit(1)
		}
	}
}

func generate(sample pdfgolden.Sample, nicePath, goldenDir string) error {
	tmpDir, err := os.MkdirTemp("", "flyer-pdf-golden-")
	if err != nil {
		return fmt.Errorf("temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	pdfPath := filepath.Join(tmpDir, "out.pdf")
	f, err := os.Create(pdfPath)
	if err != nil {
		return fmt.Errorf("create pdf: %w", err)
	}
	if err := pdfgolden.RenderSamplePDF(f, sample); err != nil {
		_ = f.Close()
		return fmt.Errorf("render pdf: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close pdf: %w", err)
	}

	prefix := filepath.Join(tmpDir, "page")
	cmd := pdfgolden.PDFToPPMCommand(nicePath, pdfPath, prefix)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("pdftoppm failed: %w\n%s", err, string(out))
	}
	pages, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return fmt.Errorf("glob pages: %w", err)
	}
	sort.Strings(pages)
	if len(pages) == 0 {
		return fmt.Errorf("pdftoppm produced no pages")
	}
	for i, page := range pages {
		dst := filepath.Join(goldenDir, pdfgolden.GoldenName(sample.Name, i+1))
		if err := pdfgolden.CopyFile(dst, page); err != nil {
			return fmt.Errorf("write golden: %w", err)
		}
		fmt.Fprintf(os.Stdout, "wrote %s\n", dst)
	}
	return nil
}
