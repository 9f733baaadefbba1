// Package pdfgolden rasterizes rendered flyers with pdftoppm and compares
// them against checked-in PNG goldens.
package pdfgolden

import (
	"errors"
	"fmt"
	"image"
	_ "image/png" // register PNG decoder
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"pkt.systems/flyer"
	"pkt.systems/flyer/pdf"
)

const (
	pdfGoldenDPI      = "96"
	pdfGoldenTol      = 2
	pdfGoldenMaxRatio = 0.0005
)

// Sample identifies a flyer variant used for PDF golden testing.
type Sample struct {
	Name  string
	Theme string
	Page  string
}

// Samples returns the flyer variants that have goldens.
func Samples() []Sample {
	return []Sample{
		{Name: "default_a4", Theme: "default", Page: "A4"},
		{Name: "lime_a4", Theme: "lime", Page: "A4"},
		{Name: "boring_a4", Theme: "boring", Page: "A4"},
		{Name: "default_letter", Theme: "default", Page: "Letter"},
	}
}

// FindPackageRoot returns the absolute path of the pdf package directory.
func FindPackageRoot() (string, error) {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "", errors.New("pdfgolden: unable to resolve package path")
	}
	return filepath.Join(filepath.Dir(file), "..", ".."), nil
}

// GoldenDir returns where goldens live below the pdf package root.
func GoldenDir(root string) string {
	return filepath.Join(root, "testdata", "golden")
}

// PDFToPPMCommand returns the pdftoppm command used to rasterize PDFs.
func PDFToPPMCommand(nicePath, pdfPath, prefix string) *exec.Cmd {
	if nicePath != "" {
		return exec.Command(nicePath, "-n", "10", "pdftoppm", "-png", "-r", pdfGoldenDPI, pdfPath, prefix)
	}
	return exec.Command("pdftoppm", "-png", "-r", pdfGoldenDPI, pdfPath, prefix)
}

// RenderSamplePDF renders the sample without images, which keeps goldens
// independent of local assets.
func RenderSamplePDF(w io.Writer, s Sample) error {
	theme, ok := flyer.ThemeByName(s.Theme)
	if !ok {
		return fmt.Errorf("unknown theme %q", s.Theme)
	}
	size, ok := flyer.PageSize(s.Page)
	if !ok {
		return fmt.Errorf("unknown page size %q", s.Page)
	}
	content := flyer.DefaultContent()
	content.LogoPath = ""
	content.QRPath = ""
	cfg := pdf.DefaultConfig()
	cfg.CreationDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return pdf.Render(pdf.RenderRequest{
		Writer: w,
		Layout: flyer.GymFlyer(size, content, theme),
		Config: cfg,
	})
}

// GoldenName formats a golden PNG filename.
func GoldenName(name string, page int) string {
	return fmt.Sprintf("%s_p%d.png", name, page)
}

// CopyFile copies src to dst, creating parent directories as needed.
func CopyFile(dst, src string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// ComparePNG compares two PNGs and returns an error if they differ beyond tolerance.
func ComparePNG(gotPath, wantPath string) error {
	got, err := loadPNG(gotPath)
	if err != nil {
		return fmt.Errorf("load %s: %w", gotPath, err)
	}
	want, err := loadPNG(wantPath)
	if err != nil {
		return fmt.Errorf("load %s: %w", wantPath, err)
	}
	if got.Bounds() != want.Bounds() {
		return fmt.Errorf("bounds mismatch got=%v want=%v", got.Bounds(), want.Bounds())
	}
	diff := 0
	total := got.Bounds().Dx() * got.Bounds().Dy()
	for y := got.Bounds().Min.Y; y < got.Bounds().Max.Y; y++ {
		for x := got.Bounds().Min.X; x < got.Bounds().Max.X; x++ {
			r1, g1, b1, a1 := got.At(x, y).RGBA()
			r2, g2, b2, a2 := want.At(x, y).RGBA()
			if !rgbaClose(r1, r2) || !rgbaClose(g1, g2) || !rgbaClose(b1, b2) || !rgbaClose(a1, a2) {
				diff++
			}
		}
	}
	if diff == 0 {
		return nil
	}
	ratio := float64(diff) / float64(total)
	if ratio > pdfGoldenMaxRatio {
		return fmt.Errorf("pixel diff ratio %.4f exceeds %.4f", ratio, pdfGoldenMaxRatio)
	}
	return nil
}

func rgbaClose(a, b uint32) bool {
	av := int(a >> 8)
	bv := int(b >> 8)
	if av < bv {
		return bv-av <= pdfGoldenTol
	}
	return av-bv <= pdfGoldenTol
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}
