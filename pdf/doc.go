// Package pdf renders a flyer Layout to a single-page PDF.
//
// Drawing goes through github.com/go-pdf/fpdf with PDF core fonts, so text is
// limited to the Windows-1252 repertoire. Layout coordinates use a
// bottom-left origin and are flipped to the PDF writer's top-left origin
// here.
//
// Example:
//
//	size, _ := flyer.PageSize("A4")
//	err := pdf.Render(pdf.RenderRequest{
//		Writer: outFile,
//		Layout: flyer.GymFlyer(size, flyer.DefaultContent(), flyer.DefaultTheme()),
//		Config: pdf.DefaultConfig(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Image elements whose file is missing are skipped. PNG and JPEG files are
// embedded as-is; GIF, WebP, BMP, TIFF, 16-bit or interlaced PNG and images
// larger than Config.MaxImagePixels are re-encoded as 8-bit PNG first.
package pdf

//go:generate go run ./cmd/gen-pdf-golden
