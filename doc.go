// Package flyer lays out the gym review flyer: a framed A4 page with a logo,
// a headline broken by a row of gold stars, a short message, a QR code that
// links to the review page, and a footer.
//
// The package only computes geometry. Every element of a Layout carries its
// own position and Style, and the pdf sub-package turns a Layout into a
// document.
//
// Example:
//
//	size, _ := flyer.PageSize("A4")
//	layout := flyer.GymFlyer(size, flyer.DefaultContent(), flyer.DefaultTheme())
//	err := pdf.RenderFile(flyer.DefaultOutputPath, pdf.RenderRequest{
//		Layout: layout,
//		Config: pdf.DefaultConfig(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Stars come from BuildStarPath, which returns the ten vertices of a
// five-pointed star with its first tip straight up.
package flyer
