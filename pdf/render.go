package pdf

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"pkt.systems/flyer"
)

// RenderRequest contains inputs for PDF rendering.
type RenderRequest struct {
	Writer io.Writer
	Layout flyer.Layout
	Config Config
}

// Render draws the layout onto a single page and writes the PDF.
func Render(req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("pdf render: writer is nil")
	}
	size := req.Layout.Size
	if size.W <= 0 || size.H <= 0 {
		return fmt.Errorf("pdf render: invalid page size %gx%g", size.W, size.H)
	}
	cfg := DefaultConfig()
	applyConfig(&cfg, req.Config)

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: size.W, Ht: size.H},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCompression(!cfg.NoCompression)
	doc.SetCatalogSort(true)
	doc.SetTitle(cfg.Title, true)
	doc.SetAuthor(cfg.Author, true)
	doc.SetSubject(cfg.Subject, true)
	doc.SetCreator(cfg.Creator, true)
	if cfg.Keywords != "" {
		doc.SetKeywords(cfg.Keywords, true)
	}
	if !cfg.CreationDate.IsZero() {
		doc.SetCreationDate(cfg.CreationDate)
		doc.SetModificationDate(cfg.CreationDate)
	}

	layers := newPDFLayers(doc, req.Layout, cfg)
	doc.AddPage()
	c := &canvas{doc: doc, height: size.H, cfg: cfg, layers: layers}
	for i, el := range req.Layout.Elements {
		if err := c.draw(i, el); err != nil {
			return fmt.Errorf("pdf render: %s %d: %w", el.Kind(), i, err)
		}
	}
	if err := doc.Output(req.Writer); err != nil {
		return fmt.Errorf("pdf render: output: %w", err)
	}
	flyer.Logger().Debug("rendered pdf", "elements", len(req.Layout.Elements), "layers", layers.enabled)
	return nil
}

// RenderFile renders into path, creating parent directories as needed.
func RenderFile(path string, req RenderRequest) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("pdf render: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}
	req.Writer = f
	if err := Render(req); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("pdf render: close %s: %w", path, err)
	}
	return nil
}

type canvas struct {
	doc    *fpdf.Fpdf
	height float64
	cfg    Config
	layers pdfLayers
}

// top converts a y-up page coordinate into the writer's y-down space.
func (c *canvas) top(y float64) float64 {
	return c.height - y
}

func (c *canvas) draw(idx int, el flyer.Element) error {
	end := c.layers.begin(c.doc, el.LayerName())
	defer end()
	switch e := el.(type) {
	case flyer.RectElement:
		c.applyStyle(e.Style)
		c.doc.Rect(e.Box.X, c.top(e.Box.Y+e.Box.H), e.Box.W, e.Box.H, "D")
	case flyer.StarElement:
		c.applyStyle(e.Style)
		c.doc.Polygon(c.points(flyer.BuildStarPath(e.Star.Center, e.Star.OuterRadius)), "FD")
	case flyer.TextElement:
		if err := c.drawText(e); err != nil {
			return err
		}
	case flyer.ImageElement:
		if err := c.drawImage(idx, e); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported element %T", el)
	}
	return c.doc.Error()
}

func (c *canvas) applyStyle(s flyer.Style) {
	c.doc.SetDrawColor(s.Stroke.RGB())
	c.doc.SetFillColor(s.Fill.RGB())
	c.doc.SetTextColor(s.Fill.RGB())
	c.doc.SetLineWidth(s.StrokeWidth)
}

func (c *canvas) points(poly flyer.Polygon) []fpdf.PointType {
	pts := make([]fpdf.PointType, len(poly))
	for i, p := range poly {
		pts[i] = fpdf.PointType{X: p.X, Y: c.top(p.Y)}
	}
	return pts
}

func (c *canvas) drawText(e flyer.TextElement) error {
	if !isCoreFont(e.Style.Font.Family) {
		return fmt.Errorf("core font family required, got %q", e.Style.Font.Family)
	}
	if e.Style.Font.Size <= 0 {
		return fmt.Errorf("invalid font size %g", e.Style.Font.Size)
	}
	s, err := encodeText(e.Text)
	if err != nil {
		return err
	}
	c.applyStyle(e.Style)
	c.doc.SetFont(e.Style.Font.Family, e.Style.Font.Style, e.Style.Font.Size)
	width := c.doc.GetStringWidth(s)
	c.doc.Text(e.X-width/2, c.top(e.Baseline), s)
	return nil
}

func (c *canvas) drawImage(idx int, e flyer.ImageElement) error {
	asset, err := loadImage(e, c.cfg.MaxImagePixels)
	if err != nil {
		return err
	}
	if asset == nil {
		flyer.Logger().Debug("skipping missing image", "name", e.Name, "path", e.Path)
		return nil
	}
	name := e.Name
	if name == "" {
		name = fmt.Sprintf("image%d", idx)
	}
	opts := fpdf.ImageOptions{ImageType: asset.imageType}
	c.doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(asset.data))
	if err := c.doc.Error(); err != nil {
		return fmt.Errorf("load %s: %w", asset.source, err)
	}
	c.doc.ImageOptions(name, e.Box.X, c.top(e.Box.Y+e.Box.H), e.Box.W, e.Box.H, false, opts, 0, "")
	flyer.Logger().Debug("placed image", "name", name, "source", asset.source,
		"type", asset.imageType, "transcoded", asset.transcoded)
	return nil
}

func isCoreFont(name string) bool {
	switch name {
	case "Courier", "Helvetica", "Arial", "Times", "Symbol", "ZapfDingbats":
		return true
	default:
		return false
	}
}
