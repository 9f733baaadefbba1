package pdf

import (
	"github.com/go-pdf/fpdf"
	"pkt.systems/flyer"
)

type pdfLayers struct {
	enabled bool
	ids     map[string]int
}

// newPDFLayers declares one optional content group per layer name used by
// the layout. Layers are all visible initially.
func newPDFLayers(doc *fpdf.Fpdf, layout flyer.Layout, cfg Config) pdfLayers {
	if !cfg.UseLayers {
		return pdfLayers{}
	}
	l := pdfLayers{enabled: true, ids: make(map[string]int)}
	for _, name := range layout.Layers() {
		l.ids[name] = doc.AddLayer(name, true)
	}
	if cfg.OpenLayerPane {
		doc.OpenLayerPane()
	}
	return l
}

// begin opens the named layer and returns the call that closes it.
func (l pdfLayers) begin(doc *fpdf.Fpdf, name string) func() {
	if !l.enabled {
		return func() {}
	}
	id, ok := l.ids[name]
	if !ok {
		return func() {}
	}
	doc.BeginLayer(id)
	return doc.EndLayer
}
