package export

import (
	"context"
	"fmt"

	"github.com/mazenS1/Resume-Builder/internal/logging"
	"github.com/mazenS1/Resume-Builder/internal/model"
)

// Renderer turns a standalone HTML page into PDF bytes.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// PDFExporter renders a document snapshot to PDF via the HTML template and a
// Renderer (headless Chrome in production).
type PDFExporter struct {
	renderer Renderer
	log      logging.Logger
}

func NewPDFExporter(renderer Renderer, log logging.Logger) *PDFExporter {
	if log == nil {
		log = logging.Nop{}
	}
	return &PDFExporter{renderer: renderer, log: log}
}

// Export produces PDF bytes for the document. The snapshot is cloned up
// front: the caller may keep editing while rendering runs, and a failure
// leaves the in-memory document untouched either way.
func (p *PDFExporter) Export(ctx context.Context, r *model.Resume, isRTL bool) ([]byte, error) {
	snapshot := r.Clone()
	html, err := RenderHTML(snapshot, isRTL)
	if err != nil {
		return nil, err
	}
	pdf, err := p.renderer.RenderHTMLToPDF(ctx, html)
	if err != nil {
		p.log.Error(ctx, "pdf render failed", "id", snapshot.ID, "error", err)
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	p.log.Info(ctx, "pdf rendered", "id", snapshot.ID, "bytes", len(pdf))
	return pdf, nil
}
