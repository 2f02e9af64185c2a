package layout

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/deckforge/cardpress/internal/card"
)

// renderPDF draws the given cards into grid cells across successive pages and
// returns the finished document bytes. Cards are stretched to fill their cell
// without preserving aspect ratio; the normalizer is responsible for making
// that stretch harmless.
func renderPDF(cards []card.Entry, geo Geometry) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	paginator := NewPaginator(geo)
	for _, c := range cards {
		cell := paginator.Next()
		if cell.PageBreak() {
			pdf.AddPage()
		}
		x, y := geo.CellOrigin(cell)
		pdf.ImageOptions(c.RenderPath, x, y, geo.CardWidth, geo.CardHeight, false,
			fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("error rendering PDF: %v", err)
	}
	return buf.Bytes(), nil
}
