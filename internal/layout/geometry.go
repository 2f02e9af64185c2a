// Package layout arranges normalized card images into grid-based PDF pages
// and writes the result within an optional per-file size cap.
package layout

// pointsPerInch is the PDF user-space unit density.
const pointsPerInch = 72.0

// Geometry fixes the card and page dimensions for a whole run, in points.
// The grid shape and margins derive from it.
type Geometry struct {
	CardWidth  float64
	CardHeight float64
	PageWidth  float64
	PageHeight float64
}

// Letter returns the default geometry: 2.5"x3.5" poker-size cards on a
// letter page.
func Letter() Geometry {
	return Geometry{
		CardWidth:  2.5 * pointsPerInch,
		CardHeight: 3.5 * pointsPerInch,
		PageWidth:  8.5 * pointsPerInch,
		PageHeight: 11.0 * pointsPerInch,
	}
}

// Columns returns how many cards fit in one row.
func (g Geometry) Columns() int {
	return int(g.PageWidth / g.CardWidth)
}

// Rows returns how many card rows fit on one page.
func (g Geometry) Rows() int {
	return int(g.PageHeight / g.CardHeight)
}

// PerPage returns the page's cell capacity.
func (g Geometry) PerPage() int {
	return g.Rows() * g.Columns()
}

// marginX is the symmetric horizontal margin centering the grid on the page.
func (g Geometry) marginX() float64 {
	return (g.PageWidth - float64(g.Columns())*g.CardWidth) / 2
}

// marginY is the symmetric vertical margin centering the grid on the page.
func (g Geometry) marginY() float64 {
	return (g.PageHeight - float64(g.Rows())*g.CardHeight) / 2
}

// Cell addresses one grid slot: a page and a row-major position on it.
type Cell struct {
	Page int
	Row  int
	Col  int
}

// CellAt returns the cell for the card at sequence index i. Cards fill rows
// left to right and pages top to bottom.
func (g Geometry) CellAt(i int) Cell {
	perPage := g.PerPage()
	cols := g.Columns()
	return Cell{
		Page: i / perPage,
		Row:  (i % perPage) / cols,
		Col:  (i % perPage) % cols,
	}
}

// CellOrigin returns the top-left page coordinates of a cell, in points.
func (g Geometry) CellOrigin(c Cell) (x, y float64) {
	x = g.marginX() + float64(c.Col)*g.CardWidth
	y = g.marginY() + float64(c.Row)*g.CardHeight
	return x, y
}
