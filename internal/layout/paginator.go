package layout

// Paginator holds the grid cursor while cards are placed in sequence. Each
// Next call yields the cell for one card, starting a fresh page whenever the
// previous page's capacity is exhausted.
type Paginator struct {
	geo   Geometry
	index int
}

// NewPaginator returns a paginator positioned at the first cell of the first
// page.
func NewPaginator(geo Geometry) *Paginator {
	return &Paginator{geo: geo}
}

// Next returns the cell for the next card and advances the cursor.
func (p *Paginator) Next() Cell {
	cell := p.geo.CellAt(p.index)
	p.index++
	return cell
}

// PageBreak reports whether cell begins a new page.
func (c Cell) PageBreak() bool {
	return c.Row == 0 && c.Col == 0
}
