package layout

import "testing"

func TestLetterGridShape(t *testing.T) {
	geo := Letter()

	if got := geo.Columns(); got != 3 {
		t.Errorf("Columns() = %d, want 3", got)
	}
	if got := geo.Rows(); got != 3 {
		t.Errorf("Rows() = %d, want 3", got)
	}
	if got := geo.PerPage(); got != 9 {
		t.Errorf("PerPage() = %d, want 9", got)
	}
}

func TestLetterMarginsCenterGrid(t *testing.T) {
	geo := Letter()

	// 3x3 grid of 180x252pt cards on a 612x792pt page.
	if got := geo.marginX(); got != 36 {
		t.Errorf("marginX() = %v, want 36", got)
	}
	if got := geo.marginY(); got != 18 {
		t.Errorf("marginY() = %v, want 18", got)
	}
}

func TestCellAt(t *testing.T) {
	geo := Letter()

	tests := []struct {
		index int
		want  Cell
	}{
		{0, Cell{Page: 0, Row: 0, Col: 0}},
		{1, Cell{Page: 0, Row: 0, Col: 1}},
		{2, Cell{Page: 0, Row: 0, Col: 2}},
		{3, Cell{Page: 0, Row: 1, Col: 0}},
		{8, Cell{Page: 0, Row: 2, Col: 2}},
		{9, Cell{Page: 1, Row: 0, Col: 0}},
		{13, Cell{Page: 1, Row: 1, Col: 1}},
		{26, Cell{Page: 2, Row: 2, Col: 2}},
	}

	for _, tt := range tests {
		got := geo.CellAt(tt.index)
		if got != tt.want {
			t.Errorf("CellAt(%d) = %+v, want %+v", tt.index, got, tt.want)
		}
	}
}

func TestCellOrigin(t *testing.T) {
	geo := Letter()

	tests := []struct {
		cell Cell
		x, y float64
	}{
		{Cell{Page: 0, Row: 0, Col: 0}, 36, 18},
		{Cell{Page: 0, Row: 0, Col: 2}, 36 + 2*180, 18},
		{Cell{Page: 0, Row: 2, Col: 0}, 36, 18 + 2*252},
		{Cell{Page: 1, Row: 1, Col: 1}, 36 + 180, 18 + 252},
	}

	for _, tt := range tests {
		x, y := geo.CellOrigin(tt.cell)
		if x != tt.x || y != tt.y {
			t.Errorf("CellOrigin(%+v) = (%v, %v), want (%v, %v)", tt.cell, x, y, tt.x, tt.y)
		}
	}
}

func TestPaginatorPageBreaks(t *testing.T) {
	p := NewPaginator(Letter())

	breaks := 0
	for i := 0; i < 20; i++ {
		if p.Next().PageBreak() {
			breaks++
		}
	}
	// 20 cards at 9 per page span 3 pages.
	if breaks != 3 {
		t.Errorf("page breaks = %d, want 3", breaks)
	}
}
