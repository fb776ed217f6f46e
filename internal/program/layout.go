package program

import (
	"git.lost.host/meutraa/lanes/internal/game"
)

// Layout maps field units onto terminal cells.
type Layout struct {
	Columns, Rows int
	FieldTop      int // First terminal row of the field
	FieldRows     int
	HitRow        int
	Middle        int
	SideCol       int
	LaneCols      [game.LaneCount]int

	field game.Field
}

func NewLayout(field game.Field, columns, rows int, spacing uint) Layout {
	l := Layout{
		Columns:  columns,
		Rows:     rows,
		FieldTop: 1,
		Middle:   columns >> 1,
		field:    field,
	}
	// HUD on the first row, status line on the last
	l.FieldRows = rows - 2
	if l.FieldRows < 1 {
		l.FieldRows = 1
	}
	for i := 0; i < game.LaneCount; i++ {
		l.LaneCols[i] = l.Middle + int(spacing)*(2*i-(game.LaneCount-1))
	}
	l.HitRow = l.Row(field.TargetY)
	l.SideCol = l.LaneCols[0] - 24
	if l.SideCol < 1 {
		l.SideCol = 1
	}
	return l
}

// Row is the terminal row of a field position. Positions above the field map
// to rows before FieldTop.
func (l Layout) Row(y float64) int {
	r := y / l.field.Height * float64(l.FieldRows)
	if r < 0 {
		return l.FieldTop - 1 - int(-r)
	}
	return l.FieldTop + int(r)
}

// InField reports if a row belongs to the field area.
func (l Layout) InField(row int) bool {
	return row >= l.FieldTop && row < l.FieldTop+l.FieldRows
}
