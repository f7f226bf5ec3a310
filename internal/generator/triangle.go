package generator

import (
	"fmt"

	"github.com/cbjohns433/triangle-solitaire/internal/domain"
)

// The starting holes from the original puzzle write-up. Center is the
// board searched by default; Apex is the classic row-1 start.
var (
	CenterHole = mustPos(3, 2)
	ApexHole   = mustPos(1, 1)
	Row2Hole   = mustPos(2, 1)
	Row3Edge   = mustPos(3, 1)
)

func mustPos(row, pos int) domain.CellCoord {
	at, ok := domain.TrianglePos(row, pos)
	if !ok {
		panic(fmt.Sprintf("bad triangle position %d,%d", row, pos))
	}
	return at
}

// Start returns the root board: every triangle cell occupied except
// the given hole, everything else invalid border. The hole must be a
// valid triangle cell.
func (g *Triangle) Start(hole domain.CellCoord) (*domain.Board, error) {
	b := &domain.Board{Num: 1}
	// The zero Grid is all Invalid; fill in the triangle.
	for row := 1; row <= domain.TriangleRows; row++ {
		for pos := 1; pos <= row; pos++ {
			at, _ := domain.TrianglePos(row, pos)
			b.Cells[at.Row][at.Col] = domain.Occupied
		}
	}
	if _, _, ok := hole.Triangle(); !ok {
		return nil, fmt.Errorf("starting hole (%d,%d) is outside the triangle", hole.Row, hole.Col)
	}
	b.Cells[hole.Row][hole.Col] = domain.Empty
	return b, nil
}
