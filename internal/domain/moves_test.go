package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegalJumpsApexHole(t *testing.T) {
	b := fullBoard()
	apex, _ := TrianglePos(1, 1)
	b.Cells[apex.Row][apex.Col] = Empty

	jumps := b.LegalJumps()
	require.Len(t, jumps, 2)

	// Canonical order: row-major over From cells, directions in table
	// order. Only the two row-3 pegs can jump into the apex.
	assert.Equal(t, Jump{
		From: CellCoord{Row: 4, Col: 4},
		Over: CellCoord{Row: 3, Col: 5},
		To:   apex,
	}, jumps[0])
	assert.Equal(t, Jump{
		From: CellCoord{Row: 4, Col: 8},
		Over: CellCoord{Row: 3, Col: 7},
		To:   apex,
	}, jumps[1])
}

func TestLegalJumpsNeverTargetBorder(t *testing.T) {
	// Two pegs at the bottom-right corner. Jumping right or down would
	// land in the invalid border and must never be generated; jumping
	// left lands on the (empty) triangle and is the only legal move.
	b := emptyBoard()
	for _, c := range []CellCoord{{6, 8}, {6, 10}} {
		b.Cells[c.Row][c.Col] = Occupied
	}
	jumps := b.LegalJumps()
	for _, j := range jumps {
		_, _, ok := j.To.Triangle()
		assert.True(t, ok, "jump targets non-triangle cell (%d,%d)", j.To.Row, j.To.Col)
	}
	require.Len(t, jumps, 1)
	assert.Equal(t, CellCoord{Row: 6, Col: 6}, jumps[0].To)
}

func TestLegalJumpsFullBoard(t *testing.T) {
	// No empty cell anywhere: nothing to jump into.
	assert.Empty(t, fullBoard().LegalJumps())
}

func TestApply(t *testing.T) {
	parent := fullBoard()
	apex, _ := TrianglePos(1, 1)
	parent.Cells[apex.Row][apex.Col] = Empty
	parentCells := parent.Cells

	j := parent.LegalJumps()[0]
	child := parent.Apply(j)

	assert.Equal(t, Empty, child.Cells[j.From.Row][j.From.Col])
	assert.Equal(t, Empty, child.Cells[j.Over.Row][j.Over.Col])
	assert.Equal(t, Occupied, child.Cells[j.To.Row][j.To.Col])
	assert.Equal(t, j.To, child.Last)
	assert.Equal(t, parent.PegCount()-1, child.PegCount())

	// Links and parent immutability.
	assert.Same(t, parent, child.Prev)
	require.Len(t, parent.Children, 1)
	assert.Same(t, child, parent.Children[0])
	assert.Equal(t, parentCells, parent.Cells)

	// Only the three jump cells differ.
	diff := 0
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if parent.Cells[r][c] != child.Cells[r][c] {
				diff++
			}
		}
	}
	assert.Equal(t, 3, diff)
}
