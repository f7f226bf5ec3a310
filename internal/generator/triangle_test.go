package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbjohns433/triangle-solitaire/internal/domain"
	"github.com/cbjohns433/triangle-solitaire/internal/validator"
)

func TestStartShape(t *testing.T) {
	g := NewTriangle()
	b, err := g.Start(CenterHole)
	require.NoError(t, err)

	assert.Equal(t, 14, b.PegCount())
	assert.Equal(t, domain.Empty, b.Cells[CenterHole.Row][CenterHole.Col])
	assert.Equal(t, 1, b.Num)
	assert.Nil(t, b.Prev)
	assert.Empty(t, b.Children)

	ok, conflicts, err := validator.New().Validate(b)
	require.NoError(t, err)
	assert.True(t, ok, "conflicts: %v", conflicts)
}

func TestStartPresets(t *testing.T) {
	assert.Equal(t, domain.CellCoord{Row: 4, Col: 6}, CenterHole)
	assert.Equal(t, domain.CellCoord{Row: 2, Col: 6}, ApexHole)
	assert.Equal(t, domain.CellCoord{Row: 3, Col: 5}, Row2Hole)
	assert.Equal(t, domain.CellCoord{Row: 4, Col: 4}, Row3Edge)

	g := NewTriangle()
	for _, hole := range []domain.CellCoord{CenterHole, ApexHole, Row2Hole, Row3Edge} {
		b, err := g.Start(hole)
		require.NoError(t, err)
		assert.Equal(t, 14, b.PegCount())
		assert.Equal(t, domain.Empty, b.Cells[hole.Row][hole.Col])
	}
}

func TestStartRejectsBadHole(t *testing.T) {
	g := NewTriangle()
	for _, hole := range []domain.CellCoord{
		{Row: 0, Col: 0},  // border corner
		{Row: 2, Col: 5},  // between triangle cells
		{Row: 7, Col: 6},  // below the triangle
		{Row: 4, Col: 12}, // right border
	} {
		_, err := g.Start(hole)
		assert.Error(t, err, "hole (%d,%d)", hole.Row, hole.Col)
	}
}
