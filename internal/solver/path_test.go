package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbjohns433/triangle-solitaire/internal/domain"
)

func TestReconstructNone(t *testing.T) {
	assert.Empty(t, Reconstruct(nil))
}

func TestReconstructRootIsWinner(t *testing.T) {
	root := &domain.Board{Num: 1}
	apex, _ := domain.TrianglePos(1, 1)
	root.Cells[apex.Row][apex.Col] = domain.Occupied
	require.True(t, root.Winning())

	path := Reconstruct(root)
	require.Len(t, path, 1)
	assert.Same(t, root, path[0])
	assert.Nil(t, root.NextWin)
}

func TestReconstructChain(t *testing.T) {
	// Three hand-linked boards; only the prev links matter here.
	root := &domain.Board{Num: 1}
	mid := &domain.Board{Num: 2, Prev: root}
	win := &domain.Board{Num: 3, Prev: mid}

	path := Reconstruct(win)
	require.Len(t, path, 3)
	assert.Same(t, root, path[0])
	assert.Same(t, mid, path[1])
	assert.Same(t, win, path[2])

	// The prev chain is reversed into forward links on the winning path.
	assert.Same(t, mid, root.NextWin)
	assert.Same(t, win, mid.NextWin)
	assert.Nil(t, win.NextWin)
}
