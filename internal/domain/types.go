package domain

// The 5-row triangle is embedded in a rectangular grid with a 2-cell
// invalid border on every side, so jump lookups (which reach up to 2
// cells away) never need bounds checks.
const (
	Rows = 9
	Cols = 13

	TriangleRows = 5

	// middleCol is the column of the triangle's apex.
	middleCol = Cols / 2
)

// Grid holds the cell states.
type Grid [Rows][Cols]Cell

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int
	Col int
}

// TrianglePos maps human triangle coordinates (row 1..5, position
// 1..row, counted left to right) to grid coordinates.
func TrianglePos(row, pos int) (CellCoord, bool) {
	if row < 1 || row > TriangleRows || pos < 1 || pos > row {
		return CellCoord{}, false
	}
	return CellCoord{Row: row + 1, Col: middleCol - (row - 1) + 2*(pos-1)}, true
}

// Triangle is the inverse of TrianglePos. ok is false for border and
// in-between grid cells.
func (c CellCoord) Triangle() (row, pos int, ok bool) {
	row = c.Row - 1
	if row < 1 || row > TriangleRows {
		return 0, 0, false
	}
	left := middleCol - (row - 1)
	off := c.Col - left
	if off < 0 || off > 2*(row-1) || off%2 != 0 {
		return 0, 0, false
	}
	return row, off/2 + 1, true
}

// Board is one node of the search tree: a grid snapshot plus its links
// into the tree. Boards are never modified after creation except for
// NextWin, which is set once during solution reconstruction.
type Board struct {
	Cells Grid

	// Num is the board's creation order across the whole search,
	// starting at 1 for the root. Debug tracing only.
	Num int

	Prev     *Board   // parent board; nil for the root
	Children []*Board // child boards in generation order
	NextWin  *Board   // next board on the winning path

	// Last is the landing cell of the jump that produced this board.
	// The zero value marks "none" (cell (0,0) is border padding).
	Last CellCoord
}

// PegCount returns the number of occupied cells.
func (b *Board) PegCount() int {
	n := 0
	for r := range b.Cells {
		for c := range b.Cells[r] {
			if b.Cells[r][c] == Occupied {
				n++
			}
		}
	}
	return n
}

// Winning reports whether a single peg remains.
func (b *Board) Winning() bool { return b.PegCount() == 1 }

// Solution is the outcome of a full search.
type Solution struct {
	Root    *Board
	Winning *Board   // first winning board found; nil if none
	Path    []*Board // ordered root..Winning; empty when Winning is nil

	TotalBoards   int // boards created, root included
	WinningBoards int // winning leaves reached, not just the first
}
