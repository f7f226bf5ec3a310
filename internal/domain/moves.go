package domain

// Jump is a single move: the peg at From leaps over the peg at Over
// into the empty cell at To, removing the jumped peg.
type Jump struct {
	From CellCoord
	Over CellCoord
	To   CellCoord
}

// The six jump directions in fixed order: the four diagonals, then the
// two horizontals. This order, inside the row-major cell scan of
// LegalJumps, is the tie-break that makes the whole search
// deterministic.
var offsets = [6]CellCoord{
	{-1, -1}, {-1, 1},
	{1, -1}, {1, 1},
	{0, -2}, {0, 2},
}

// LegalJumps returns every legal jump from b in canonical order: rows
// top to bottom, columns left to right, directions in table order.
// A jump is legal iff From is occupied, Over is occupied, and To is
// exactly empty (not invalid).
func (b *Board) LegalJumps() []Jump {
	var jumps []Jump
	// Pegs only ever sit inside the 2-cell border, so offset lookups
	// below stay in range.
	for r := 2; r < Rows-2; r++ {
		for c := 2; c < Cols-2; c++ {
			if b.Cells[r][c] != Occupied {
				continue
			}
			for _, off := range offsets {
				over := CellCoord{Row: r + off.Row, Col: c + off.Col}
				to := CellCoord{Row: r + 2*off.Row, Col: c + 2*off.Col}
				if b.Cells[over.Row][over.Col] == Occupied && b.Cells[to.Row][to.Col] == Empty {
					jumps = append(jumps, Jump{From: CellCoord{Row: r, Col: c}, Over: over, To: to})
				}
			}
		}
	}
	return jumps
}

// Apply allocates the child board reached from b by j and links it
// under b. The parent grid is copied with three cells changed; the
// child's Last marks the landing cell.
func (b *Board) Apply(j Jump) *Board {
	child := &Board{Cells: b.Cells, Prev: b, Last: j.To}
	child.Cells[j.From.Row][j.From.Col] = Empty
	child.Cells[j.Over.Row][j.Over.Col] = Empty
	child.Cells[j.To.Row][j.To.Col] = Occupied
	b.Children = append(b.Children, child)
	return child
}
