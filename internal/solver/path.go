package solver

import "github.com/cbjohns433/triangle-solitaire/internal/domain"

// Reconstruct turns the parent chain of a winning board into the
// ordered solution path. Walking back to the root, each parent's
// NextWin is pointed at its child on the path; the forward NextWin
// walk from the root then yields the boards in play order.
//
// A nil winning board yields an empty path. A root that is itself
// winning yields a single-board path.
func Reconstruct(win *domain.Board) []*domain.Board {
	if win == nil {
		return nil
	}
	b := win
	for b.Prev != nil {
		b.Prev.NextWin = b
		b = b.Prev
	}
	var path []*domain.Board
	for b != nil {
		path = append(path, b)
		b = b.NextWin
	}
	return path
}
