package solver

import (
	"context"
	"time"

	"github.com/cbjohns433/triangle-solitaire/internal/domain"
	"github.com/cbjohns433/triangle-solitaire/internal/ports"
)

// Recursive is the straightforward depth-first explorer. It enumerates
// the complete move tree with no transposition table: distinct move
// orders reaching the same grid are distinct nodes. The state space is
// small enough (at most 13 plies) that this finishes quickly.
type Recursive struct {
	// Trace, if non-nil, is called at every node visit.
	Trace ports.Tracer
}

func NewRecursive() *Recursive { return &Recursive{} }

func (s *Recursive) Solve(ctx context.Context, start *domain.Board) (*domain.Solution, ports.Stats, error) {
	begin := time.Now()
	sol := &domain.Solution{Root: start, TotalBoards: 1}
	start.Num = 1

	var dfs func(b *domain.Board, depth int) error
	dfs = func(b *domain.Board, depth int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		pegs := b.PegCount()
		if s.Trace != nil {
			s.Trace(ports.Visit{Depth: depth, Pegs: pegs, Board: b})
		}
		if pegs == 1 {
			if sol.Winning == nil {
				sol.Winning = b
			}
			sol.WinningBoards++
		}
		// Expand in canonical order, descending into each child before
		// generating the next sibling.
		for _, j := range b.LegalJumps() {
			child := b.Apply(j)
			sol.TotalBoards++
			child.Num = sol.TotalBoards
			if err := dfs(child, depth+1); err != nil {
				return err
			}
		}
		return nil
	}

	if err := dfs(start, 0); err != nil {
		return nil, ports.Stats{Nodes: sol.TotalBoards, Duration: time.Since(begin)}, err
	}
	sol.Path = Reconstruct(sol.Winning)
	return sol, ports.Stats{Nodes: sol.TotalBoards, Duration: time.Since(begin)}, nil
}
