package solver

import (
	"context"
	"time"

	"github.com/cbjohns433/triangle-solitaire/internal/domain"
	"github.com/cbjohns433/triangle-solitaire/internal/ports"
)

// Iterative explores the same move tree with an explicit work stack
// instead of recursion. Children are pushed in reverse canonical order
// so the visit order — and with it the first winning board and the
// reconstructed path — is identical to Recursive's. Board numbering is
// not: Iterative allocates all siblings before descending, so Num
// sequences differ between the two implementations (Num is debug-only).
type Iterative struct {
	Trace ports.Tracer
}

func NewIterative() *Iterative { return &Iterative{} }

type frame struct {
	b     *domain.Board
	depth int
}

func (s *Iterative) Solve(ctx context.Context, start *domain.Board) (*domain.Solution, ports.Stats, error) {
	begin := time.Now()
	sol := &domain.Solution{Root: start, TotalBoards: 1}
	start.Num = 1

	stack := []frame{{b: start, depth: 0}}
	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Nodes: sol.TotalBoards, Duration: time.Since(begin)}, err
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		pegs := f.b.PegCount()
		if s.Trace != nil {
			s.Trace(ports.Visit{Depth: f.depth, Pegs: pegs, Board: f.b})
		}
		if pegs == 1 {
			if sol.Winning == nil {
				sol.Winning = f.b
			}
			sol.WinningBoards++
		}
		for _, j := range f.b.LegalJumps() {
			child := f.b.Apply(j)
			sol.TotalBoards++
			child.Num = sol.TotalBoards
		}
		for i := len(f.b.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{b: f.b.Children[i], depth: f.depth + 1})
		}
	}

	sol.Path = Reconstruct(sol.Winning)
	return sol, ports.Stats{Nodes: sol.TotalBoards, Duration: time.Since(begin)}, nil
}
