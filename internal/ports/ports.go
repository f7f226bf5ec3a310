package ports

import (
	"context"
	"time"

	"github.com/cbjohns433/triangle-solitaire/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Visit is one node of the search tree as seen by a Tracer.
type Visit struct {
	Depth int
	Pegs  int
	Board *domain.Board
}

// Tracer observes every board the search visits, in visit order.
type Tracer func(Visit)

// Solver exhaustively explores the move tree from a starting board.
type Solver interface {
	Solve(ctx context.Context, start *domain.Board) (*domain.Solution, Stats, error)
}

// Generator builds starting boards.
type Generator interface {
	Start(hole domain.CellCoord) (*domain.Board, error)
}

// Validator performs shape checks and single-step legality checks.
type Validator interface {
	Validate(b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
	ValidateStep(parent, child *domain.Board) (domain.Jump, error)
}

// Renderer draws one board.
type Renderer interface {
	Render(b *domain.Board) error
}
