package validator

import (
	"errors"

	"github.com/cbjohns433/triangle-solitaire/internal/domain"
)

// Shape checks that boards keep the triangle's shape and that
// consecutive boards differ by exactly one legal jump.
type Shape struct{}

func New() *Shape { return &Shape{} }

// Validate scans the whole grid: triangle cells must be empty or
// occupied, everything else must be invalid border. Offending
// coordinates are returned.
func (v *Shape) Validate(b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 4)
	for r := 0; r < domain.Rows; r++ {
		for c := 0; c < domain.Cols; c++ {
			at := domain.CellCoord{Row: r, Col: c}
			_, _, onTriangle := at.Triangle()
			state := b.Cells[r][c]
			if onTriangle {
				if state == domain.Invalid {
					conf = append(conf, at)
				}
			} else if state != domain.Invalid {
				conf = append(conf, at)
			}
		}
	}
	return len(conf) == 0, conf, nil
}

var errNoStep = errors.New("boards do not differ by one legal jump")

// ValidateStep reports the single legal jump that transforms parent
// into child, or an error if no such jump exists.
func (v *Shape) ValidateStep(parent, child *domain.Board) (domain.Jump, error) {
	for _, j := range parent.LegalJumps() {
		want := parent.Cells
		want[j.From.Row][j.From.Col] = domain.Empty
		want[j.Over.Row][j.Over.Col] = domain.Empty
		want[j.To.Row][j.To.Col] = domain.Occupied
		if child.Cells == want {
			return j, nil
		}
	}
	return domain.Jump{}, errNoStep
}
