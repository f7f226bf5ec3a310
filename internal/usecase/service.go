package usecase

import (
	"context"
	"errors"

	"github.com/cbjohns433/triangle-solitaire/internal/domain"
	"github.com/cbjohns433/triangle-solitaire/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Renderer  ports.Renderer
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, r ports.Renderer) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Renderer: r}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Solve builds the starting board for the given hole and runs the full
// search.
func (u *Service) Solve(ctx context.Context, hole domain.CellCoord) (*domain.Solution, ports.Stats, error) {
	if u.Generator == nil || u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	start, err := u.Generator.Start(hole)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	return u.Solver.Solve(ctx, start)
}

// Show renders every board of the solution path in play order.
func (u *Service) Show(sol *domain.Solution) error {
	if u.Renderer == nil {
		return errNotConfigured
	}
	for _, b := range sol.Path {
		if err := u.Renderer.Render(b); err != nil {
			return err
		}
	}
	return nil
}

func (u *Service) Validate(b *domain.Board) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(b)
}

func (u *Service) ValidateStep(parent, child *domain.Board) (domain.Jump, error) {
	if u.Validator == nil {
		return domain.Jump{}, errNotConfigured
	}
	return u.Validator.ValidateStep(parent, child)
}
