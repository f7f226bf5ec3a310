package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	termadapter "github.com/cbjohns433/triangle-solitaire/internal/adapters/term"
	"github.com/cbjohns433/triangle-solitaire/internal/domain"
	"github.com/cbjohns433/triangle-solitaire/internal/generator"
	"github.com/cbjohns433/triangle-solitaire/internal/infrastructure/term"
	"github.com/cbjohns433/triangle-solitaire/internal/ports"
	"github.com/cbjohns433/triangle-solitaire/internal/solver"
	"github.com/cbjohns433/triangle-solitaire/internal/usecase"
	"github.com/cbjohns433/triangle-solitaire/internal/validator"
)

// parseHole turns "row,pos" triangle coordinates into a grid coordinate.
func parseHole(s string) (domain.CellCoord, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ",", 2)
	if len(parts) != 2 {
		return domain.CellCoord{}, fmt.Errorf("hole %q: want row,pos", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return domain.CellCoord{}, fmt.Errorf("hole %q: %v", s, err)
	}
	pos, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return domain.CellCoord{}, fmt.Errorf("hole %q: %v", s, err)
	}
	at, ok := domain.TrianglePos(row, pos)
	if !ok {
		return domain.CellCoord{}, fmt.Errorf("hole %q: no such triangle cell", s)
	}
	return at, nil
}

func main() {
	debug := flag.Bool("d", false, "print search-tree tracing; suppresses visual pacing")
	visual := flag.Bool("v", false, "interactive visual mode (clear screen, pace output)")
	hole := flag.String("hole", "3,2", "starting hole as triangle row,pos")
	solverKind := flag.String("solver", "recursive", "solver to use: recursive|iterative")
	levelStr := flag.String("log-level", "warn", "debug|info|warn|error")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-d] [-v] [-hole row,pos] [-solver recursive|iterative]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	lvl := slog.LevelWarn
	switch strings.ToLower(*levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	start, err := parseHole(*hole)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	mode := termadapter.Plain
	if *visual {
		mode = termadapter.Visual
	}
	if *debug {
		mode = termadapter.Debug
	}
	r := termadapter.New(mode, term.NewScreen(os.Stdout))

	// Choose solver: recursive by default, explicit-stack via flag.
	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(*solverKind)) {
	case "iterative":
		it := solver.NewIterative()
		it.Trace = r.Tracer()
		s = it
	default:
		rec := solver.NewRecursive()
		rec.Trace = r.Tracer()
		s = rec
	}

	uc := usecase.NewService(s, generator.NewTriangle(), validator.New(), r)

	r.Begin()
	logger.Info("searching", "hole", *hole, "solver", *solverKind)
	sol, st, err := uc.Solve(context.Background(), start)
	if err != nil {
		logger.Error("search failed", "err", err)
		os.Exit(1)
	}

	fmt.Printf("Total boards: %d\n", sol.TotalBoards)
	if sol.Winning != nil {
		if err := uc.Show(sol); err != nil {
			logger.Error("render failed", "err", err)
			os.Exit(1)
		}
	}
	logger.Info("done",
		"boards", st.Nodes,
		"winners", sol.WinningBoards,
		"dur", st.Duration.Round(time.Millisecond),
	)
}
