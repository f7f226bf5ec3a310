package termadapter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cbjohns433/triangle-solitaire/internal/domain"
	"github.com/cbjohns433/triangle-solitaire/internal/infrastructure/term"
	"github.com/cbjohns433/triangle-solitaire/internal/ports"
)

// Mode selects how boards are presented.
type Mode int

const (
	// Plain prints each board once with no pacing or screen control.
	Plain Mode = iota
	// Visual clears and repositions the display and paces frames.
	Visual
	// Debug prints search-tree tracing and never clears or paces,
	// even when visual mode was also requested.
	Debug
)

// Renderer writes boards to a terminal in the fixed text layout.
type Renderer struct {
	Mode       Mode
	Screen     *term.Screen
	FrameDelay time.Duration
}

func New(mode Mode, screen *term.Screen) *Renderer {
	return &Renderer{Mode: mode, Screen: screen, FrameDelay: time.Second}
}

// Begin prepares the display. Call once before the first frame.
func (r *Renderer) Begin() {
	if r.Mode == Visual {
		r.Screen.Clear()
		r.Screen.Home()
	}
}

func (r *Renderer) Render(b *domain.Board) error {
	if r.Mode == Visual {
		r.Screen.Home()
	}
	if _, err := io.WriteString(r.Screen.W, Format(b)); err != nil {
		return err
	}
	if r.Mode == Visual {
		r.Screen.Pause(r.FrameDelay)
	}
	return nil
}

// Tracer returns a search tracer that prints the debug header and
// board for every visited node, or nil outside debug mode.
func (r *Renderer) Tracer() ports.Tracer {
	if r.Mode != Debug {
		return nil
	}
	return func(v ports.Visit) {
		if v.Pegs == 1 {
			fmt.Fprintln(r.Screen.W, "Board is a winner!")
		}
		prev := 0
		if v.Board.Prev != nil {
			prev = v.Board.Prev.Num
		}
		fmt.Fprintf(r.Screen.W, "DEPTH: %d COUNT: %d BOARDNUM %d PREV %d\n", v.Depth, v.Pegs, v.Board.Num, prev)
		io.WriteString(r.Screen.W, Format(v.Board))
	}
}

// Format renders one board: a rule line, the nine grid rows with
// triangle rows labelled 1-5, X for each peg (the last-moved peg in
// inverse video), a closing rule line and a blank line.
func Format(b *domain.Board) string {
	var sb strings.Builder
	sb.WriteString("++++++++++++++++++++++\n")
	for row := 0; row < domain.Rows; row++ {
		if row >= 2 && row <= 6 {
			fmt.Fprintf(&sb, "%1d  ", row-1)
		}
		for col := 0; col < domain.Cols; col++ {
			if b.Cells[row][col] != domain.Occupied {
				sb.WriteByte(' ')
				continue
			}
			if (domain.CellCoord{Row: row, Col: col}) == b.Last {
				sb.WriteString(term.InverseVideo)
				sb.WriteByte('X')
				sb.WriteString(term.NormalVideo)
			} else {
				sb.WriteByte('X')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("----------------------\n\n")
	return sb.String()
}
