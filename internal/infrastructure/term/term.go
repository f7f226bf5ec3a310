package term

import (
	"fmt"
	"io"
	"time"
)

// ANSI escape sequences used by the visual renderer.
const (
	ClearScreen  = "\033[2J"
	CursorHome   = "\033[H"
	InverseVideo = "\033[7m"
	NormalVideo  = "\033[m"
)

// Screen drives a terminal through a writer. Sleep is pluggable so
// tests run without real delays.
type Screen struct {
	W     io.Writer
	Sleep func(time.Duration)
}

func NewScreen(w io.Writer) *Screen {
	return &Screen{W: w, Sleep: time.Sleep}
}

func (s *Screen) Clear() { fmt.Fprint(s.W, ClearScreen) }
func (s *Screen) Home()  { fmt.Fprint(s.W, CursorHome) }

func (s *Screen) Pause(d time.Duration) {
	if s.Sleep != nil {
		s.Sleep(d)
	}
}
