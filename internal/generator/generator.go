package generator

// Triangle builds full 15-peg starting boards with a configurable
// starting hole.
type Triangle struct{}

func NewTriangle() *Triangle { return &Triangle{} }

// Note: the Start method is implemented in triangle.go.
