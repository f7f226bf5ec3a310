package domain

// Cell is the state of one grid position.
type Cell uint8

const (
	Invalid Cell = iota // border padding outside the triangle
	Empty
	Occupied
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Occupied:
		return "occupied"
	}
	return "invalid"
}
