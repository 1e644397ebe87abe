package scenario

import "errors"

// ErrNoPath is returned when a move targets a child room that does not exist.
var ErrNoPath = errors.New("no path in that direction")

// Direction is one of the two exits a room may have.
type Direction string

const (
	Left  Direction = "left"
	Right Direction = "right"
)

// Room is a node in the fixed map. Children are owned by their parent;
// the map owns the root.
type Room struct {
	Name  string `json:"name"`
	Clue  string `json:"clue,omitempty"` // Empty when the room holds no clue
	Left  *Room  `json:"left,omitempty"`
	Right *Room  `json:"right,omitempty"`
}

// NewRoom creates a room with an optional clue.
func NewRoom(name, clue string) *Room {
	return &Room{Name: name, Clue: clue}
}

// HasClue reports whether the room carries a clue.
func (r *Room) HasClue() bool {
	return r != nil && r.Clue != ""
}

// Traverse returns the child in the given direction. A missing child yields
// ErrNoPath and the caller keeps its cursor where it was.
func (r *Room) Traverse(dir Direction) (*Room, error) {
	if r == nil {
		return nil, ErrNoPath
	}
	var next *Room
	switch dir {
	case Left:
		next = r.Left
	case Right:
		next = r.Right
	}
	if next == nil {
		return nil, ErrNoPath
	}
	return next, nil
}

// Walk visits every room in pre-order. Returning false from fn stops the walk.
func (r *Room) Walk(fn func(*Room) bool) bool {
	if r == nil {
		return true
	}
	if !fn(r) {
		return false
	}
	return r.Left.Walk(fn) && r.Right.Walk(fn)
}
