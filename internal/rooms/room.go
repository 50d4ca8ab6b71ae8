// Package rooms holds the static exploration tree: rooms with an optional
// clue and up to two exits.
package rooms

import "context"

// Room is one location of the map. A room with an empty Clue carries no clue.
// Left and Right are owned children; a room is never shared between parents.
type Room struct {
	Name  string
	Clue  string
	Left  *Room
	Right *Room
}

// View is the read projection of a room handed to the explorer.
type View struct {
	Name      string
	Clue      string
	HasClue   bool
	HasLeft   bool
	HasRight  bool
	LeftName  string
	RightName string
}

// Terminal reports whether the view has no exits.
func (v View) Terminal() bool {
	return !v.HasLeft && !v.HasRight
}

// Supplier produces the root of a map. The explorer does not care how it was built.
type Supplier interface {
	Supply(ctx context.Context) (*Room, error)
}

// SupplierFunc adapts a plain function to Supplier.
type SupplierFunc func(ctx context.Context) (*Room, error)

func (f SupplierFunc) Supply(ctx context.Context) (*Room, error) {
	return f(ctx)
}

func (r *Room) Visit() View {
	v := View{
		Name:     r.Name,
		Clue:     r.Clue,
		HasClue:  r.Clue != "",
		HasLeft:  r.Left != nil,
		HasRight: r.Right != nil,
	}
	if r.Left != nil {
		v.LeftName = r.Left.Name
	}
	if r.Right != nil {
		v.RightName = r.Right.Name
	}
	return v
}

func (r *Room) Terminal() bool {
	return r.Left == nil && r.Right == nil
}

// Count returns the number of rooms in the subtree rooted at r.
func (r *Room) Count() int {
	if r == nil {
		return 0
	}
	return 1 + r.Left.Count() + r.Right.Count()
}

// Release unlinks the subtree in post-order and returns how many rooms were
// released. Every room is released exactly once.
func (r *Room) Release() int {
	if r == nil {
		return 0
	}
	released := r.Left.Release() + r.Right.Release()
	r.Left = nil
	r.Right = nil
	return released + 1
}
