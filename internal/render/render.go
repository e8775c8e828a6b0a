// Package render defines the instructions the core hands to an
// external drawing surface. The core never rasterizes or loads image
// files; it only says what goes where.
package render

import "github.com/jwalitptl/vitagotchi/internal/model"

// Z-order: clothes always draw above the head.
const (
	ZHead    = 0
	ZClothes = 1
)

// Instruction places one part asset on the canvas.
type Instruction struct {
	Part  model.PartType
	Name  string
	File  string
	Pos   model.Position
	Scale float64
	Z     int
}

// Scene is an ordered instruction list, back to front.
type Scene []Instruction

// Renderer is the external drawing collaborator.
type Renderer interface {
	Render(scene Scene)
}
