package model

// PartType identifies a visual avatar part group.
type PartType string

const (
	PartHead    PartType = "head"
	PartClothes PartType = "clothes"
)

// Expression is the avatar pose derived from the latest evaluation.
type Expression string

const (
	ExpressionNormal Expression = "normal"
	ExpressionSad    Expression = "sad"
	ExpressionSick   Expression = "sick"
)

// Position is an anchor point in canvas units.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PartConfig is the effective placement of a part: where to anchor it
// and how much to scale it. Scale is a multiplier with no enforced
// bounds.
type PartConfig struct {
	Pos   Position `json:"pos"`
	Scale float64  `json:"scale"`
}

// PartDescriptor is a static catalog entry for one part.
type PartDescriptor struct {
	Name   string     `json:"name"`
	File   string     `json:"file"`
	Config PartConfig `json:"config"`
}
