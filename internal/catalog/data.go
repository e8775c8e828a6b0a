package catalog

import "github.com/jwalitptl/vitagotchi/internal/model"

// Baseline head placement used when no table has an entry.
var (
	defaultHead = model.PartConfig{Pos: model.Position{X: 283, Y: 266}, Scale: 0.63}
	defaultSad  = model.PartConfig{Pos: model.Position{X: 283, Y: 266}, Scale: 0.63}
	defaultSick = model.PartConfig{Pos: model.Position{X: 283, Y: 266}, Scale: 0.63}
)

// Per-part placement overrides for the normal expression. Parts absent
// here fall back to defaultHead.
var headOverrides = map[string]model.PartConfig{
	"Head M4": {Pos: model.Position{X: 283, Y: 270}, Scale: 0.63},
	"Head M5": {Pos: model.Position{X: 283, Y: 270}, Scale: 0.63},
	"Head F1": {Pos: model.Position{X: 298, Y: 342}, Scale: 1.096},
	"Head F2": {Pos: model.Position{X: 296, Y: 309}, Scale: 1.000},
	"Head F3": {Pos: model.Position{X: 299, Y: 325}, Scale: 1.163},
	"Head F4": {Pos: model.Position{X: 299, Y: 325}, Scale: 1.163},
	"Head F5": {Pos: model.Position{X: 296, Y: 319}, Scale: 0.172},
}

var sadHeadOverrides = map[string]model.PartConfig{
	"Head M1": {Pos: model.Position{X: 286, Y: 256}, Scale: 1.417},
	"Head M2": {Pos: model.Position{X: 286, Y: 256}, Scale: 1.417},
	"Head M3": {Pos: model.Position{X: 284, Y: 273}, Scale: 0.316},
	"Head M4": {Pos: model.Position{X: 286, Y: 256}, Scale: 1.417},
	"Head M5": {Pos: model.Position{X: 286, Y: 256}, Scale: 1.417},
	"Head F1": {Pos: model.Position{X: 294, Y: 331}, Scale: 0.700},
	"Head F2": {Pos: model.Position{X: 292, Y: 308}, Scale: 0.232},
	"Head F3": {Pos: model.Position{X: 302, Y: 334}, Scale: 0.700},
	"Head F4": {Pos: model.Position{X: 300, Y: 326}, Scale: 0.700},
	"Head F5": {Pos: model.Position{X: 301, Y: 335}, Scale: 0.700},
}

var sickHeadOverrides = map[string]model.PartConfig{
	"Head M1": {Pos: model.Position{X: 286, Y: 256}, Scale: 1.417},
	"Head M2": {Pos: model.Position{X: 287, Y: 252}, Scale: 1.417},
	"Head M3": {Pos: model.Position{X: 286, Y: 257}, Scale: 0.254},
	"Head M4": {Pos: model.Position{X: 286, Y: 260}, Scale: 1.417},
	"Head M5": {Pos: model.Position{X: 280, Y: 259}, Scale: 1.417},
	"Head F1": {Pos: model.Position{X: 293, Y: 326}, Scale: 0.197},
	"Head F2": {Pos: model.Position{X: 292, Y: 308}, Scale: 0.232},
	"Head F3": {Pos: model.Position{X: 304, Y: 334}, Scale: 0.209},
	"Head F4": {Pos: model.Position{X: 300, Y: 326}, Scale: 0.209},
	"Head F5": {Pos: model.Position{X: 300, Y: 329}, Scale: 0.284},
}

var maleHeads = []model.PartDescriptor{
	{Name: "Head M1", File: "head_m1.png"},
	{Name: "Head M2", File: "head_m2.png"},
	{Name: "Head M3", File: "head_m3.png"},
	{Name: "Head M4", File: "head_m4.png"},
	{Name: "Head M5", File: "head_m5.png"},
}

var femaleHeads = []model.PartDescriptor{
	{Name: "Head F1", File: "head_f1.png"},
	{Name: "Head F2", File: "head_f2.png"},
	{Name: "Head F3", File: "head_f3.png"},
	{Name: "Head F4", File: "head_f4.png"},
	{Name: "Head F5", File: "head_f5.png"},
}

var maleClothes = []model.PartDescriptor{
	{Name: "Clothes M1", File: "clothes_m1.png", Config: model.PartConfig{Pos: model.Position{X: 280, Y: 541}, Scale: 0.65}},
	{Name: "Clothes M2", File: "clothes_m2.png", Config: model.PartConfig{Pos: model.Position{X: 286, Y: 541}, Scale: 0.65}},
	{Name: "Clothes M3", File: "clothes_m3.png", Config: model.PartConfig{Pos: model.Position{X: 293, Y: 515}, Scale: 0.62}},
	{Name: "Clothes M4", File: "clothes_m4.png", Config: model.PartConfig{Pos: model.Position{X: 285, Y: 534}, Scale: 0.61}},
	{Name: "Clothes M5", File: "clothes_m5.png", Config: model.PartConfig{Pos: model.Position{X: 287, Y: 536}, Scale: 0.52}},
}

var femaleClothes = []model.PartDescriptor{
	{Name: "Clothes F1", File: "clothes_f1.png", Config: model.PartConfig{Pos: model.Position{X: 298, Y: 539}, Scale: 1.087}},
	{Name: "Clothes F2", File: "clothes_f2.png", Config: model.PartConfig{Pos: model.Position{X: 303, Y: 536}, Scale: 1.087}},
	{Name: "Clothes F3", File: "clothes_f3.png", Config: model.PartConfig{Pos: model.Position{X: 305, Y: 536}, Scale: 1.087}},
	{Name: "Clothes F4", File: "clothes_f4.png", Config: model.PartConfig{Pos: model.Position{X: 299, Y: 539}, Scale: 1.131}},
	{Name: "Clothes F5", File: "clothes_f5.png", Config: model.PartConfig{Pos: model.Position{X: 301, Y: 541}, Scale: 1.131}},
}
