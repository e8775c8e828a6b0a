// Package catalog holds the static table of avatar parts. The data is
// versioned with the software and read-only at runtime; calibration
// sessions layer their edits on top of it, never into it.
package catalog

import (
	"fmt"
	"strings"

	"github.com/jwalitptl/vitagotchi/internal/model"
	"github.com/jwalitptl/vitagotchi/pkg/errors"
)

type Catalog struct {
	heads   map[model.Sex][]model.PartDescriptor
	clothes map[model.Sex][]model.PartDescriptor
}

func New() *Catalog {
	return &Catalog{
		heads: map[model.Sex][]model.PartDescriptor{
			model.SexMale:   maleHeads,
			model.SexFemale: femaleHeads,
		},
		clothes: map[model.Sex][]model.PartDescriptor{
			model.SexMale:   maleClothes,
			model.SexFemale: femaleClothes,
		},
	}
}

// Heads lists the head parts for a sex in catalog order.
func (c *Catalog) Heads(sex model.Sex) []model.PartDescriptor {
	return c.heads[sex]
}

// Clothes lists the clothing parts for a sex in catalog order.
func (c *Catalog) Clothes(sex model.Sex) []model.PartDescriptor {
	return c.clothes[sex]
}

// Part looks up a descriptor by type, sex and name. An unknown name is
// a configuration fault, not a crash: callers render nothing for it.
func (c *Catalog) Part(partType model.PartType, sex model.Sex, name string) (model.PartDescriptor, error) {
	var group []model.PartDescriptor
	switch partType {
	case model.PartHead:
		group = c.heads[sex]
	case model.PartClothes:
		group = c.clothes[sex]
	default:
		return model.PartDescriptor{}, errors.NewConfiguration(
			fmt.Sprintf("unknown part type %q", partType), nil)
	}
	for _, d := range group {
		if d.Name == name {
			return d, nil
		}
	}
	return model.PartDescriptor{}, errors.NewConfiguration(
		fmt.Sprintf("part %q not in %s/%s catalog", name, partType, sex), nil)
}

// ExpressionOverride returns the per-part placement for the given
// expression table, if one exists.
func (c *Catalog) ExpressionOverride(expr model.Expression, name string) (model.PartConfig, bool) {
	var table map[string]model.PartConfig
	switch expr {
	case model.ExpressionNormal:
		table = headOverrides
	case model.ExpressionSad:
		table = sadHeadOverrides
	case model.ExpressionSick:
		table = sickHeadOverrides
	default:
		return model.PartConfig{}, false
	}
	cfg, ok := table[name]
	return cfg, ok
}

// DefaultHead is the terminal fallback placement for an expression.
func (c *Catalog) DefaultHead(expr model.Expression) model.PartConfig {
	switch expr {
	case model.ExpressionSad:
		return defaultSad
	case model.ExpressionSick:
		return defaultSick
	default:
		return defaultHead
	}
}

// HeadFile maps a head's base asset file to its expression variant
// (head_m1.png -> head_m1_sad.png).
func (c *Catalog) HeadFile(d model.PartDescriptor, expr model.Expression) string {
	if expr == model.ExpressionNormal {
		return d.File
	}
	base := strings.TrimSuffix(d.File, ".png")
	return fmt.Sprintf("%s_%s.png", base, expr)
}
