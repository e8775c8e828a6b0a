// Package resolver computes the effective placement of an avatar part
// by walking an ordered chain of sources, first match wins.
package resolver

import (
	"github.com/jwalitptl/vitagotchi/internal/catalog"
	"github.com/jwalitptl/vitagotchi/internal/model"
	"github.com/jwalitptl/vitagotchi/pkg/logger"
)

// Context names the rendering surface being resolved for. Calibration
// overrides only apply when their session scope matches it.
type Context string

const (
	// ContextBuild is the avatar-selection screen.
	ContextBuild Context = "build"
	// ContextReview is the status screen.
	ContextReview Context = "review"
)

// Request identifies one part to place.
type Request struct {
	Type       model.PartType
	Name       string
	Sex        model.Sex
	Expression model.Expression
}

// CalibrationView is what the resolver sees of a calibration session.
// Override reports the live placement for a part when the session is
// active and scoped to the given context and expression.
type CalibrationView interface {
	Override(ctx Context, part model.PartType, expr model.Expression) (model.PartConfig, bool)
}

type Resolver struct {
	catalog *catalog.Catalog
	log     *logger.Logger
}

func New(cat *catalog.Catalog, log *logger.Logger) *Resolver {
	return &Resolver{catalog: cat, log: log}
}

// Resolve returns the placement for a known part. Precedence, highest
// first:
//
//  1. live calibration override, when the session scope matches ctx
//  2. heads only: the expression's override table, falling back for
//     sad/sick to the normal table entry
//  3. the catalog entry (clothes) or the expression's hardcoded
//     default (heads)
//
// The chain always terminates in a concrete placement, so Resolve is
// total over catalog parts. Scale is returned as stored: no bounds are
// imposed anywhere in the chain. An unknown part name is a
// configuration fault; callers should skip rendering that part.
func (r *Resolver) Resolve(ctx Context, req Request, calib CalibrationView) (model.PartConfig, error) {
	desc, err := r.catalog.Part(req.Type, req.Sex, req.Name)
	if err != nil {
		r.log.Warn("part resolution failed", "part", req.Name, "sex", string(req.Sex))
		return model.PartConfig{}, err
	}

	sources := []func() (model.PartConfig, bool){
		func() (model.PartConfig, bool) { return r.fromCalibration(ctx, req, calib) },
		func() (model.PartConfig, bool) { return r.fromExpressionTable(req) },
		func() (model.PartConfig, bool) { return r.fromCatalog(req, desc) },
	}
	for _, source := range sources {
		if cfg, ok := source(); ok {
			return cfg, nil
		}
	}
	// fromCatalog never misses; unreachable.
	return desc.Config, nil
}

func (r *Resolver) fromCalibration(ctx Context, req Request, calib CalibrationView) (model.PartConfig, bool) {
	if calib == nil {
		return model.PartConfig{}, false
	}
	return calib.Override(ctx, req.Type, req.Expression)
}

func (r *Resolver) fromExpressionTable(req Request) (model.PartConfig, bool) {
	if req.Type != model.PartHead {
		return model.PartConfig{}, false
	}
	if cfg, ok := r.catalog.ExpressionOverride(req.Expression, req.Name); ok {
		return cfg, true
	}
	if req.Expression != model.ExpressionNormal {
		if cfg, ok := r.catalog.ExpressionOverride(model.ExpressionNormal, req.Name); ok {
			return cfg, true
		}
	}
	return model.PartConfig{}, false
}

func (r *Resolver) fromCatalog(req Request, desc model.PartDescriptor) (model.PartConfig, bool) {
	if req.Type == model.PartHead {
		return r.catalog.DefaultHead(req.Expression), true
	}
	return desc.Config, true
}
