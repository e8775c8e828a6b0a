package session

import (
	"github.com/jwalitptl/vitagotchi/internal/calibration"
	"github.com/jwalitptl/vitagotchi/internal/model"
	"github.com/jwalitptl/vitagotchi/internal/resolver"
	"github.com/jwalitptl/vitagotchi/pkg/errors"
)

// Fallback clothes seed for a build session with nothing selected yet.
var unselectedClothesSeed = model.PartConfig{Pos: model.Position{X: 300, Y: 500}, Scale: 1.0}

// ToggleCalibration flips calibration mode. Activation is scoped to
// the visible screen: the avatar screen opens a build session over
// both parts; the status screen opens a review session over the head,
// and only when the derived expression is sad or sick. The session is
// seeded from the currently resolved placements, so entering the mode
// never moves anything.
func (e *Engine) ToggleCalibration() error {
	if e.calib.Active() {
		e.calib.Deactivate()
		return nil
	}

	switch e.stage {
	case model.StageAvatar:
		e.calib.ActivateBuild(e.seedHead(resolver.ContextBuild, e.selection.Head, model.ExpressionNormal),
			e.seedClothes(e.selection.Clothes))
		return nil
	case model.StageStatus:
		if e.lastEval == nil {
			return errors.NewValidation("no evaluation to calibrate against")
		}
		expr := e.lastEval.Expression
		if expr == model.ExpressionNormal {
			return errors.NewValidation("calibration is only available for sad or sick expressions")
		}
		head := e.seedHead(resolver.ContextReview, e.current.SelectedHead, expr)
		return e.calib.ActivateReview(expr, head)
	default:
		return errors.NewValidation("calibration is only available on the avatar or status screens")
	}
}

// CalibrationActive reports whether a session is live.
func (e *Engine) CalibrationActive() bool { return e.calib.Active() }

// CalibrationSnapshot exposes the live override readout for the UI.
func (e *Engine) CalibrationSnapshot() calibration.Snapshot { return e.calib.Snapshot() }

// SelectCalibrationTarget chooses which part subsequent edits hit.
func (e *Engine) SelectCalibrationTarget(part model.PartType) error {
	return e.calib.SelectTarget(part)
}

// CalibrationBeginDrag starts a pointer drag over the active surface.
func (e *Engine) CalibrationBeginDrag(at model.Position, hit calibration.HitTest) {
	e.calib.BeginDrag(at, hit)
}

// CalibrationDrag feeds one pointer motion event into the session.
func (e *Engine) CalibrationDrag(to model.Position) {
	e.calib.Drag(to)
}

// CalibrationEndDrag releases the drag.
func (e *Engine) CalibrationEndDrag() {
	e.calib.EndDrag()
}

// CalibrationStepScale applies one multiplicative scale step.
func (e *Engine) CalibrationStepScale(dir calibration.ScaleDirection) {
	e.calib.StepScale(dir)
}

// seedHead resolves the head placement a calibration session starts
// from. With no selection, or an unknown part, the expression default
// still yields a valid seed.
func (e *Engine) seedHead(ctx resolver.Context, name string, expr model.Expression) model.PartConfig {
	if name != "" {
		req := resolver.Request{Type: model.PartHead, Name: name, Sex: e.current.Sex, Expression: expr}
		if cfg, err := e.resolver.Resolve(ctx, req, nil); err == nil {
			return cfg
		}
	}
	return e.catalog.DefaultHead(expr)
}

func (e *Engine) seedClothes(name string) model.PartConfig {
	if name != "" {
		req := resolver.Request{Type: model.PartClothes, Name: name, Sex: e.current.Sex, Expression: model.ExpressionNormal}
		if cfg, err := e.resolver.Resolve(resolver.ContextBuild, req, nil); err == nil {
			return cfg
		}
	}
	return unselectedClothesSeed
}
