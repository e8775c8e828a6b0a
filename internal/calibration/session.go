// Package calibration implements the ephemeral edit mode over part
// placements. A session layers live overrides on top of the static
// catalog; the overrides are seeded from the currently resolved
// configuration on entry and discarded on exit, so toggling the mode
// never visibly moves the avatar.
package calibration

import (
	"github.com/google/uuid"

	"github.com/jwalitptl/vitagotchi/internal/model"
	"github.com/jwalitptl/vitagotchi/internal/resolver"
	"github.com/jwalitptl/vitagotchi/pkg/errors"
	"github.com/jwalitptl/vitagotchi/pkg/logger"
)

// State is the session lifecycle state.
type State int

const (
	Inactive State = iota
	ActiveBuild
	ActiveReview
)

// ScaleDirection selects a multiplicative scale step.
type ScaleDirection int

const (
	ScaleUp ScaleDirection = iota
	ScaleDown
)

// One step compounds geometrically; repeated steps are s*1.02^n, not
// s+0.02n. No clamp is applied in either direction.
const (
	scaleStepUp   = 1.02
	scaleStepDown = 0.98
)

// Snapshot is a read-only view of the session for UI readouts.
type Snapshot struct {
	State            State
	ReviewExpression model.Expression
	Target           model.PartType
	Head             model.PartConfig
	Clothes          model.PartConfig
}

// HitTest maps a pointer position to the part under it, if any. The
// rendering layer owns geometry, so it supplies this on drag start.
type HitTest func(at model.Position) (model.PartType, bool)

type Session struct {
	id         uuid.UUID
	state      State
	reviewExpr model.Expression
	target     model.PartType
	overrides  map[model.PartType]model.PartConfig
	dragAnchor *model.Position
	log        *logger.Logger
}

func NewSession(log *logger.Logger) *Session {
	return &Session{state: Inactive, log: log}
}

func (s *Session) State() State { return s.state }

func (s *Session) Active() bool { return s.state != Inactive }

// ActivateBuild enters build-scoped calibration, seeded with the
// resolved placements of the currently selected parts.
func (s *Session) ActivateBuild(head, clothes model.PartConfig) {
	s.id = uuid.New()
	s.state = ActiveBuild
	s.reviewExpr = ""
	s.target = ""
	s.dragAnchor = nil
	s.overrides = map[model.PartType]model.PartConfig{
		model.PartHead:    head,
		model.PartClothes: clothes,
	}
	s.log.Info("calibration on", "session", s.id.String(), "scope", "build")
}

// ActivateReview enters review-scoped calibration for a sad or sick
// expression. The baseline pose has nothing to calibrate, so normal is
// rejected and the session stays inactive. Clothes get an inert
// zero-scale placeholder; only the head is editable in review.
func (s *Session) ActivateReview(expr model.Expression, head model.PartConfig) error {
	if expr != model.ExpressionSad && expr != model.ExpressionSick {
		return errors.NewValidation("calibration is only available for sad or sick expressions")
	}
	s.id = uuid.New()
	s.state = ActiveReview
	s.reviewExpr = expr
	s.target = ""
	s.dragAnchor = nil
	s.overrides = map[model.PartType]model.PartConfig{
		model.PartHead:    head,
		model.PartClothes: {},
	}
	s.log.Info("calibration on", "session", s.id.String(), "scope", "review", "expression", string(expr))
	return nil
}

// Deactivate discards all edits and returns to Inactive. The next
// activation reseeds from whatever is then resolved.
func (s *Session) Deactivate() {
	if s.state == Inactive {
		return
	}
	s.log.Info("calibration off", "session", s.id.String())
	s.state = Inactive
	s.reviewExpr = ""
	s.target = ""
	s.overrides = nil
	s.dragAnchor = nil
}

// SelectTarget chooses the part receiving subsequent edits. Clothes
// are only a valid target in build scope; selecting them in review
// redirects to the head.
func (s *Session) SelectTarget(part model.PartType) error {
	if s.state == Inactive {
		return errors.NewValidation("calibration is not active")
	}
	if s.state == ActiveReview && part == model.PartClothes {
		part = model.PartHead
	}
	s.target = part
	s.log.Debug("calibration target selected", "target", string(part))
	return nil
}

func (s *Session) Target() model.PartType { return s.target }

// BeginDrag anchors a pointer drag. With no target selected, the part
// under the pointer becomes the target (review scope only accepts the
// head). Without a resolvable target the drag is ignored.
func (s *Session) BeginDrag(at model.Position, hit HitTest) {
	if s.state == Inactive {
		return
	}
	if s.target == "" && hit != nil {
		part, ok := hit(at)
		if !ok {
			return
		}
		if s.state == ActiveReview && part != model.PartHead {
			return
		}
		s.target = part
	}
	if s.target == "" {
		s.log.Debug("drag ignored, no calibration target")
		return
	}
	anchor := at
	s.dragAnchor = &anchor
}

// Drag applies the pointer delta since the last event to the target's
// position. The placement updates on every motion event so the avatar
// tracks the pointer continuously.
func (s *Session) Drag(to model.Position) {
	if s.state == Inactive || s.target == "" || s.dragAnchor == nil {
		return
	}
	cfg := s.overrides[s.target]
	cfg.Pos.X += to.X - s.dragAnchor.X
	cfg.Pos.Y += to.Y - s.dragAnchor.Y
	s.overrides[s.target] = cfg
	*s.dragAnchor = to
}

// EndDrag releases the drag anchor; the accumulated position stays.
func (s *Session) EndDrag() {
	s.dragAnchor = nil
}

// StepScale multiplies the target's scale by one step. A step with no
// target selected is a logged no-op.
func (s *Session) StepScale(dir ScaleDirection) {
	if s.state == Inactive {
		return
	}
	if s.target == "" {
		s.log.Debug("scale step ignored, no calibration target")
		return
	}
	factor := scaleStepUp
	if dir == ScaleDown {
		factor = scaleStepDown
	}
	cfg := s.overrides[s.target]
	cfg.Scale *= factor
	s.overrides[s.target] = cfg
}

// Override implements resolver.CalibrationView. Build scope covers
// both parts on the build surface; review scope covers only the head,
// and only for the expression being calibrated.
func (s *Session) Override(ctx resolver.Context, part model.PartType, expr model.Expression) (model.PartConfig, bool) {
	switch {
	case s.state == ActiveBuild && ctx == resolver.ContextBuild:
		cfg, ok := s.overrides[part]
		return cfg, ok
	case s.state == ActiveReview && ctx == resolver.ContextReview &&
		part == model.PartHead && expr == s.reviewExpr:
		cfg, ok := s.overrides[part]
		return cfg, ok
	}
	return model.PartConfig{}, false
}

// Snapshot returns the current session view for status readouts.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:            s.state,
		ReviewExpression: s.reviewExpr,
		Target:           s.target,
	}
	if s.overrides != nil {
		snap.Head = s.overrides[model.PartHead]
		snap.Clothes = s.overrides[model.PartClothes]
	}
	return snap
}
