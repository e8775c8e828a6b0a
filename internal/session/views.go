package session

import (
	"github.com/jwalitptl/vitagotchi/internal/evaluator"
	"github.com/jwalitptl/vitagotchi/internal/model"
	"github.com/jwalitptl/vitagotchi/internal/render"
)

// StatusView is the full status-screen payload: patient header, the
// classification of the latest reading, and the avatar scene resolved
// for the derived expression.
type StatusView struct {
	PatientID  string
	Name       string
	Age        int
	Sex        model.Sex
	Tier       evaluator.Tier
	Message    string
	Expression model.Expression
	Scene      render.Scene
}

// LoginOutcome reports how a name lookup resolved. When NeedsBirthdate
// is set the caller must follow up with ResolveTiebreaker.
type LoginOutcome struct {
	NeedsBirthdate bool
	MatchCount     int
}

// PatientSummary is one row of the database view.
type PatientSummary struct {
	PatientID string
	Name      string
	Sex       model.Sex
	Age       int
}
