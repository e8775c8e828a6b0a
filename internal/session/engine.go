// Package session owns the screen flow. All transient operator state
// lives in the Engine; every operation is an explicit command that
// either advances the stage with a payload or fails with a message
// while the stage stays put.
package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jwalitptl/vitagotchi/internal/calibration"
	"github.com/jwalitptl/vitagotchi/internal/catalog"
	"github.com/jwalitptl/vitagotchi/internal/evaluator"
	"github.com/jwalitptl/vitagotchi/internal/model"
	"github.com/jwalitptl/vitagotchi/internal/render"
	"github.com/jwalitptl/vitagotchi/internal/repository"
	"github.com/jwalitptl/vitagotchi/internal/resolver"
	"github.com/jwalitptl/vitagotchi/pkg/errors"
	"github.com/jwalitptl/vitagotchi/pkg/logger"
)

type avatarSelection struct {
	Head    string
	Clothes string
}

// Engine drives the stage machine for one operator session.
type Engine struct {
	id       uuid.UUID
	store    repository.PatientStore
	counter  repository.CounterStore
	catalog  *catalog.Catalog
	resolver *resolver.Resolver
	calib    *calibration.Session
	validate *validator.Validate
	log      *logger.Logger
	now      func() time.Time

	stage     model.Stage
	current   *model.PatientRecord
	selection avatarSelection
	lastEval  *evaluator.Result
	tiebreak  []*model.PatientRecord
}

func NewEngine(store repository.PatientStore, counter repository.CounterStore, cat *catalog.Catalog, log *logger.Logger) (*Engine, error) {
	v := validator.New()
	if err := registerValidators(v); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}
	id := uuid.New()
	e := &Engine{
		id:       id,
		store:    store,
		counter:  counter,
		catalog:  cat,
		resolver: resolver.New(cat, log),
		calib:    calibration.NewSession(log),
		validate: v,
		log:      log.WithFields(map[string]interface{}{"session": id.String()}),
		now:      time.Now,
		stage:    model.StageWelcome,
	}
	return e, nil
}

func (e *Engine) Stage() model.Stage { return e.stage }

// CurrentPatient returns the record in session, nil before login or
// registration.
func (e *Engine) CurrentPatient() *model.PatientRecord { return e.current }

// Selection returns the pending avatar choices on the build screen.
func (e *Engine) Selection() (head, clothes string) {
	return e.selection.Head, e.selection.Clothes
}

// setStage moves the machine and drops any calibration session whose
// scoped screen is no longer visible.
func (e *Engine) setStage(stage model.Stage) {
	e.stage = stage
	switch e.calib.State() {
	case calibration.ActiveBuild:
		if stage != model.StageAvatar {
			e.calib.Deactivate()
		}
	case calibration.ActiveReview:
		if stage != model.StageStatus {
			e.calib.Deactivate()
		}
	}
}

// Reset clears all transient session data and returns to Welcome. The
// persisted store is untouched.
func (e *Engine) Reset() {
	e.calib.Deactivate()
	e.current = nil
	e.selection = avatarSelection{}
	e.lastEval = nil
	e.tiebreak = nil
	e.stage = model.StageWelcome
}

func (e *Engine) requireStage(stage model.Stage, action string) error {
	if e.stage != stage {
		return errors.NewValidation(fmt.Sprintf("%s is not available on the %s screen", action, e.stage))
	}
	return nil
}

// ===== Welcome =====

// NewPatient opens the registration screen.
func (e *Engine) NewPatient() error {
	if err := e.requireStage(model.StageWelcome, "new patient"); err != nil {
		return err
	}
	e.setStage(model.StagePatientInfo)
	return nil
}

// Login opens the existing-patient login screen.
func (e *Engine) Login() error {
	if err := e.requireStage(model.StageWelcome, "login"); err != nil {
		return err
	}
	e.setStage(model.StageLogin)
	return nil
}

// BrowseDatabase lists every stored patient and opens the database
// view.
func (e *Engine) BrowseDatabase(ctx context.Context) ([]PatientSummary, error) {
	if err := e.requireStage(model.StageWelcome, "database view"); err != nil {
		return nil, err
	}
	records, err := e.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	summaries := make([]PatientSummary, 0, len(records))
	for _, r := range records {
		summaries = append(summaries, PatientSummary{
			PatientID: r.PatientID,
			Name:      r.Name,
			Sex:       r.Sex,
			Age:       e.ageOf(r),
		})
	}
	e.setStage(model.StageDatabaseView)
	return summaries, nil
}

// PatientHistory returns a patient's vitals history, newest first.
func (e *Engine) PatientHistory(ctx context.Context, patientID string) ([]model.VitalsReading, error) {
	record, err := e.store.Get(ctx, patientID)
	if err != nil {
		return nil, err
	}
	history := make([]model.VitalsReading, 0, len(record.VitalsHistory))
	for i := len(record.VitalsHistory) - 1; i >= 0; i-- {
		history = append(history, record.VitalsHistory[i])
	}
	return history, nil
}

// ===== Registration =====

// SubmitPatientInfo validates the registration form, assigns the next
// patient identifier and opens the avatar screen. The record is not
// persisted until the avatar is confirmed.
func (e *Engine) SubmitPatientInfo(ctx context.Context, form PatientInfoForm) error {
	if err := e.requireStage(model.StagePatientInfo, "patient registration"); err != nil {
		return err
	}
	if form.FirstName == "" {
		return errors.NewValidation("Please enter a first name.")
	}
	if form.LastName == "" {
		return errors.NewValidation("Please enter a last name.")
	}
	if form.Month == "" || form.Day == "" || form.Year == "" {
		return errors.NewValidation("Please enter a complete birthdate.")
	}
	if err := e.validate.Struct(form); err != nil {
		return errors.NewValidation("Names may only contain letters and spaces.")
	}
	if msgs := validateBirthdate(form.Month, form.Day, form.Year); len(msgs) > 0 {
		return errors.NewValidation("Invalid birthdate:\n" + strings.Join(msgs, "\n"))
	}
	sex, err := model.ParseSex(form.Sex)
	if err != nil {
		return errors.NewValidation("Please select a sex.")
	}

	id, err := e.counter.NextID(ctx)
	if err != nil {
		return fmt.Errorf("failed to assign patient ID: %w", err)
	}

	record := &model.PatientRecord{
		PatientID:     id,
		Name:          form.fullName(),
		Birthdate:     form.birthdate(),
		Sex:           sex,
		VitalsHistory: []model.VitalsReading{},
	}
	record.ComputedAge = e.ageOf(record)

	e.current = record
	e.selection = avatarSelection{}
	e.lastEval = nil
	e.setStage(model.StageAvatar)
	e.log.Info("patient registered", "patient_id", id)
	return nil
}

// ===== Avatar build =====

// SelectHead picks a head part for the avatar preview.
func (e *Engine) SelectHead(name string) error {
	if err := e.requireStage(model.StageAvatar, "head selection"); err != nil {
		return err
	}
	if _, err := e.catalog.Part(model.PartHead, e.current.Sex, name); err != nil {
		return err
	}
	e.selection.Head = name
	return nil
}

// SelectClothes picks a clothing part for the avatar preview.
func (e *Engine) SelectClothes(name string) error {
	if err := e.requireStage(model.StageAvatar, "clothes selection"); err != nil {
		return err
	}
	if _, err := e.catalog.Part(model.PartClothes, e.current.Sex, name); err != nil {
		return err
	}
	e.selection.Clothes = name
	return nil
}

// ConfirmAvatar persists the new record with its avatar choice and
// opens the congratulations screen.
func (e *Engine) ConfirmAvatar(ctx context.Context) error {
	if err := e.requireStage(model.StageAvatar, "avatar confirmation"); err != nil {
		return err
	}
	if e.selection.Head == "" || e.selection.Clothes == "" {
		return errors.NewValidation("Please select a head and clothes.")
	}
	e.current.SelectedHead = e.selection.Head
	e.current.SelectedClothes = e.selection.Clothes
	if err := e.store.Save(ctx, e.current); err != nil {
		return fmt.Errorf("failed to save patient: %w", err)
	}
	e.setStage(model.StageCongrats)
	e.log.Info("avatar confirmed", "patient_id", e.current.PatientID,
		"head", e.selection.Head, "clothes", e.selection.Clothes)
	return nil
}

// ProceedToVitals moves from the congratulations screen to vitals
// capture.
func (e *Engine) ProceedToVitals() error {
	if err := e.requireStage(model.StageCongrats, "vitals capture"); err != nil {
		return err
	}
	e.setStage(model.StageVitals)
	return nil
}

// ===== Login =====

// SubmitLogin looks up an existing patient by name. Zero matches fail;
// one match logs in; several matches require a birthdate tiebreak.
func (e *Engine) SubmitLogin(ctx context.Context, form LoginForm) (*LoginOutcome, error) {
	if err := e.requireStage(model.StageLogin, "login"); err != nil {
		return nil, err
	}
	if form.FirstName == "" {
		return nil, errors.NewValidation("Please enter a first name.")
	}
	if form.LastName == "" {
		return nil, errors.NewValidation("Please enter a last name.")
	}
	if err := e.validate.Struct(form); err != nil {
		return nil, errors.NewValidation("Names may only contain letters and spaces.")
	}

	matches, err := e.store.FindByName(ctx, form.FirstName, form.LastName)
	if err != nil {
		return nil, fmt.Errorf("failed to look up patient: %w", err)
	}
	switch len(matches) {
	case 0:
		return nil, errors.NewNotFound("patient", nil)
	case 1:
		e.adoptPatient(matches[0])
		return &LoginOutcome{MatchCount: 1}, nil
	default:
		e.tiebreak = matches
		return &LoginOutcome{NeedsBirthdate: true, MatchCount: len(matches)}, nil
	}
}

// ResolveTiebreaker picks among duplicate-name candidates by exact
// birthdate string match (MM/DD/YYYY). Near matches get no credit.
func (e *Engine) ResolveTiebreaker(birthdate string) error {
	if err := e.requireStage(model.StageLogin, "tiebreaker"); err != nil {
		return err
	}
	if len(e.tiebreak) == 0 {
		return errors.NewValidation("no login pending disambiguation")
	}
	if birthdate == "" {
		return errors.NewValidation("Please enter a full birthdate.")
	}
	for _, candidate := range e.tiebreak {
		if candidate.Birthdate == birthdate {
			e.adoptPatient(candidate)
			return nil
		}
	}
	return &errors.AppError{Code: errors.ErrNotFound, Message: "Birthdate does not match."}
}

func (e *Engine) adoptPatient(record *model.PatientRecord) {
	e.current = record
	e.selection = avatarSelection{Head: record.SelectedHead, Clothes: record.SelectedClothes}
	e.tiebreak = nil
	e.lastEval = nil
	e.setStage(model.StageVitals)
	e.log.Info("patient logged in", "patient_id", record.PatientID)
}

// ===== Vitals and status =====

// SubmitVitals appends a reading, persists it, evaluates it and opens
// the status screen. All validation happens before any mutation.
func (e *Engine) SubmitVitals(ctx context.Context, form VitalsForm) (*StatusView, error) {
	if err := e.requireStage(model.StageVitals, "vitals submission"); err != nil {
		return nil, err
	}
	if e.current == nil {
		e.Reset()
		return nil, errors.NewInternal(fmt.Errorf("no patient in session"))
	}

	var empty []string
	for _, field := range []struct{ label, value string }{
		{"Heart Rate", form.HeartRate},
		{"Temperature", form.Temperature},
		{"Systolic BP", form.Systolic},
		{"Diastolic BP", form.Diastolic},
	} {
		if field.value == "" {
			empty = append(empty, field.label)
		}
	}
	if len(empty) > 0 {
		return nil, errors.NewValidation("Please fill in all vitals fields:\n- " + strings.Join(empty, "\n- "))
	}
	if err := e.validate.Struct(form); err != nil {
		return nil, errors.NewValidation("Vitals contain invalid characters or are out of range.")
	}

	reading := model.VitalsReading{
		Timestamp:   e.now().Format(model.TimestampLayout),
		HeartRate:   form.HeartRate,
		Temperature: form.Temperature,
		Systolic:    form.Systolic,
		Diastolic:   form.Diastolic,
	}
	e.current.AppendReading(reading)
	if err := e.store.Save(ctx, e.current); err != nil {
		return nil, fmt.Errorf("failed to save vitals: %w", err)
	}

	// Evaluate, then resolve, then render. Never render on a stale
	// evaluation.
	result := evaluator.Evaluate(reading)
	e.lastEval = &result
	e.setStage(model.StageStatus)
	return e.statusView(), nil
}

// RenderStatus rebuilds the status payload from the last evaluation,
// for re-renders during calibration.
func (e *Engine) RenderStatus() (*StatusView, error) {
	if err := e.requireStage(model.StageStatus, "status render"); err != nil {
		return nil, err
	}
	if e.lastEval == nil {
		return nil, errors.NewInternal(fmt.Errorf("no evaluation in session"))
	}
	return e.statusView(), nil
}

func (e *Engine) statusView() *StatusView {
	result := *e.lastEval
	return &StatusView{
		PatientID:  e.current.PatientID,
		Name:       e.current.Name,
		Age:        e.ageOf(e.current),
		Sex:        e.current.Sex,
		Tier:       result.Tier,
		Message:    result.Message,
		Expression: result.Expression,
		Scene: e.buildScene(resolver.ContextReview, e.current.SelectedHead,
			e.current.SelectedClothes, result.Expression),
	}
}

// RenderPreview resolves the build-screen avatar scene for the current
// selections, always in the normal expression.
func (e *Engine) RenderPreview() (render.Scene, error) {
	if err := e.requireStage(model.StageAvatar, "avatar preview"); err != nil {
		return nil, err
	}
	return e.buildScene(resolver.ContextBuild, e.selection.Head, e.selection.Clothes,
		model.ExpressionNormal), nil
}

// buildScene resolves each chosen part into a render instruction. A
// part the catalog does not know renders nothing; the rest of the
// scene survives.
func (e *Engine) buildScene(ctx resolver.Context, head, clothes string, expr model.Expression) render.Scene {
	var scene render.Scene
	sex := e.current.Sex
	if head != "" {
		req := resolver.Request{Type: model.PartHead, Name: head, Sex: sex, Expression: expr}
		if cfg, err := e.resolver.Resolve(ctx, req, e.calib); err == nil {
			desc, _ := e.catalog.Part(model.PartHead, sex, head)
			scene = append(scene, render.Instruction{
				Part:  model.PartHead,
				Name:  head,
				File:  e.catalog.HeadFile(desc, expr),
				Pos:   cfg.Pos,
				Scale: cfg.Scale,
				Z:     render.ZHead,
			})
		}
	}
	if clothes != "" {
		req := resolver.Request{Type: model.PartClothes, Name: clothes, Sex: sex, Expression: expr}
		if cfg, err := e.resolver.Resolve(ctx, req, e.calib); err == nil {
			desc, _ := e.catalog.Part(model.PartClothes, sex, clothes)
			scene = append(scene, render.Instruction{
				Part:  model.PartClothes,
				Name:  clothes,
				File:  desc.File,
				Pos:   cfg.Pos,
				Scale: cfg.Scale,
				Z:     render.ZClothes,
			})
		}
	}
	return scene
}

func (e *Engine) ageOf(record *model.PatientRecord) int {
	age, err := record.Age(e.now())
	if err != nil {
		e.log.Warn("invalid birthdate on record", "patient_id", record.PatientID)
		return -1
	}
	return age
}
