package model

// Stage is the screen currently owned by the session engine. Exactly
// one stage is active at a time.
type Stage string

const (
	StageWelcome      Stage = "Welcome"
	StageLogin        Stage = "Login"
	StagePatientInfo  Stage = "PatientInfo"
	StageAvatar       Stage = "Avatar"
	StageCongrats     Stage = "Congrats"
	StageVitals       Stage = "Vitals"
	StageStatus       Stage = "Status"
	StageDatabaseView Stage = "DatabaseView"
)
