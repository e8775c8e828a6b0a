package model

import (
	"fmt"
	"time"
)

type Sex string

const (
	SexMale   Sex = "Male"
	SexFemale Sex = "Female"
)

// ParseSex normalizes free-form sex input to the enum.
func ParseSex(s string) (Sex, error) {
	switch s {
	case string(SexMale):
		return SexMale, nil
	case string(SexFemale):
		return SexFemale, nil
	}
	return "", fmt.Errorf("unknown sex %q", s)
}

// BirthdateLayout is the on-disk and operator-facing date format.
const BirthdateLayout = "01/02/2006"

// TimestampLayout is the vitals history timestamp format.
const TimestampLayout = "2006-01-02 15:04:05"

// VitalsReading is a single vitals submission. All four measurements
// are kept as entered text and parsed on evaluation; a reading is
// immutable once appended to a record's history.
type VitalsReading struct {
	Timestamp   string `json:"timestamp"`
	HeartRate   string `json:"hr"`
	Temperature string `json:"temp"`
	Systolic    string `json:"systolic"`
	Diastolic   string `json:"diastolic"`
}

// PatientRecord is the persisted patient row. The identifier is
// assigned once from the counter file and never changes; the vitals
// history is append-only in submission order.
type PatientRecord struct {
	PatientID       string          `json:"patient_id"`
	Name            string          `json:"patient_name"`
	Birthdate       string          `json:"birthdate"`
	Sex             Sex             `json:"sex"`
	ComputedAge     int             `json:"computed_age"`
	SelectedHead    string          `json:"selected_head"`
	SelectedClothes string          `json:"selected_clothes"`
	LatestVitals    *VitalsReading  `json:"vitals,omitempty"`
	VitalsHistory   []VitalsReading `json:"vitals_history"`
}

// Age recomputes the patient's age at the given time. The stored
// ComputedAge is only a snapshot; readers should prefer this.
func (p *PatientRecord) Age(now time.Time) (int, error) {
	birth, err := time.Parse(BirthdateLayout, p.Birthdate)
	if err != nil {
		return -1, fmt.Errorf("invalid birthdate %q: %w", p.Birthdate, err)
	}
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age, nil
}

// AppendReading appends to the history and refreshes the latest slot.
func (p *PatientRecord) AppendReading(r VitalsReading) {
	p.VitalsHistory = append(p.VitalsHistory, r)
	latest := r
	p.LatestVitals = &latest
}
