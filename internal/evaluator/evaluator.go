// Package evaluator derives a health status and avatar expression from
// a vitals reading. Evaluation is pure: no state, no side effects.
package evaluator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jwalitptl/vitagotchi/internal/model"
)

// Tier is the operator-facing status classification.
type Tier string

const (
	TierHealthy        Tier = "Healthy"
	TierNeedsAttention Tier = "Needs Attention"
	TierUrgent         Tier = "Needs Urgent Attention"
	TierInvalid        Tier = "Invalid Input"
)

// Physiological bands. A value outside its band counts as one
// abnormality; the tier depends only on the abnormality count.
const (
	MinHeartRate = 60
	MaxHeartRate = 100
	MinTemp      = 36.5
	MaxTemp      = 37.5
	MinSystolic  = 100
	MaxSystolic  = 120
	MinDiastolic = 60
	MaxDiastolic = 80
)

const healthyMessage = "All vitals are in the normal range. Great job!"

// Result is the full evaluation outcome for one reading.
type Result struct {
	Expression    model.Expression
	Tier          Tier
	Message       string
	Abnormalities []string
}

// Evaluate classifies a reading. Heart rate and both pressures must
// parse as integers and temperature as a decimal; otherwise the result
// is the defined invalid-input fallback, not an error. All four range
// checks run unconditionally so the message lists every abnormality.
func Evaluate(r model.VitalsReading) Result {
	hr, errHR := strconv.Atoi(r.HeartRate)
	temp, errTemp := strconv.ParseFloat(r.Temperature, 64)
	sys, errSys := strconv.Atoi(r.Systolic)
	dia, errDia := strconv.Atoi(r.Diastolic)
	if errHR != nil || errTemp != nil || errSys != nil || errDia != nil {
		return Result{
			Expression: model.ExpressionSad,
			Tier:       TierInvalid,
			Message:    "Invalid data entered.",
		}
	}

	var abnormalities []string
	if hr < MinHeartRate || hr > MaxHeartRate {
		abnormalities = append(abnormalities, fmt.Sprintf(
			"Heart Rate of %d bpm is outside the normal range (60-100 bpm).", hr))
	}
	if temp < MinTemp || temp > MaxTemp {
		abnormalities = append(abnormalities, fmt.Sprintf(
			"Temperature of %g °C is outside the normal range (36.5-37.5 °C).", temp))
	}
	if sys < MinSystolic || sys > MaxSystolic {
		abnormalities = append(abnormalities, fmt.Sprintf(
			"Systolic BP of %d mmHg is outside the normal range (100-120 mmHg).", sys))
	}
	if dia < MinDiastolic || dia > MaxDiastolic {
		abnormalities = append(abnormalities, fmt.Sprintf(
			"Diastolic BP of %d mmHg is outside the normal range (60-80 mmHg).", dia))
	}

	switch len(abnormalities) {
	case 0:
		return Result{
			Expression: model.ExpressionNormal,
			Tier:       TierHealthy,
			Message:    healthyMessage,
		}
	case 1:
		return Result{
			Expression:    model.ExpressionSad,
			Tier:          TierNeedsAttention,
			Message:       strings.Join(abnormalities, "\n"),
			Abnormalities: abnormalities,
		}
	default:
		return Result{
			Expression:    model.ExpressionSick,
			Tier:          TierUrgent,
			Message:       strings.Join(abnormalities, "\n"),
			Abnormalities: abnormalities,
		}
	}
}
