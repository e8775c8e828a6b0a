package repository

import (
	"context"

	"github.com/jwalitptl/vitagotchi/internal/model"
)

// All repository interfaces in one file
type (
	// PatientStore is the keyed persistence of patient records. A
	// missing or malformed backing file reads as an empty store;
	// writes use a reload-before-write merge, so the last writer wins.
	PatientStore interface {
		Get(ctx context.Context, id string) (*model.PatientRecord, error)
		Save(ctx context.Context, record *model.PatientRecord) error
		List(ctx context.Context) ([]*model.PatientRecord, error)
		// FindByName matches "first last" case-insensitively against
		// each record's stored name. Multiple matches are possible;
		// the caller disambiguates by birthdate.
		FindByName(ctx context.Context, firstName, lastName string) ([]*model.PatientRecord, error)
	}

	// CounterStore issues patient identifiers. The counter persists
	// independently of the record map so losing the store file never
	// causes identifier reuse.
	CounterStore interface {
		NextID(ctx context.Context) (string, error)
	}
)
