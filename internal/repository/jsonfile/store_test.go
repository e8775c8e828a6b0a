package jsonfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/vitagotchi/internal/model"
	"github.com/jwalitptl/vitagotchi/internal/repository/jsonfile"
	"github.com/jwalitptl/vitagotchi/pkg/errors"
	"github.com/jwalitptl/vitagotchi/pkg/logger"
)

func newStore(t *testing.T) (*jsonfile.PatientStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patient_database.json")
	return jsonfile.NewPatientStore(path, logger.Nop()), path
}

func sampleRecord(id string) *model.PatientRecord {
	return &model.PatientRecord{
		PatientID:       id,
		Name:            "Ana Lee",
		Birthdate:       "01/02/2010",
		Sex:             model.SexFemale,
		ComputedAge:     16,
		SelectedHead:    "Head F2",
		SelectedClothes: "Clothes F1",
	}
}

func TestStoreRoundTrip(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	record := sampleRecord("00001")
	record.AppendReading(model.VitalsReading{
		Timestamp: "2026-08-30 10:00:00", HeartRate: "72",
		Temperature: "37.0", Systolic: "110", Diastolic: "70",
	})
	record.AppendReading(model.VitalsReading{
		Timestamp: "2026-08-30 11:00:00", HeartRate: "110",
		Temperature: "38.0", Systolic: "130", Diastolic: "90",
	})
	require.NoError(t, store.Save(ctx, record))

	got, err := store.Get(ctx, "00001")
	require.NoError(t, err)
	assert.Equal(t, record.Name, got.Name)
	assert.Equal(t, record.Birthdate, got.Birthdate)
	assert.Equal(t, record.Sex, got.Sex)
	assert.Equal(t, record.SelectedHead, got.SelectedHead)
	assert.Equal(t, record.SelectedClothes, got.SelectedClothes)
	// History survives in submission order and the latest slot tracks
	// the last reading.
	require.Len(t, got.VitalsHistory, 2)
	assert.Equal(t, "72", got.VitalsHistory[0].HeartRate)
	assert.Equal(t, "110", got.VitalsHistory[1].HeartRate)
	require.NotNil(t, got.LatestVitals)
	assert.Equal(t, "110", got.LatestVitals.HeartRate)
}

func TestStoreGetUnknown(t *testing.T) {
	store, _ := newStore(t)

	_, err := store.Get(context.Background(), "99999")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrNotFound))
}

func TestStoreSaveRequiresID(t *testing.T) {
	store, _ := newStore(t)

	err := store.Save(context.Background(), &model.PatientRecord{Name: "No ID"})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrValidation))
}

func TestStoreToleratesBadFiles(t *testing.T) {
	ctx := context.Background()

	t.Run("missing", func(t *testing.T) {
		store, _ := newStore(t)
		records, err := store.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("empty", func(t *testing.T) {
		store, path := newStore(t)
		require.NoError(t, os.WriteFile(path, nil, 0o644))
		records, err := store.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("malformed", func(t *testing.T) {
		store, path := newStore(t)
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
		records, err := store.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
		// A save after the reset starts a fresh map.
		require.NoError(t, store.Save(ctx, sampleRecord("00001")))
		records, err = store.List(ctx)
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})
}

func TestStoreListSortedByID(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	for _, id := range []string{"00003", "00001", "00002"} {
		require.NoError(t, store.Save(ctx, sampleRecord(id)))
	}
	records, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "00001", records[0].PatientID)
	assert.Equal(t, "00002", records[1].PatientID)
	assert.Equal(t, "00003", records[2].PatientID)
}

func TestStoreFindByName(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	first := sampleRecord("00001")
	second := sampleRecord("00002")
	second.Birthdate = "03/04/2011"
	other := sampleRecord("00003")
	other.Name = "Ben Cho"
	for _, r := range []*model.PatientRecord{first, second, other} {
		require.NoError(t, store.Save(ctx, r))
	}

	// Match is case-insensitive on the full name.
	matches, err := store.FindByName(ctx, "ana", "LEE")
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	matches, err = store.FindByName(ctx, "Ana", "Cho")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestStoreCacheInvalidatedOnSave(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleRecord("00001")))
	_, err := store.Get(ctx, "00001")
	require.NoError(t, err)

	updated := sampleRecord("00001")
	updated.SelectedHead = "Head F5"
	require.NoError(t, store.Save(ctx, updated))

	got, err := store.Get(ctx, "00001")
	require.NoError(t, err)
	assert.Equal(t, "Head F5", got.SelectedHead)
}

func TestCounterMonotonicAndPadded(t *testing.T) {
	dir := t.TempDir()
	counter := jsonfile.NewCounterStore(filepath.Join(dir, "patient_id_counter.txt"), 5, logger.Nop())
	ctx := context.Background()

	first, err := counter.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "00001", first)

	second, err := counter.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "00002", second)
}

func TestCounterSurvivesStoreDeletion(t *testing.T) {
	dir := t.TempDir()
	storePath := filepath.Join(dir, "patient_database.json")
	store := jsonfile.NewPatientStore(storePath, logger.Nop())
	counter := jsonfile.NewCounterStore(filepath.Join(dir, "patient_id_counter.txt"), 5, logger.Nop())
	ctx := context.Background()

	id, err := counter.NextID(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, sampleRecord(id)))

	// Deleting the record map must not cause ID reuse; the counter
	// file alone governs assignment.
	require.NoError(t, os.Remove(storePath))

	next, err := counter.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "00002", next)
}

func TestCounterMalformedResetsToZero(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patient_id_counter.txt")
	require.NoError(t, os.WriteFile(path, []byte("not a number"), 0o644))
	counter := jsonfile.NewCounterStore(path, 5, logger.Nop())

	id, err := counter.NextID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "00001", id)
}
