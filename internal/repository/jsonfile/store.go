// Package jsonfile persists patient data as a single flat JSON record
// map plus a separate counter file. One operator, one process: the
// only consistency mechanism is reload-before-write.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/jwalitptl/vitagotchi/internal/model"
	"github.com/jwalitptl/vitagotchi/pkg/errors"
	"github.com/jwalitptl/vitagotchi/pkg/logger"
)

const (
	lookupCacheTTL     = time.Minute
	lookupCacheCleanup = 5 * time.Minute
)

type PatientStore struct {
	path  string
	log   *logger.Logger
	cache *cache.Cache
}

func NewPatientStore(path string, log *logger.Logger) *PatientStore {
	return &PatientStore{
		path:  path,
		log:   log,
		cache: cache.New(lookupCacheTTL, lookupCacheCleanup),
	}
}

// load reads the whole record map. A missing, empty or malformed file
// is an empty store: startup must survive all three, the last with a
// warning.
func (s *PatientStore) load() (map[string]*model.PatientRecord, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]*model.PatientRecord{}, nil
	}
	if err != nil {
		return nil, errors.NewPersistence(fmt.Sprintf("failed to read store %s", s.path), err)
	}
	if len(data) == 0 {
		return map[string]*model.PatientRecord{}, nil
	}
	var records map[string]*model.PatientRecord
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.Warn("store file is malformed, treating as empty", "path", s.path)
		return map[string]*model.PatientRecord{}, nil
	}
	if records == nil {
		records = map[string]*model.PatientRecord{}
	}
	return records, nil
}

func (s *PatientStore) write(records map[string]*model.PatientRecord) error {
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return errors.NewPersistence("failed to encode store", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return errors.NewPersistence(fmt.Sprintf("failed to write store %s", s.path), err)
	}
	return nil
}

func (s *PatientStore) Get(ctx context.Context, id string) (*model.PatientRecord, error) {
	if cached, ok := s.cache.Get(id); ok {
		return cached.(*model.PatientRecord), nil
	}
	records, err := s.load()
	if err != nil {
		return nil, err
	}
	record, ok := records[id]
	if !ok {
		return nil, errors.NewNotFound("patient", nil)
	}
	s.cache.Set(id, record, cache.DefaultExpiration)
	return record, nil
}

// Save merges one record into the current on-disk map and writes the
// whole map back.
func (s *PatientStore) Save(ctx context.Context, record *model.PatientRecord) error {
	if record.PatientID == "" {
		return errors.NewValidation("record has no patient ID")
	}
	records, err := s.load()
	if err != nil {
		return err
	}
	records[record.PatientID] = record
	if err := s.write(records); err != nil {
		return err
	}
	s.cache.Flush()
	return nil
}

func (s *PatientStore) List(ctx context.Context) ([]*model.PatientRecord, error) {
	records, err := s.load()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	// Identifier order is registration order (zero-padded counter).
	sort.Strings(ids)
	out := make([]*model.PatientRecord, 0, len(ids))
	for _, id := range ids {
		out = append(out, records[id])
	}
	return out, nil
}

func (s *PatientStore) FindByName(ctx context.Context, firstName, lastName string) ([]*model.PatientRecord, error) {
	fullName := strings.ToLower(strings.TrimSpace(firstName + " " + lastName))
	if cached, ok := s.cache.Get("name:" + fullName); ok {
		return cached.([]*model.PatientRecord), nil
	}
	records, err := s.load()
	if err != nil {
		return nil, err
	}
	var matches []*model.PatientRecord
	for _, record := range records {
		if strings.ToLower(record.Name) == fullName {
			matches = append(matches, record)
		}
	}
	s.cache.Set("name:"+fullName, matches, cache.DefaultExpiration)
	return matches, nil
}
