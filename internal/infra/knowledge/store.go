package knowledge

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"huggiesd/internal/domain"
)

// Store holds the knowledge records loaded at startup. It is read-only after
// construction and safe for concurrent use without locking.
type Store struct {
	records []domain.KnowledgeRecord
	byID    map[string]int
	logger  *zap.Logger
}

// Load reads the knowledge source from path. A missing or malformed file is
// a startup-fatal condition: the caller must not serve without the store.
func Load(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("knowledge")

	if path == "" {
		return nil, fmt.Errorf("knowledge path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge source: %w", err)
	}

	var records []domain.KnowledgeRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode knowledge source %s: %w", path, err)
	}

	store, err := newStore(records, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("knowledge source loaded", zap.String("path", path), zap.Int("records", len(records)))
	return store, nil
}

// NewStore builds a store from in-memory records. Used by tests and fixtures.
func NewStore(records []domain.KnowledgeRecord, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	return newStore(records, logger.Named("knowledge"))
}

func newStore(records []domain.KnowledgeRecord, logger *zap.Logger) (*Store, error) {
	byID := make(map[string]int, len(records))
	for i, record := range records {
		if record.ID == "" {
			return nil, fmt.Errorf("knowledge record %d: id is required", i)
		}
		if _, exists := byID[record.ID]; exists {
			return nil, fmt.Errorf("knowledge record %d: duplicate id %q", i, record.ID)
		}
		byID[record.ID] = i
	}
	return &Store{
		records: records,
		byID:    byID,
		logger:  logger,
	}, nil
}

// All returns the records in storage order. Callers must not mutate the slice.
func (s *Store) All() []domain.KnowledgeRecord {
	return s.records
}

// Len reports the record count.
func (s *Store) Len() int {
	return len(s.records)
}

// FindByID returns the record with the given id, if present.
func (s *Store) FindByID(id string) (domain.KnowledgeRecord, bool) {
	i, ok := s.byID[id]
	if !ok {
		return domain.KnowledgeRecord{}, false
	}
	return s.records[i], true
}

// First returns up to n records in storage order.
func (s *Store) First(n int) []domain.KnowledgeRecord {
	if n <= 0 {
		return nil
	}
	if n > len(s.records) {
		n = len(s.records)
	}
	return s.records[:n]
}
