package store

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/repair-minder-sync/models"
)

// FileStorage keeps the whole store in memory and, unless it was opened for
// ":memory:", rewrites a JSON file after every change. It implements
// [MutationRepository], [SessionRepository], [MetaRepository] and
// [EntityRepository].
type FileStorage struct {
	path     string
	inMemory bool

	mu        sync.RWMutex
	mutations map[string]models.PendingMutation
	session   *models.Session
	meta      map[string]string
	entities  map[string]models.EntityRecord
}

type filePersistedState struct {
	Mutations []models.PendingMutation `json:"mutations"`
	Session   *models.Session          `json:"session,omitempty"`
	Meta      map[string]string        `json:"meta,omitempty"`
	Entities  []models.EntityRecord    `json:"entities,omitempty"`
}

// NewFileStorage opens the JSON file store at path. An empty path or
// ":memory:" keeps everything in process memory.
func NewFileStorage(path string) (*FileStorage, error) {
	if path == "" {
		path = ":memory:"
	}

	s := &FileStorage{
		path:      path,
		inMemory:  isMemoryDSN(path),
		mutations: make(map[string]models.PendingMutation),
		meta:      make(map[string]string),
		entities:  make(map[string]models.EntityRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func isMemoryDSN(dsn string) bool {
	return dsn == ":memory:" || dsn == "memory"
}

func isFileStoreDSN(dsn string) bool {
	return isMemoryDSN(dsn) || strings.HasSuffix(strings.ToLower(dsn), ".json")
}

func (s *FileStorage) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read local storage file: %w", err)
	}

	var st filePersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode local storage file: %w", err)
	}

	for _, m := range st.Mutations {
		s.mutations[m.Key.String()] = m
	}
	for _, rec := range st.Entities {
		s.entities[rec.Key.String()] = rec
	}
	s.session = st.Session
	if st.Meta != nil {
		s.meta = st.Meta
	}

	return nil
}

// persist must be called with s.mu held for writing.
func (s *FileStorage) persist() error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create local storage dir: %w", err)
		}
	}

	state := filePersistedState{
		Mutations: s.sortedMutations(),
		Session:   s.session,
		Meta:      s.meta,
		Entities:  s.sortedEntities(""),
	}
	payload, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write local storage file: %w", err)
	}
	if err = os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace local storage file: %w", err)
	}

	return nil
}

func (s *FileStorage) sortedMutations() []models.PendingMutation {
	list := make([]models.PendingMutation, 0, len(s.mutations))
	for _, m := range s.mutations {
		list = append(list, m)
	}
	slices.SortFunc(list, func(a, b models.PendingMutation) int {
		switch {
		case a.Seq < b.Seq:
			return -1
		case a.Seq > b.Seq:
			return 1
		default:
			return 0
		}
	})
	return list
}

// sortedEntities returns cached records of entityType, or all of them when
// entityType is empty, ordered by key.
func (s *FileStorage) sortedEntities(entityType models.EntityType) []models.EntityRecord {
	list := make([]models.EntityRecord, 0, len(s.entities))
	for _, rec := range s.entities {
		if entityType == "" || rec.Key.Type == entityType {
			list = append(list, rec)
		}
	}
	slices.SortFunc(list, func(a, b models.EntityRecord) int {
		return strings.Compare(a.Key.String(), b.Key.String())
	})
	return list
}

func (s *FileStorage) LoadMutations(_ context.Context) ([]models.PendingMutation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedMutations(), nil
}

func (s *FileStorage) SaveMutation(_ context.Context, m models.PendingMutation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := m.Key.String()
	prev, existed := s.mutations[key]
	s.mutations[key] = m
	if err := s.persist(); err != nil {
		if existed {
			s.mutations[key] = prev
		} else {
			delete(s.mutations, key)
		}
		return err
	}
	return nil
}

func (s *FileStorage) DeleteMutation(_ context.Context, key models.EntityKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.mutations[key.String()]
	if !existed {
		return nil
	}
	delete(s.mutations, key.String())
	if err := s.persist(); err != nil {
		s.mutations[key.String()] = prev
		return err
	}
	return nil
}

func (s *FileStorage) LoadSession(_ context.Context) (models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return models.Session{}, ErrSessionNotFound
	}
	return *s.session, nil
}

func (s *FileStorage) SaveSession(_ context.Context, session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.session
	s.session = &session
	if err := s.persist(); err != nil {
		s.session = prev
		return err
	}
	return nil
}

func (s *FileStorage) ClearSession(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.session
	s.session = nil
	if err := s.persist(); err != nil {
		s.session = prev
		return err
	}
	return nil
}

func (s *FileStorage) GetMeta(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.meta[key]
	if !ok {
		return "", ErrMetaNotFound
	}
	return value, nil
}

func (s *FileStorage) SetMeta(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.meta[key]
	s.meta[key] = value
	if err := s.persist(); err != nil {
		if existed {
			s.meta[key] = prev
		} else {
			delete(s.meta, key)
		}
		return err
	}
	return nil
}

func (s *FileStorage) SaveEntities(_ context.Context, records []models.EntityRecord) error {
	if len(records) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := maps.Clone(s.entities)
	for _, rec := range records {
		s.entities[rec.Key.String()] = rec
	}
	if err := s.persist(); err != nil {
		s.entities = prev
		return err
	}
	return nil
}

func (s *FileStorage) LoadEntities(_ context.Context, entityType models.EntityType) ([]models.EntityRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedEntities(entityType), nil
}
