package memory

import (
	"context"
	"sort"
	"sync"

	"coopbingo/internal/model"
	"coopbingo/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	sessions  map[string]*model.SessionRecord
	summaries map[string]*model.GameSummary
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		sessions:  make(map[string]*model.SessionRecord),
		summaries: make(map[string]*model.GameSummary),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.SessionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *session
	s.sessions[session.ID] = &copied
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id string) (*model.SessionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (s *Storage) DeleteSession(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Game summary operations

func (s *Storage) SaveSummary(ctx context.Context, summary *model.GameSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *summary
	s.summaries[summary.ID] = &copied
	return nil
}

func (s *Storage) GetSummary(ctx context.Context, id string) (*model.GameSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	summary, ok := s.summaries[id]
	if !ok {
		return nil, model.ErrSummaryNotFound
	}
	copied := *summary
	return &copied, nil
}

func (s *Storage) ListSummariesForSession(ctx context.Context, sessionID string) ([]*model.GameSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []*model.GameSummary{}
	for _, summary := range s.summaries {
		if summary.SessionID == sessionID {
			copied := *summary
			result = append(result, &copied)
		}
	}
	// Oldest first for stable listings
	sort.Slice(result, func(i, j int) bool {
		return result[i].FinishedAt.Before(result[j].FinishedAt)
	})
	return result, nil
}

func (s *Storage) DeleteSummariesForSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, summary := range s.summaries {
		if summary.SessionID == sessionID {
			delete(s.summaries, id)
		}
	}
	return nil
}
