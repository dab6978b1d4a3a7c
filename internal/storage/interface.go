package storage

import (
	"context"

	"coopbingo/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Session operations
	SaveSession(ctx context.Context, session *model.SessionRecord) error
	GetSession(ctx context.Context, id string) (*model.SessionRecord, error)
	DeleteSession(ctx context.Context, id string) error

	// Game summary operations
	SaveSummary(ctx context.Context, summary *model.GameSummary) error
	GetSummary(ctx context.Context, id string) (*model.GameSummary, error)
	ListSummariesForSession(ctx context.Context, sessionID string) ([]*model.GameSummary, error)
	DeleteSummariesForSession(ctx context.Context, sessionID string) error
}
