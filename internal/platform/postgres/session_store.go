package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phrazzld/elearn-api/internal/domain"
	"github.com/phrazzld/elearn-api/internal/platform/logger"
	"github.com/phrazzld/elearn-api/internal/store"
)

// SessionStore implements store.SessionStore.
type SessionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.SessionStore = (*SessionStore)(nil)

// NewSessionStore returns a SessionStore backed by db.
func NewSessionStore(db store.DBTX, logger *slog.Logger) *SessionStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionStore{
		db:     db,
		logger: logger.With(slog.String("component", "session_store")),
	}
}

// WithTx implements store.SessionStore.
func (s *SessionStore) WithTx(tx *sql.Tx) store.SessionStore {
	return &SessionStore{db: tx, logger: s.logger}
}

// Create implements store.SessionStore.
func (s *SessionStore) Create(ctx context.Context, session *domain.LearningSession) error {
	if err := session.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO learning_sessions (id, user_id, topic_id, start_time, end_time, duration, activities_completed)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		session.ID, session.UserID, session.TopicID, session.StartTime,
		session.EndTime, session.Duration, session.ActivitiesCompleted,
	)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to create session",
			slog.String("error", err.Error()),
			slog.String("session_id", session.ID.String()))
		return MapError(err)
	}
	return nil
}

// GetByID implements store.SessionStore.
func (s *SessionStore) GetByID(ctx context.Context, userID, sessionID uuid.UUID) (*domain.LearningSession, error) {
	var ls domain.LearningSession
	var endTime sql.NullTime
	var duration sql.NullInt64

	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, topic_id, start_time, end_time, duration, activities_completed
		FROM learning_sessions
		WHERE id = $1 AND user_id = $2`, sessionID, userID,
	).Scan(&ls.ID, &ls.UserID, &ls.TopicID, &ls.StartTime, &endTime, &duration, &ls.ActivitiesCompleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrSessionNotFound
		}
		return nil, MapError(err)
	}

	if endTime.Valid {
		t := endTime.Time
		ls.EndTime = &t
	}
	if duration.Valid {
		d := int(duration.Int64)
		ls.Duration = &d
	}
	return &ls, nil
}

// Update implements store.SessionStore.
func (s *SessionStore) Update(ctx context.Context, session *domain.LearningSession) error {
	if err := session.Validate(); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE learning_sessions
		SET end_time = $1, duration = $2, activities_completed = $3
		WHERE id = $4 AND user_id = $5`,
		session.EndTime, session.Duration, session.ActivitiesCompleted, session.ID, session.UserID,
	)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrSessionNotFound)
}
