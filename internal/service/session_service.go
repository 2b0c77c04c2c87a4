package service

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/elearn-api/internal/domain"
	"github.com/phrazzld/elearn-api/internal/platform/logger"
	"github.com/phrazzld/elearn-api/internal/store"
)

// SessionService opens and closes learning sessions.
type SessionService interface {
	// Start returns ErrTopicNotFound unless the topic belongs to userID.
	Start(ctx context.Context, userID, topicID uuid.UUID) (*domain.LearningSession, error)
	// End returns domain.ErrSessionEnded for a session that already ended.
	End(ctx context.Context, userID, sessionID uuid.UUID, activitiesCompleted int) (*domain.LearningSession, error)
}

type sessionService struct {
	topics   store.TopicStore
	sessions store.SessionStore
	tx       store.Transactor
	logger   *slog.Logger
	now      func() time.Time
}

var _ SessionService = (*sessionService)(nil)

// NewSessionService creates a SessionService.
func NewSessionService(
	topics store.TopicStore,
	sessions store.SessionStore,
	tx store.Transactor,
	logger *slog.Logger,
) SessionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &sessionService{
		topics:   topics,
		sessions: sessions,
		tx:       tx,
		logger:   logger.With(slog.String("component", "session_service")),
		now:      time.Now,
	}
}

func (s *sessionService) Start(ctx context.Context, userID, topicID uuid.UUID) (*domain.LearningSession, error) {
	if _, err := s.topics.GetByID(ctx, userID, topicID); err != nil {
		return nil, NewServiceError("start_session", "failed to load topic", err)
	}

	session, err := domain.NewLearningSession(userID, topicID, s.now())
	if err != nil {
		return nil, NewServiceError("start_session", "invalid session", err)
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, NewServiceError("start_session", "failed to save session", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("session started",
		slog.String("session_id", session.ID.String()))
	return session, nil
}

func (s *sessionService) End(
	ctx context.Context,
	userID, sessionID uuid.UUID,
	activitiesCompleted int,
) (*domain.LearningSession, error) {
	var ended *domain.LearningSession
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		sessions := s.sessions.WithTx(tx)

		session, err := sessions.GetByID(ctx, userID, sessionID)
		if err != nil {
			return err
		}
		if err := session.End(s.now(), activitiesCompleted); err != nil {
			return err
		}
		if err := sessions.Update(ctx, session); err != nil {
			return err
		}
		ended = session
		return nil
	})
	if err != nil {
		return nil, NewServiceError("end_session", "failed to end session", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("session ended",
		slog.String("session_id", ended.ID.String()),
		slog.Int("duration", *ended.Duration))
	return ended, nil
}
