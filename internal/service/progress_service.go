package service

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/phrazzld/elearn-api/internal/domain"
	"github.com/phrazzld/elearn-api/internal/platform/logger"
	"github.com/phrazzld/elearn-api/internal/store"
)

// ProgressEntry is a progress record with the title of its topic.
type ProgressEntry struct {
	Record     *domain.ProgressRecord
	TopicTitle string
}

// UpdateProgressInput carries optional changes to a progress record.
type UpdateProgressInput struct {
	CompletionPercentage *float64
	// TimeSpent is added to the stored total.
	TimeSpent *int
}

// ProgressService reads and updates learner progress.
type ProgressService interface {
	// List returns ErrNotOwned unless requesterID equals userID. Records whose
	// topic no longer exists are omitted.
	List(ctx context.Context, requesterID, userID uuid.UUID) ([]ProgressEntry, error)
	// Update returns ErrProgressNotFound when the learner has no record for
	// the topic.
	Update(ctx context.Context, userID, topicID uuid.UUID, in UpdateProgressInput) (*domain.ProgressRecord, error)
}

type progressService struct {
	topics   store.TopicStore
	progress store.ProgressStore
	tx       store.Transactor
	logger   *slog.Logger
	now      func() time.Time
}

var _ ProgressService = (*progressService)(nil)

// NewProgressService creates a ProgressService.
func NewProgressService(
	topics store.TopicStore,
	progress store.ProgressStore,
	tx store.Transactor,
	logger *slog.Logger,
) ProgressService {
	if logger == nil {
		logger = slog.Default()
	}
	return &progressService{
		topics:   topics,
		progress: progress,
		tx:       tx,
		logger:   logger.With(slog.String("component", "progress_service")),
		now:      time.Now,
	}
}

func (s *progressService) List(ctx context.Context, requesterID, userID uuid.UUID) ([]ProgressEntry, error) {
	if requesterID != userID {
		logger.FromContextOrDefault(ctx, s.logger).Warn("progress requested for another user",
			slog.String("requester_id", requesterID.String()),
			slog.String("user_id", userID.String()))
		return nil, ErrNotOwned
	}

	records, err := s.progress.ListByUser(ctx, userID)
	if err != nil {
		return nil, NewServiceError("list_progress", "failed to list progress", err)
	}
	topics, err := s.topics.ListByUser(ctx, userID)
	if err != nil {
		return nil, NewServiceError("list_progress", "failed to list topics", err)
	}

	titles := lo.SliceToMap(topics, func(t *domain.Topic) (uuid.UUID, string) { return t.ID, t.Title })
	return lo.FilterMap(records, func(r *domain.ProgressRecord, _ int) (ProgressEntry, bool) {
		title, ok := titles[r.TopicID]
		return ProgressEntry{Record: r, TopicTitle: title}, ok
	}), nil
}

func (s *progressService) Update(
	ctx context.Context,
	userID, topicID uuid.UUID,
	in UpdateProgressInput,
) (*domain.ProgressRecord, error) {
	var updated *domain.ProgressRecord
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		progress := s.progress.WithTx(tx)

		record, err := progress.Get(ctx, userID, topicID)
		if err != nil {
			return err
		}
		err = record.UpdateProgress(domain.ProgressUpdate{
			CompletionPercentage: in.CompletionPercentage,
			TimeSpent:            in.TimeSpent,
		}, s.now())
		if err != nil {
			return err
		}
		if err := progress.Update(ctx, record); err != nil {
			return err
		}
		updated = record
		return nil
	})
	if err != nil {
		return nil, NewServiceError("update_progress", "failed to update progress", err)
	}
	return updated, nil
}
