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

// ProgressStore implements store.ProgressStore.
type ProgressStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.ProgressStore = (*ProgressStore)(nil)

// NewProgressStore returns a ProgressStore backed by db.
func NewProgressStore(db store.DBTX, logger *slog.Logger) *ProgressStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressStore{
		db:     db,
		logger: logger.With(slog.String("component", "progress_store")),
	}
}

// WithTx implements store.ProgressStore.
func (s *ProgressStore) WithTx(tx *sql.Tx) store.ProgressStore {
	return &ProgressStore{db: tx, logger: s.logger}
}

// Create implements store.ProgressStore.
func (s *ProgressStore) Create(ctx context.Context, record *domain.ProgressRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO progress_records
			(id, user_id, topic_id, quiz_score, completion_percentage, time_spent, last_accessed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		record.ID, record.UserID, record.TopicID, record.QuizScore,
		record.CompletionPercentage, record.TimeSpent, record.LastAccessed, record.CreatedAt,
	)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to create progress record",
			slog.String("error", err.Error()),
			slog.String("topic_id", record.TopicID.String()))
		return MapError(err)
	}
	return nil
}

const selectProgress = `
	SELECT id, user_id, topic_id, quiz_score, completion_percentage, time_spent, last_accessed, created_at
	FROM progress_records`

func scanProgress(row rowScanner) (*domain.ProgressRecord, error) {
	var p domain.ProgressRecord
	err := row.Scan(&p.ID, &p.UserID, &p.TopicID, &p.QuizScore, &p.CompletionPercentage,
		&p.TimeSpent, &p.LastAccessed, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Get implements store.ProgressStore.
func (s *ProgressStore) Get(ctx context.Context, userID, topicID uuid.UUID) (*domain.ProgressRecord, error) {
	p, err := scanProgress(s.db.QueryRowContext(ctx,
		selectProgress+` WHERE user_id = $1 AND topic_id = $2`, userID, topicID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrProgressNotFound
		}
		return nil, MapError(err)
	}
	return p, nil
}

// ListByUser implements store.ProgressStore.
func (s *ProgressStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.ProgressRecord, error) {
	rows, err := s.db.QueryContext(ctx, selectProgress+` WHERE user_id = $1 ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var records []*domain.ProgressRecord
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, MapError(err)
		}
		records = append(records, p)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return records, nil
}

// Update implements store.ProgressStore.
func (s *ProgressStore) Update(ctx context.Context, record *domain.ProgressRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE progress_records
		SET quiz_score = $1, completion_percentage = $2, time_spent = $3, last_accessed = $4
		WHERE id = $5`,
		record.QuizScore, record.CompletionPercentage, record.TimeSpent, record.LastAccessed, record.ID,
	)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, store.ErrProgressNotFound)
}
