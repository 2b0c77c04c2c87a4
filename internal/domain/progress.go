package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Progress validation errors.
var (
	ErrEmptyProgressID      = errors.New("progress record ID cannot be empty")
	ErrEmptyProgressUserID  = NewValidationError("user_id", "cannot be empty")
	ErrEmptyProgressTopicID = NewValidationError("topic_id", "cannot be empty")
	ErrInvalidCompletion    = NewValidationError("completion_percentage", "must be between 0 and 100")
	ErrNegativeTimeSpent    = NewValidationError("time_spent", "cannot be negative")
)

// ProgressRecord tracks how far a user has got with one topic.
type ProgressRecord struct {
	ID                   uuid.UUID `json:"id"`
	UserID               uuid.UUID `json:"user_id"`
	TopicID              uuid.UUID `json:"topic_id"`
	QuizScore            float64   `json:"quiz_score"`
	CompletionPercentage float64   `json:"completion_percentage"`
	TimeSpent            int       `json:"time_spent"` // minutes
	LastAccessed         time.Time `json:"last_accessed"`
	CreatedAt            time.Time `json:"created_at"`
}

// ProgressUpdate carries the optional changes applied by UpdateProgress.
// Nil fields are left untouched.
type ProgressUpdate struct {
	QuizScore            *float64
	CompletionPercentage *float64
	TimeSpent            *int
}

// NewProgressRecord creates an empty progress record for a user and topic.
func NewProgressRecord(userID, topicID uuid.UUID) (*ProgressRecord, error) {
	now := time.Now().UTC()
	record := &ProgressRecord{
		ID:           uuid.New(),
		UserID:       userID,
		TopicID:      topicID,
		LastAccessed: now,
		CreatedAt:    now,
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}
	return record, nil
}

// UpdateProgress replaces the quiz score and completion when given, adds
// time spent when given, and always touches LastAccessed.
func (p *ProgressRecord) UpdateProgress(update ProgressUpdate, now time.Time) error {
	if update.CompletionPercentage != nil {
		c := *update.CompletionPercentage
		if c < 0 || c > 100 {
			return ErrInvalidCompletion
		}
	}
	if update.TimeSpent != nil && *update.TimeSpent < 0 {
		return ErrNegativeTimeSpent
	}

	if update.QuizScore != nil {
		p.QuizScore = *update.QuizScore
	}
	if update.CompletionPercentage != nil {
		p.CompletionPercentage = *update.CompletionPercentage
	}
	if update.TimeSpent != nil {
		p.TimeSpent += *update.TimeSpent
	}
	p.LastAccessed = now.UTC()
	return nil
}

// Validate checks the record fields.
func (p *ProgressRecord) Validate() error {
	switch {
	case p.ID == uuid.Nil:
		return ErrEmptyProgressID
	case p.UserID == uuid.Nil:
		return ErrEmptyProgressUserID
	case p.TopicID == uuid.Nil:
		return ErrEmptyProgressTopicID
	case p.CompletionPercentage < 0 || p.CompletionPercentage > 100:
		return ErrInvalidCompletion
	case p.TimeSpent < 0:
		return ErrNegativeTimeSpent
	}
	return nil
}
