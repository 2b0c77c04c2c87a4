package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxTopicTitleLength matches the topics.title column.
const MaxTopicTitleLength = 200

// Topic validation errors.
var (
	ErrEmptyTopicID      = errors.New("topic ID cannot be empty")
	ErrEmptyTopicUserID  = NewValidationError("user_id", "cannot be empty")
	ErrEmptyTopicTitle   = NewValidationError("title", "cannot be empty")
	ErrTopicTitleTooLong = NewValidationError("title", "must be at most 200 characters")
	ErrInvalidContent    = NewValidationError("content", "must be valid JSON")
)

// Topic is a subject a learner asked to study, along with the generated
// learning material stored as raw JSON.
type Topic struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"user_id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Content         json.RawMessage `json:"content"`
	DifficultyLevel LearningLevel   `json:"difficulty_level"`
	CreatedAt       time.Time       `json:"created_at"`
}

// NewTopic creates a validated Topic owned by userID.
func NewTopic(
	userID uuid.UUID,
	title, description string,
	level LearningLevel,
	content json.RawMessage,
) (*Topic, error) {
	if level == "" {
		level = LevelBeginner
	}
	topic := &Topic{
		ID:              uuid.New(),
		UserID:          userID,
		Title:           strings.TrimSpace(title),
		Description:     description,
		Content:         content,
		DifficultyLevel: level,
		CreatedAt:       time.Now().UTC(),
	}
	if err := topic.Validate(); err != nil {
		return nil, err
	}
	return topic, nil
}

// Validate checks the topic fields.
func (t *Topic) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTopicID
	}
	if t.UserID == uuid.Nil {
		return ErrEmptyTopicUserID
	}
	if t.Title == "" {
		return ErrEmptyTopicTitle
	}
	if len(t.Title) > MaxTopicTitleLength {
		return ErrTopicTitleTooLong
	}
	if !t.DifficultyLevel.IsValid() {
		return ErrInvalidLevel
	}
	if len(t.Content) > 0 && !json.Valid(t.Content) {
		return ErrInvalidContent
	}
	return nil
}
