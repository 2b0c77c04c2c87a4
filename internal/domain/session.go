package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Session validation errors.
var (
	ErrEmptySessionID      = errors.New("session ID cannot be empty")
	ErrEmptySessionUserID  = NewValidationError("user_id", "cannot be empty")
	ErrEmptySessionTopicID = NewValidationError("topic_id", "cannot be empty")
	ErrNegativeActivities  = NewValidationError("activities_completed", "cannot be negative")
)

// LearningSession is one sitting a user spends on a topic.
type LearningSession struct {
	ID                  uuid.UUID  `json:"id"`
	UserID              uuid.UUID  `json:"user_id"`
	TopicID             uuid.UUID  `json:"topic_id"`
	StartTime           time.Time  `json:"start_time"`
	EndTime             *time.Time `json:"end_time,omitempty"`
	Duration            *int       `json:"duration,omitempty"` // whole minutes
	ActivitiesCompleted int        `json:"activities_completed"`
}

// NewLearningSession starts a session at now.
func NewLearningSession(userID, topicID uuid.UUID, now time.Time) (*LearningSession, error) {
	s := &LearningSession{
		ID:        uuid.New(),
		UserID:    userID,
		TopicID:   topicID,
		StartTime: now.UTC(),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// End closes the session at now, recording the elapsed whole minutes and the
// number of activities completed.
func (s *LearningSession) End(now time.Time, activitiesCompleted int) error {
	if s.EndTime != nil {
		return ErrSessionEnded
	}
	if activitiesCompleted < 0 {
		return ErrNegativeActivities
	}
	end := now.UTC()
	minutes := int(end.Sub(s.StartTime) / time.Minute)
	if minutes < 0 {
		minutes = 0
	}
	s.EndTime = &end
	s.Duration = &minutes
	s.ActivitiesCompleted = activitiesCompleted
	return nil
}

// Validate checks the session fields.
func (s *LearningSession) Validate() error {
	switch {
	case s.ID == uuid.Nil:
		return ErrEmptySessionID
	case s.UserID == uuid.Nil:
		return ErrEmptySessionUserID
	case s.TopicID == uuid.Nil:
		return ErrEmptySessionTopicID
	case s.ActivitiesCompleted < 0:
		return ErrNegativeActivities
	}
	return nil
}
