package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/phrazzld/elearn-api/internal/domain"
	"github.com/phrazzld/elearn-api/internal/store"
)

// UserStore is a testify mock of store.UserStore.
type UserStore struct {
	mock.Mock
}

var _ store.UserStore = (*UserStore)(nil)

func (m *UserStore) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *UserStore) WithTx(*sql.Tx) store.UserStore { return m }

// TopicStore is a testify mock of store.TopicStore.
type TopicStore struct {
	mock.Mock
}

var _ store.TopicStore = (*TopicStore)(nil)

func (m *TopicStore) Create(ctx context.Context, topic *domain.Topic) error {
	return m.Called(ctx, topic).Error(0)
}

func (m *TopicStore) GetByID(ctx context.Context, userID, topicID uuid.UUID) (*domain.Topic, error) {
	args := m.Called(ctx, userID, topicID)
	topic, _ := args.Get(0).(*domain.Topic)
	return topic, args.Error(1)
}

func (m *TopicStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Topic, error) {
	args := m.Called(ctx, userID)
	topics, _ := args.Get(0).([]*domain.Topic)
	return topics, args.Error(1)
}

func (m *TopicStore) WithTx(*sql.Tx) store.TopicStore { return m }

// QuizStore is a testify mock of store.QuizStore.
type QuizStore struct {
	mock.Mock
}

var _ store.QuizStore = (*QuizStore)(nil)

func (m *QuizStore) CreateMultiple(ctx context.Context, quizzes []*domain.Quiz) error {
	return m.Called(ctx, quizzes).Error(0)
}

func (m *QuizStore) ListByTopic(ctx context.Context, topicID uuid.UUID) ([]*domain.Quiz, error) {
	args := m.Called(ctx, topicID)
	quizzes, _ := args.Get(0).([]*domain.Quiz)
	return quizzes, args.Error(1)
}

func (m *QuizStore) WithTx(*sql.Tx) store.QuizStore { return m }

// ProgressStore is a testify mock of store.ProgressStore.
type ProgressStore struct {
	mock.Mock
}

var _ store.ProgressStore = (*ProgressStore)(nil)

func (m *ProgressStore) Create(ctx context.Context, record *domain.ProgressRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *ProgressStore) Get(ctx context.Context, userID, topicID uuid.UUID) (*domain.ProgressRecord, error) {
	args := m.Called(ctx, userID, topicID)
	record, _ := args.Get(0).(*domain.ProgressRecord)
	return record, args.Error(1)
}

func (m *ProgressStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.ProgressRecord, error) {
	args := m.Called(ctx, userID)
	records, _ := args.Get(0).([]*domain.ProgressRecord)
	return records, args.Error(1)
}

func (m *ProgressStore) Update(ctx context.Context, record *domain.ProgressRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *ProgressStore) WithTx(*sql.Tx) store.ProgressStore { return m }

// SessionStore is a testify mock of store.SessionStore.
type SessionStore struct {
	mock.Mock
}

var _ store.SessionStore = (*SessionStore)(nil)

func (m *SessionStore) Create(ctx context.Context, session *domain.LearningSession) error {
	return m.Called(ctx, session).Error(0)
}

func (m *SessionStore) GetByID(ctx context.Context, userID, sessionID uuid.UUID) (*domain.LearningSession, error) {
	args := m.Called(ctx, userID, sessionID)
	session, _ := args.Get(0).(*domain.LearningSession)
	return session, args.Error(1)
}

func (m *SessionStore) Update(ctx context.Context, session *domain.LearningSession) error {
	return m.Called(ctx, session).Error(0)
}

func (m *SessionStore) WithTx(*sql.Tx) store.SessionStore { return m }
