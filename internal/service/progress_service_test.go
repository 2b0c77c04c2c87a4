package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/elearn-api/internal/domain"
	"github.com/phrazzld/elearn-api/internal/mocks"
	"github.com/phrazzld/elearn-api/internal/service"
	"github.com/phrazzld/elearn-api/internal/store"
)

func TestProgressService_List(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	topic := newTopic(t, userID, "Go")
	kept := newProgress(t, userID, topic.ID)
	orphan := newProgress(t, userID, uuid.New())

	topics := new(mocks.TopicStore)
	topics.On("ListByUser", mock.Anything, userID).Return([]*domain.Topic{topic}, nil)
	progress := new(mocks.ProgressStore)
	progress.On("ListByUser", mock.Anything, userID).Return([]*domain.ProgressRecord{kept, orphan}, nil)
	svc := service.NewProgressService(topics, progress, &mocks.Transactor{}, testLogger())

	entries, err := svc.List(context.Background(), userID, userID)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Go", entries[0].TopicTitle)
	assert.Same(t, kept, entries[0].Record)
}

func TestProgressService_ListOtherUser(t *testing.T) {
	t.Parallel()

	progress := new(mocks.ProgressStore)
	svc := service.NewProgressService(new(mocks.TopicStore), progress, &mocks.Transactor{}, testLogger())

	_, err := svc.List(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, service.ErrNotOwned)
	progress.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
}

func TestProgressService_Update(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	topicID := uuid.New()
	record := newProgress(t, userID, topicID)
	record.TimeSpent = 10
	record.QuizScore = 60

	progress := new(mocks.ProgressStore)
	progress.On("Get", mock.Anything, userID, topicID).Return(record, nil)
	progress.On("Update", mock.Anything, record).Return(nil)
	svc := service.NewProgressService(new(mocks.TopicStore), progress, &mocks.Transactor{}, testLogger())

	completion := 40.0
	spent := 5
	updated, err := svc.Update(context.Background(), userID, topicID, service.UpdateProgressInput{
		CompletionPercentage: &completion,
		TimeSpent:            &spent,
	})

	require.NoError(t, err)
	assert.Equal(t, 40.0, updated.CompletionPercentage)
	assert.Equal(t, 15, updated.TimeSpent)
	assert.Equal(t, 60.0, updated.QuizScore)
	progress.AssertExpectations(t)
}

func TestProgressService_UpdateErrors(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	topicID := uuid.New()

	progress := new(mocks.ProgressStore)
	progress.On("Get", mock.Anything, userID, topicID).Return(nil, store.ErrProgressNotFound).Once()
	progress.On("Get", mock.Anything, userID, topicID).Return(newProgress(t, userID, topicID), nil).Once()
	svc := service.NewProgressService(new(mocks.TopicStore), progress, &mocks.Transactor{}, testLogger())

	_, err := svc.Update(context.Background(), userID, topicID, service.UpdateProgressInput{})
	assert.ErrorIs(t, err, service.ErrProgressNotFound)

	tooMuch := 101.0
	_, err = svc.Update(context.Background(), userID, topicID, service.UpdateProgressInput{CompletionPercentage: &tooMuch})
	assert.ErrorIs(t, err, domain.ErrInvalidCompletion)
	progress.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
