package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/elearn-api/internal/domain"
	"github.com/phrazzld/elearn-api/internal/generation"
	"github.com/phrazzld/elearn-api/internal/mocks"
	"github.com/phrazzld/elearn-api/internal/service"
	"github.com/phrazzld/elearn-api/internal/store"
)

type quizFixture struct {
	users     *mocks.UserStore
	topics    *mocks.TopicStore
	quizzes   *mocks.QuizStore
	progress  *mocks.ProgressStore
	tx        *mocks.Transactor
	generator *mocks.QuizGenerator
	svc       service.QuizService
}

func newQuizFixture() *quizFixture {
	f := &quizFixture{
		users:     new(mocks.UserStore),
		topics:    new(mocks.TopicStore),
		quizzes:   new(mocks.QuizStore),
		progress:  new(mocks.ProgressStore),
		tx:        &mocks.Transactor{},
		generator: new(mocks.QuizGenerator),
	}
	f.svc = service.NewQuizService(f.users, f.topics, f.quizzes, f.progress, f.tx, f.generator, testLogger())
	return f
}

func TestQuizService_SubmitUpdatesExistingProgress(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	topic := newTopic(t, userID, "Go")
	q1 := newQuiz(t, topic.ID, "Q1", "A")
	q2 := newQuiz(t, topic.ID, "Q2", "B")
	record := newProgress(t, userID, topic.ID)
	record.TimeSpent = 20

	f := newQuizFixture()
	f.topics.On("GetByID", mock.Anything, userID, topic.ID).Return(topic, nil)
	f.quizzes.On("ListByTopic", mock.Anything, topic.ID).Return([]*domain.Quiz{q1, q2}, nil)
	f.progress.On("Get", mock.Anything, userID, topic.ID).Return(record, nil)
	f.progress.On("Update", mock.Anything, mock.MatchedBy(func(r *domain.ProgressRecord) bool {
		return r.QuizScore == 50 && r.TimeSpent == 20
	})).Return(nil)

	score, err := f.svc.Submit(context.Background(), userID, topic.ID, map[uuid.UUID]string{
		q1.ID: "A",
		q2.ID: "C",
	})

	require.NoError(t, err)
	assert.Equal(t, 50.0, score.Score)
	assert.Equal(t, 1, score.CorrectAnswers)
	assert.Equal(t, 2, score.TotalQuestions)
	f.progress.AssertExpectations(t)
}

func TestQuizService_SubmitCreatesMissingProgress(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	topic := newTopic(t, userID, "Go")
	q1 := newQuiz(t, topic.ID, "Q1", "A")

	f := newQuizFixture()
	f.topics.On("GetByID", mock.Anything, userID, topic.ID).Return(topic, nil)
	f.quizzes.On("ListByTopic", mock.Anything, topic.ID).Return([]*domain.Quiz{q1}, nil)
	f.progress.On("Get", mock.Anything, userID, topic.ID).Return(nil, store.ErrProgressNotFound)
	f.progress.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.ProgressRecord) bool {
		return r.QuizScore == 100 && r.TopicID == topic.ID
	})).Return(nil)

	score, err := f.svc.Submit(context.Background(), userID, topic.ID, map[uuid.UUID]string{q1.ID: "A"})

	require.NoError(t, err)
	assert.Equal(t, 100.0, score.Score)
	f.progress.AssertExpectations(t)
}

func TestQuizService_SubmitUnknownTopic(t *testing.T) {
	t.Parallel()

	f := newQuizFixture()
	f.topics.On("GetByID", mock.Anything, mock.Anything, mock.Anything).Return(nil, store.ErrTopicNotFound)

	_, err := f.svc.Submit(context.Background(), uuid.New(), uuid.New(), nil)

	assert.ErrorIs(t, err, service.ErrTopicNotFound)
	assert.Zero(t, f.tx.Calls)
}

func TestQuizService_Adaptive(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	user := &domain.User{ID: userID, LearningLevel: domain.LevelAdvanced}
	topic := newTopic(t, userID, "Go")
	record := newProgress(t, userID, topic.ID)
	record.QuizScore = 85
	quiz := generation.FallbackAdaptiveQuiz("Go")

	f := newQuizFixture()
	f.users.On("GetByID", mock.Anything, userID).Return(user, nil)
	f.topics.On("GetByID", mock.Anything, userID, topic.ID).Return(topic, nil)
	f.progress.On("Get", mock.Anything, userID, topic.ID).Return(record, nil)
	f.generator.On("Generate", mock.Anything, "Go", "advanced", 85.0).Return(quiz)

	got, err := f.svc.Adaptive(context.Background(), userID, topic.ID)

	require.NoError(t, err)
	assert.Equal(t, quiz, *got)
	f.generator.AssertExpectations(t)
}

func TestQuizService_AdaptiveWithoutProgress(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	topic := newTopic(t, userID, "Go")

	f := newQuizFixture()
	f.users.On("GetByID", mock.Anything, userID).Return(&domain.User{ID: userID, LearningLevel: domain.LevelBeginner}, nil)
	f.topics.On("GetByID", mock.Anything, userID, topic.ID).Return(topic, nil)
	f.progress.On("Get", mock.Anything, userID, topic.ID).Return(nil, store.ErrProgressNotFound)
	f.generator.On("Generate", mock.Anything, "Go", "beginner", 0.0).Return(generation.FallbackAdaptiveQuiz("Go"))

	_, err := f.svc.Adaptive(context.Background(), userID, topic.ID)

	require.NoError(t, err)
	f.generator.AssertExpectations(t)
}
