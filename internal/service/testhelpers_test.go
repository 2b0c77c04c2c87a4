package service_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/elearn-api/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTopic(t *testing.T, userID uuid.UUID, title string) *domain.Topic {
	t.Helper()
	topic, err := domain.NewTopic(userID, title, "", domain.LevelBeginner, nil)
	require.NoError(t, err)
	return topic
}

func newQuiz(t *testing.T, topicID uuid.UUID, question, answer string) *domain.Quiz {
	t.Helper()
	quiz, err := domain.NewQuiz(topicID, question, []string{"A", "B", "C", "D"}, answer, "", "")
	require.NoError(t, err)
	return quiz
}

func newProgress(t *testing.T, userID, topicID uuid.UUID) *domain.ProgressRecord {
	t.Helper()
	record, err := domain.NewProgressRecord(userID, topicID)
	require.NoError(t, err)
	return record
}
