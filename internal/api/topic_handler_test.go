package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/elearn-api/internal/domain"
	"github.com/phrazzld/elearn-api/internal/service"
)

func topicRouter(h *TopicHandler, userID uuid.UUID) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, withUser(req, userID))
		})
	})
	r.Post("/topics", h.CreateTopic)
	r.Get("/topics", h.ListTopics)
	r.Get("/topics/{id}", h.GetTopic)
	return r
}

func TestTopicHandler_CreateTopic(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	var got service.CreateTopicInput
	topics := &fakeTopicService{
		createFn: func(_ context.Context, uid uuid.UUID, in service.CreateTopicInput) (*service.TopicDetail, error) {
			assert.Equal(t, userID, uid)
			got = in
			return &service.TopicDetail{
				Topic: &domain.Topic{ID: uuid.New(), UserID: uid, Title: in.Title, DifficultyLevel: domain.LevelBeginner},
				Quizzes: []*domain.Quiz{{
					ID: uuid.New(), Question: "What is Go?", Options: []string{"A language", "A game"}, CorrectAnswer: "A language",
				}},
			}, nil
		},
	}
	router := topicRouter(NewTopicHandler(topics, testLogger()), userID)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/topics", CreateTopicRequest{Title: "Go basics"}))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Go basics", got.Title)
	body := decodeBody[TopicCreatedResponse](t, rec)
	assert.Equal(t, "Topic created successfully", body.Message)
	assert.JSONEq(t, "{}", string(body.Topic.Content))
	require.Len(t, body.Topic.Quizzes, 1)
	assert.Equal(t, "A language", body.Topic.Quizzes[0].CorrectAnswer)
}

func TestTopicHandler_CreateTopicRejectsBadInput(t *testing.T) {
	t.Parallel()

	router := topicRouter(NewTopicHandler(&fakeTopicService{}, testLogger()), uuid.New())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/topics", CreateTopicRequest{}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/topics",
		CreateTopicRequest{Title: "Go", DifficultyLevel: "expert"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTopicHandler_ListTopics(t *testing.T) {
	t.Parallel()

	withProgress := &domain.Topic{ID: uuid.New(), Title: "Go"}
	withoutProgress := &domain.Topic{ID: uuid.New(), Title: "Rust"}
	topics := &fakeTopicService{
		listFn: func(context.Context, uuid.UUID) ([]service.TopicSummary, error) {
			return []service.TopicSummary{
				{Topic: withProgress, Progress: &domain.ProgressRecord{QuizScore: 80, CompletionPercentage: 50}},
				{Topic: withoutProgress},
			}, nil
		},
	}
	router := topicRouter(NewTopicHandler(topics, testLogger()), uuid.New())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/topics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var raw struct {
		Topics []map[string]json.RawMessage `json:"topics"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.Len(t, raw.Topics, 2)
	assert.JSONEq(t, `{"completion_percentage":50,"quiz_score":80,"time_spent":0}`, string(raw.Topics[0]["progress"]))
	assert.Equal(t, "null", string(raw.Topics[1]["progress"]))
}

func TestTopicHandler_GetTopic(t *testing.T) {
	t.Parallel()

	known := uuid.New()
	topics := &fakeTopicService{
		getFn: func(_ context.Context, _, topicID uuid.UUID) (*service.TopicDetail, error) {
			if topicID != known {
				return nil, service.ErrTopicNotFound
			}
			return &service.TopicDetail{Topic: &domain.Topic{
				ID: known, Title: "Go", Content: json.RawMessage(`{"summary":"s"}`),
			}}, nil
		},
	}
	router := topicRouter(NewTopicHandler(topics, testLogger()), uuid.New())

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/topics/"+known.String(), nil))

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[TopicResponse](t, rec)
		assert.Equal(t, known, body.Topic.ID)
		assert.JSONEq(t, `{"summary":"s"}`, string(body.Topic.Content))
		assert.NotNil(t, body.Topic.Quizzes)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/topics/"+uuid.NewString(), nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/topics/not-a-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTopicHandler_RequiresUser(t *testing.T) {
	t.Parallel()

	h := NewTopicHandler(&fakeTopicService{}, testLogger())
	rec := httptest.NewRecorder()
	h.ListTopics(rec, httptest.NewRequest(http.MethodGet, "/topics", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewTopicHandlerPanicsWithoutLogger(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { NewTopicHandler(&fakeTopicService{}, nil) })
}
