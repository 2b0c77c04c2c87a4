package api

import (
	"context"
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

func progressRouter(h *ProgressHandler, userID uuid.UUID) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, withUser(req, userID))
		})
	})
	r.Get("/progress/{user_id}", h.GetProgress)
	r.Post("/progress/update", h.UpdateProgress)
	r.Get("/recommendations/{user_id}", h.GetRecommendations)
	return r
}

func ownerOnly(requesterID, userID uuid.UUID) error {
	if requesterID != userID {
		return service.ErrNotOwned
	}
	return nil
}

func TestProgressHandler_GetProgress(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	topicID := uuid.New()
	progress := &fakeProgressService{
		listFn: func(_ context.Context, requesterID, uid uuid.UUID) ([]service.ProgressEntry, error) {
			if err := ownerOnly(requesterID, uid); err != nil {
				return nil, err
			}
			return []service.ProgressEntry{{
				Record:     &domain.ProgressRecord{TopicID: topicID, QuizScore: 75, TimeSpent: 30},
				TopicTitle: "Go",
			}}, nil
		},
	}
	router := progressRouter(NewProgressHandler(progress, &fakeRecommendationService{}, testLogger()), userID)

	t.Run("own progress", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/progress/"+userID.String(), nil))

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[ProgressListResponse](t, rec)
		require.Len(t, body.Progress, 1)
		assert.Equal(t, topicID, body.Progress[0].TopicID)
		assert.Equal(t, "Go", body.Progress[0].TopicTitle)
		assert.Equal(t, 30, body.Progress[0].TimeSpent)
	})

	t.Run("someone else", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/progress/"+uuid.NewString(), nil))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "Unauthorized")
	})
}

func TestProgressHandler_UpdateProgress(t *testing.T) {
	t.Parallel()

	topicID := uuid.New()
	var got service.UpdateProgressInput
	progress := &fakeProgressService{
		updateFn: func(_ context.Context, _, tid uuid.UUID, in service.UpdateProgressInput) (*domain.ProgressRecord, error) {
			if tid != topicID {
				return nil, service.ErrProgressNotFound
			}
			got = in
			return &domain.ProgressRecord{TopicID: tid}, nil
		},
	}
	router := progressRouter(NewProgressHandler(progress, &fakeRecommendationService{}, testLogger()), uuid.New())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/progress/update", map[string]any{
		"topic_id":              topicID.String(),
		"completion_percentage": 40.5,
	}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Progress updated successfully", decodeBody[MessageResponse](t, rec).Message)
	require.NotNil(t, got.CompletionPercentage)
	assert.InDelta(t, 40.5, *got.CompletionPercentage, 0.001)
	assert.Nil(t, got.TimeSpent)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/progress/update", map[string]any{
		"topic_id": uuid.NewString(),
	}))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, jsonRequest(t, http.MethodPost, "/progress/update", map[string]any{
		"topic_id":              topicID.String(),
		"completion_percentage": 120,
	}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProgressHandler_GetRecommendations(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	recs := &fakeRecommendationService{
		recommendFn: func(_ context.Context, requesterID, uid uuid.UUID) (*service.Recommendations, error) {
			if err := ownerOnly(requesterID, uid); err != nil {
				return nil, err
			}
			return &service.Recommendations{
				Recommendations:    []string{"Concurrency"},
				PerformanceSummary: map[string]float64{"Go": 90},
			}, nil
		},
	}
	router := progressRouter(NewProgressHandler(&fakeProgressService{}, recs, testLogger()), userID)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/recommendations/"+userID.String(), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"recommendations":["Concurrency"],"user_topics":[],"performance_summary":{"Go":90}}`,
		rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/recommendations/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error generating recommendations")
}
