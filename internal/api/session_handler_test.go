package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/elearn-api/internal/domain"
	"github.com/phrazzld/elearn-api/internal/service"
)

func TestSessionHandler_StartSession(t *testing.T) {
	t.Parallel()

	started := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	sessionID := uuid.New()
	sessions := &fakeSessionService{
		startFn: func(_ context.Context, uid, tid uuid.UUID) (*domain.LearningSession, error) {
			return &domain.LearningSession{ID: sessionID, UserID: uid, TopicID: tid, StartTime: started}, nil
		},
	}
	h := NewSessionHandler(sessions, testLogger())

	rec := httptest.NewRecorder()
	h.StartSession(rec, withUser(jsonRequest(t, http.MethodPost, "/session/start",
		StartSessionRequest{TopicID: uuid.NewString()}), uuid.New()))

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody[StartSessionResponse](t, rec)
	assert.Equal(t, "Session started", body.Message)
	assert.Equal(t, sessionID, body.SessionID)
	assert.True(t, started.Equal(body.StartTime))
}

func TestSessionHandler_EndSession(t *testing.T) {
	t.Parallel()

	open := uuid.New()
	var gotActivities int
	sessions := &fakeSessionService{
		endFn: func(_ context.Context, _, sid uuid.UUID, activities int) (*domain.LearningSession, error) {
			if sid != open {
				return nil, &service.ServiceError{Operation: "end_session", Message: "ending session", Err: domain.ErrSessionEnded}
			}
			gotActivities = activities
			return &domain.LearningSession{ID: sid, Duration: lo.ToPtr(25), ActivitiesCompleted: activities}, nil
		},
	}
	h := NewSessionHandler(sessions, testLogger())

	rec := httptest.NewRecorder()
	h.EndSession(rec, withUser(jsonRequest(t, http.MethodPost, "/session/end",
		EndSessionRequest{SessionID: open.String(), ActivitiesCompleted: lo.ToPtr(4)}), uuid.New()))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 4, gotActivities)
	assert.Equal(t, EndSessionResponse{Message: "Session ended", Duration: 25, ActivitiesCompleted: 4},
		decodeBody[EndSessionResponse](t, rec))

	rec = httptest.NewRecorder()
	h.EndSession(rec, withUser(jsonRequest(t, http.MethodPost, "/session/end",
		EndSessionRequest{SessionID: uuid.NewString()}), uuid.New()))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Session already ended")
}

func TestHealth(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, HealthResponse{Status: "healthy", Message: "AI E-Learning Platform API is running"},
		decodeBody[HealthResponse](t, rec))
}
