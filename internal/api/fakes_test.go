package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/elearn-api/internal/api/shared"
	"github.com/phrazzld/elearn-api/internal/domain"
	"github.com/phrazzld/elearn-api/internal/generation"
	"github.com/phrazzld/elearn-api/internal/service"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withUser(req *http.Request, userID uuid.UUID) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), shared.UserIDContextKey, userID))
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

type fakeUserService struct {
	registerFn     func(ctx context.Context, in service.RegisterInput) (*domain.User, error)
	authenticateFn func(ctx context.Context, username, password string) (*domain.User, error)
	getUserFn      func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

func (f *fakeUserService) Register(ctx context.Context, in service.RegisterInput) (*domain.User, error) {
	return f.registerFn(ctx, in)
}

func (f *fakeUserService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	return f.authenticateFn(ctx, username, password)
}

func (f *fakeUserService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return f.getUserFn(ctx, userID)
}

type fakeTopicService struct {
	createFn func(ctx context.Context, userID uuid.UUID, in service.CreateTopicInput) (*service.TopicDetail, error)
	listFn   func(ctx context.Context, userID uuid.UUID) ([]service.TopicSummary, error)
	getFn    func(ctx context.Context, userID, topicID uuid.UUID) (*service.TopicDetail, error)
}

func (f *fakeTopicService) Create(ctx context.Context, userID uuid.UUID, in service.CreateTopicInput) (*service.TopicDetail, error) {
	return f.createFn(ctx, userID, in)
}

func (f *fakeTopicService) List(ctx context.Context, userID uuid.UUID) ([]service.TopicSummary, error) {
	return f.listFn(ctx, userID)
}

func (f *fakeTopicService) Get(ctx context.Context, userID, topicID uuid.UUID) (*service.TopicDetail, error) {
	return f.getFn(ctx, userID, topicID)
}

type fakeQuizService struct {
	submitFn   func(ctx context.Context, userID, topicID uuid.UUID, answers map[uuid.UUID]string) (*domain.QuizScore, error)
	adaptiveFn func(ctx context.Context, userID, topicID uuid.UUID) (*generation.AdaptiveQuiz, error)
}

func (f *fakeQuizService) Submit(
	ctx context.Context,
	userID, topicID uuid.UUID,
	answers map[uuid.UUID]string,
) (*domain.QuizScore, error) {
	return f.submitFn(ctx, userID, topicID, answers)
}

func (f *fakeQuizService) Adaptive(ctx context.Context, userID, topicID uuid.UUID) (*generation.AdaptiveQuiz, error) {
	return f.adaptiveFn(ctx, userID, topicID)
}

type fakeProgressService struct {
	listFn   func(ctx context.Context, requesterID, userID uuid.UUID) ([]service.ProgressEntry, error)
	updateFn func(ctx context.Context, userID, topicID uuid.UUID, in service.UpdateProgressInput) (*domain.ProgressRecord, error)
}

func (f *fakeProgressService) List(ctx context.Context, requesterID, userID uuid.UUID) ([]service.ProgressEntry, error) {
	return f.listFn(ctx, requesterID, userID)
}

func (f *fakeProgressService) Update(
	ctx context.Context,
	userID, topicID uuid.UUID,
	in service.UpdateProgressInput,
) (*domain.ProgressRecord, error) {
	return f.updateFn(ctx, userID, topicID, in)
}

type fakeRecommendationService struct {
	recommendFn func(ctx context.Context, requesterID, userID uuid.UUID) (*service.Recommendations, error)
}

func (f *fakeRecommendationService) Recommend(ctx context.Context, requesterID, userID uuid.UUID) (*service.Recommendations, error) {
	return f.recommendFn(ctx, requesterID, userID)
}

type fakeSessionService struct {
	startFn func(ctx context.Context, userID, topicID uuid.UUID) (*domain.LearningSession, error)
	endFn   func(ctx context.Context, userID, sessionID uuid.UUID, activities int) (*domain.LearningSession, error)
}

func (f *fakeSessionService) Start(ctx context.Context, userID, topicID uuid.UUID) (*domain.LearningSession, error) {
	return f.startFn(ctx, userID, topicID)
}

func (f *fakeSessionService) End(
	ctx context.Context,
	userID, sessionID uuid.UUID,
	activities int,
) (*domain.LearningSession, error) {
	return f.endFn(ctx, userID, sessionID, activities)
}
