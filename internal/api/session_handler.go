package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/phrazzld/elearn-api/internal/api/shared"
	"github.com/phrazzld/elearn-api/internal/service"
)

// SessionHandler serves learning session start and end.
type SessionHandler struct {
	sessions service.SessionService
	logger   *slog.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(sessions service.SessionService, logger *slog.Logger) *SessionHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for SessionHandler")
	}
	return &SessionHandler{
		sessions: sessions,
		logger:   logger.With(slog.String("component", "session_handler")),
	}
}

// StartSession handles POST /session/start.
func (h *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r, h.logger)
	if !ok {
		return
	}
	var req StartSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	session, err := h.sessions.Start(r.Context(), userID, uuid.MustParse(req.TopicID))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, StartSessionResponse{
		Message:   "Session started",
		SessionID: session.ID,
		StartTime: session.StartTime,
	})
}

// EndSession handles POST /session/end.
func (h *SessionHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r, h.logger)
	if !ok {
		return
	}
	var req EndSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	activities := lo.FromPtr(req.ActivitiesCompleted)
	session, err := h.sessions.End(r.Context(), userID, uuid.MustParse(req.SessionID), activities)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, EndSessionResponse{
		Message:             "Session ended",
		Duration:            lo.FromPtr(session.Duration),
		ActivitiesCompleted: session.ActivitiesCompleted,
	})
}
