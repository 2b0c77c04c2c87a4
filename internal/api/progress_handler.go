package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/phrazzld/elearn-api/internal/api/shared"
	"github.com/phrazzld/elearn-api/internal/service"
)

// ProgressListResponse is returned by GET /progress/{user_id}.
type ProgressListResponse struct {
	Progress []ProgressResponse `json:"progress"`
}

// MessageResponse carries a single status message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ProgressHandler serves progress reads and updates and recommendations.
type ProgressHandler struct {
	progress        service.ProgressService
	recommendations service.RecommendationService
	logger          *slog.Logger
}

// NewProgressHandler creates a ProgressHandler.
func NewProgressHandler(
	progress service.ProgressService,
	recommendations service.RecommendationService,
	logger *slog.Logger,
) *ProgressHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ProgressHandler")
	}
	return &ProgressHandler{
		progress:        progress,
		recommendations: recommendations,
		logger:          logger.With(slog.String("component", "progress_handler")),
	}
}

// GetProgress handles GET /progress/{user_id}. Only the caller's own progress
// is visible.
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := requireUserID(w, r, h.logger)
	if !ok {
		return
	}
	userID, err := getPathUUID(r, "user_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	entries, err := h.progress.List(r.Context(), requesterID, userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ProgressListResponse{
		Progress: lo.Map(entries, progressToResponse),
	})
}

// UpdateProgress handles POST /progress/update.
func (h *ProgressHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r, h.logger)
	if !ok {
		return
	}
	var req UpdateProgressRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	_, err := h.progress.Update(r.Context(), userID, uuid.MustParse(req.TopicID), service.UpdateProgressInput{
		CompletionPercentage: req.CompletionPercentage,
		TimeSpent:            req.TimeSpent,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Progress updated successfully"})
}

// GetRecommendations handles GET /recommendations/{user_id}.
func (h *ProgressHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := requireUserID(w, r, h.logger)
	if !ok {
		return
	}
	userID, err := getPathUUID(r, "user_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	recs, err := h.recommendations.Recommend(r.Context(), requesterID, userID)
	if err != nil {
		HandleAPIError(w, r, err, "Error generating recommendations")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, RecommendationsResponse{
		Recommendations:    lo.Ternary(recs.Recommendations == nil, []string{}, recs.Recommendations),
		UserTopics:         lo.Ternary(recs.UserTopics == nil, []string{}, recs.UserTopics),
		PerformanceSummary: recs.PerformanceSummary,
	})
}
