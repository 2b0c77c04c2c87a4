package api

import (
	"log/slog"
	"net/http"

	"github.com/samber/lo"

	"github.com/phrazzld/elearn-api/internal/api/shared"
	"github.com/phrazzld/elearn-api/internal/platform/logger"
	"github.com/phrazzld/elearn-api/internal/service"
)

// TopicListResponse is returned by GET /topics.
type TopicListResponse struct {
	Topics []TopicSummaryResponse `json:"topics"`
}

// TopicResponse wraps a single topic.
type TopicResponse struct {
	Topic TopicDetailResponse `json:"topic"`
}

// TopicHandler serves topic creation and retrieval.
type TopicHandler struct {
	topics service.TopicService
	logger *slog.Logger
}

// NewTopicHandler creates a TopicHandler.
func NewTopicHandler(topics service.TopicService, logger *slog.Logger) *TopicHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TopicHandler")
	}
	return &TopicHandler{
		topics: topics,
		logger: logger.With(slog.String("component", "topic_handler")),
	}
}

// CreateTopic handles POST /topics. Content generation never fails the
// request; a fallback is stored instead.
func (h *TopicHandler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := requireUserID(w, r, h.logger)
	if !ok {
		return
	}
	var req CreateTopicRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	detail, err := h.topics.Create(r.Context(), userID, service.CreateTopicInput{
		Title:           req.Title,
		Description:     req.Description,
		DifficultyLevel: req.DifficultyLevel,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Debug("topic created", slog.String("topic_id", detail.Topic.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, TopicCreatedResponse{
		Message: "Topic created successfully",
		Topic:   topicDetailToResponse(detail),
	})
}

// ListTopics handles GET /topics.
func (h *TopicHandler) ListTopics(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r, h.logger)
	if !ok {
		return
	}

	summaries, err := h.topics.List(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, TopicListResponse{
		Topics: lo.Map(summaries, topicSummaryToResponse),
	})
}

// GetTopic handles GET /topics/{id}.
func (h *TopicHandler) GetTopic(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r, h.logger)
	if !ok {
		return
	}
	topicID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	detail, err := h.topics.Get(r.Context(), userID, topicID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, TopicResponse{Topic: topicDetailToResponse(detail)})
}
