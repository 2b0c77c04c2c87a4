package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/phrazzld/elearn-api/internal/api/shared"
	"github.com/phrazzld/elearn-api/internal/platform/logger"
	"github.com/phrazzld/elearn-api/internal/service"
)

// QuizHandler serves quiz submission and adaptive quizzes.
type QuizHandler struct {
	quizzes service.QuizService
	logger  *slog.Logger
}

// NewQuizHandler creates a QuizHandler.
func NewQuizHandler(quizzes service.QuizService, logger *slog.Logger) *QuizHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for QuizHandler")
	}
	return &QuizHandler{
		quizzes: quizzes,
		logger:  logger.With(slog.String("component", "quiz_handler")),
	}
}

// SubmitQuiz handles POST /quiz/submit. Answers keyed by anything other than
// a quiz UUID are ignored.
func (h *QuizHandler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := requireUserID(w, r, h.logger)
	if !ok {
		return
	}
	var req SubmitQuizRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	answers := make(map[uuid.UUID]string, len(req.Answers))
	for key, answer := range req.Answers {
		id, err := uuid.Parse(key)
		if err != nil {
			log.Debug("ignoring answer with invalid quiz id", slog.String("key", key))
			continue
		}
		answers[id] = answer
	}

	score, err := h.quizzes.Submit(r.Context(), userID, uuid.MustParse(req.TopicID), answers)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SubmitQuizResponse{
		Message:        "Quiz submitted successfully",
		Score:          score.Score,
		CorrectAnswers: score.CorrectAnswers,
		TotalQuestions: score.TotalQuestions,
		Results:        score.Results,
	})
}

// AdaptiveQuiz handles POST /quiz/adaptive.
func (h *QuizHandler) AdaptiveQuiz(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r, h.logger)
	if !ok {
		return
	}
	var req AdaptiveQuizRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	quiz, err := h.quizzes.Adaptive(r.Context(), userID, uuid.MustParse(req.TopicID))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, quiz)
}
