package api

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/phrazzld/elearn-api/internal/domain"
	"github.com/phrazzld/elearn-api/internal/service"
)

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username      string `json:"username"       validate:"required,max=80"`
	Email         string `json:"email"          validate:"required,email,max=120"`
	Password      string `json:"password"       validate:"required,min=8,max=72"`
	LearningLevel string `json:"learning_level" validate:"omitempty,oneof=beginner intermediate advanced"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest is the body of POST /auth/refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID            uuid.UUID `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	LearningLevel string    `json:"learning_level"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Message      string `json:"message"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	// ExpiresAt is the RFC 3339 expiry of the access token.
	ExpiresAt string        `json:"expires_at"`
	User      *UserResponse `json:"user"`
}

// RefreshTokenResponse is returned by POST /auth/refresh.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    string `json:"expires_at"`
}

// CreateTopicRequest is the body of POST /topics.
type CreateTopicRequest struct {
	Title           string `json:"title"            validate:"required,max=200"`
	Description     string `json:"description"`
	DifficultyLevel string `json:"difficulty_level" validate:"omitempty,oneof=beginner intermediate advanced"`
}

// ProgressSummary is the short progress view embedded in topic lists.
type ProgressSummary struct {
	CompletionPercentage float64 `json:"completion_percentage"`
	QuizScore            float64 `json:"quiz_score"`
	TimeSpent            int     `json:"time_spent"`
}

// TopicSummaryResponse is one entry of GET /topics. Progress is null when
// the learner has no record.
type TopicSummaryResponse struct {
	ID              uuid.UUID        `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	DifficultyLevel string           `json:"difficulty_level"`
	CreatedAt       time.Time        `json:"created_at"`
	Progress        *ProgressSummary `json:"progress"`
}

// QuizResponse is a stored quiz question.
type QuizResponse struct {
	ID            uuid.UUID `json:"id"`
	Question      string    `json:"question"`
	Options       []string  `json:"options"`
	CorrectAnswer string    `json:"correct_answer"`
	Explanation   string    `json:"explanation"`
	Difficulty    string    `json:"difficulty"`
}

// TopicDetailResponse is a topic with its decoded content and quizzes.
type TopicDetailResponse struct {
	ID              uuid.UUID       `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Content         json.RawMessage `json:"content"`
	Quizzes         []QuizResponse  `json:"quizzes"`
	DifficultyLevel string          `json:"difficulty_level"`
	CreatedAt       time.Time       `json:"created_at"`
}

// TopicCreatedResponse is returned by POST /topics.
type TopicCreatedResponse struct {
	Message string              `json:"message"`
	Topic   TopicDetailResponse `json:"topic"`
}

// SubmitQuizRequest is the body of POST /quiz/submit. Answers are keyed by
// quiz ID.
type SubmitQuizRequest struct {
	TopicID string            `json:"topic_id" validate:"required,uuid"`
	Answers map[string]string `json:"answers"  validate:"required,min=1"`
}

// SubmitQuizResponse reports a graded submission.
type SubmitQuizResponse struct {
	Message        string                `json:"message"`
	Score          float64               `json:"score"`
	CorrectAnswers int                   `json:"correct_answers"`
	TotalQuestions int                   `json:"total_questions"`
	Results        []domain.AnswerResult `json:"results"`
}

// AdaptiveQuizRequest is the body of POST /quiz/adaptive.
type AdaptiveQuizRequest struct {
	TopicID string `json:"topic_id" validate:"required,uuid"`
}

// ProgressResponse is one entry of GET /progress/{user_id}.
type ProgressResponse struct {
	TopicID              uuid.UUID `json:"topic_id"`
	TopicTitle           string    `json:"topic_title"`
	CompletionPercentage float64   `json:"completion_percentage"`
	QuizScore            float64   `json:"quiz_score"`
	TimeSpent            int       `json:"time_spent"`
	LastAccessed         time.Time `json:"last_accessed"`
}

// UpdateProgressRequest is the body of POST /progress/update.
type UpdateProgressRequest struct {
	TopicID              string   `json:"topic_id"              validate:"required,uuid"`
	CompletionPercentage *float64 `json:"completion_percentage" validate:"omitempty,gte=0,lte=100"`
	TimeSpent            *int     `json:"time_spent"            validate:"omitempty,gte=0"`
}

// RecommendationsResponse is returned by GET /recommendations/{user_id}.
type RecommendationsResponse struct {
	Recommendations    []string           `json:"recommendations"`
	UserTopics         []string           `json:"user_topics"`
	PerformanceSummary map[string]float64 `json:"performance_summary"`
}

// StartSessionRequest is the body of POST /session/start.
type StartSessionRequest struct {
	TopicID string `json:"topic_id" validate:"required,uuid"`
}

// StartSessionResponse is returned by POST /session/start.
type StartSessionResponse struct {
	Message   string    `json:"message"`
	SessionID uuid.UUID `json:"session_id"`
	StartTime time.Time `json:"start_time"`
}

// EndSessionRequest is the body of POST /session/end.
type EndSessionRequest struct {
	SessionID           string `json:"session_id"           validate:"required,uuid"`
	ActivitiesCompleted *int   `json:"activities_completed" validate:"omitempty,gte=0"`
}

// EndSessionResponse is returned by POST /session/end.
type EndSessionResponse struct {
	Message             string `json:"message"`
	Duration            int    `json:"duration"`
	ActivitiesCompleted int    `json:"activities_completed"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func userToResponse(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		LearningLevel: string(u.LearningLevel),
	}
}

func quizzesToResponse(quizzes []*domain.Quiz) []QuizResponse {
	return lo.Map(quizzes, func(q *domain.Quiz, _ int) QuizResponse {
		options := q.Options
		if options == nil {
			options = []string{}
		}
		return QuizResponse{
			ID:            q.ID,
			Question:      q.Question,
			Options:       options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			Difficulty:    q.Difficulty,
		}
	})
}

func topicDetailToResponse(d *service.TopicDetail) TopicDetailResponse {
	content := d.Topic.Content
	if len(content) == 0 {
		content = json.RawMessage("{}")
	}
	return TopicDetailResponse{
		ID:              d.Topic.ID,
		Title:           d.Topic.Title,
		Description:     d.Topic.Description,
		Content:         content,
		Quizzes:         quizzesToResponse(d.Quizzes),
		DifficultyLevel: string(d.Topic.DifficultyLevel),
		CreatedAt:       d.Topic.CreatedAt,
	}
}

func topicSummaryToResponse(s service.TopicSummary, _ int) TopicSummaryResponse {
	resp := TopicSummaryResponse{
		ID:              s.Topic.ID,
		Title:           s.Topic.Title,
		Description:     s.Topic.Description,
		DifficultyLevel: string(s.Topic.DifficultyLevel),
		CreatedAt:       s.Topic.CreatedAt,
	}
	if s.Progress != nil {
		resp.Progress = &ProgressSummary{
			CompletionPercentage: s.Progress.CompletionPercentage,
			QuizScore:            s.Progress.QuizScore,
			TimeSpent:            s.Progress.TimeSpent,
		}
	}
	return resp
}

func progressToResponse(e service.ProgressEntry, _ int) ProgressResponse {
	return ProgressResponse{
		TopicID:              e.Record.TopicID,
		TopicTitle:           e.TopicTitle,
		CompletionPercentage: e.Record.CompletionPercentage,
		QuizScore:            e.Record.QuizScore,
		TimeSpent:            e.Record.TimeSpent,
		LastAccessed:         e.Record.LastAccessed,
	}
}
