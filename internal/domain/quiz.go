package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// DefaultQuizDifficulty is used when generated questions carry no difficulty.
const DefaultQuizDifficulty = "medium"

// MaxCorrectAnswerLength matches the quizzes.correct_answer column.
const MaxCorrectAnswerLength = 500

// Quiz validation errors.
var (
	ErrEmptyQuizID          = errors.New("quiz ID cannot be empty")
	ErrEmptyQuizTopicID     = NewValidationError("topic_id", "cannot be empty")
	ErrEmptyQuestion        = NewValidationError("question", "cannot be empty")
	ErrEmptyCorrectAnswer   = NewValidationError("correct_answer", "cannot be empty")
	ErrCorrectAnswerTooLong = NewValidationError("correct_answer", "must be at most 500 characters")
)

// Quiz is a single multiple-choice question attached to a topic.
//
// CorrectAnswer is not required to appear in Options: generated questions are
// stored as produced and scored by exact string comparison.
type Quiz struct {
	ID            uuid.UUID `json:"id"`
	TopicID       uuid.UUID `json:"topic_id"`
	Question      string    `json:"question"`
	Options       []string  `json:"options"`
	CorrectAnswer string    `json:"correct_answer"`
	Explanation   string    `json:"explanation"`
	Difficulty    string    `json:"difficulty"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewQuiz creates a validated Quiz for topicID.
func NewQuiz(
	topicID uuid.UUID,
	question string,
	options []string,
	correctAnswer, explanation, difficulty string,
) (*Quiz, error) {
	if difficulty == "" {
		difficulty = DefaultQuizDifficulty
	}
	if options == nil {
		options = []string{}
	}
	quiz := &Quiz{
		ID:            uuid.New(),
		TopicID:       topicID,
		Question:      question,
		Options:       options,
		CorrectAnswer: correctAnswer,
		Explanation:   explanation,
		Difficulty:    difficulty,
		CreatedAt:     time.Now().UTC(),
	}
	if err := quiz.Validate(); err != nil {
		return nil, err
	}
	return quiz, nil
}

// Validate checks the quiz fields.
func (q *Quiz) Validate() error {
	switch {
	case q.ID == uuid.Nil:
		return ErrEmptyQuizID
	case q.TopicID == uuid.Nil:
		return ErrEmptyQuizTopicID
	case q.Question == "":
		return ErrEmptyQuestion
	case q.CorrectAnswer == "":
		return ErrEmptyCorrectAnswer
	case len(q.CorrectAnswer) > MaxCorrectAnswerLength:
		return ErrCorrectAnswerTooLong
	}
	return nil
}

// AnswerResult is the outcome of one submitted answer.
type AnswerResult struct {
	QuizID        uuid.UUID `json:"question_id"`
	Question      string    `json:"question"`
	UserAnswer    *string   `json:"user_answer"`
	CorrectAnswer string    `json:"correct_answer"`
	IsCorrect     bool      `json:"is_correct"`
	Explanation   string    `json:"explanation"`
}

// QuizScore summarizes a graded submission.
type QuizScore struct {
	Score          float64        `json:"score"`
	CorrectAnswers int            `json:"correct_answers"`
	TotalQuestions int            `json:"total_questions"`
	Results        []AnswerResult `json:"results"`
}

// ScoreQuiz grades answers, keyed by quiz ID, against quizzes. A missing
// answer counts as wrong. The score is a percentage and is 0 when there are no
// questions.
func ScoreQuiz(quizzes []*Quiz, answers map[uuid.UUID]string) QuizScore {
	score := QuizScore{
		TotalQuestions: len(quizzes),
		Results:        make([]AnswerResult, 0, len(quizzes)),
	}

	for _, q := range quizzes {
		result := AnswerResult{
			QuizID:        q.ID,
			Question:      q.Question,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		}
		if answer, ok := answers[q.ID]; ok {
			result.UserAnswer = &answer
			result.IsCorrect = answer == q.CorrectAnswer
		}
		if result.IsCorrect {
			score.CorrectAnswers++
		}
		score.Results = append(score.Results, result)
	}

	if score.TotalQuestions > 0 {
		score.Score = float64(score.CorrectAnswers) / float64(score.TotalQuestions) * 100
	}
	return score
}
