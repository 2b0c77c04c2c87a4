package generation

// QuizQuestion is one multiple-choice question. CorrectAnswer is expected to
// be one of Options but this is not enforced.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	// Difficulty is only set by fallback quizzes.
	Difficulty string `json:"difficulty,omitempty"`
}

// TopicContent is the learning material generated for a topic.
type TopicContent struct {
	Summary            string         `json:"summary"`
	KeyConcepts        []string       `json:"key_concepts"`
	LearningObjectives []string       `json:"learning_objectives"`
	Quizzes            []QuizQuestion `json:"quizzes"`
	NextTopics         []string       `json:"next_topics"`
	// EstimatedDuration is a number of minutes rendered as text.
	EstimatedDuration string `json:"estimated_duration"`
}

// AdaptiveQuiz is a short quiz tuned to a learner's recent performance.
type AdaptiveQuiz struct {
	Questions []QuizQuestion `json:"questions"`
	// EstimatedTime is a number of minutes rendered as text.
	EstimatedTime string `json:"estimated_time"`
}
