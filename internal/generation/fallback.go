package generation

import "fmt"

// DefaultRecommendations is returned when recommendation generation fails.
var DefaultRecommendations = []string{
	"Machine Learning Basics",
	"Data Science Fundamentals",
	"Web Development",
	"Python Programming",
	"Artificial Intelligence",
}

// FallbackTopicContent returns placeholder content for topic.
func FallbackTopicContent(topic string) TopicContent {
	return TopicContent{
		Summary: fmt.Sprintf("Here's a comprehensive overview of %s. This topic covers fundamental "+
			"concepts and principles that are essential for understanding the subject matter.", topic),
		KeyConcepts: []string{
			fmt.Sprintf("Concept 1 related to %s", topic),
			fmt.Sprintf("Concept 2 related to %s", topic),
			fmt.Sprintf("Concept 3 related to %s", topic),
		},
		LearningObjectives: []string{
			fmt.Sprintf("Understand the basics of %s", topic),
			fmt.Sprintf("Apply %s concepts", topic),
			fmt.Sprintf("Analyze %s principles", topic),
		},
		Quizzes: []QuizQuestion{{
			Question:      fmt.Sprintf("What is the main concept of %s?", topic),
			Options:       []string{"Option A", "Option B", "Option C", "Option D"},
			CorrectAnswer: "Option A",
			Explanation:   "This is the correct answer because...",
		}},
		NextTopics: []string{
			fmt.Sprintf("Advanced %s", topic),
			fmt.Sprintf("%s applications", topic),
			"Related topic",
		},
		EstimatedDuration: "30",
	}
}

// FallbackAdaptiveQuiz returns a one-question placeholder quiz for topic.
func FallbackAdaptiveQuiz(topic string) AdaptiveQuiz {
	return AdaptiveQuiz{
		Questions: []QuizQuestion{{
			Question:      fmt.Sprintf("Basic question about %s?", topic),
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: "A",
			Explanation:   "This is correct because...",
			Difficulty:    string(DifficultyMedium),
		}},
		EstimatedTime: "10",
	}
}

func defaultRecommendations() []string {
	out := make([]string, len(DefaultRecommendations))
	copy(out, DefaultRecommendations)
	return out
}
