package generation

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	contentSystemPrompt        = "You are an expert educational content creator. Provide clear, engaging, and accurate learning materials."
	quizSystemPrompt           = "You are an expert quiz creator. Create engaging and educational questions."
	recommendationSystemPrompt = "You are an expert learning advisor. Provide personalized recommendations."
)

func contentPrompt(topic, difficultyLevel string) []Message {
	human := fmt.Sprintf(`Create comprehensive learning content for the topic: "%s" at %s level.

Please provide:
1. A detailed summary/explanation (500-800 words)
2. 5 multiple choice questions with explanations
3. Key concepts and definitions
4. Learning objectives
5. Suggested next topics for progression

%s`, topic, difficultyLevel, TopicContentSchema.FormatInstructions())

	return []Message{
		{Role: RoleSystem, Content: contentSystemPrompt},
		{Role: RoleHuman, Content: human},
	}
}

func adaptiveQuizPrompt(topic, userLevel string, previousPerformance float64, difficulty Difficulty) []Message {
	human := fmt.Sprintf(`Create a %s difficulty quiz for the topic: "%s"
User's current level: %s
Previous performance: %s%%

Generate 3 questions that are appropriate for this level and performance.
Make sure the questions are challenging but achievable.

%s`, difficulty, topic, userLevel, formatPercentage(previousPerformance), AdaptiveQuizSchema.FormatInstructions())

	return []Message{
		{Role: RoleSystem, Content: quizSystemPrompt},
		{Role: RoleHuman, Content: human},
	}
}

func recommendationPrompt(userTopics []string, performance map[string]float64) []Message {
	summary, err := json.Marshal(performance)
	if err != nil || performance == nil {
		summary = []byte("{}")
	}

	human := fmt.Sprintf(`Based on the user's learning history and performance, suggest 5 new topics to learn.

User's previous topics: %s
Performance summary: %s

Consider:
1. Topics that build upon their existing knowledge
2. Areas where they might need improvement
3. Related subjects that would be interesting
4. Progressive difficulty levels

Return as a JSON array of topic names.`, strings.Join(userTopics, ", "), summary)

	return []Message{
		{Role: RoleSystem, Content: recommendationSystemPrompt},
		{Role: RoleHuman, Content: human},
	}
}

// formatPercentage renders a score the way it reads naturally in a prompt,
// always with a fractional part: 80 -> "80.0", 72.5 -> "72.5".
func formatPercentage(p float64) string {
	s := strconv.FormatFloat(p, 'f', -1, 64)
	if math.IsNaN(p) || math.IsInf(p, 0) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
