package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "80.0", formatPercentage(80))
	assert.Equal(t, "72.5", formatPercentage(72.5))
	assert.Equal(t, "0.0", formatPercentage(0))
	assert.Equal(t, "-5.0", formatPercentage(-5))
}

func TestContentPrompt(t *testing.T) {
	msgs := contentPrompt("Photosynthesis", "beginner")

	require.Len(t, msgs, 2)
	assert.Equal(t, RoleSystem, msgs[0].Role)
	assert.Equal(t, contentSystemPrompt, msgs[0].Content)
	assert.Equal(t, RoleHuman, msgs[1].Role)
	assert.Contains(t, msgs[1].Content, `Create comprehensive learning content for the topic: "Photosynthesis" at beginner level.`)
	assert.Contains(t, msgs[1].Content, "2. 5 multiple choice questions with explanations")
	assert.Contains(t, msgs[1].Content, TopicContentSchema.FormatInstructions())
}

func TestAdaptiveQuizPrompt(t *testing.T) {
	msgs := adaptiveQuizPrompt("Algebra", "intermediate", 85, DifficultyHard)

	require.Len(t, msgs, 2)
	assert.Equal(t, quizSystemPrompt, msgs[0].Content)
	assert.Contains(t, msgs[1].Content, `Create a hard difficulty quiz for the topic: "Algebra"`)
	assert.Contains(t, msgs[1].Content, "User's current level: intermediate")
	assert.Contains(t, msgs[1].Content, "Previous performance: 85.0%")
	assert.Contains(t, msgs[1].Content, "Generate 3 questions")
}

func TestRecommendationPrompt(t *testing.T) {
	msgs := recommendationPrompt([]string{"Go", "SQL"}, map[string]float64{"Go": 90, "SQL": 55.5})

	require.Len(t, msgs, 2)
	assert.Equal(t, recommendationSystemPrompt, msgs[0].Content)
	assert.Contains(t, msgs[1].Content, "User's previous topics: Go, SQL")
	assert.Contains(t, msgs[1].Content, `Performance summary: {"Go":90,"SQL":55.5}`)
	assert.Contains(t, msgs[1].Content, "Return as a JSON array of topic names.")
}

func TestRecommendationPromptEmptyHistory(t *testing.T) {
	msgs := recommendationPrompt(nil, nil)

	assert.Contains(t, msgs[1].Content, "User's previous topics: \n")
	assert.Contains(t, msgs[1].Content, "Performance summary: {}")
}
