package generation

// QuizQuestionSchema describes a single multiple-choice question.
var QuizQuestionSchema = &Schema{
	Name: "QuizQuestion",
	Fields: []Field{
		{Name: "question", Type: FieldString, Required: true, Description: "The quiz question"},
		{Name: "options", Type: FieldStringList, Required: true, Description: "List of 4 multiple choice options"},
		{Name: "correct_answer", Type: FieldString, Required: true, Description: "The correct answer"},
		{Name: "explanation", Type: FieldString, Required: true, Description: "Explanation of the correct answer"},
		{Name: "difficulty", Type: FieldString, Description: "Question difficulty"},
	},
}

// TopicContentSchema describes the learning material generated for a topic.
var TopicContentSchema = &Schema{
	Name: "LearningContent",
	Fields: []Field{
		{Name: "summary", Type: FieldString, Required: true, Description: "Comprehensive summary of the topic"},
		{Name: "key_concepts", Type: FieldStringList, Required: true, Description: "List of key concepts"},
		{Name: "learning_objectives", Type: FieldStringList, Required: true, Description: "Learning objectives"},
		{Name: "quizzes", Type: FieldObjectList, Required: true, Description: "Quiz questions", Items: QuizQuestionSchema},
		{Name: "next_topics", Type: FieldStringList, Required: true, Description: "Suggested next topics to learn"},
		{Name: "estimated_duration", Type: FieldString, Required: true, Description: "Estimated learning duration in minutes"},
	},
}

// AdaptiveQuizSchema describes a quiz tuned to learner performance.
var AdaptiveQuizSchema = &Schema{
	Name: "AdaptiveQuiz",
	Fields: []Field{
		{Name: "questions", Type: FieldObjectList, Required: true, Description: "Quiz questions", Items: QuizQuestionSchema},
		{Name: "estimated_time", Type: FieldString, Required: true, Description: "Estimated completion time in minutes"},
	},
}
