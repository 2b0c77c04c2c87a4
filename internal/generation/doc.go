// Package generation turns learner input into structured learning material by
// prompting an external language model.
//
// Three generators share one Provider boundary:
//
//   - ContentGenerator produces a TopicContent (summary, concepts, objectives,
//     quiz questions and follow-up topics) for a topic and difficulty level.
//   - QuizGenerator derives a difficulty tier from past performance and produces
//     an AdaptiveQuiz.
//   - RecommendationGenerator suggests topic names from a learner's history.
//
// Model output is untrusted text. Structured responses are checked against an
// explicit Schema before use, and every generator is total: transport errors,
// timeouts and schema violations are logged and replaced by a deterministic
// fallback value, so callers never receive an error.
package generation
