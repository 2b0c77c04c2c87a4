// Package service implements the application operations behind the HTTP API:
// registration and login, topic creation with generated content, quiz
// grading, adaptive quizzes, progress tracking, recommendations and learning
// sessions. Services depend on store interfaces and generator interfaces and
// never on a concrete database or model provider.
package service
