// Package domain contains the core learning entities (users, topics, quizzes,
// progress records and learning sessions) and the rules that keep them valid,
// independent of storage or transport.
package domain
