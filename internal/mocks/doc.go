// Package mocks provides shared test doubles for the store, generator, auth
// and provider interfaces.
//
// Store and generator doubles are testify mocks:
//
//	topics := new(mocks.TopicStore)
//	topics.On("GetByID", mock.Anything, userID, topicID).Return(topic, nil)
//
// WithTx on every store mock returns the mock itself, so expectations set on
// it also cover calls made inside a transaction run by mocks.Transactor.
package mocks
