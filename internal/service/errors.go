package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/elearn-api/internal/store"
)

// Sentinel errors returned by every service. The API layer maps them to HTTP
// status codes.
var (
	// ErrNotOwned indicates the caller asked for another user's data.
	ErrNotOwned = errors.New("resource is owned by another user")

	ErrUserNotFound     = errors.New("user not found")
	ErrTopicNotFound    = errors.New("topic not found")
	ErrProgressNotFound = errors.New("progress record not found")
	ErrSessionNotFound  = errors.New("learning session not found")

	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")

	// ErrInvalidCredentials is returned for an unknown username or a wrong
	// password, without saying which.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ServiceError wraps an unexpected failure with the operation that hit it.
type ServiceError struct {
	// Operation is the failed operation, e.g. "create_topic".
	Operation string
	Message   string
	Err       error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("service %s failed: %s", e.Operation, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError translates store sentinels into service sentinels and wraps
// anything else in a ServiceError. A nil err yields nil.
func NewServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrNotOwned),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrTopicNotFound),
		errors.Is(err, ErrProgressNotFound),
		errors.Is(err, ErrSessionNotFound),
		errors.Is(err, ErrUsernameTaken),
		errors.Is(err, ErrEmailTaken),
		errors.Is(err, ErrInvalidCredentials):
		return err
	case errors.Is(err, store.ErrUserNotFound):
		return ErrUserNotFound
	case errors.Is(err, store.ErrTopicNotFound):
		return ErrTopicNotFound
	case errors.Is(err, store.ErrProgressNotFound):
		return ErrProgressNotFound
	case errors.Is(err, store.ErrSessionNotFound):
		return ErrSessionNotFound
	case errors.Is(err, store.ErrUsernameExists):
		return ErrUsernameTaken
	case errors.Is(err, store.ErrEmailExists):
		return ErrEmailTaken
	}

	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
