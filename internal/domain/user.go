package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// LearningLevel is a learner's self-reported proficiency. Topics reuse it as
// their difficulty level.
type LearningLevel string

// Supported learning levels.
const (
	LevelBeginner     LearningLevel = "beginner"
	LevelIntermediate LearningLevel = "intermediate"
	LevelAdvanced     LearningLevel = "advanced"
)

// Field limits shared with the database schema.
const (
	MaxUsernameLength = 80
	MaxEmailLength    = 120
	MinPasswordLength = 8
	MaxPasswordLength = 72 // bcrypt ignores anything longer
)

// User validation errors. Each wraps ErrValidation.
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyUsername       = NewValidationError("username", "cannot be empty")
	ErrUsernameTooLong     = NewValidationError("username", "must be at most 80 characters")
	ErrEmptyEmail          = NewValidationError("email", "cannot be empty")
	ErrInvalidEmail        = NewValidationError("email", "invalid email format")
	ErrEmailTooLong        = NewValidationError("email", "must be at most 120 characters")
	ErrPasswordTooShort    = NewValidationError("password", "must be at least 8 characters long")
	ErrPasswordTooLong     = NewValidationError("password", "must be at most 72 characters long")
	ErrEmptyHashedPassword = NewValidationError("password", "hashed password cannot be empty")
	ErrInvalidLevel        = NewValidationError("learning_level", "must be beginner, intermediate or advanced")
)

// IsValid reports whether l is one of the supported levels.
func (l LearningLevel) IsValid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// ParseLearningLevel normalizes s into a LearningLevel. Empty input yields
// LevelBeginner.
func ParseLearningLevel(s string) (LearningLevel, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return LevelBeginner, nil
	}
	level := LearningLevel(s)
	if !level.IsValid() {
		return "", ErrInvalidLevel
	}
	return level, nil
}

// User is a registered learner.
type User struct {
	ID             uuid.UUID     `json:"id"`
	Username       string        `json:"username"`
	Email          string        `json:"email"`
	Password       string        `json:"-"` // plaintext, only set during registration
	HashedPassword string        `json:"-"`
	LearningLevel  LearningLevel `json:"learning_level"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// NewUser creates a validated User. The caller must hash Password before the
// user is stored.
func NewUser(username, email, password string, level LearningLevel) (*User, error) {
	if level == "" {
		level = LevelBeginner
	}
	now := time.Now().UTC()
	user := &User{
		ID:            uuid.New(),
		Username:      strings.TrimSpace(username),
		Email:         strings.TrimSpace(email),
		Password:      password,
		LearningLevel: level,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}
	return user, nil
}

// Validate checks every field of the user.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	switch {
	case u.Username == "":
		return ErrEmptyUsername
	case len(u.Username) > MaxUsernameLength:
		return ErrUsernameTooLong
	}

	switch {
	case u.Email == "":
		return ErrEmptyEmail
	case len(u.Email) > MaxEmailLength:
		return ErrEmailTooLong
	case !validEmail(u.Email):
		return ErrInvalidEmail
	}

	if u.Password != "" {
		if len(u.Password) < MinPasswordLength {
			return ErrPasswordTooShort
		}
		if len(u.Password) > MaxPasswordLength {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}

	if !u.LearningLevel.IsValid() {
		return ErrInvalidLevel
	}
	return nil
}

func validEmail(email string) bool {
	return validate.Var(email, "email") == nil
}
