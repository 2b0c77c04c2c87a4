package auth

import "errors"

// Token validation errors.
var (
	// ErrInvalidToken covers malformed tokens and bad signatures.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the access token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid indicates the nbf claim is in the future.
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken indicates no token was sent.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrWrongTokenType is returned when a refresh token is used as an
	// access token or the other way around.
	ErrWrongTokenType = errors.New("wrong token type")

	// ErrInvalidRefreshToken covers malformed or tampered refresh tokens.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// ErrExpiredRefreshToken indicates the refresh token has expired.
	ErrExpiredRefreshToken = errors.New("refresh token has expired")
)
