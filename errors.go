package scorematch

import "errors"

var (
	// ErrMissingFields is an exported constant or variable used by the auth engine.
	ErrMissingFields = errors.New("missing required fields")
	// ErrInvalidEmailFormat is an exported constant or variable used by the auth engine.
	ErrInvalidEmailFormat = errors.New("invalid email format")
	// ErrInvalidEmailDomain is an exported constant or variable used by the auth engine.
	ErrInvalidEmailDomain = errors.New("email domain not allowed")
	// ErrWeakPassword is an exported constant or variable used by the auth engine.
	ErrWeakPassword = errors.New("password below minimum length")
	// ErrAccountNotFound is an exported constant or variable used by the auth engine.
	ErrAccountNotFound = errors.New("account not found")
	// ErrWrongPassword is an exported constant or variable used by the auth engine.
	ErrWrongPassword = errors.New("wrong password")
	// ErrAlreadyRegistered is an exported constant or variable used by the auth engine.
	ErrAlreadyRegistered = errors.New("email already registered")
	// ErrChallengeExpired is an exported constant or variable used by the auth engine.
	ErrChallengeExpired = errors.New("verification session expired")
	// ErrWrongCode is an exported constant or variable used by the auth engine.
	ErrWrongCode = errors.New("wrong verification code")
	// ErrStorageWriteFailed is an exported constant or variable used by the auth engine.
	ErrStorageWriteFailed = errors.New("storage write failed")
	// ErrEngineNotReady is an exported constant or variable used by the auth engine.
	ErrEngineNotReady = errors.New("engine not initialized")
)
