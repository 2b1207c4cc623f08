package scorematch

import (
	"context"
	"errors"

	internalaudit "github.com/scorematch/scorematch/internal/audit"
)

const (
	auditEventLoginAttempt       = "login_attempt"
	auditEventLoginFailure       = "login_failure"
	auditEventSignupAttempt      = "signup_attempt"
	auditEventSignupFailure      = "signup_failure"
	auditEventChallengeIssued    = "challenge_issued"
	auditEventChallengeAbandoned = "challenge_abandoned"
	auditEventOTPVerified        = "otp_verified"
	auditEventOTPFailed          = "otp_failed"
	auditEventSessionRestored    = "session_restored"
	auditEventLogout             = "logout"
	auditEventStorageDegraded    = "storage_degraded"
)

// AuditErrorCode defines a public type used by ScoreMatch APIs.
//
// AuditErrorCode instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditErrorCode string

const (
	auditErrMissingFields    AuditErrorCode = "missing_fields"
	auditErrInvalidEmail     AuditErrorCode = "invalid_email"
	auditErrWeakPassword     AuditErrorCode = "weak_password"
	auditErrUserNotFound     AuditErrorCode = "user_not_found"
	auditErrWrongPassword    AuditErrorCode = "wrong_password"
	auditErrDuplicate        AuditErrorCode = "duplicate"
	auditErrChallengeExpired AuditErrorCode = "challenge_expired"
	auditErrWrongCode        AuditErrorCode = "wrong_code"
	auditErrUnavailable      AuditErrorCode = "backend_unavailable"
	auditErrInternal         AuditErrorCode = "internal_error"
)

func (e *Engine) emitAudit(
	ctx context.Context,
	eventType string,
	success bool,
	email string,
	flow ChallengeKind,
	err error,
	metadataBuilder func() map[string]string,
) {
	if e == nil || e.audit == nil {
		return
	}

	var metadata map[string]string
	if metadataBuilder != nil {
		metadata = metadataBuilder()
	}

	event := internalaudit.NewEvent(eventType)
	event.Email = email
	event.Flow = string(flow)
	event.Success = success
	event.Metadata = metadata
	if code := auditErrorCode(err); code != "" {
		event.Error = string(code)
	}

	e.audit.Emit(ctx, event)
}

func auditErrorCode(err error) AuditErrorCode {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrMissingFields):
		return auditErrMissingFields
	case errors.Is(err, ErrInvalidEmailFormat),
		errors.Is(err, ErrInvalidEmailDomain):
		return auditErrInvalidEmail
	case errors.Is(err, ErrWeakPassword):
		return auditErrWeakPassword
	case errors.Is(err, ErrAccountNotFound):
		return auditErrUserNotFound
	case errors.Is(err, ErrWrongPassword):
		return auditErrWrongPassword
	case errors.Is(err, ErrAlreadyRegistered):
		return auditErrDuplicate
	case errors.Is(err, ErrChallengeExpired):
		return auditErrChallengeExpired
	case errors.Is(err, ErrWrongCode):
		return auditErrWrongCode
	case errors.Is(err, ErrStorageWriteFailed):
		return auditErrUnavailable
	default:
		return auditErrInternal
	}
}
