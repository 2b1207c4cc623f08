package scorematch

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/scorematch/scorematch/directory"
	"github.com/scorematch/scorematch/internal"
	"github.com/scorematch/scorematch/session"
	"github.com/scorematch/scorematch/validate"
)

const (
	toastDefault = 5 * time.Second
	toastShort   = 3 * time.Second
)

// Engine defines a public type used by ScoreMatch APIs.
//
// Engine instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Engine struct {
	config    Config
	policy    validate.Policy
	directory *directory.Directory
	sessions  *session.Store
	presenter Presenter
	audit     *auditDispatcher
	metrics   *Metrics

	mu    sync.Mutex
	state State
}

// Close describes the close operation and its observable behavior.
//
// Close may return an error when input validation, dependency calls, or security checks fail.
// Close does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.audit != nil {
		e.audit.Close()
	}
}

// AuditDropped describes the auditdropped operation and its observable behavior.
//
// AuditDropped may return an error when input validation, dependency calls, or security checks fail.
// AuditDropped does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot may return an error when input validation, dependency calls, or security checks fail.
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}
	return e.metrics.Snapshot()
}

// ObserveEmailCheck records one completed live email availability
// probe. The emailcheck package has no metrics handle of its own;
// integrations call this from their deliver callback.
func (e *Engine) ObserveEmailCheck() {
	e.metricInc(MetricEmailCheckRun)
}

// ObserveDailyUpdate records one fired daily update notification.
func (e *Engine) ObserveDailyUpdate() {
	e.metricInc(MetricDailyUpdateFired)
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

// CurrentState describes the currentstate operation and its observable behavior.
//
// CurrentState may return an error when input validation, dependency calls, or security checks fail.
// CurrentState does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) CurrentState() State {
	if e == nil {
		return StateAnonymous
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// CurrentSession describes the currentsession operation and its observable behavior.
//
// CurrentSession may return an error when input validation, dependency calls, or security checks fail.
// CurrentSession does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) CurrentSession(ctx context.Context) (*Session, error) {
	if e == nil {
		return nil, ErrEngineNotReady
	}
	return e.sessions.Current(ctx)
}

// SubmitLogin describes the submitlogin operation and its observable behavior.
//
// SubmitLogin may return an error when input validation, dependency calls, or security checks fail.
// SubmitLogin does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// A successful submission does not authenticate: it issues an OTP
// challenge, reveals the challenge prompt, and moves the engine to
// [StateAwaitingOTP]. Validation failures never mutate state.
func (e *Engine) SubmitLogin(ctx context.Context, email, password string) error {
	if e == nil {
		return ErrEngineNotReady
	}

	if email == "" || password == "" {
		return e.rejectLogin(ctx, email, ErrMissingFields)
	}
	if !e.policy.AllowedDomain(email) {
		return e.rejectLogin(ctx, email, ErrInvalidEmailDomain)
	}

	account, registered, err := e.directory.FindByEmail(ctx, email)
	if err != nil {
		return e.rejectLogin(ctx, email, fmt.Errorf("%w: %v", ErrStorageWriteFailed, err))
	}
	if !registered {
		return e.rejectLogin(ctx, email, ErrAccountNotFound)
	}
	if account.Password != password {
		return e.rejectLogin(ctx, email, ErrWrongPassword)
	}

	return e.issueChallenge(ctx, session.Challenge{
		Kind:  ChallengeLogin,
		Name:  account.Name,
		Email: account.Email,
	})
}

// SubmitSignup describes the submitsignup operation and its observable behavior.
//
// SubmitSignup may return an error when input validation, dependency calls, or security checks fail.
// SubmitSignup does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// The account is NOT registered yet on success; it is written to the
// directory only after the OTP round-trip completes in [Engine.VerifyOTP].
func (e *Engine) SubmitSignup(ctx context.Context, name, email, password string) error {
	if e == nil {
		return ErrEngineNotReady
	}

	if name == "" || email == "" || password == "" {
		return e.rejectSignup(ctx, email, ErrMissingFields)
	}
	if !e.policy.PasswordAcceptable(password) {
		return e.rejectSignup(ctx, email, ErrWeakPassword)
	}
	if !e.policy.AllowedDomain(email) {
		return e.rejectSignup(ctx, email, ErrInvalidEmailDomain)
	}

	taken, err := e.directory.ExistsByEmail(ctx, email)
	if err != nil {
		return e.rejectSignup(ctx, email, fmt.Errorf("%w: %v", ErrStorageWriteFailed, err))
	}
	if taken {
		return e.rejectSignup(ctx, email, ErrAlreadyRegistered)
	}

	return e.issueChallenge(ctx, session.Challenge{
		Kind:     ChallengeSignup,
		Name:     name,
		Email:    email,
		Password: password,
	})
}

// issueChallenge generates a fresh code, replaces any previous
// challenge, and reveals the prompt. The code travels through the
// presenter because this demo has no mail transport.
func (e *Engine) issueChallenge(ctx context.Context, ch session.Challenge) error {
	code, err := internal.NewOTP(e.config.Challenge.OTPDigits)
	if err != nil {
		return err
	}
	ch.ExpectedCode = code

	if err := e.sessions.PutChallenge(ctx, ch); err != nil {
		e.notifyStorageDegraded(ctx, ch.Email, err)
		return fmt.Errorf("%w: %v", ErrStorageWriteFailed, err)
	}

	e.setState(StateAwaitingOTP)
	e.metricInc(MetricOTPIssued)
	e.emitAudit(ctx, auditEventChallengeIssued, true, ch.Email, ch.Kind, nil, nil)
	e.presenter.ShowChallengePrompt(ch.Email, code)
	return nil
}

// VerifyOTP describes the verifyotp operation and its observable behavior.
//
// VerifyOTP may return an error when input validation, dependency calls, or security checks fail.
// VerifyOTP does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// A wrong code keeps the challenge alive for unlimited retries. A
// missing challenge (restart, abandonment) resolves to
// [ErrChallengeExpired] and resets to [StateAnonymous].
func (e *Engine) VerifyOTP(ctx context.Context, code string) error {
	if e == nil {
		return ErrEngineNotReady
	}

	ch, err := e.sessions.GetChallenge(ctx)
	if errors.Is(err, session.ErrNoChallenge) {
		e.setState(StateAnonymous)
		e.metricInc(MetricChallengeExpired)
		e.emitAudit(ctx, auditEventOTPFailed, false, "", "", ErrChallengeExpired, nil)
		e.presenter.Notify(e.userMessage(ErrChallengeExpired), SeverityError, toastDefault)
		e.presenter.RevealAnonymous()
		return ErrChallengeExpired
	}
	if err != nil {
		return err
	}

	if code != ch.ExpectedCode {
		e.metricInc(MetricOTPFailed)
		e.emitAudit(ctx, auditEventOTPFailed, false, ch.Email, ch.Kind, ErrWrongCode, nil)
		e.presenter.Notify(e.userMessage(ErrWrongCode), SeverityError, toastDefault)
		return ErrWrongCode
	}

	if ch.Kind == ChallengeSignup {
		if err := e.directory.Add(ctx, Account{Name: ch.Name, Email: ch.Email, Password: ch.Password}); err != nil {
			e.notifyStorageDegraded(ctx, ch.Email, err)
		} else {
			e.metricInc(MetricSignupSuccess)
			e.emitAudit(ctx, auditEventSignupAttempt, true, ch.Email, ch.Kind, nil, nil)
		}
	}

	sess := Session{Name: ch.Name, Email: ch.Email}
	if err := e.sessions.Set(ctx, sess); err != nil {
		// Optimistic: the in-memory session stands even when the
		// durable write fails. Known inconsistency, surfaced as a
		// warning instead of rolled back.
		e.notifyStorageDegraded(ctx, ch.Email, err)
	}
	if err := e.sessions.ClearChallenge(ctx); err != nil {
		log.Print("scorematch: clearing verified challenge failed: ", err)
	}

	e.setState(StateAuthenticated)
	e.metricInc(MetricOTPVerified)
	if ch.Kind == ChallengeLogin {
		e.metricInc(MetricLoginSuccess)
	}
	e.emitAudit(ctx, auditEventOTPVerified, true, ch.Email, ch.Kind, nil, nil)
	e.presenter.Notify("Login successful!", SeveritySuccess, toastShort)
	e.presenter.RevealAuthenticated(sess)
	return nil
}

// AbandonChallenge describes the abandonchallenge operation and its observable behavior.
//
// AbandonChallenge may return an error when input validation, dependency calls, or security checks fail.
// AbandonChallenge does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// It is the back-navigation path out of the OTP prompt: the pending
// challenge is dropped and the engine returns to [StateAnonymous].
func (e *Engine) AbandonChallenge(ctx context.Context) error {
	if e == nil {
		return ErrEngineNotReady
	}

	if err := e.sessions.ClearChallenge(ctx); err != nil {
		return err
	}
	e.setState(StateAnonymous)
	e.metricInc(MetricChallengeAbandoned)
	e.emitAudit(ctx, auditEventChallengeAbandoned, true, "", "", nil, nil)
	e.presenter.RevealAnonymous()
	return nil
}

// Logout describes the logout operation and its observable behavior.
//
// Logout may return an error when input validation, dependency calls, or security checks fail.
// Logout does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// Logging out while already anonymous is a no-op.
func (e *Engine) Logout(ctx context.Context) error {
	if e == nil {
		return ErrEngineNotReady
	}

	sess, err := e.sessions.Current(ctx)
	if err != nil {
		return err
	}

	if err := e.sessions.Clear(ctx); err != nil {
		e.notifyStorageDegraded(ctx, "", err)
	}
	e.setState(StateAnonymous)

	if sess != nil {
		e.metricInc(MetricLogout)
		e.emitAudit(ctx, auditEventLogout, true, sess.Email, "", nil, nil)
		e.presenter.Notify("You have been logged out.", SeverityInfo, toastShort)
	}
	e.presenter.RevealAnonymous()
	return nil
}

func (e *Engine) rejectLogin(ctx context.Context, email string, cause error) error {
	e.metricInc(MetricLoginFailure)
	e.emitAudit(ctx, auditEventLoginFailure, false, email, ChallengeLogin, cause, nil)
	e.presenter.Notify(e.userMessage(cause), severityFor(cause), toastDefault)
	return cause
}

func (e *Engine) rejectSignup(ctx context.Context, email string, cause error) error {
	e.metricInc(MetricSignupFailure)
	e.emitAudit(ctx, auditEventSignupFailure, false, email, ChallengeSignup, cause, nil)
	e.presenter.Notify(e.userMessage(cause), severityFor(cause), toastDefault)
	return cause
}

func (e *Engine) notifyStorageDegraded(ctx context.Context, email string, cause error) {
	log.Print("scorematch: durable write failed: ", cause)
	e.metricInc(MetricStorageWriteFailed)
	e.emitAudit(ctx, auditEventStorageDegraded, false, email, "", ErrStorageWriteFailed, nil)
	e.presenter.Notify(e.userMessage(ErrStorageWriteFailed), SeverityWarning, toastDefault)
}

func (e *Engine) setState(s State) {
	e.mu.Lock()
	e.state = s
	e.mu.Unlock()
}

// userMessage maps each sentinel to its single user-facing string.
func (e *Engine) userMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingFields):
		return "Please fill in all fields."
	case errors.Is(err, ErrInvalidEmailFormat):
		return "Invalid email format."
	case errors.Is(err, ErrInvalidEmailDomain):
		return fmt.Sprintf("Only %s accounts are allowed.", e.config.Validation.AllowedDomain)
	case errors.Is(err, ErrWeakPassword):
		return fmt.Sprintf("Password must be at least %d characters.", e.config.Validation.MinPasswordLength)
	case errors.Is(err, ErrAccountNotFound):
		return "Account not found."
	case errors.Is(err, ErrWrongPassword):
		return "Wrong password!"
	case errors.Is(err, ErrAlreadyRegistered):
		return "Email already registered!"
	case errors.Is(err, ErrChallengeExpired):
		return "Session expired. Please log in again."
	case errors.Is(err, ErrWrongCode):
		return "Wrong verification code! Try again."
	case errors.Is(err, ErrStorageWriteFailed):
		return "Could not save your data. Storage full?"
	default:
		return "Something went wrong."
	}
}

func severityFor(err error) Severity {
	if errors.Is(err, ErrWeakPassword) {
		return SeverityWarning
	}
	return SeverityError
}
