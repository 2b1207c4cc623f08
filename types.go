package scorematch

import (
	"io"
	"time"

	"github.com/scorematch/scorematch/directory"
	internalaudit "github.com/scorematch/scorematch/internal/audit"
	internalmetrics "github.com/scorematch/scorematch/internal/metrics"
	"github.com/scorematch/scorematch/session"
)

// State represents the auth lifecycle position of the engine.
//
// State instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type State uint8

const (
	// StateAnonymous is an exported constant or variable used by the auth engine.
	StateAnonymous State = iota
	// StateAwaitingOTP is an exported constant or variable used by the auth engine.
	StateAwaitingOTP
	// StateAuthenticated is an exported constant or variable used by the auth engine.
	StateAuthenticated
)

// String describes the string operation and its observable behavior.
func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAwaitingOTP:
		return "awaiting_otp"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Severity classifies a presenter notification.
//
// Severity instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Severity string

const (
	// SeverityInfo is an exported constant or variable used by the auth engine.
	SeverityInfo Severity = "info"
	// SeveritySuccess is an exported constant or variable used by the auth engine.
	SeveritySuccess Severity = "success"
	// SeverityWarning is an exported constant or variable used by the auth engine.
	SeverityWarning Severity = "warning"
	// SeverityError is an exported constant or variable used by the auth engine.
	SeverityError Severity = "error"
	// SeverityDaily is an exported constant or variable used by the auth engine.
	SeverityDaily Severity = "daily"
)

// Presenter is the interface callers implement to surface engine
// outcomes to a user. Every state transition and every rejected
// operation is reported through exactly one of these methods; the
// engine never prints on its own.
type Presenter interface {
	Notify(message string, severity Severity, duration time.Duration)
	RevealAuthenticated(sess Session)
	RevealAnonymous()
	ShowChallengePrompt(email, code string)
}

// NoOpPresenter is a [Presenter] that discards all output. It is the
// default when no presenter is configured.
type NoOpPresenter struct{}

func (NoOpPresenter) Notify(string, Severity, time.Duration) {}
func (NoOpPresenter) RevealAuthenticated(Session)            {}
func (NoOpPresenter) RevealAnonymous()                       {}
func (NoOpPresenter) ShowChallengePrompt(string, string)     {}

// Session identifies the authenticated user held in the durable
// session slot.
type Session = session.Session

// Challenge is the transient record of one OTP attempt sequence.
type Challenge = session.Challenge

// ChallengeKind tags which flow produced a challenge.
type ChallengeKind = session.Kind

const (
	// ChallengeLogin is an exported constant or variable used by the auth engine.
	ChallengeLogin = session.KindLogin
	// ChallengeSignup is an exported constant or variable used by the auth engine.
	ChallengeSignup = session.KindSignup
)

// Account is one registered user record.
type Account = directory.Account

// AuditEvent is a structured audit record emitted by the engine.
type AuditEvent = internalaudit.Event

// AuditSink receives [AuditEvent] values from the engine's audit dispatcher.
type AuditSink = internalaudit.Sink

// NoOpSink is an [AuditSink] that silently discards all events.
type NoOpSink = internalaudit.NoOpSink

// ChannelSink is a buffered channel-based [AuditSink].
type ChannelSink = internalaudit.ChannelSink

// JSONWriterSink is an [AuditSink] that writes JSON-encoded events to an
// [io.Writer].
type JSONWriterSink = internalaudit.JSONWriterSink

// NewChannelSink creates a [ChannelSink] with the given buffer capacity.
func NewChannelSink(buffer int) *ChannelSink {
	return internalaudit.NewChannelSink(buffer)
}

// NewJSONWriterSink creates a [JSONWriterSink] that writes to w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return internalaudit.NewJSONWriterSink(w)
}

// MetricID identifies a specific counter in the in-process metrics
// system.
type MetricID = internalmetrics.MetricID

const (
	// MetricLoginSuccess is an exported constant or variable used by the auth engine.
	MetricLoginSuccess = MetricID(internalmetrics.MetricLoginSuccess)
	// MetricLoginFailure is an exported constant or variable used by the auth engine.
	MetricLoginFailure = MetricID(internalmetrics.MetricLoginFailure)
	// MetricSignupSuccess is an exported constant or variable used by the auth engine.
	MetricSignupSuccess = MetricID(internalmetrics.MetricSignupSuccess)
	// MetricSignupFailure is an exported constant or variable used by the auth engine.
	MetricSignupFailure = MetricID(internalmetrics.MetricSignupFailure)
	// MetricOTPIssued is an exported constant or variable used by the auth engine.
	MetricOTPIssued = MetricID(internalmetrics.MetricOTPIssued)
	// MetricOTPVerified is an exported constant or variable used by the auth engine.
	MetricOTPVerified = MetricID(internalmetrics.MetricOTPVerified)
	// MetricOTPFailed is an exported constant or variable used by the auth engine.
	MetricOTPFailed = MetricID(internalmetrics.MetricOTPFailed)
	// MetricChallengeExpired is an exported constant or variable used by the auth engine.
	MetricChallengeExpired = MetricID(internalmetrics.MetricChallengeExpired)
	// MetricChallengeAbandoned is an exported constant or variable used by the auth engine.
	MetricChallengeAbandoned = MetricID(internalmetrics.MetricChallengeAbandoned)
	// MetricLogout is an exported constant or variable used by the auth engine.
	MetricLogout = MetricID(internalmetrics.MetricLogout)
	// MetricSessionRestored is an exported constant or variable used by the auth engine.
	MetricSessionRestored = MetricID(internalmetrics.MetricSessionRestored)
	// MetricStorageWriteFailed is an exported constant or variable used by the auth engine.
	MetricStorageWriteFailed = MetricID(internalmetrics.MetricStorageWriteFailed)
	// MetricEmailCheckRun is an exported constant or variable used by the auth engine.
	MetricEmailCheckRun = MetricID(internalmetrics.MetricEmailCheckRun)
	// MetricDailyUpdateFired is an exported constant or variable used by the auth engine.
	MetricDailyUpdateFired = MetricID(internalmetrics.MetricDailyUpdateFired)
)

// Metrics holds atomic counters for engine events.
type Metrics = internalmetrics.Metrics

// MetricsSnapshot is a point-in-time deep copy of all metrics.
type MetricsSnapshot = internalmetrics.Snapshot

// NewMetrics creates a new [Metrics] instance configured by the given
// [MetricsConfig]. When Enabled is false, all operations are no-ops.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return internalmetrics.New(internalmetrics.Config{
		Enabled: cfg.Enabled,
	})
}
