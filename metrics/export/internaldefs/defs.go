package internaldefs

import (
	scorematch "github.com/scorematch/scorematch"
)

// CounterDef defines a public type used by ScoreMatch APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   scorematch.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the auth engine.
var CounterDefs = []CounterDef{
	{ID: scorematch.MetricLoginSuccess, Name: "scorematch_login_success_total", Help: "Completed login flows."},
	{ID: scorematch.MetricLoginFailure, Name: "scorematch_login_failure_total", Help: "Rejected login submissions."},
	{ID: scorematch.MetricSignupSuccess, Name: "scorematch_signup_success_total", Help: "Accounts registered after OTP verification."},
	{ID: scorematch.MetricSignupFailure, Name: "scorematch_signup_failure_total", Help: "Rejected signup submissions."},
	{ID: scorematch.MetricOTPIssued, Name: "scorematch_otp_issued_total", Help: "Issued OTP challenges."},
	{ID: scorematch.MetricOTPVerified, Name: "scorematch_otp_verified_total", Help: "Successful OTP verifications."},
	{ID: scorematch.MetricOTPFailed, Name: "scorematch_otp_failed_total", Help: "Failed OTP verifications."},
	{ID: scorematch.MetricChallengeExpired, Name: "scorematch_challenge_expired_total", Help: "OTP verifications attempted with no live challenge."},
	{ID: scorematch.MetricChallengeAbandoned, Name: "scorematch_challenge_abandoned_total", Help: "Challenges dropped by back navigation."},
	{ID: scorematch.MetricLogout, Name: "scorematch_logout_total", Help: "Logout operations that cleared a session."},
	{ID: scorematch.MetricSessionRestored, Name: "scorematch_session_restored_total", Help: "Sessions restored from durable storage at build time."},
	{ID: scorematch.MetricStorageWriteFailed, Name: "scorematch_storage_write_failed_total", Help: "Durable writes that failed and degraded to a warning."},
	{ID: scorematch.MetricEmailCheckRun, Name: "scorematch_email_check_run_total", Help: "Completed email availability probes."},
	{ID: scorematch.MetricDailyUpdateFired, Name: "scorematch_daily_update_fired_total", Help: "Daily update notifications fired."},
}
