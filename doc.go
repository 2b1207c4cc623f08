// Package scorematch implements the authentication core of the ScoreMatch
// demo: a local user directory, a simulated one-time-passcode step, and a
// durable single-slot session, orchestrated by a small state machine.
//
// The package is the public surface. It exposes [Engine], [Builder],
// [Config], sentinel errors, and value types (Account, Session,
// Challenge). Coordination details such as audit dispatch, metric
// counters, and OTP generation live under internal/ and are never
// exported.
//
// # Architecture boundaries
//
// The engine never touches a UI. Everything user-visible goes through the
// [Presenter] contract: toast notifications, view reveals, and the
// simulated OTP delivery prompt. Persistence goes through the
// [storage.Store] port; the durable store stands in for the browser's
// localStorage, the volatile store for sessionStorage.
//
// # What this package must NOT do
//
//   - Hash or otherwise protect passwords. This is a demonstration
//     authenticator with seeded plaintext demo accounts, not a security
//     boundary.
//   - Rate-limit or lock out OTP retries. Retries are unlimited.
//   - Perform I/O outside of Engine methods (construction via Builder is
//     allocation-only until Build, which reads the persisted session).
package scorematch
