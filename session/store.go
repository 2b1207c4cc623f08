// Package session owns the durable single-slot record of the currently
// authenticated user, the once-per-day notification marker, and the
// volatile scratch area for the in-flight OTP challenge.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/scorematch/scorematch/storage"
)

const (
	currentUserKey     = "currentUser"
	lastDailyUpdateKey = "lastDailyUpdate"

	pendingUserKey   = "pendingUser"
	pendingSignupKey = "pendingSignup"
	expectedOTPKey   = "expectedOtp"
)

// ErrNoChallenge is returned when the volatile challenge area holds no
// in-flight OTP attempt. The engine maps it to the expired-session
// outcome; it must never crash the flow.
var ErrNoChallenge = errors.New("no pending challenge")

// Session identifies the authenticated user. The password is
// deliberately excluded; only name and email ever reach the durable
// session slot.
type Session struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Kind tags which flow produced a challenge.
type Kind string

const (
	KindLogin  Kind = "login"
	KindSignup Kind = "signup"
)

// Challenge is the transient record of one OTP attempt sequence. For
// signup challenges Password carries the not-yet-registered account's
// password; for login challenges it is empty.
type Challenge struct {
	Kind         Kind
	Name         string
	Email        string
	Password     string
	ExpectedCode string
}

// Store combines the durable session slot with the volatile challenge
// area. The durable read is cached for the process lifetime, matching
// the original demo's read-once state.currentUser.
type Store struct {
	durable  storage.Store
	volatile storage.Store

	mu     sync.Mutex
	cached *Session
	loaded bool
}

// NewStore creates a session store over a durable and a volatile
// storage port.
func NewStore(durable, volatile storage.Store) *Store {
	return &Store{
		durable:  durable,
		volatile: volatile,
	}
}

// Current returns the persisted session, if any. The first call reads
// through to durable storage; later calls serve the cache. A corrupt
// blob degrades to "no session" with a logged diagnostic.
func (s *Store) Current(ctx context.Context) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.cached, nil
	}

	raw, ok, err := s.durable.Get(ctx, currentUserKey)
	if err != nil {
		return nil, err
	}
	s.loaded = true
	if !ok || raw == "null" {
		s.cached = nil
		return nil, nil
	}

	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		log.Print("scorematch: currentUser blob unparseable, treating as signed out")
		s.cached = nil
		return nil, nil
	}
	s.cached = &sess
	return s.cached, nil
}

// Set persists the session and updates the cache. The cache is updated
// even when the durable write fails: the optimistic in-memory state is
// kept and the caller surfaces a warning instead of rolling back.
func (s *Store) Set(ctx context.Context, sess Session) error {
	s.mu.Lock()
	copied := sess
	s.cached = &copied
	s.loaded = true
	s.mu.Unlock()

	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.durable.Set(ctx, currentUserKey, string(data))
}

// Clear removes the persisted session, resets the cache, and drops any
// in-flight challenge. Clearing an absent session is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.cached = nil
	s.loaded = true
	s.mu.Unlock()

	if err := s.ClearChallenge(ctx); err != nil {
		return err
	}
	return s.durable.Remove(ctx, currentUserKey)
}

// LastDailyUpdateAt returns when the daily dashboard notification last
// fired, or ok=false if it never has.
func (s *Store) LastDailyUpdateAt(ctx context.Context) (time.Time, bool, error) {
	raw, ok, err := s.durable.Get(ctx, lastDailyUpdateKey)
	if err != nil || !ok {
		return time.Time{}, false, err
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Print("scorematch: lastDailyUpdate marker unparseable, treating as never")
		return time.Time{}, false, nil
	}
	return time.UnixMilli(ms), true, nil
}

// MarkDailyUpdateNow records the current time as the last daily
// notification, as a unix-milliseconds string.
func (s *Store) MarkDailyUpdateNow(ctx context.Context) error {
	return s.durable.Set(ctx, lastDailyUpdateKey, strconv.FormatInt(time.Now().UnixMilli(), 10))
}

// ResetDailyUpdate forgets the marker so the next gate check fires
// immediately (the original demo's force-daily-update path).
func (s *Store) ResetDailyUpdate(ctx context.Context) error {
	return s.durable.Remove(ctx, lastDailyUpdateKey)
}

// PutChallenge stores the in-flight challenge in the volatile area,
// replacing any previous one. Signup payloads land under pendingSignup,
// login payloads under pendingUser, mirroring the original key layout.
func (s *Store) PutChallenge(ctx context.Context, ch Challenge) error {
	if err := s.ClearChallenge(ctx); err != nil {
		return err
	}

	switch ch.Kind {
	case KindSignup:
		payload, err := json.Marshal(struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}{ch.Name, ch.Email, ch.Password})
		if err != nil {
			return err
		}
		if err := s.volatile.Set(ctx, pendingSignupKey, string(payload)); err != nil {
			return err
		}
	case KindLogin:
		payload, err := json.Marshal(Session{Name: ch.Name, Email: ch.Email})
		if err != nil {
			return err
		}
		if err := s.volatile.Set(ctx, pendingUserKey, string(payload)); err != nil {
			return err
		}
	default:
		return errors.New("unknown challenge kind")
	}

	return s.volatile.Set(ctx, expectedOTPKey, ch.ExpectedCode)
}

// GetChallenge returns the in-flight challenge, or [ErrNoChallenge] when
// the volatile area is empty or incomplete (for instance after a process
// restart mid-flow).
func (s *Store) GetChallenge(ctx context.Context) (*Challenge, error) {
	code, ok, err := s.volatile.Get(ctx, expectedOTPKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoChallenge
	}

	if raw, ok, err := s.volatile.Get(ctx, pendingSignupKey); err != nil {
		return nil, err
	} else if ok {
		var payload struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.Unmarshal([]byte(raw), &payload); err != nil {
			return nil, ErrNoChallenge
		}
		return &Challenge{
			Kind:         KindSignup,
			Name:         payload.Name,
			Email:        payload.Email,
			Password:     payload.Password,
			ExpectedCode: code,
		}, nil
	}

	if raw, ok, err := s.volatile.Get(ctx, pendingUserKey); err != nil {
		return nil, err
	} else if ok {
		var payload Session
		if err := json.Unmarshal([]byte(raw), &payload); err != nil {
			return nil, ErrNoChallenge
		}
		return &Challenge{
			Kind:         KindLogin,
			Name:         payload.Name,
			Email:        payload.Email,
			ExpectedCode: code,
		}, nil
	}

	// Code without payload: half a challenge is no challenge.
	return nil, ErrNoChallenge
}

// ClearChallenge drops all volatile challenge keys.
func (s *Store) ClearChallenge(ctx context.Context) error {
	for _, key := range []string{pendingUserKey, pendingSignupKey, expectedOTPKey} {
		if err := s.volatile.Remove(ctx, key); err != nil {
			return err
		}
	}
	return nil
}
