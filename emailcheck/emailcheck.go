// Package emailcheck implements the live email-availability indicator:
// a debounced, latency-simulated directory probe whose result polarity
// depends on the flow (an existing account is good news for login, bad
// news for signup).
package emailcheck

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/scorematch/scorematch/directory"
	"github.com/scorematch/scorematch/validate"
)

// Flow selects the result polarity.
type Flow string

const (
	FlowLogin  Flow = "login"
	FlowSignup Flow = "signup"
)

// Verdict is the state of the availability indicator after a check.
type Verdict string

const (
	// VerdictHidden means the input is too short to judge; the
	// indicator should disappear.
	VerdictHidden Verdict = "hidden"
	// VerdictInvalidFormat means the input is not shaped like an email.
	VerdictInvalidFormat Verdict = "invalid_format"
	// VerdictWrongDomain means the email is outside the allowed provider.
	VerdictWrongDomain Verdict = "wrong_domain"
	// VerdictPositive means the check succeeded for this flow: account
	// found (login) or email free (signup).
	VerdictPositive Verdict = "positive"
	// VerdictNegative means the check failed for this flow: account
	// missing (login) or email taken (signup).
	VerdictNegative Verdict = "negative"
)

// Result is one delivered indicator update.
type Result struct {
	Email   string
	Flow    Flow
	Verdict Verdict
	Exists  bool
}

// Config tunes the checker's timing and input gate.
type Config struct {
	DebounceWindow   time.Duration
	SimulatedLatency time.Duration
	MinLength        int
}

// Checker debounces keystrokes and probes the directory. Newer
// submissions supersede older ones; only the latest delivers, so the
// indicator is last-write-wins.
type Checker struct {
	dir     *directory.Directory
	policy  validate.Policy
	cfg     Config
	deliver func(Result)

	mu         sync.Mutex
	generation uint64
	timer      *time.Timer
}

// NewChecker creates a checker that hands results to deliver. The
// deliver callback runs on the checker's timer goroutine.
func NewChecker(dir *directory.Directory, policy validate.Policy, cfg Config, deliver func(Result)) *Checker {
	if cfg.DebounceWindow < 0 {
		cfg.DebounceWindow = 0
	}
	if cfg.SimulatedLatency < 0 {
		cfg.SimulatedLatency = 0
	}
	if cfg.MinLength <= 0 {
		cfg.MinLength = 5
	}
	return &Checker{
		dir:     dir,
		policy:  policy,
		cfg:     cfg,
		deliver: deliver,
	}
}

// Submit records a keystroke. The check runs after the quiet window
// elapses with no further submissions; any pending check is cancelled
// and restarted.
func (c *Checker) Submit(flow Flow, input string) {
	email := strings.TrimSpace(input)

	c.mu.Lock()
	c.generation++
	gen := c.generation
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.cfg.DebounceWindow, func() {
		c.resolve(gen, flow, email)
	})
	c.mu.Unlock()
}

// Close cancels any pending check. In-flight delivery for the latest
// submission may still complete.
func (c *Checker) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Checker) resolve(gen uint64, flow Flow, email string) {
	if len(email) < c.cfg.MinLength {
		c.emit(gen, Result{Email: email, Flow: flow, Verdict: VerdictHidden})
		return
	}
	if !validate.EmailShape(email) {
		c.emit(gen, Result{Email: email, Flow: flow, Verdict: VerdictInvalidFormat})
		return
	}
	if !c.policy.AllowedDomain(email) {
		c.emit(gen, Result{Email: email, Flow: flow, Verdict: VerdictWrongDomain})
		return
	}

	// The pause stands in for a network round trip, like the original
	// indicator's spinner.
	time.Sleep(c.cfg.SimulatedLatency)

	exists, err := c.dir.ExistsByEmail(context.Background(), email)
	if err != nil {
		log.Print("scorematch: email check probe failed: ", err)
		return
	}

	verdict := VerdictNegative
	if (flow == FlowLogin) == exists {
		verdict = VerdictPositive
	}
	c.emit(gen, Result{Email: email, Flow: flow, Verdict: verdict, Exists: exists})
}

// emit delivers the result unless a newer submission superseded gen.
func (c *Checker) emit(gen uint64, res Result) {
	c.mu.Lock()
	latest := c.generation == gen
	c.mu.Unlock()
	if !latest || c.deliver == nil {
		return
	}
	c.deliver(res)
}
