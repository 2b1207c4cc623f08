package emailcheck

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/scorematch/scorematch/directory"
	"github.com/scorematch/scorematch/storage"
	"github.com/scorematch/scorematch/validate"
)

type resultRecorder struct {
	mu      sync.Mutex
	results []Result
}

func (r *resultRecorder) deliver(res Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, res)
}

func (r *resultRecorder) waitForOne(t *testing.T) Result {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		r.mu.Lock()
		if len(r.results) > 0 {
			res := r.results[len(r.results)-1]
			r.mu.Unlock()
			return res
		}
		r.mu.Unlock()
		select {
		case <-deadline:
			t.Fatal("no result delivered before deadline")
		case <-time.After(2 * time.Millisecond):
		}
	}
}

func (r *resultRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.results)
}

func newCheckerTest(t *testing.T) (*Checker, *resultRecorder, func()) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis start: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	dir := directory.New(storage.NewRedis(rdb, "sm"))
	if err := dir.Seed(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	rec := &resultRecorder{}
	checker := NewChecker(dir,
		validate.Policy{AllowedDomainSuffix: "@gmail.com", MinPasswordLength: 6},
		Config{DebounceWindow: 10 * time.Millisecond, SimulatedLatency: 5 * time.Millisecond, MinLength: 5},
		rec.deliver)

	return checker, rec, func() {
		checker.Close()
		rdb.Close()
		mr.Close()
	}
}

func TestVerdictLadder(t *testing.T) {
	cases := []struct {
		name  string
		flow  Flow
		input string
		want  Verdict
	}{
		{"too short hides", FlowLogin, "a@b", VerdictHidden},
		{"bad shape", FlowSignup, "notanemail", VerdictInvalidFormat},
		{"wrong domain", FlowLogin, "user@yahoo.com", VerdictWrongDomain},
		{"login finds seed account", FlowLogin, "admin@gmail.com", VerdictPositive},
		{"login misses unknown", FlowLogin, "ghost@gmail.com", VerdictNegative},
		{"signup sees seed as taken", FlowSignup, "admin@gmail.com", VerdictNegative},
		{"signup sees free email", FlowSignup, "fresh@gmail.com", VerdictPositive},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			checker, rec, done := newCheckerTest(t)
			defer done()

			checker.Submit(c.flow, c.input)
			res := rec.waitForOne(t)
			if res.Verdict != c.want {
				t.Fatalf("Submit(%s, %q) verdict = %s, want %s", c.flow, c.input, res.Verdict, c.want)
			}
		})
	}
}

func TestRapidKeystrokesDeliverOnlyTheLast(t *testing.T) {
	checker, rec, done := newCheckerTest(t)
	defer done()

	// Each submission lands inside the previous quiet window.
	for _, input := range []string{"a", "ad", "adm", "admi", "admin@gmail.com"} {
		checker.Submit(FlowLogin, input)
		time.Sleep(2 * time.Millisecond)
	}

	res := rec.waitForOne(t)
	if res.Email != "admin@gmail.com" || res.Verdict != VerdictPositive {
		t.Fatalf("unexpected surviving result: %+v", res)
	}

	// Give any stray timers a chance to fire, then confirm only one
	// delivery happened.
	time.Sleep(50 * time.Millisecond)
	if n := rec.count(); n != 1 {
		t.Fatalf("deliveries = %d, want 1", n)
	}
}

func TestCloseCancelsPendingCheck(t *testing.T) {
	checker, rec, done := newCheckerTest(t)
	defer done()

	checker.Submit(FlowLogin, "admin@gmail.com")
	checker.Close()

	time.Sleep(50 * time.Millisecond)
	if n := rec.count(); n != 0 {
		t.Fatalf("deliveries after Close = %d, want 0", n)
	}
}

func TestInputIsTrimmed(t *testing.T) {
	checker, rec, done := newCheckerTest(t)
	defer done()

	checker.Submit(FlowLogin, "  admin@gmail.com  ")
	res := rec.waitForOne(t)
	if res.Email != "admin@gmail.com" || res.Verdict != VerdictPositive {
		t.Fatalf("unexpected result for padded input: %+v", res)
	}
}
