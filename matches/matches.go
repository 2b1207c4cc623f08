// Package matches supplies the live dashboard feed shown after
// authentication, the periodic refresher that re-delivers it, and the
// once-per-day update notification gate.
package matches

import (
	"context"
	"fmt"
	"time"

	"github.com/scorematch/scorematch/session"
)

// Match is one live scoreboard entry. Chess matches carry a move clock
// and turn indicator instead of numeric scores.
type Match struct {
	Home      string `json:"home"`
	Away      string `json:"away"`
	HomeScore int    `json:"homeScore,omitempty"`
	AwayScore int    `json:"awayScore,omitempty"`
	Time      string `json:"time"`
	Turn      string `json:"turn,omitempty"`
	Live      bool   `json:"live"`
	Sport     string `json:"sport"`
}

// Feed produces the current live matches.
type Feed interface {
	Live(ctx context.Context) ([]Match, error)
}

// MockFeed serves the fixed demo scoreboard. A production deployment
// would swap in an API-backed Feed here.
type MockFeed struct{}

// Live returns the five demo matches.
func (MockFeed) Live(context.Context) ([]Match, error) {
	return []Match{
		{Home: "Manchester United", Away: "Liverpool", HomeScore: 2, AwayScore: 1, Time: "68'", Live: true, Sport: "football"},
		{Home: "Real Madrid", Away: "Barcelona", HomeScore: 1, AwayScore: 3, Time: "82'", Live: true, Sport: "football"},
		{Home: "Lakers", Away: "Warriors", HomeScore: 94, AwayScore: 98, Time: "Q4 2:18", Live: true, Sport: "basketball"},
		{Home: "Magnus Carlsen", Away: "Hikaru Nakamura", Time: "Move 42", Turn: "Black to move", Live: true, Sport: "chess"},
		{Home: "Djokovic", Away: "Alcaraz", HomeScore: 2, AwayScore: 1, Time: "4th Set", Live: true, Sport: "tennis"},
	}, nil
}

// CountLive returns how many matches are currently live.
func CountLive(list []Match) int {
	n := 0
	for _, m := range list {
		if m.Live {
			n++
		}
	}
	return n
}

// DailyGate fires the "daily update" notification at most once per
// window, persisting the marker through the session store.
type DailyGate struct {
	sessions *session.Store
	window   time.Duration
}

// NewDailyGate creates a gate over the given store. A non-positive
// window defaults to 24 hours.
func NewDailyGate(sessions *session.Store, window time.Duration) *DailyGate {
	if window <= 0 {
		window = 24 * time.Hour
	}
	return &DailyGate{sessions: sessions, window: window}
}

// Check fires the gate if the window has elapsed since the last firing
// (or it never fired) and at least one match is live. It returns the
// notification message and whether it fired.
func (g *DailyGate) Check(ctx context.Context, list []Match) (string, bool, error) {
	liveCount := CountLive(list)
	if liveCount == 0 {
		return "", false, nil
	}

	last, ok, err := g.sessions.LastDailyUpdateAt(ctx)
	if err != nil {
		return "", false, err
	}
	if ok && time.Since(last) < g.window {
		return "", false, nil
	}

	if err := g.sessions.MarkDailyUpdateNow(ctx); err != nil {
		return "", false, err
	}
	return fmt.Sprintf("Daily update: %d live matches today!", liveCount), true, nil
}

// Force clears the marker and re-runs the check, so the notification
// fires immediately (given any live matches).
func (g *DailyGate) Force(ctx context.Context, list []Match) (string, bool, error) {
	if err := g.sessions.ResetDailyUpdate(ctx); err != nil {
		return "", false, err
	}
	return g.Check(ctx, list)
}
