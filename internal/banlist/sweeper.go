package banlist

import (
	"fmt"
	"time"

	"github.com/spfdivision/discord-warden/internal/logging"
)

// Function issued against the Discord API to lift a guild ban.
type UnbanFunc func(userID string) error

// Sweeper periodically scans the store and lifts bans whose duration
// has elapsed.
//
// A failed unban keeps the record in place so the next tick retries it.
// There is no backoff and no attempt limit, a record stays until the
// unban eventually succeeds or it gets removed manually.
type Sweeper struct {
	store    *Store
	unban    UnbanFunc
	interval time.Duration
	ticker   *time.Ticker
	done     chan struct{}
}

// Inits a new sweeper, does not start it yet.
func NewSweeper(store *Store, interval time.Duration, unban UnbanFunc) *Sweeper {
	return &Sweeper{
		store:    store,
		unban:    unban,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Starts the periodic sweep on its own goroutine.
//
// # NOTE: use Stop() on app exit so the goroutine does not leak.
func (s *Sweeper) Start() {
	s.ticker = time.NewTicker(s.interval)

	go func() {
		for {
			select {
			case <-s.ticker.C:
				s.sweep(time.Now())
			case <-s.done:
				return
			}
		}
	}()
}

// Stops the ticker and the sweep goroutine.
func (s *Sweeper) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
	close(s.done)
}

// One full scan over the store.
//
// Unban failures are logged and swallowed so the remaining records in
// the same tick still get checked.
func (s *Sweeper) sweep(now time.Time) {
	for _, r := range s.store.List() {
		limit, ok := DurationToMs(r.Duration)
		if !ok {
			// Should not happen since durations are validated on the
			// way in, skip the record instead of guessing.
			continue
		}

		elapsed := now.Sub(r.BanDate).Milliseconds()
		if elapsed <= limit {
			continue
		}

		if err := s.unban(r.UserID); err != nil {
			logging.WriteError(fmt.Sprintf("Failed to unban %s: %s", r.Username, err.Error()))
			continue
		}

		s.store.Remove(r.UserID)

		logging.WriteInfo(fmt.Sprintf("Unbanned %s after %s", r.Username, r.Duration))
	}
}
