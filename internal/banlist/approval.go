package banlist

import (
	"errors"
	"sync"
	"time"
)

// Punishment category attached to a ban request.
type Punishment string

const (
	PunishmentUAB Punishment = "UAB"
	PunishmentAB  Punishment = "AB"
)

// State of an approval request.
type State int

const (
	// Waiting for a moderator to press one of the buttons.
	StatePending State = iota
	// A moderator approved, the ban went through and a record was stored.
	StateApproved
	// A moderator denied, nothing was stored.
	StateDenied
	// Nobody reacted within the timeout window.
	StateTimedOut
	// A moderator approved but the ban call against the API failed.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateApproved:
		return "approved"
	case StateDenied:
		return "denied"
	case StateTimedOut:
		return "timed_out"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Returned when a button press arrives after the request already
// reached a terminal state (including the timeout).
var ErrResolved = errors.New("approval request already resolved")

// Data captured from the bl command invocation.
type Request struct {
	Username    string
	UserID      string
	Reason      string
	Duration    string
	Punishment  Punishment
	RequestedBy string
}

// Function issued against the Discord API to ban the target user.
type BanFunc func(userID string) error

// Approval tracks one ban request from creation to a terminal state.
//
// The caller is responsible for the role check, an unauthorized button
// press must never reach these transitions.
type Approval struct {
	mu    sync.Mutex
	state State
	req   Request
	timer *time.Timer
}

func NewApproval(req Request) *Approval {
	return &Approval{state: StatePending, req: req}
}

func (a *Approval) Request() Request {
	return a.req
}

func (a *Approval) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.state
}

// Arms the timeout timer. When it fires while the request is still
// pending, the request transitions to timed out and expired is called
// exactly once. Any terminal transition beforehand stops the timer.
func (a *Approval) StartTimeout(d time.Duration, expired func()) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.timer = time.AfterFunc(d, func() {
		a.mu.Lock()
		if a.state != StatePending {
			a.mu.Unlock()
			return
		}
		a.state = StateTimedOut
		a.mu.Unlock()

		expired()
	})
}

// Approve bans the target user and, only when the ban call succeeds,
// inserts a record with the given approval time into the store.
//
// On a failed ban call the request ends up in the failed state, no
// record is inserted and the error is returned for the caller to
// report. Either way the request is terminal afterwards.
func (a *Approval) Approve(approvedBy string, now time.Time, ban BanFunc, store *Store) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state != StatePending {
		return ErrResolved
	}

	a.stopTimer()

	if err := ban(a.req.UserID); err != nil {
		a.state = StateFailed
		return err
	}

	a.state = StateApproved

	store.Add(Record{
		Username:   a.req.Username,
		UserID:     a.req.UserID,
		ApprovedBy: approvedBy,
		Duration:   a.req.Duration,
		Reason:     a.req.Reason,
		BanDate:    now,
	})

	return nil
}

// Deny resolves the request without any store mutation.
func (a *Approval) Deny() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state != StatePending {
		return ErrResolved
	}

	a.stopTimer()
	a.state = StateDenied

	return nil
}

// Caller must hold a.mu.
func (a *Approval) stopTimer() {
	if a.timer != nil {
		a.timer.Stop()
	}
}
