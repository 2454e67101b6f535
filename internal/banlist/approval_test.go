package banlist

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testRequest() Request {
	return Request{
		Username:    "alpha",
		UserID:      "42",
		Reason:      "spam",
		Duration:    "14d",
		Punishment:  PunishmentUAB,
		RequestedBy: "mod",
	}
}

func TestApproveInsertsRecord(t *testing.T) {
	store := NewStore()
	a := NewApproval(testRequest())

	var banned []string
	now := time.Now()

	err := a.Approve("approver", now, func(userID string) error {
		banned = append(banned, userID)
		return nil
	}, store)

	assert.NoError(t, err)
	assert.Equal(t, StateApproved, a.State())
	assert.Equal(t, []string{"42"}, banned)

	records := store.List()
	assert.Len(t, records, 1)
	assert.Equal(t, Record{
		Username:   "alpha",
		UserID:     "42",
		ApprovedBy: "approver",
		Duration:   "14d",
		Reason:     "spam",
		BanDate:    now,
	}, records[0])
}

func TestApproveBanFailure(t *testing.T) {
	store := NewStore()
	a := NewApproval(testRequest())

	banErr := errors.New("missing permissions")
	err := a.Approve("approver", time.Now(), func(string) error {
		return banErr
	}, store)

	assert.ErrorIs(t, err, banErr)
	assert.Equal(t, StateFailed, a.State())
	assert.Equal(t, 0, store.Len(), "no record on a failed ban call")

	// Failed is terminal, a second press changes nothing.
	err = a.Approve("approver", time.Now(), func(string) error { return nil }, store)
	assert.ErrorIs(t, err, ErrResolved)
	assert.Equal(t, 0, store.Len())
}

func TestDeny(t *testing.T) {
	store := NewStore()
	a := NewApproval(testRequest())

	assert.NoError(t, a.Deny())
	assert.Equal(t, StateDenied, a.State())
	assert.Equal(t, 0, store.Len())

	err := a.Approve("approver", time.Now(), func(string) error { return nil }, store)
	assert.ErrorIs(t, err, ErrResolved)
}

func TestTimeout(t *testing.T) {
	store := NewStore()
	a := NewApproval(testRequest())

	expired := make(chan struct{})
	a.StartTimeout(10*time.Millisecond, func() {
		close(expired)
	})

	select {
	case <-expired:
	case <-time.After(2 * time.Second):
		t.Fatal("timeout never fired")
	}

	assert.Equal(t, StateTimedOut, a.State())

	err := a.Approve("approver", time.Now(), func(string) error { return nil }, store)
	assert.ErrorIs(t, err, ErrResolved)
	assert.Equal(t, 0, store.Len(), "late press after timeout inserts nothing")
}

// Reaching a terminal state stops the timer so the expiry callback
// cannot fire afterwards.
func TestTimeoutCancelledOnApprove(t *testing.T) {
	store := NewStore()
	a := NewApproval(testRequest())

	a.StartTimeout(50*time.Millisecond, func() {
		t.Error("expired callback fired after approval")
	})

	err := a.Approve("approver", time.Now(), func(string) error { return nil }, store)
	assert.NoError(t, err)

	time.Sleep(150 * time.Millisecond)

	assert.Equal(t, StateApproved, a.State())
	assert.Equal(t, 1, store.Len())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "pending", StatePending.String())
	assert.Equal(t, "approved", StateApproved.String())
	assert.Equal(t, "denied", StateDenied.String())
	assert.Equal(t, "timed_out", StateTimedOut.String())
	assert.Equal(t, "failed", StateFailed.String())
}
