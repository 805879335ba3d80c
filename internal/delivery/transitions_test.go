package delivery

import (
	"context"
	"errors"
	"testing"
)

func TestCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		action Action
		from   Status
		ok     bool
	}{
		{ActionOffer, StatusPending, true},
		{ActionOffer, StatusOffered, false},
		{ActionAccept, StatusOffered, true},
		{ActionAccept, StatusPending, false},
		{ActionAccept, StatusAssigned, false},
		{ActionPickup, StatusAssigned, true},
		{ActionPickup, StatusOffered, false},
		{ActionDropoff, StatusInTransit, true},
		{ActionDropoff, StatusDelivered, false},
		{ActionDropoff, StatusAssigned, false},
		{ActionRiderCancel, StatusAssigned, true},
		{ActionRiderCancel, StatusInTransit, true},
		{ActionRiderCancel, StatusOffered, false},
		{ActionRiderCancel, StatusDelivered, false},
		{ActionAdminAssign, StatusPending, true},
		{ActionAdminAssign, StatusAssigned, true},
		{ActionAdminAssign, StatusInTransit, false},
		{ActionAdminForcePickup, StatusAssigned, true},
		{ActionAdminForcePickup, StatusInTransit, false},
		{ActionAdminForceComplete, StatusInTransit, true},
		{ActionAdminForceComplete, StatusOffered, false},
		{ActionAdminCancel, StatusInTransit, true},
		{ActionAdminCancel, StatusDelivered, false},
		{ActionAdminCancel, StatusCancelled, false},
	}
	for _, tc := range tests {
		err := Check(tc.action, tc.from)
		if tc.ok && err != nil {
			t.Errorf("%s from %s: unexpected %v", tc.action, tc.from, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidState) {
			t.Errorf("%s from %s: err=%v, want ErrInvalidState", tc.action, tc.from, err)
		}
	}
}

func TestTerminalStatusesHaveNoWayOut(t *testing.T) {
	t.Parallel()

	for _, from := range []Status{StatusDelivered, StatusCancelled} {
		for a := range rules {
			if a.AllowedFrom(from) {
				t.Errorf("%s allowed from terminal %s", a, from)
			}
		}
	}
}

func TestCanTransition(t *testing.T) {
	t.Parallel()

	if !CanTransition(StatusInTransit, StatusOffered) {
		t.Error("abandoned delivery must be able to reopen")
	}
	if CanTransition(StatusPending, StatusDelivered) {
		t.Error("pending cannot jump to delivered")
	}
	if CanTransition(StatusDelivered, StatusOffered) {
		t.Error("delivered is terminal")
	}
}

func TestActionMetadata(t *testing.T) {
	t.Parallel()

	if !ActionAdminForceComplete.Bypass() || ActionDropoff.Bypass() {
		t.Error("bypass flags wrong")
	}
	if ActionRiderCancel.Target() != StatusOffered {
		t.Errorf("rider cancel target=%s", ActionRiderCancel.Target())
	}
	if Action("teleport").Valid() {
		t.Error("unknown action reported valid")
	}
	for a := range rules {
		if !a.Target().Valid() {
			t.Errorf("%s targets unknown status %q", a, a.Target())
		}
	}
}

// oneRow is a Repository holding a single delivery, enough to drive apply.
type oneRow struct {
	Repository
	d Delivery
}

func (r *oneRow) Mutate(_ context.Context, _ string, fn Mutation) (*Delivery, error) {
	d := r.d
	if _, err := fn(&d); err != nil {
		return nil, err
	}
	r.d = d
	return &d, nil
}

func TestApplyRefusesJumpsOutsideTable(t *testing.T) {
	t.Parallel()
	repo := &oneRow{d: Delivery{ID: "d1", Status: StatusPending}}
	s := NewService(repo, nil, nil)

	_, err := s.apply(context.Background(), "d1", ActionOffer, func(d *Delivery) (Effects, error) {
		d.Status = StatusDelivered
		return Effects{}, nil
	})
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("pending->delivered: err=%v", err)
	}
	if repo.d.Status != StatusPending {
		t.Fatalf("status=%s after refused jump", repo.d.Status)
	}

	if _, err := s.apply(context.Background(), "d1", ActionOffer, func(d *Delivery) (Effects, error) {
		d.Status = StatusOffered
		return Effects{}, nil
	}); err != nil {
		t.Fatalf("pending->offered: %v", err)
	}
}
