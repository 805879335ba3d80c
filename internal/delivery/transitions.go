package delivery

import "fmt"

type Action string

const (
	ActionCreate             Action = "create"
	ActionOffer              Action = "offer"
	ActionAccept             Action = "accept"
	ActionPickup             Action = "pickup"
	ActionDropoff            Action = "dropoff"
	ActionRiderCancel        Action = "rider_cancel"
	ActionAdminAssign        Action = "admin_assign"
	ActionAdminForcePickup   Action = "admin_force_pickup"
	ActionAdminForceComplete Action = "admin_force_complete"
	ActionAdminCancel        Action = "admin_cancel"
)

type rule struct {
	from  []Status
	to    Status
	admin bool
}

// Every status change goes through this table.
var rules = map[Action]rule{
	ActionCreate:  {to: StatusPending},
	ActionOffer:   {from: []Status{StatusPending}, to: StatusOffered},
	ActionAccept:  {from: []Status{StatusOffered}, to: StatusAssigned},
	ActionPickup:  {from: []Status{StatusAssigned}, to: StatusInTransit},
	ActionDropoff: {from: []Status{StatusInTransit}, to: StatusDelivered},
	// Abandonment reopens the delivery; only an admin ends it for good.
	ActionRiderCancel: {from: []Status{StatusAssigned, StatusInTransit}, to: StatusOffered},

	ActionAdminAssign:        {from: []Status{StatusPending, StatusOffered, StatusAssigned}, to: StatusAssigned, admin: true},
	ActionAdminForcePickup:   {from: []Status{StatusAssigned}, to: StatusInTransit, admin: true},
	ActionAdminForceComplete: {from: []Status{StatusAssigned, StatusInTransit}, to: StatusDelivered, admin: true},
	ActionAdminCancel:        {from: []Status{StatusPending, StatusOffered, StatusAssigned, StatusInTransit}, to: StatusCancelled, admin: true},
}

func (a Action) Valid() bool {
	_, ok := rules[a]
	return ok
}

// Target is the status the action leaves a delivery in.
func (a Action) Target() Status {
	return rules[a].to
}

// Bypass reports whether the action skips code and eligibility guards.
func (a Action) Bypass() bool {
	return rules[a].admin
}

func (a Action) AllowedFrom(s Status) bool {
	for _, f := range rules[a].from {
		if f == s {
			return true
		}
	}
	return false
}

// Check returns ErrInvalidState when a may not run on a delivery in status s.
func Check(a Action, s Status) error {
	if !a.AllowedFrom(s) {
		return fmt.Errorf("%w: cannot %s a delivery that is %s", ErrInvalidState, a, s)
	}
	return nil
}

// CanTransition reports whether some action moves a delivery from one status
// to another.
func CanTransition(from, to Status) bool {
	for a, r := range rules {
		if r.to == to && a.AllowedFrom(from) {
			return true
		}
	}
	return false
}
