package policy

import (
	"errors"
	"testing"

	"github.com/aegisone/campus/internal/pkg/apperrors"
)

func TestGrievanceTransitions(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{"pending", "in_review", true},
		{"pending", "in_progress", true},
		{"pending", "resolved", true},
		{"pending", "rejected", true},
		{"in_review", "in_progress", true},
		{"in_review", "resolved", true},
		{"in_progress", "resolved", true},
		{"in_progress", "rejected", true},
		{"resolved", "rejected", true},
		{"resolved", "pending", false},
		{"resolved", "in_progress", false},
		{"rejected", "pending", false},
		{"in_progress", "pending", false},
		{"in_review", "pending", false},
	}
	for _, tc := range cases {
		err := GrievanceMachine.CanTransition(tc.from, tc.to)
		if tc.ok && err != nil {
			t.Errorf("grievance %s -> %s: unexpected error %v", tc.from, tc.to, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("grievance %s -> %s: expected rejection", tc.from, tc.to)
		}
	}
}

func TestSameStateIsNoOp(t *testing.T) {
	machines := []Machine{GrievanceMachine, ApplicationMachine, ItemMachine, IncidentMachine, GigMachine, CaravanMachine}
	states := [][]string{
		{"pending", "resolved"},
		{"submitted", "accepted"},
		{"open", "closed"},
		{"active", "resolved"},
		{"open", "completed"},
		{"open", "completed"},
	}
	for i, m := range machines {
		for _, s := range states[i] {
			if err := m.CanTransition(s, s); err != nil {
				t.Errorf("%v: same-state %s -> %s should be allowed, got %v", m, s, s, err)
			}
		}
	}
}

func TestTransitionErrorWrapsInvalidState(t *testing.T) {
	err := ApplicationMachine.CanTransition("accepted", "submitted")
	if err == nil {
		t.Fatal("expected error for backward application transition")
	}
	if !errors.Is(err, apperrors.ErrInvalidState) {
		t.Errorf("transition error should wrap ErrInvalidState, got %v", err)
	}
}

func TestUnknownStateRejected(t *testing.T) {
	if err := ItemMachine.CanTransition("open", "vanished"); err == nil {
		t.Error("unknown target state should be rejected")
	}
	if err := ItemMachine.CanTransition("vanished", "open"); err == nil {
		t.Error("unknown source state should be rejected")
	}
	if ItemMachine.Valid("vanished") {
		t.Error("Valid should be false for unknown state")
	}
	if !ItemMachine.Valid("claimed") {
		t.Error("Valid should be true for claimed")
	}
}

func TestIncidentTransitions(t *testing.T) {
	if err := IncidentMachine.CanTransition("active", "false_alarm"); err != nil {
		t.Errorf("active -> false_alarm should be allowed: %v", err)
	}
	if err := IncidentMachine.CanTransition("investigating", "resolved"); err != nil {
		t.Errorf("investigating -> resolved should be allowed: %v", err)
	}
	if err := IncidentMachine.CanTransition("resolved", "active"); err == nil {
		t.Error("resolved incident must not reopen")
	}
}

func TestGigTransitions(t *testing.T) {
	if err := GigMachine.CanTransition("open", "assigned"); err != nil {
		t.Errorf("open -> assigned should be allowed: %v", err)
	}
	if err := GigMachine.CanTransition("open", "completed"); err != nil {
		t.Errorf("open -> completed should be allowed: %v", err)
	}
	if err := GigMachine.CanTransition("completed", "open"); err == nil {
		t.Error("completed gig must not reopen")
	}
}
