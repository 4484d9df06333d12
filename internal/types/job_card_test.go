package types

import "testing"

func TestCanTransitionTo_AllowedEdges(t *testing.T) {
	allowed := []struct {
		from JobCardStatus
		to   JobCardStatus
	}{
		{JobCardPending, JobCardInProgress},
		{JobCardPending, JobCardCancelled},
		{JobCardInProgress, JobCardCompleted},
		{JobCardInProgress, JobCardOnHold},
		{JobCardInProgress, JobCardCancelled},
		{JobCardOnHold, JobCardInProgress},
		{JobCardOnHold, JobCardCancelled},
	}
	for _, tc := range allowed {
		if !tc.from.CanTransitionTo(tc.to) {
			t.Fatalf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}
}

func TestCanTransitionTo_RejectsEverythingElse(t *testing.T) {
	allowedCount := 0
	for _, from := range JobCardStatuses {
		for _, to := range JobCardStatuses {
			if from.CanTransitionTo(to) {
				allowedCount++
			}
		}
	}
	if allowedCount != 7 {
		t.Fatalf("expected exactly 7 allowed edges, got %d", allowedCount)
	}

	if JobCardPending.CanTransitionTo(JobCardCompleted) {
		t.Fatalf("pending must not jump straight to completed")
	}
	if JobCardPending.CanTransitionTo(JobCardOnHold) {
		t.Fatalf("pending must not go on hold")
	}
	if JobCardOnHold.CanTransitionTo(JobCardCompleted) {
		t.Fatalf("on_hold must resume before completing")
	}
}

func TestTerminalStates_RejectAllTargetsIncludingSelf(t *testing.T) {
	for _, from := range []JobCardStatus{JobCardCompleted, JobCardCancelled} {
		if !from.Terminal() {
			t.Fatalf("expected %s to be terminal", from)
		}
		for _, to := range JobCardStatuses {
			if from.CanTransitionTo(to) {
				t.Fatalf("terminal %s must not transition to %s", from, to)
			}
		}
	}
	if JobCardInProgress.Terminal() {
		t.Fatalf("in_progress is not terminal")
	}
}

func TestSelfTransitionsRejected(t *testing.T) {
	for _, s := range JobCardStatuses {
		if s.CanTransitionTo(s) {
			t.Fatalf("self transition %s -> %s must be rejected", s, s)
		}
	}
}

func TestValidJobCardStatus(t *testing.T) {
	if !ValidJobCardStatus(JobCardOnHold) {
		t.Fatalf("on_hold should be valid")
	}
	if ValidJobCardStatus("paused") {
		t.Fatalf("unknown status should be invalid")
	}
	if JobCardStatus("paused").Terminal() {
		t.Fatalf("unknown status must not read as terminal")
	}
}
