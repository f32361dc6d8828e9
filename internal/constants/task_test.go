package constants

import "testing"

func TestAllStatuses_CoversEveryValidStatus(t *testing.T) {
	statuses := AllStatuses()
	if len(statuses) != 3 {
		t.Fatalf("expected 3 statuses, got %d", len(statuses))
	}

	for _, status := range statuses {
		if !status.Valid() {
			t.Errorf("AllStatuses returned invalid status %q", status)
		}
	}
}

func TestTaskStatus_Valid(t *testing.T) {
	for _, status := range []TaskStatus{"done", "", "PENDING"} {
		if status.Valid() {
			t.Errorf("status %q should be invalid", status)
		}
	}
}

func TestTaskPriority_RankOrdering(t *testing.T) {
	if !(PriorityHigh.Rank() > PriorityMedium.Rank() && PriorityMedium.Rank() > PriorityLow.Rank()) {
		t.Errorf("rank must order high > medium > low, got %d/%d/%d",
			PriorityHigh.Rank(), PriorityMedium.Rank(), PriorityLow.Rank())
	}

	if TaskPriority("urgent").Rank() != 0 {
		t.Error("unknown priority must rank 0")
	}
}
