package queue

import "testing"

func TestClassifyWait(t *testing.T) {
	cases := []struct {
		value int
		scale WaitScale
		tier  Tier
	}{
		// Position scale: <5 fast, 5..10 moderate, >10 high.
		{0, PositionScale, TierFast},
		{3, PositionScale, TierFast},
		{4, PositionScale, TierFast},
		{5, PositionScale, TierModerate},
		{7, PositionScale, TierModerate},
		{10, PositionScale, TierModerate},
		{11, PositionScale, TierHigh},
		{12, PositionScale, TierHigh},

		// Minute scale: <15 fast, 15..59 moderate, >=60 high.
		{14, MinuteScale, TierFast},
		{15, MinuteScale, TierModerate},
		{59, MinuteScale, TierModerate},
		{60, MinuteScale, TierHigh},
		{120, MinuteScale, TierHigh},
	}

	for _, tt := range cases {
		if got := ClassifyWait(tt.value, tt.scale); got.Tier != tt.tier {
			t.Fatalf("ClassifyWait(%d, %+v) = %s, want %s", tt.value, tt.scale, got.Tier, tt.tier)
		}
	}
}

func TestClassifyWaitLabels(t *testing.T) {
	if got := ClassifyWait(3, PositionScale).Label; got != "Fast Moving" {
		t.Fatalf("fast label = %q", got)
	}
	if got := ClassifyWait(7, PositionScale).Label; got != "Moderate" {
		t.Fatalf("moderate label = %q", got)
	}
	if got := ClassifyWait(12, PositionScale).Label; got != "High Wait" {
		t.Fatalf("high label = %q", got)
	}
}
