package queue

// Tier buckets a queue metric into how fast the line is moving.
type Tier string

const (
	TierFast     Tier = "fast"
	TierModerate Tier = "moderate"
	TierHigh     Tier = "high"
)

// WaitScale holds the tier boundaries for one metric domain. A value below
// FastBelow is fast; a value at or above HighFrom is high; anything between
// is moderate.
type WaitScale struct {
	FastBelow int
	HighFrom  int
}

var (
	// PositionScale tiers a queue length: <5 fast, 5..10 moderate, >10 high.
	PositionScale = WaitScale{FastBelow: 5, HighFrom: 11}
	// MinuteScale tiers an estimated wait in minutes: <15 fast,
	// 15..59 moderate, >=60 high.
	MinuteScale = WaitScale{FastBelow: 15, HighFrom: 60}
)

// Badge is the display classification for a clinic's queue.
type Badge struct {
	Label string `json:"label"`
	Tier  Tier   `json:"tier"`
}

// ClassifyWait maps a queue metric onto a three-tier badge using the given
// scale. The same policy serves both the position-based and the minute-based
// displays.
func ClassifyWait(value int, scale WaitScale) Badge {
	switch {
	case value < scale.FastBelow:
		return Badge{Label: "Fast Moving", Tier: TierFast}
	case value >= scale.HighFrom:
		return Badge{Label: "High Wait", Tier: TierHigh}
	default:
		return Badge{Label: "Moderate", Tier: TierModerate}
	}
}
