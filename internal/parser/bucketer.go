package parser

import "github.com/bbsatvik01/manning-sheets-ikes/internal/model"

// BucketShift assigns a parsed start hour to one of the profile's shift
// windows and returns the window index.
//
// Tiled profiles (exactly three windows spanning the whole day) use an
// explicit three-way comparison against the morning and evening
// thresholds, so every hour in [0, 24) resolves to exactly one window;
// the overnight window wraps past midnight and picks up both the late
// evening and the early-morning hours.
//
// Legacy profiles use a first-match range scan over [Lower, Upper). Their
// windows do not cover the full day, and a start outside every window
// returns (0, false); the caller drops the assignment from the chart and
// counts it (see VerificationCounters.OutOfWindow).
func BucketShift(start float64, p *model.LocationProfile) (int, bool) {
	if p.Tiled && len(p.Windows) == 3 {
		morning := p.Windows[0].Lower
		midday := p.Windows[1].Lower
		evening := p.Windows[2].Lower
		switch {
		case start >= morning && start < midday:
			return 0, true
		case start >= midday && start < evening:
			return 1, true
		default:
			// start >= evening, or start < morning across midnight
			return 2, true
		}
	}

	for i, w := range p.Windows {
		if w.Contains(start) {
			return i, true
		}
	}
	return 0, false
}
