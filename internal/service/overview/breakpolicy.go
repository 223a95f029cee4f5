package overview

import "math"

// Tiered legal minimum-break table, thresholds on the net hours
// (elapsed minus the contracted pause).
const (
	minPauseFromSixHours  = 0.5
	minPauseFromNineHours = 0.75
	dailyWorkLimitHours   = 10.0
)

type breakPolicyResult struct {
	Work     float64
	Pause    float64
	Violates bool
}

// applyBreakPolicy derives net work hours and the mandatory pause from
// total elapsed hours. Exceeding the daily limit is reported as a flag,
// never as an error.
func applyBreakPolicy(totalHours, expectedPauseHours float64) breakPolicyResult {
	net := totalHours - expectedPauseHours

	switch {
	case net < 6:
		return breakPolicyResult{
			Work:  net,
			Pause: expectedPauseHours,
		}

	case net < 9:
		pause := math.Max(expectedPauseHours, minPauseFromSixHours)
		return breakPolicyResult{
			Work:  totalHours - pause,
			Pause: pause,
		}

	default:
		pause := math.Max(expectedPauseHours, minPauseFromNineHours)
		work := net - pause
		return breakPolicyResult{
			Work:     work,
			Pause:    pause,
			Violates: work >= dailyWorkLimitHours,
		}
	}
}
