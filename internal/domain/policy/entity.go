package policy

import "time"

// ServerPolicy holds the global, operator-configured thresholds. The
// yellow threshold must not exceed the red one; a store violating that
// is a broken deployment, not bad request data.
type ServerPolicy struct {
	OvertimeWarningYellowHours float64
	OvertimeWarningRedHours    float64
	DefaultRegion              string
	UpdatedAt                  time.Time
}

func (p ServerPolicy) Valid() bool {
	return p.OvertimeWarningYellowHours <= p.OvertimeWarningRedHours
}
