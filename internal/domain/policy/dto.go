package policy

type ServerPolicyResponse struct {
	OvertimeWarningYellowHours float64 `json:"overtime_warning_yellow_hours"`
	OvertimeWarningRedHours    float64 `json:"overtime_warning_red_hours"`
	DefaultRegion              string  `json:"default_region"`
}

func ToServerPolicyResponse(p ServerPolicy) ServerPolicyResponse {
	return ServerPolicyResponse{
		OvertimeWarningYellowHours: p.OvertimeWarningYellowHours,
		OvertimeWarningRedHours:    p.OvertimeWarningRedHours,
		DefaultRegion:              p.DefaultRegion,
	}
}
