package alert

type AlertResponse struct {
	ID             string  `json:"id"`
	Type           string  `json:"type"`
	ScheduleID     *string `json:"schedule_id,omitempty"`
	CrewMemberID   *string `json:"crew_member_id,omitempty"`
	CrewMemberName *string `json:"crew_member_name,omitempty"`
	SiteID         *string `json:"site_id,omitempty"`
	SiteName       *string `json:"site_name,omitempty"`
	Message        string  `json:"message"`
	IsRead         bool    `json:"is_read"`
	CreatedAt      string  `json:"created_at"`
}

// EmitAlertRequest materializes one alert. Emission is unconditional: no
// deduplication, repeated off-site clock-ins produce repeated alerts.
type EmitAlertRequest struct {
	CompanyID    string
	Type         AlertType
	ScheduleID   *string
	CrewMemberID *string
	SiteID       *string
	Message      string
}

type ListAlertsRequest struct {
	CompanyID  string
	UnreadOnly bool
	Limit      int
}
