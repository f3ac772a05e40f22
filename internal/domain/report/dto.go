package report

// SiteHours aggregates recorded labor for one site over the requested range.
type SiteHours struct {
	SiteID      string   `json:"site_id"`
	SiteName    string   `json:"site_name"`
	TotalHours  float64  `json:"total_hours"`
	EntryCount  int      `json:"entry_count"`
	BudgetHours *float64 `json:"budget_hours,omitempty"`
}

// CrewHours aggregates recorded labor for one crew member.
type CrewHours struct {
	CrewMemberID   string  `json:"crew_member_id"`
	CrewMemberName string  `json:"crew_member_name"`
	TotalHours     float64 `json:"total_hours"`
	EntryCount     int     `json:"entry_count"`
}

// LaborReportRequest bounds the aggregation window. Dates are inclusive
// "YYYY-MM-DD" strings.
type LaborReportRequest struct {
	CompanyID string
	StartDate string
	EndDate   string
}

type LaborReportResponse struct {
	StartDate string      `json:"start_date"`
	EndDate   string      `json:"end_date"`
	BySite    []SiteHours `json:"by_site"`
	ByCrew    []CrewHours `json:"by_crew"`
}
