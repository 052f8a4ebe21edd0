package domain

// DashboardStats is the event-wide overview: raw day counts plus
// categorical breakdowns over every check-in.
type DashboardStats struct {
	Day1       int64          `json:"day1"`
	Day2       int64          `json:"day2"`
	TotalSales float64        `json:"totalSales"`
	Niche      map[string]int `json:"niche"`
	State      map[string]int `json:"state"`
	TicketType map[string]int `json:"ticketType"`
	SalesValue map[string]int `json:"salesValue"`
}

// SeminarAnalytics is the per-event drill-down. Attendance numbers are
// head-counts (attend_count sums), split paid vs sponsor by TicketClass.
type SeminarAnalytics struct {
	EventCode      string         `json:"event_code"`
	Day1Attendance int            `json:"day1Attendance"`
	Day1Paid       int            `json:"day1Paid"`
	Day1Sponsor    int            `json:"day1Sponsor"`
	Day2Attendance int            `json:"day2Attendance"`
	Day2Paid       int            `json:"day2Paid"`
	Day2Sponsor    int            `json:"day2Sponsor"`
	ByNiche        map[string]int `json:"byNiche"`
	ByState        map[string]int `json:"byState"`
	ByTicketType   map[string]int `json:"byTicketType"`
	ByPackage      map[string]int `json:"byPackage"`
	ByPayment      map[string]int `json:"byPayment"`
	ByBdsStatus    map[string]int `json:"byBdsStatus"`
}

// SeminarStats holds the manually-entered registration denominators used to
// turn attendance head-counts into rates.
type SeminarStats struct {
	EventCode    string `json:"event_code"`
	PaidCount    int    `json:"paid_count"`
	SponsorCount int    `json:"sponsor_count"`
}
