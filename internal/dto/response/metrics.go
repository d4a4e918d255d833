package response

// MetricsResponse mirrors the dashboard report: time-to-successful-booking,
// active-society-engagement and conflict-rate, each with its supporting counts.
type MetricsResponse struct {
	TimeToSuccessfulBooking TSBMetric `json:"timeToSuccessfulBooking"`
	ActiveSocietyEngagement ASEMetric `json:"activeSocietyEngagement"`
	ConflictRate            CRMetric  `json:"conflictRate"`
}

type TSBMetric struct {
	Average       int    `json:"average"`
	Unit          string `json:"unit"`
	TotalBookings int64  `json:"totalBookings"`
}

type ASEMetric struct {
	Percentage        float64 `json:"percentage"`
	UsersWithBookings int64   `json:"usersWithBookings"`
	TotalUsers        int64   `json:"totalUsers"`
}

type CRMetric struct {
	Percentage       float64 `json:"percentage"`
	ConflictBookings int64   `json:"conflictBookings"`
	TotalBookings    int64   `json:"totalBookings"`
}
