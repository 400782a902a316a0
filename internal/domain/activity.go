package domain

import "time"

type ActivityKind string

const (
	ActivityRegister ActivityKind = "register"
	ActivityLogin    ActivityKind = "login"
	ActivityLogout   ActivityKind = "logout"
	ActivityBooking  ActivityKind = "booking"
	ActivityPayment  ActivityKind = "payment"
	ActivityApprove  ActivityKind = "approve"
	ActivityReject   ActivityKind = "reject"
	ActivityRefunded ActivityKind = "refunded"
	ActivityEvent    ActivityKind = "event"
	ActivityUser     ActivityKind = "user"
	ActivityOther    ActivityKind = "other"
)

type ActivityRecord struct {
	Timestamp time.Time
	Kind      ActivityKind
	Message   string
}

// ActivityEntry is an activity record prepared for display.
type ActivityEntry struct {
	Kind ActivityKind `json:"type"`
	Icon string       `json:"icon"`
	Text string       `json:"text"`
	Time string       `json:"time"`
}

type Dashboard struct {
	TotalUsers   int             `json:"total_users"`
	ActiveToday  int             `json:"active_today"`
	NewSignups   int             `json:"new_signups"`
	TotalRevenue float64         `json:"total_revenue"`
	Activity     []ActivityEntry `json:"activity"`
}
