package domain

import (
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyCheckedIn = errors.New("already checked in for today")
)

const CheckInConfirmed = "CONFIRMED"

// CheckIn is a per-day attendance confirmation for one participant. The
// store enforces at most one row per (participant_id, day).
type CheckIn struct {
	ID            int64     `json:"id"`
	ParticipantID string    `json:"participant_id"`
	EventCode     string    `json:"event_code"`
	Day           int       `json:"day"`
	AttendCount   int       `json:"attend_count"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// CheckInRow is a check-in joined with the participant attributes the
// aggregation queries need.
type CheckInRow struct {
	ParticipantID string
	Day           int
	AttendCount   int
	Niche         string
	State         string
	TicketType    string
	TotalSales    *float64
	Package       string
	PaymentStatus string
	BdsStatus     string
}
