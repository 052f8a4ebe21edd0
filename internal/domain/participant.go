package domain

import (
	"strings"
	"time"
)

// TicketClass is the closed classification of the free-text ticket_type
// column. It is derived once and branched on everywhere downstream instead
// of re-matching substrings at each call site.
type TicketClass string

const (
	TicketGeneral TicketClass = "general"
	TicketVIP     TicketClass = "vip"
	TicketSponsor TicketClass = "sponsor"
	TicketOther   TicketClass = "other"
)

// ClassifyTicket maps a raw ticket_type value to its TicketClass using
// case-insensitive substring matching. Sponsor wins over the other classes
// so "Sponsored VIP" counts as a sponsor seat.
func ClassifyTicket(ticketType string) TicketClass {
	t := strings.ToLower(ticketType)
	switch {
	case strings.Contains(t, "sponsor"):
		return TicketSponsor
	case strings.Contains(t, "vip"):
		return TicketVIP
	case strings.Contains(t, "general"):
		return TicketGeneral
	default:
		return TicketOther
	}
}

type Participant struct {
	ID               string     `json:"id"`
	EventCode        string     `json:"event_code"`
	Name             string     `json:"name"`
	Phone            string     `json:"phone"`
	Email            string     `json:"email"`
	Niche            string     `json:"niche"`
	State            string     `json:"state"`
	RegistrationDate *time.Time `json:"registration_date,omitempty"`
	TicketType       string     `json:"ticket_type"`
	TotalSales       *float64   `json:"total_sales,omitempty"`
	StatusHadir      string     `json:"status_hadir"`
	Package          string     `json:"package"`
	PaymentStatus    string     `json:"payment_status"`
	PIC              string     `json:"pic"`
	BdsInvited       string     `json:"bds_invited"`
	BdsStatus        string     `json:"bds_status"`
	CloseBy          string     `json:"close_by"`
	CloseDay         string     `json:"close_day"`
	CreatedAt        time.Time  `json:"created_at"`

	// CheckIns is populated by search and list queries so staff can see
	// per-day attendance inline.
	CheckIns []CheckIn `json:"checkins,omitempty"`
}

func (p *Participant) TicketClass() TicketClass {
	return ClassifyTicket(p.TicketType)
}

// ParticipantFilter narrows the admin participant listing.
type ParticipantFilter struct {
	Query     string // matched against name and phone
	EventCode string
	StartDate *time.Time // created_at lower bound
	EndDate   *time.Time // created_at upper bound, inclusive of the day
}
