package domain_test

import (
	"testing"

	"github.com/growthops/checkin-api/internal/domain"
)

func TestClassifyTicket(t *testing.T) {
	cases := map[string]domain.TicketClass{
		"General":         domain.TicketGeneral,
		"GENERAL SEATING": domain.TicketGeneral,
		"VIP":             domain.TicketVIP,
		"vip gold":        domain.TicketVIP,
		"Sponsor":         domain.TicketSponsor,
		"Sponsored VIP":   domain.TicketSponsor,
		"Early Bird":      domain.TicketOther,
		"":                domain.TicketOther,
	}

	for ticketType, want := range cases {
		if got := domain.ClassifyTicket(ticketType); got != want {
			t.Errorf("ClassifyTicket(%q) = %q, want %q", ticketType, got, want)
		}
	}
}
