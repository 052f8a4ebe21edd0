package importer_test

import (
	"testing"

	"github.com/growthops/checkin-api/internal/importer"
)

func TestMapHeadersAliases(t *testing.T) {
	cases := map[string]string{
		"event_code":   importer.FieldEventCode,
		"Event Code":   importer.FieldEventCode,
		"EventCode":    importer.FieldEventCode,
		"Seminar":      importer.FieldEventCode,
		"Event":        importer.FieldEventCode,
		"Nama Seminar": importer.FieldEventCode,

		"Nama":       importer.FieldName,
		"name":       importer.FieldName,
		"Nama Penuh": importer.FieldName,
		"FULL NAME":  importer.FieldName,

		"No Telefon": importer.FieldPhone,
		"phone":      importer.FieldPhone,
		"Telefon":    importer.FieldPhone,
		"No HP":      importer.FieldPhone,
		"Mobile":     importer.FieldPhone,

		"Email": importer.FieldEmail,
		"Emel":  importer.FieldEmail,

		"Niche":        importer.FieldNiche,
		"Niche Bisnes": importer.FieldNiche,
		"Bisnes":       importer.FieldNiche,
		"Business":     importer.FieldNiche,

		"Tarikh Daftar":     importer.FieldRegistrationDate,
		"Registration Date": importer.FieldRegistrationDate,
		"registration_date": importer.FieldRegistrationDate,
		"Tarikh":            importer.FieldRegistrationDate,
		"Date":              importer.FieldRegistrationDate,

		"Negeri": importer.FieldState,
		"State":  importer.FieldState,

		"Jenis Tiket": importer.FieldTicketType,
		"Ticket Type": importer.FieldTicketType,
		"ticket_type": importer.FieldTicketType,
		"Tiket":       importer.FieldTicketType,
		"Ticket":      importer.FieldTicketType,
		"Type":        importer.FieldTicketType,

		"Purata Sales": importer.FieldTotalSales,
		"Total Sales":  importer.FieldTotalSales,
		"total_sales":  importer.FieldTotalSales,
		"Sales":        importer.FieldTotalSales,
		"Jualan":       importer.FieldTotalSales,

		"Status Hadir":      importer.FieldStatusHadir,
		"status_hadir":      importer.FieldStatusHadir,
		"Attendance Status": importer.FieldStatusHadir,
		"Attendance":        importer.FieldStatusHadir,

		"Pakej":   importer.FieldPackage,
		"Package": importer.FieldPackage,

		"Status Pembayaran": importer.FieldPaymentStatus,
		"Payment Status":    importer.FieldPaymentStatus,
		"payment_status":    importer.FieldPaymentStatus,
		"Payment":           importer.FieldPaymentStatus,

		"PIC":              importer.FieldPIC,
		"Person In Charge": importer.FieldPIC,

		"BDS Invited": importer.FieldBdsInvited,
		"bds_invited": importer.FieldBdsInvited,

		"BDS Status": importer.FieldBdsStatus,
		"bds_status": importer.FieldBdsStatus,

		"Close By":  importer.FieldCloseBy,
		"Closed By": importer.FieldCloseBy,
		"close_by":  importer.FieldCloseBy,

		"Day":       importer.FieldCloseDay,
		"Close Day": importer.FieldCloseDay,
		"close_day": importer.FieldCloseDay,
	}

	for header, want := range cases {
		got := importer.MapHeaders([]string{header})
		if got[0] != want {
			t.Errorf("MapHeaders(%q) = %q, want %q", header, got[0], want)
		}
	}
}

func TestMapHeadersStripsQuotesAndSpace(t *testing.T) {
	got := importer.MapHeaders([]string{`  "Nama" `, "\"phone\""})
	if got[0] != importer.FieldName || got[1] != importer.FieldPhone {
		t.Errorf("got %v", got)
	}
}

func TestMapHeadersUnknownPassesThroughLowered(t *testing.T) {
	got := importer.MapHeaders([]string{"Referral Source"})
	if got[0] != "referral source" {
		t.Errorf("got %q, want lower-cased passthrough", got[0])
	}
}
