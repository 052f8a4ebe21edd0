package importer

import "strings"

// Canonical field names the importer maps CSV headers onto. Anything not in
// the alias table passes through lower-cased as its own field name.
const (
	FieldEventCode        = "event_code"
	FieldName             = "name"
	FieldPhone            = "phone"
	FieldEmail            = "email"
	FieldNiche            = "niche"
	FieldRegistrationDate = "registration_date"
	FieldState            = "state"
	FieldTicketType       = "ticket_type"
	FieldTotalSales       = "total_sales"
	FieldStatusHadir      = "status_hadir"
	FieldPackage          = "package"
	FieldPaymentStatus    = "payment_status"
	FieldPIC              = "pic"
	FieldBdsInvited       = "bds_invited"
	FieldBdsStatus        = "bds_status"
	FieldCloseBy          = "close_by"
	FieldCloseDay         = "close_day"
	FieldCreatedAt        = "created_at"
)

// headerAliases covers the English and Malay spellings seen in real
// registration sheets. Many surface spellings map onto one canonical field.
var headerAliases = map[string]string{
	"event_code":   FieldEventCode,
	"event code":   FieldEventCode,
	"eventcode":    FieldEventCode,
	"seminar":      FieldEventCode,
	"event":        FieldEventCode,
	"nama seminar": FieldEventCode,

	"nama":       FieldName,
	"name":       FieldName,
	"nama penuh": FieldName,
	"full name":  FieldName,

	"no telefon": FieldPhone,
	"phone":      FieldPhone,
	"telefon":    FieldPhone,
	"no hp":      FieldPhone,
	"mobile":     FieldPhone,

	"email": FieldEmail,
	"emel":  FieldEmail,

	"niche":        FieldNiche,
	"niche bisnes": FieldNiche,
	"bisnes":       FieldNiche,
	"business":     FieldNiche,

	"tarikh daftar":     FieldRegistrationDate,
	"registration date": FieldRegistrationDate,
	"registration_date": FieldRegistrationDate,
	"tarikh":            FieldRegistrationDate,
	"date":              FieldRegistrationDate,

	"negeri": FieldState,
	"state":  FieldState,

	"jenis tiket": FieldTicketType,
	"ticket type": FieldTicketType,
	"ticket_type": FieldTicketType,
	"tiket":       FieldTicketType,
	"ticket":      FieldTicketType,
	"type":        FieldTicketType,

	"purata sales": FieldTotalSales,
	"total sales":  FieldTotalSales,
	"total_sales":  FieldTotalSales,
	"sales":        FieldTotalSales,
	"jualan":       FieldTotalSales,

	"status hadir":      FieldStatusHadir,
	"status_hadir":      FieldStatusHadir,
	"attendance status": FieldStatusHadir,
	"attendance":        FieldStatusHadir,

	"pakej":   FieldPackage,
	"package": FieldPackage,

	"status pembayaran": FieldPaymentStatus,
	"payment status":    FieldPaymentStatus,
	"payment_status":    FieldPaymentStatus,
	"payment":           FieldPaymentStatus,

	"pic":              FieldPIC,
	"person in charge": FieldPIC,

	"bds invited": FieldBdsInvited,
	"bds_invited": FieldBdsInvited,

	"bds status": FieldBdsStatus,
	"bds_status": FieldBdsStatus,

	"close by":  FieldCloseBy,
	"closed by": FieldCloseBy,
	"close_by":  FieldCloseBy,

	"day":       FieldCloseDay,
	"close day": FieldCloseDay,
	"close_day": FieldCloseDay,
}

// MapHeaders resolves each header cell to a canonical field name. The cell
// is lower-cased and stripped of quote characters before lookup; unmapped
// headers fall back to their own lower-cased text, which lets unknown
// columns pass through (and means a typo becomes a stray field, not an
// error).
func MapHeaders(headerRow []string) []string {
	fields := make([]string, len(headerRow))
	for i, h := range headerRow {
		key := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(h, `"`, "")))
		if canonical, ok := headerAliases[key]; ok {
			fields[i] = canonical
		} else {
			fields[i] = key
		}
	}
	return fields
}
