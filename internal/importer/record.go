package importer

import (
	"regexp"
	"strings"
)

// Record is one participant insert payload built from a CSV data row.
// Numeric/date-like columns are pointers so "no value" survives as NULL:
// the store rejects the empty string for those column types. Unknown
// passthrough columns land in Extra and are tolerated but never persisted.
type Record struct {
	EventCode        string
	Name             string
	Phone            string
	Email            string
	Niche            string
	RegistrationDate *string
	State            string
	TicketType       string
	TotalSales       *string
	StatusHadir      string
	Package          string
	PaymentStatus    string
	PIC              string
	BdsInvited       string
	BdsStatus        string
	CloseBy          string
	CloseDay         string
	CreatedAt        *string

	Extra map[string]string
}

// SkipReason explains why BuildRecord rejected a row.
type SkipReason string

const (
	SkipEmptyRow      SkipReason = "no data in any cell"
	SkipNoNameOrPhone SkipReason = "missing both name and phone"
)

var lineBreaks = regexp.MustCompile(`[\r\n]+`)

// cleanCell trims the cell and collapses internal line breaks to single
// spaces so a quoted multi-line cell becomes one logical value.
func cleanCell(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	return lineBreaks.ReplaceAllString(v, " ")
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// BuildRecord assembles a Record from a data row using the canonical field
// for each column position. It reports a skip reason when the row has no
// data at all, or data but neither a name nor a phone. Both cases are
// deliberate tolerance for ragged hand-edited spreadsheets, not errors.
func BuildRecord(fields []string, row []string) (Record, SkipReason) {
	rec := Record{}
	hasData := false

	for i, field := range fields {
		var raw string
		if i < len(row) {
			raw = row[i]
		}
		value := cleanCell(raw)
		if value != "" {
			hasData = true
		}

		switch field {
		case FieldEventCode:
			rec.EventCode = value
		case FieldName:
			rec.Name = value
		case FieldPhone:
			rec.Phone = stripNonDigits(value)
		case FieldEmail:
			rec.Email = value
		case FieldNiche:
			rec.Niche = value
		case FieldRegistrationDate:
			rec.RegistrationDate = nullable(value)
		case FieldState:
			rec.State = value
		case FieldTicketType:
			rec.TicketType = value
		case FieldTotalSales:
			rec.TotalSales = nullable(value)
		case FieldStatusHadir:
			rec.StatusHadir = value
		case FieldPackage:
			rec.Package = value
		case FieldPaymentStatus:
			rec.PaymentStatus = value
		case FieldPIC:
			rec.PIC = value
		case FieldBdsInvited:
			rec.BdsInvited = value
		case FieldBdsStatus:
			rec.BdsStatus = value
		case FieldCloseBy:
			rec.CloseBy = value
		case FieldCloseDay:
			rec.CloseDay = value
		case FieldCreatedAt:
			rec.CreatedAt = nullable(value)
		default:
			if rec.Extra == nil {
				rec.Extra = make(map[string]string)
			}
			rec.Extra[field] = value
		}
	}

	if !hasData {
		return Record{}, SkipEmptyRow
	}
	if rec.Name == "" && rec.Phone == "" {
		return Record{}, SkipNoNameOrPhone
	}
	return rec, ""
}

func nullable(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
