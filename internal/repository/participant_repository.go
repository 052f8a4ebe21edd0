package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/growthops/checkin-api/internal/domain"
	"github.com/growthops/checkin-api/internal/importer"
)

type ParticipantRepository interface {
	InsertBatch(ctx context.Context, records []importer.Record) error
	Create(ctx context.Context, rec importer.Record) (*domain.Participant, error)
	GetByID(ctx context.Context, id string) (*domain.Participant, error)
	SearchByName(ctx context.Context, name, eventCode string) ([]domain.Participant, error)
	SearchByPhone(ctx context.Context, digits, eventCode string) ([]domain.Participant, error)
	List(ctx context.Context, filter domain.ParticipantFilter, limit, offset int) ([]domain.Participant, int64, error)
	ListByEvent(ctx context.Context, eventCode string) ([]domain.Participant, error)
	UpdateField(ctx context.Context, id, field, value string) error
	ListEventCodes(ctx context.Context) ([]string, error)
}

type participantRepository struct {
	pool *pgxpool.Pool
}

func NewParticipantRepository(pool *pgxpool.Pool) ParticipantRepository {
	return &participantRepository{pool: pool}
}

const participantCols = `id, event_code, name, phone, email, niche, state,
registration_date, ticket_type, total_sales, status_hadir,
package, payment_status, pic, bds_invited, bds_status, close_by, close_day,
created_at`

const insertParticipantSQL = `INSERT INTO participants (
	id, event_code, name, phone, email, niche, state,
	registration_date, ticket_type, total_sales, status_hadir,
	package, payment_status, pic, bds_invited, bds_status, close_by, close_day,
	created_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,
	COALESCE($19::timestamptz, now()))`

func insertArgs(rec importer.Record) []any {
	return []any{
		uuid.NewString(),
		rec.EventCode, rec.Name, rec.Phone, rec.Email, rec.Niche, rec.State,
		rec.RegistrationDate, rec.TicketType, rec.TotalSales, rec.StatusHadir,
		rec.Package, rec.PaymentStatus, rec.PIC, rec.BdsInvited, rec.BdsStatus,
		rec.CloseBy, rec.CloseDay, rec.CreatedAt,
	}
}

// InsertBatch writes every record inside one transaction. If the store
// rejects any row the whole batch rolls back and the first error is
// returned as-is.
func (r *participantRepository) InsertBatch(ctx context.Context, records []importer.Record) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	b := &pgx.Batch{}
	for _, rec := range records {
		b.Queue(insertParticipantSQL, insertArgs(rec)...)
	}

	br := tx.SendBatch(ctx, b)
	for range records {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return err
		}
	}
	if err := br.Close(); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *participantRepository) Create(ctx context.Context, rec importer.Record) (*domain.Participant, error) {
	q := insertParticipantSQL + ` RETURNING ` + participantCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var p domain.Participant
	if err := r.pool.QueryRow(ctx, q, insertArgs(rec)...).Scan(scanTargets(&p)...); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanTargets(p *domain.Participant) []any {
	return []any{
		&p.ID, &p.EventCode, &p.Name, &p.Phone, &p.Email, &p.Niche, &p.State,
		&p.RegistrationDate, &p.TicketType, &p.TotalSales, &p.StatusHadir,
		&p.Package, &p.PaymentStatus, &p.PIC, &p.BdsInvited, &p.BdsStatus,
		&p.CloseBy, &p.CloseDay, &p.CreatedAt,
	}
}

func (r *participantRepository) GetByID(ctx context.Context, id string) (*domain.Participant, error) {
	const q = `SELECT ` + participantCols + ` FROM participants WHERE id=$1`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var p domain.Participant
	err := r.pool.QueryRow(ctx, q, id).Scan(scanTargets(&p)...)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *participantRepository) SearchByName(ctx context.Context, name, eventCode string) ([]domain.Participant, error) {
	const q = `SELECT ` + participantCols + ` FROM participants
		WHERE event_code ILIKE $1 AND name ILIKE $2
		ORDER BY name`
	return r.searchWithCheckins(ctx, q, eventCode, "%"+name+"%")
}

func (r *participantRepository) SearchByPhone(ctx context.Context, digits, eventCode string) ([]domain.Participant, error) {
	const q = `SELECT ` + participantCols + ` FROM participants
		WHERE event_code ILIKE $1 AND phone LIKE $2
		ORDER BY name`
	return r.searchWithCheckins(ctx, q, eventCode, "%"+digits+"%")
}

func (r *participantRepository) searchWithCheckins(ctx context.Context, q string, args ...any) ([]domain.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	participants, err := r.queryParticipants(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	if err := r.attachCheckins(ctx, participants); err != nil {
		return nil, err
	}
	return participants, nil
}

func (r *participantRepository) queryParticipants(ctx context.Context, q string, args ...any) ([]domain.Participant, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participants []domain.Participant
	for rows.Next() {
		var p domain.Participant
		if err := rows.Scan(scanTargets(&p)...); err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

func (r *participantRepository) attachCheckins(ctx context.Context, participants []domain.Participant) error {
	if len(participants) == 0 {
		return nil
	}

	ids := make([]string, len(participants))
	index := make(map[string]int, len(participants))
	for i, p := range participants {
		ids[i] = p.ID
		index[p.ID] = i
	}

	const q = `SELECT id, participant_id, event_code, day, attend_count, status, created_at
		FROM checkins WHERE participant_id = ANY($1) ORDER BY day`

	rows, err := r.pool.Query(ctx, q, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.CheckIn
		if err := rows.Scan(&c.ID, &c.ParticipantID, &c.EventCode, &c.Day, &c.AttendCount, &c.Status, &c.CreatedAt); err != nil {
			return err
		}
		if i, ok := index[c.ParticipantID]; ok {
			participants[i].CheckIns = append(participants[i].CheckIns, c)
		}
	}
	return rows.Err()
}

func (r *participantRepository) List(ctx context.Context, filter domain.ParticipantFilter, limit, offset int) ([]domain.Participant, int64, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	where := ` WHERE 1=1`
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		p1 := arg(like)
		p2 := arg(like)
		where += fmt.Sprintf(" AND (name ILIKE %s OR phone ILIKE %s)", p1, p2)
	}
	if filter.EventCode != "" {
		where += " AND event_code = " + arg(filter.EventCode)
	}
	if filter.StartDate != nil {
		where += " AND created_at >= " + arg(*filter.StartDate)
	}
	if filter.EndDate != nil {
		// Push the bound to the next midnight so the end day is included.
		where += " AND created_at < " + arg(filter.EndDate.AddDate(0, 0, 1))
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM participants`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := `SELECT ` + participantCols + ` FROM participants` + where +
		` ORDER BY created_at DESC LIMIT ` + arg(limit) + ` OFFSET ` + arg(offset)

	participants, err := r.queryParticipants(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	if err := r.attachCheckins(ctx, participants); err != nil {
		return nil, 0, err
	}
	return participants, total, nil
}

func (r *participantRepository) ListByEvent(ctx context.Context, eventCode string) ([]domain.Participant, error) {
	const q = `SELECT ` + participantCols + ` FROM participants WHERE event_code = $1`

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.queryParticipants(ctx, q, eventCode)
}

// editableColumns is the closed set of columns inline edits may touch. The
// map value is the trusted column name interpolated into the statement;
// user input never reaches SQL as an identifier.
var editableColumns = map[string]string{
	"event_code":        "event_code",
	"name":              "name",
	"phone":             "phone",
	"email":             "email",
	"niche":             "niche",
	"state":             "state",
	"registration_date": "registration_date",
	"ticket_type":       "ticket_type",
	"total_sales":       "total_sales",
	"status_hadir":      "status_hadir",
	"package":           "package",
	"payment_status":    "payment_status",
	"pic":               "pic",
	"bds_invited":       "bds_invited",
	"bds_status":        "bds_status",
	"close_by":          "close_by",
	"close_day":         "close_day",
}

func (r *participantRepository) UpdateField(ctx context.Context, id, field, value string) error {
	col, ok := editableColumns[field]
	if !ok {
		return fmt.Errorf("field %q is not editable", field)
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	// Numeric/date columns reject the empty string; clearing them means NULL.
	var v any = value
	if value == "" && (col == "registration_date" || col == "total_sales") {
		v = nil
	}

	q := fmt.Sprintf(`UPDATE participants SET %s = $2 WHERE id = $1`, col)
	tag, err := r.pool.Exec(ctx, q, id, v)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *participantRepository) ListEventCodes(ctx context.Context) ([]string, error) {
	const q = `SELECT DISTINCT event_code FROM participants WHERE event_code <> '' ORDER BY event_code`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}
