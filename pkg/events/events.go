package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/growthops/checkin-api/pkg/logger"
	"github.com/nats-io/nats.go"
)

// Subjects published by the API.
const (
	CheckInConfirmed     = "checkin.confirmed"
	CheckInUpdated       = "checkin.updated"
	ParticipantsImported = "participants.imported"
)

type CheckInConfirmedEvent struct {
	ParticipantID string    `json:"participant_id"`
	EventCode     string    `json:"event_code"`
	Day           int       `json:"day"`
	AttendCount   int       `json:"attend_count"`
	ConfirmedAt   time.Time `json:"confirmed_at"`
}

type ParticipantsImportedEvent struct {
	TotalRows  int       `json:"total_rows"`
	Imported   int       `json:"imported"`
	Skipped    int       `json:"skipped"`
	ImportedAt time.Time `json:"imported_at"`
}

type Publisher interface {
	Publish(ctx context.Context, subject string, data interface{}) error
	Close() error
}

type NATSEventBus struct {
	conn *nats.Conn
}

func NewNATSEventBus(url string) (*NATSEventBus, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &NATSEventBus{conn: conn}, nil
}

func (n *NATSEventBus) Publish(ctx context.Context, subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	logger.DebugContext(ctx, "Publishing event", "subject", subject, "data", string(payload))

	return n.conn.Publish(subject, payload)
}

func (n *NATSEventBus) Close() error {
	n.conn.Close()
	return nil
}

// NoopPublisher discards events. Used when NATS is not configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, subject string, data interface{}) error {
	return nil
}

func (NoopPublisher) Close() error { return nil }
