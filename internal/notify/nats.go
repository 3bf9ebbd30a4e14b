package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/fivetwenty-io/gameadmin/internal/constants"
	"github.com/fivetwenty-io/gameadmin/pkg/admin"
)

// Static errors for err113 compliance.
var (
	ErrNATSURLRequired = errors.New("NATS URL is required")
)

// Publisher is the part of *nats.Conn the NATS sink needs.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// toastEvent is the message published for every toast.
type toastEvent struct {
	admin.Toast

	API    string    `json:"api,omitempty"`
	SentAt time.Time `json:"sent_at"`
}

// NATSSink publishes toasts as JSON on a subject.
type NATSSink struct {
	publisher Publisher
	subject   string
	api       string
	now       func() time.Time
}

// NewNATSSink creates a sink publishing on subject. api tags each event with
// the backend it came from and may be empty.
func NewNATSSink(publisher Publisher, subject, api string) *NATSSink {
	if subject == "" {
		subject = constants.DefaultToastSubject
	}

	return &NATSSink{
		publisher: publisher,
		subject:   subject,
		api:       api,
		now:       time.Now,
	}
}

// Subject returns the subject toasts are published on.
func (s *NATSSink) Subject() string {
	return s.subject
}

// Send implements Sink.
func (s *NATSSink) Send(_ context.Context, toast admin.Toast) error {
	data, err := json.Marshal(toastEvent{Toast: toast, API: s.api, SentAt: s.now().UTC()})
	if err != nil {
		return fmt.Errorf("encoding toast: %w", err)
	}

	err = s.publisher.Publish(s.subject, data)
	if err != nil {
		return fmt.Errorf("publishing toast on %s: %w", s.subject, err)
	}

	return nil
}

// ConnectNATS dials the NATS server at url.
func ConnectNATS(url, name string) (*nats.Conn, error) {
	if url == "" {
		return nil, ErrNATSURLRequired
	}

	conn, err := nats.Connect(url,
		nats.Name(name),
		nats.Timeout(constants.NATSConnectTimeout),
		nats.NoReconnect(),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", url, err)
	}

	return conn, nil
}

// Close flushes pending messages and closes conn.
func Close(conn *nats.Conn) error {
	if conn == nil {
		return nil
	}

	defer conn.Close()

	err := conn.FlushTimeout(constants.NATSFlushTimeout)
	if err != nil {
		return fmt.Errorf("flushing NATS connection: %w", err)
	}

	return nil
}
