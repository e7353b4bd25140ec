package gateway

import (
	"context"
	"encoding/json"
	"time"

	"github.com/piresc/nebengjek-dispatch/internal/pkg/constants"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/logger"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/models"
	"github.com/piresc/nebengjek-dispatch/services/dispatch"
)

// Publisher sends a raw message to a subject
type Publisher interface {
	Publish(ctx context.Context, subject string, data []byte) error
}

// ProjectCreatedEvent is published after a project is stored
type ProjectCreatedEvent struct {
	UserID     string         `json:"user_id"`
	Project    models.Project `json:"project"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// PaymentCompletedEvent is published after a payment is marked paid
type PaymentCompletedEvent struct {
	UserID     string         `json:"user_id"`
	Payment    models.Payment `json:"payment"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// EventGW handles NATS publishing for dispatch events
type EventGW struct {
	publisher Publisher
	now       func() time.Time
	logger    *logger.ZapLogger
}

// NewEventGW creates a new event gateway
func NewEventGW(publisher Publisher, l *logger.ZapLogger) dispatch.EventGW {
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	return &EventGW{publisher: publisher, now: time.Now, logger: l}
}

// PublishProjectCreated publishes a project created event to NATS
func (g *EventGW) PublishProjectCreated(ctx context.Context, userID string, project models.Project) error {
	return g.publish(ctx, constants.SubjectProjectCreated, ProjectCreatedEvent{
		UserID:     userID,
		Project:    project,
		OccurredAt: g.now().UTC(),
	})
}

// PublishPaymentCompleted publishes a payment completed event to NATS
func (g *EventGW) PublishPaymentCompleted(ctx context.Context, userID string, payment models.Payment) error {
	return g.publish(ctx, constants.SubjectPaymentCompleted, PaymentCompletedEvent{
		UserID:     userID,
		Payment:    payment,
		OccurredAt: g.now().UTC(),
	})
}

func (g *EventGW) publish(ctx context.Context, subject string, event interface{}) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if err := g.publisher.Publish(ctx, subject, data); err != nil {
		g.logger.Warn("Failed to publish event",
			logger.String("subject", subject),
			logger.Err(err))
		return err
	}
	return nil
}

// NoopEventGW drops every event; used when NATS is not configured
type NoopEventGW struct{}

// PublishProjectCreated does nothing
func (NoopEventGW) PublishProjectCreated(context.Context, string, models.Project) error { return nil }

// PublishPaymentCompleted does nothing
func (NoopEventGW) PublishPaymentCompleted(context.Context, string, models.Payment) error {
	return nil
}
