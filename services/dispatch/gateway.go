package dispatch

import (
	"context"

	"github.com/piresc/nebengjek-dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/nebengjek-dispatch/services/dispatch EventGW

// EventGW publishes dispatch events for other services
type EventGW interface {
	PublishProjectCreated(ctx context.Context, userID string, project models.Project) error
	PublishPaymentCompleted(ctx context.Context, userID string, payment models.Payment) error
}
