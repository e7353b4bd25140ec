package dispatch

import (
	"context"

	"github.com/piresc/nebengjek-dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks github.com/piresc/nebengjek-dispatch/services/dispatch Store

// ProcMarkPaymentPaid settles a payment server side and credits the driver
const ProcMarkPaymentPaid = "mark_payment_paid"

// Store is the remote keyed record store. Every read is filtered by userID
// and every write carries it.
type Store interface {
	Select(ctx context.Context, table, userID string) ([]models.Record, error)
	Insert(ctx context.Context, table, userID string, row models.Record) (models.Record, error)
	Update(ctx context.Context, table, userID, id string, changes models.Record) (models.Record, error)
	Delete(ctx context.Context, table, userID, id string) error
	Call(ctx context.Context, procedure string, args models.Record) error
}
