package usecase

import (
	"context"
	"time"

	"github.com/piresc/nebengjek-dispatch/internal/pkg/logger"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/models"
	"github.com/piresc/nebengjek-dispatch/services/dispatch"
)

func (p *dataProvider) AddPayment(ctx context.Context, payment models.Payment) (*models.Payment, error) {
	msg := dispatch.AddMessage(dispatch.EntityPayment)
	if payment.Status == "" {
		payment.Status = models.PaymentStatusPending
	}
	if !payment.Status.Valid() {
		return nil, p.reject(msg, invalid("unknown payment status %q", payment.Status))
	}
	if payment.Amount < 0 {
		return nil, p.reject(msg, invalid("amount cannot be negative"))
	}
	now := p.now()
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = now
	}
	if payment.Date == "" {
		payment.Date = now.In(p.loc).Format(models.DateLayout)
	}
	return addRecord(ctx, p, paymentEntity, payment)
}

func (p *dataProvider) UpdatePayment(ctx context.Context, id string, patch models.PaymentPatch) (*models.Payment, error) {
	msg := dispatch.UpdateMessage(dispatch.EntityPayment)
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, p.reject(msg, invalid("unknown payment status %q", *patch.Status))
	}
	if patch.Amount != nil && *patch.Amount < 0 {
		return nil, p.reject(msg, invalid("amount cannot be negative"))
	}
	return updateRecord(ctx, p, paymentEntity, id, patch)
}

func (p *dataProvider) DeletePayment(ctx context.Context, id string) error {
	return deleteRecord(ctx, p, paymentEntity, id)
}

// CompletePayment settles a pending payment through the store procedure,
// falling back to a direct update, then credits the driver locally and
// schedules a payments refetch to pick up server side changes.
func (p *dataProvider) CompletePayment(ctx context.Context, id string) (*models.Payment, error) {
	msg := dispatch.MsgCompletePayment
	userID, gen, err := p.identity()
	if err != nil {
		return nil, p.fail(gen, msg, err)
	}

	payment, err := p.beginCompletion(id)
	if err != nil {
		return nil, p.fail(gen, msg, err, logger.String("payment_id", id))
	}
	defer p.endCompletion(id)

	completedAt := p.now()
	err = p.store.Call(ctx, dispatch.ProcMarkPaymentPaid, models.Record{
		"payment_id": id,
		"user_id":    userID,
	})
	if err != nil {
		p.logger.Warn("Payment procedure failed, falling back to direct update",
			logger.String("payment_id", id),
			logger.Err(err))

		_, err = p.store.Update(ctx, models.TablePayments, userID, id, models.Record{
			"status":       string(models.PaymentStatusPaid),
			colCompletedAt: completedAt,
		})
		if err != nil {
			return nil, p.fail(gen, msg, err, logger.String("payment_id", id))
		}
	}

	var completed models.Payment
	p.mutate(gen, func() {
		credit := true
		for i := range p.payments {
			if p.payments[i].ID == id {
				// a refresh that already saw it paid also reloaded the drivers
				credit = p.payments[i].Status != models.PaymentStatusPaid
				p.payments[i].Status = models.PaymentStatusPaid
				p.payments[i].CompletedAt = &completedAt
				completed = p.payments[i]
				break
			}
		}
		for i := range p.drivers {
			if credit && p.drivers[i].ID == payment.DriverID {
				earnings := p.drivers[i].Earnings() + payment.Amount
				p.drivers[i].TotalEarnings = &earnings
				break
			}
		}
	})
	if completed.ID == "" {
		completed = payment
		completed.Status = models.PaymentStatusPaid
		completed.CompletedAt = &completedAt
	}

	if p.eventGW != nil {
		if err := p.eventGW.PublishPaymentCompleted(ctx, userID, completed); err != nil {
			p.logger.Warn("Failed to publish payment completed event",
				logger.String("payment_id", id),
				logger.Err(err))
		}
	}

	p.schedulePaymentsRefetch(gen, userID)
	return &completed, nil
}

// beginCompletion marks a held, unpaid payment as being completed. A second
// completion of the same payment is rejected until endCompletion.
func (p *dataProvider) beginCompletion(id string) (models.Payment, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, pm := range p.payments {
		if pm.ID != id {
			continue
		}
		if pm.Status == models.PaymentStatusPaid {
			return models.Payment{}, invalid("payment already completed")
		}
		if _, busy := p.completing[id]; busy {
			return models.Payment{}, invalid("payment completion already in progress")
		}
		p.completing[id] = struct{}{}
		return pm, nil
	}
	return models.Payment{}, dispatch.ErrNotFound
}

func (p *dataProvider) endCompletion(id string) {
	p.mu.Lock()
	delete(p.completing, id)
	p.mu.Unlock()
}

// schedulePaymentsRefetch reloads payments after PaymentRefetchDelay unless
// the identity changes first
func (p *dataProvider) schedulePaymentsRefetch(gen uint64, userID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.generation {
		return
	}

	var t *time.Timer
	p.wg.Add(1)
	// mu is held until t is recorded, so the callback always sees it
	t = time.AfterFunc(p.cfg.PaymentRefetchDelay, func() {
		defer p.wg.Done()

		p.mu.Lock()
		delete(p.timers, t)
		stale := gen != p.generation
		p.mu.Unlock()
		if stale {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), refetchTimeout)
		defer cancel()
		payments, err := fetchTable(ctx, p.store, models.TablePayments, userID, recordToPayment)
		if err != nil {
			p.logger.Warn("Payments refetch failed", logger.String("user_id", userID), logger.Err(err))
			return
		}
		p.mutate(gen, func() { p.payments = payments })
	})
	p.timers[t] = struct{}{}
}
