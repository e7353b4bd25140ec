package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/piresc/nebengjek-dispatch/internal/pkg/logger"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/models"
	"github.com/piresc/nebengjek-dispatch/services/dispatch"
)

// withProjectDefaults fills the fields a new project may leave empty
func withProjectDefaults(pr models.Project) models.Project {
	if pr.Status == "" {
		pr.Status = models.ProjectStatusActive
	}
	if pr.PaymentStatus == "" {
		pr.PaymentStatus = models.ProjectPaymentCharge
	}
	if pr.Company == "" {
		pr.Company = models.NotSpecified
	}
	if pr.Driver == "" {
		pr.Driver = models.NotSpecified
	}
	if pr.CarType == "" {
		pr.CarType = models.NotSpecified
	}
	if pr.BookingID == "" {
		pr.BookingID = models.NewBookingID()
	}
	return pr
}

func validateProject(pr models.Project) error {
	switch {
	case !pr.Status.Valid():
		return invalid("unknown project status %q", pr.Status)
	case !pr.PaymentStatus.Valid():
		return invalid("unknown payment status %q", pr.PaymentStatus)
	case pr.Price < 0:
		return invalid("price cannot be negative")
	case pr.DriverFee != nil && *pr.DriverFee < 0:
		return invalid("driver fee cannot be negative")
	case pr.Passengers < 0:
		return invalid("passengers cannot be negative")
	}
	return nil
}

// checkSchedule requires the project's date and time to be strictly after now
func (p *dataProvider) checkSchedule(pr models.Project) error {
	at, err := pr.ScheduledAt(p.loc)
	if err != nil {
		return fmt.Errorf("%w: %v", dispatch.ErrInvalidSchedule, err)
	}
	if !at.After(p.now()) {
		return dispatch.ErrPastSchedule
	}
	return nil
}

func scheduleMessage(err error) string {
	if errors.Is(err, dispatch.ErrPastSchedule) {
		return dispatch.MsgPastSchedule
	}
	return dispatch.MsgInvalidSchedule
}

func (p *dataProvider) AddProject(ctx context.Context, project models.Project) (*models.Project, error) {
	project = withProjectDefaults(project)
	if err := validateProject(project); err != nil {
		return nil, p.reject(dispatch.AddMessage(dispatch.EntityProject), err)
	}
	if project.Status != models.ProjectStatusCompleted {
		if err := p.checkSchedule(project); err != nil {
			return nil, p.reject(scheduleMessage(err), err)
		}
	}

	created, err := addRecord(ctx, p, projectEntity, project)
	if err != nil {
		return nil, err
	}
	if p.eventGW != nil {
		userID, _, _ := p.identity()
		if err := p.eventGW.PublishProjectCreated(ctx, userID, *created); err != nil {
			p.logger.Warn("Failed to publish project created event",
				logger.String("project_id", created.ID),
				logger.Err(err))
		}
	}
	return created, nil
}

// UpdateProject re-validates the merged schedule unless the project ends up completed
func (p *dataProvider) UpdateProject(ctx context.Context, id string, patch models.ProjectPatch) (*models.Project, error) {
	msg := dispatch.UpdateMessage(dispatch.EntityProject)

	existing, ok := p.findProject(id)
	if !ok {
		return nil, p.reject(msg, dispatch.ErrNotFound)
	}
	merged := patch.Apply(existing)
	if err := validateProject(merged); err != nil {
		return nil, p.reject(msg, err)
	}
	if !patch.Completes() && merged.Status != models.ProjectStatusCompleted {
		if err := p.checkSchedule(merged); err != nil {
			return nil, p.reject(scheduleMessage(err), err)
		}
	}
	return updateRecord(ctx, p, projectEntity, id, patch)
}

func (p *dataProvider) DeleteProject(ctx context.Context, id string) error {
	return deleteRecord(ctx, p, projectEntity, id)
}

func (p *dataProvider) findProject(id string) (models.Project, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, pr := range p.projects {
		if pr.ID == id {
			return pr, true
		}
	}
	return models.Project{}, false
}
