package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/piresc/nebengjek-dispatch/internal/pkg/logger"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/models"
	"github.com/piresc/nebengjek-dispatch/services/dispatch"
)

var errEmptyRepresentation = errors.New("store returned no record")

// entity describes how one collection is stored and held locally
type entity[T any, P any] struct {
	label       string
	table       string
	encode      func(T) models.Record
	decode      func(models.Record) (T, error)
	encodePatch func(P) models.Record
	apply       func(P, T) T
	id          func(T) string
	list        func(*dataProvider) *[]T
	newestFirst bool
}

var (
	companyEntity = entity[models.Company, models.CompanyPatch]{
		label:       dispatch.EntityCompany,
		table:       models.TableCompanies,
		encode:      companyToRecord,
		decode:      recordToCompany,
		encodePatch: companyPatchToRecord,
		apply:       models.CompanyPatch.Apply,
		id:          func(c models.Company) string { return c.ID },
		list:        func(p *dataProvider) *[]models.Company { return &p.companies },
	}
	driverEntity = entity[models.Driver, models.DriverPatch]{
		label:       dispatch.EntityDriver,
		table:       models.TableDrivers,
		encode:      driverToRecord,
		decode:      recordToDriver,
		encodePatch: driverPatchToRecord,
		apply:       models.DriverPatch.Apply,
		id:          func(d models.Driver) string { return d.ID },
		list:        func(p *dataProvider) *[]models.Driver { return &p.drivers },
	}
	carTypeEntity = entity[models.CarType, models.CarTypePatch]{
		label:       dispatch.EntityCarType,
		table:       models.TableCarTypes,
		encode:      carTypeToRecord,
		decode:      recordToCarType,
		encodePatch: carTypePatchToRecord,
		apply:       models.CarTypePatch.Apply,
		id:          func(ct models.CarType) string { return ct.ID },
		list:        func(p *dataProvider) *[]models.CarType { return &p.carTypes },
	}
	projectEntity = entity[models.Project, models.ProjectPatch]{
		label:       dispatch.EntityProject,
		table:       models.TableProjects,
		encode:      projectToRecord,
		decode:      recordToProject,
		encodePatch: projectPatchToRecord,
		apply:       models.ProjectPatch.Apply,
		id:          func(pr models.Project) string { return pr.ID },
		list:        func(p *dataProvider) *[]models.Project { return &p.projects },
		newestFirst: true,
	}
	paymentEntity = entity[models.Payment, models.PaymentPatch]{
		label:       dispatch.EntityPayment,
		table:       models.TablePayments,
		encode:      paymentToRecord,
		decode:      recordToPayment,
		encodePatch: paymentPatchToRecord,
		apply:       models.PaymentPatch.Apply,
		id:          func(pm models.Payment) string { return pm.ID },
		list:        func(p *dataProvider) *[]models.Payment { return &p.payments },
		newestFirst: true,
	}
)

// reject fails an operation before any store call
func (p *dataProvider) reject(msg string, err error) error {
	_, gen, _ := p.identity()
	return p.fail(gen, msg, err)
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", dispatch.ErrValidation, fmt.Sprintf(format, args...))
}

// addRecord writes v to the store and adds the canonical row locally
func addRecord[T any, P any](ctx context.Context, p *dataProvider, e entity[T, P], v T) (*T, error) {
	msg := dispatch.AddMessage(e.label)
	userID, gen, err := p.identity()
	if err != nil {
		return nil, p.fail(gen, msg, err)
	}

	row, err := p.store.Insert(ctx, e.table, userID, e.encode(v))
	if err == nil && row == nil {
		err = errEmptyRepresentation
	}
	if err != nil {
		return nil, p.fail(gen, msg, err, logger.String("table", e.table))
	}
	created, err := e.decode(row)
	if err != nil {
		return nil, p.fail(gen, msg, err, logger.String("table", e.table))
	}

	p.mutate(gen, func() {
		list := e.list(p)
		if e.newestFirst {
			*list = append([]T{created}, *list...)
		} else {
			*list = append(*list, created)
		}
	})
	return &created, nil
}

// updateRecord writes patch to the store, then merges it over the local record.
// When the record is not held locally the store's row is returned as is, or
// nil if the store sent none.
func updateRecord[T any, P any](ctx context.Context, p *dataProvider, e entity[T, P], id string, patch P) (*T, error) {
	msg := dispatch.UpdateMessage(e.label)
	userID, gen, err := p.identity()
	if err != nil {
		return nil, p.fail(gen, msg, err)
	}
	changes := e.encodePatch(patch)
	if len(changes) == 0 {
		return nil, p.fail(gen, msg, invalid("no fields to update"))
	}

	row, err := p.store.Update(ctx, e.table, userID, id, changes)
	if err != nil {
		return nil, p.fail(gen, msg, err, logger.String("table", e.table), logger.String("id", id))
	}

	var (
		merged T
		found  bool
	)
	p.mutate(gen, func() {
		list := *e.list(p)
		for i := range list {
			if e.id(list[i]) == id {
				list[i] = e.apply(patch, list[i])
				merged, found = list[i], true
				return
			}
		}
	})
	if found {
		return &merged, nil
	}
	if row == nil {
		return nil, nil
	}
	canonical, err := e.decode(row)
	if err != nil {
		p.logger.Warn("Updated record could not be decoded",
			logger.String("table", e.table),
			logger.String("id", id),
			logger.Err(err))
		return nil, nil
	}
	return &canonical, nil
}

// deleteRecord deletes id from the store, then drops it locally
func deleteRecord[T any, P any](ctx context.Context, p *dataProvider, e entity[T, P], id string) error {
	msg := dispatch.DeleteMessage(e.label)
	userID, gen, err := p.identity()
	if err != nil {
		return p.fail(gen, msg, err)
	}

	if err := p.store.Delete(ctx, e.table, userID, id); err != nil {
		return p.fail(gen, msg, err, logger.String("table", e.table), logger.String("id", id))
	}

	p.mutate(gen, func() {
		list := e.list(p)
		kept := (*list)[:0]
		for _, item := range *list {
			if e.id(item) != id {
				kept = append(kept, item)
			}
		}
		*list = kept
	})
	return nil
}

func (p *dataProvider) AddCompany(ctx context.Context, company models.Company) (*models.Company, error) {
	if company.Name == "" {
		return nil, p.reject(dispatch.AddMessage(dispatch.EntityCompany), invalid("company name is required"))
	}
	return addRecord(ctx, p, companyEntity, company)
}

func (p *dataProvider) UpdateCompany(ctx context.Context, id string, patch models.CompanyPatch) (*models.Company, error) {
	if patch.Name != nil && *patch.Name == "" {
		return nil, p.reject(dispatch.UpdateMessage(dispatch.EntityCompany), invalid("company name is required"))
	}
	return updateRecord(ctx, p, companyEntity, id, patch)
}

func (p *dataProvider) DeleteCompany(ctx context.Context, id string) error {
	return deleteRecord(ctx, p, companyEntity, id)
}

func (p *dataProvider) AddDriver(ctx context.Context, driver models.Driver) (*models.Driver, error) {
	msg := dispatch.AddMessage(dispatch.EntityDriver)
	if driver.Name == "" {
		return nil, p.reject(msg, invalid("driver name is required"))
	}
	if driver.Status == "" {
		driver.Status = models.DriverStatusAvailable
	}
	if !driver.Status.Valid() {
		return nil, p.reject(msg, invalid("unknown driver status %q", driver.Status))
	}
	pin := models.ResolvePIN(driver)
	driver.PIN = &pin
	return addRecord(ctx, p, driverEntity, driver)
}

func (p *dataProvider) UpdateDriver(ctx context.Context, id string, patch models.DriverPatch) (*models.Driver, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, p.reject(dispatch.UpdateMessage(dispatch.EntityDriver), invalid("unknown driver status %q", *patch.Status))
	}
	return updateRecord(ctx, p, driverEntity, id, patch)
}

func (p *dataProvider) DeleteDriver(ctx context.Context, id string) error {
	return deleteRecord(ctx, p, driverEntity, id)
}

func (p *dataProvider) AddCarType(ctx context.Context, carType models.CarType) (*models.CarType, error) {
	msg := dispatch.AddMessage(dispatch.EntityCarType)
	if carType.Name == "" {
		return nil, p.reject(msg, invalid("car type name is required"))
	}
	if carType.Passengers < 0 || carType.Luggage < 0 {
		return nil, p.reject(msg, invalid("capacity cannot be negative"))
	}
	return addRecord(ctx, p, carTypeEntity, carType)
}

func (p *dataProvider) UpdateCarType(ctx context.Context, id string, patch models.CarTypePatch) (*models.CarType, error) {
	if (patch.Passengers != nil && *patch.Passengers < 0) || (patch.Luggage != nil && *patch.Luggage < 0) {
		return nil, p.reject(dispatch.UpdateMessage(dispatch.EntityCarType), invalid("capacity cannot be negative"))
	}
	return updateRecord(ctx, p, carTypeEntity, id, patch)
}

func (p *dataProvider) DeleteCarType(ctx context.Context, id string) error {
	return deleteRecord(ctx, p, carTypeEntity, id)
}
