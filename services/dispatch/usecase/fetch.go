package usecase

import (
	"context"
	"fmt"

	"github.com/piresc/nebengjek-dispatch/internal/pkg/models"
	"github.com/piresc/nebengjek-dispatch/services/dispatch"
)

var allTables = []string{
	models.TableCompanies,
	models.TableDrivers,
	models.TableCarTypes,
	models.TableProjects,
	models.TablePayments,
}

// batch holds the result of one fetch cycle; each fetcher writes its own field
type batch struct {
	companies []models.Company
	drivers   []models.Driver
	carTypes  []models.CarType
	projects  []models.Project
	payments  []models.Payment
}

type fetcher struct {
	table string
	run   func(ctx context.Context) error
}

func (b *batch) fetchers(store dispatch.Store, userID string) []fetcher {
	return []fetcher{
		{models.TableCompanies, func(ctx context.Context) (err error) {
			b.companies, err = fetchTable(ctx, store, models.TableCompanies, userID, recordToCompany)
			return err
		}},
		{models.TableDrivers, func(ctx context.Context) (err error) {
			b.drivers, err = fetchTable(ctx, store, models.TableDrivers, userID, recordToDriver)
			return err
		}},
		{models.TableCarTypes, func(ctx context.Context) (err error) {
			b.carTypes, err = fetchTable(ctx, store, models.TableCarTypes, userID, recordToCarType)
			return err
		}},
		{models.TableProjects, func(ctx context.Context) (err error) {
			b.projects, err = fetchTable(ctx, store, models.TableProjects, userID, recordToProject)
			return err
		}},
		{models.TablePayments, func(ctx context.Context) (err error) {
			b.payments, err = fetchTable(ctx, store, models.TablePayments, userID, recordToPayment)
			return err
		}},
	}
}

// assign copies the fetched collections for which ok reports true, or all
// of them when ok is nil; callers hold p.mu
func (b *batch) assign(p *dataProvider, ok func(table string) bool) {
	take := func(table string) bool { return ok == nil || ok(table) }
	if take(models.TableCompanies) {
		p.companies = b.companies
	}
	if take(models.TableDrivers) {
		p.drivers = b.drivers
	}
	if take(models.TableCarTypes) {
		p.carTypes = b.carTypes
	}
	if take(models.TableProjects) {
		p.projects = b.projects
	}
	if take(models.TablePayments) {
		p.payments = b.payments
	}
}

func fetchTable[T any](ctx context.Context, store dispatch.Store, table, userID string, decode func(models.Record) (T, error)) ([]T, error) {
	rows, err := store.Select(ctx, table, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", table, err)
	}
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		v, err := decode(row)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", table, err)
		}
		out = append(out, v)
	}
	return out, nil
}
