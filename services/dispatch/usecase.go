package dispatch

import (
	"context"

	"github.com/piresc/nebengjek-dispatch/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/nebengjek-dispatch/services/dispatch DataProvider,Registry

// DataProvider owns the companies, drivers, car types, projects and payments
// of one user identity. Mutations write through the Store first and only
// then touch local state. Failures are recorded on the shared error field;
// the returned error carries the same failure for Go callers.
type DataProvider interface {
	// identity
	SetIdentity(ctx context.Context, userID string) error
	ClearIdentity()
	Refresh(ctx context.Context) error

	// observable state
	State() models.ProviderState
	Snapshot() models.Snapshot
	Subscribe() (<-chan models.ProviderState, func())
	ClearError()

	Companies() []models.Company
	Drivers() []models.Driver
	CarTypes() []models.CarType
	Projects() []models.Project
	Payments() []models.Payment

	AddCompany(ctx context.Context, company models.Company) (*models.Company, error)
	UpdateCompany(ctx context.Context, id string, patch models.CompanyPatch) (*models.Company, error)
	DeleteCompany(ctx context.Context, id string) error

	AddDriver(ctx context.Context, driver models.Driver) (*models.Driver, error)
	UpdateDriver(ctx context.Context, id string, patch models.DriverPatch) (*models.Driver, error)
	DeleteDriver(ctx context.Context, id string) error

	AddCarType(ctx context.Context, carType models.CarType) (*models.CarType, error)
	UpdateCarType(ctx context.Context, id string, patch models.CarTypePatch) (*models.CarType, error)
	DeleteCarType(ctx context.Context, id string) error

	AddProject(ctx context.Context, project models.Project) (*models.Project, error)
	UpdateProject(ctx context.Context, id string, patch models.ProjectPatch) (*models.Project, error)
	DeleteProject(ctx context.Context, id string) error

	AddPayment(ctx context.Context, payment models.Payment) (*models.Payment, error)
	UpdatePayment(ctx context.Context, id string, patch models.PaymentPatch) (*models.Payment, error)
	DeletePayment(ctx context.Context, id string) error
	CompletePayment(ctx context.Context, id string) (*models.Payment, error)

	Close()
}

// Registry keeps one DataProvider per signed-in user
type Registry interface {
	Get(ctx context.Context, userID string) DataProvider
	Logout(userID string)
	Close()
}
