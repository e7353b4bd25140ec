package usecase

import (
	"testing"
	"time"

	"github.com/piresc/nebengjek-dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestProjectTranslation_RoundTrip(t *testing.T) {
	testCases := []struct {
		name    string
		project models.Project
	}{
		{
			name: "all fields",
			project: models.Project{
				ID: "p1", Company: "c1", Status: models.ProjectStatusActive, Description: "Airport",
				Driver: "d1", Date: "2999-01-01", Time: "10:00", Passengers: 3,
				PickupLocation: "CGK", DropoffLocation: "Hotel", CarType: "ct1", Price: 250.5,
				DriverFee: ptr(180.0), ClientName: "Sari", ClientPhone: "0813",
				PaymentStatus: models.ProjectPaymentPaid, BookingID: "987654321",
			},
		},
		{
			name: "unset optionals",
			project: models.Project{
				Company: models.NotSpecified, Status: models.ProjectStatusCompleted,
				Driver: models.NotSpecified, CarType: models.NotSpecified,
				PaymentStatus: models.ProjectPaymentCharge,
			},
		},
		{
			name:    "zero driver fee is kept",
			project: models.Project{ID: "p2", DriverFee: ptr(0.0)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := recordToProject(projectToRecord(tc.project))
			require.NoError(t, err)
			assert.Equal(t, tc.project, got)
		})
	}
}

func TestProjectToRecord_StoreNames(t *testing.T) {
	r := projectToRecord(models.Project{
		ID: "p1", Company: "c1", Driver: "d1", CarType: "ct1",
		PickupLocation: "A", DropoffLocation: "B", ClientName: "Sari", ClientPhone: "0813",
		PaymentStatus: models.ProjectPaymentCharge, BookingID: "1",
	})

	assert.Equal(t, "c1", r["company_id"])
	assert.Equal(t, "d1", r["driver_id"])
	assert.Equal(t, "ct1", r["car_type_id"])
	assert.Equal(t, "A", r["pickup_location"])
	assert.Equal(t, "B", r["dropoff_location"])
	assert.Equal(t, "Sari", r["client_name"])
	assert.Equal(t, "0813", r["client_phone"])
	assert.Equal(t, "charge", r["payment_status"])
	assert.Equal(t, "1", r["booking_id"])
	assert.NotContains(t, r, "company")
	assert.NotContains(t, r, "pickupLocation")

	_, hasID := projectToRecord(models.Project{})[colID]
	assert.False(t, hasID)
}

func TestEntityTranslation_RoundTrip(t *testing.T) {
	completed := time.Date(2025, 6, 2, 8, 30, 0, 0, time.UTC)

	company := models.Company{ID: "c1", Name: "Acme", Address: "Main St", Phone: "555"}
	gotCompany, err := recordToCompany(companyToRecord(company))
	require.NoError(t, err)
	assert.Equal(t, company, gotCompany)

	driver := models.Driver{ID: "d1", Name: "Budi", Phone: "0812", License: "B1", Status: models.DriverStatusBusy,
		TotalEarnings: ptr(12.5), PIN: ptr("")}
	gotDriver, err := recordToDriver(driverToRecord(driver))
	require.NoError(t, err)
	assert.Equal(t, driver, gotDriver)

	carType := models.CarType{ID: "ct1", Name: "MPV", Passengers: 6, Luggage: 3, Description: "Family"}
	gotCarType, err := recordToCarType(carTypeToRecord(carType))
	require.NoError(t, err)
	assert.Equal(t, carType, gotCarType)

	payment := models.Payment{ID: "pay1", DriverID: "d1", Amount: 50, Date: "2025-06-01",
		Status: models.PaymentStatusPaid, Description: "Trip", CreatedAt: completed.Add(-time.Hour), CompletedAt: &completed}
	gotPayment, err := recordToPayment(paymentToRecord(payment))
	require.NoError(t, err)
	assert.Equal(t, payment, gotPayment)
}

func TestRecordDecoding_StoreValueTypes(t *testing.T) {
	// values as they come back from the REST API (JSON) and the SQL drivers
	p, err := recordToProject(models.Record{
		"id":          []byte("p1"),
		"passengers":  float64(4),
		"price":       "120.50",
		"driver_fee":  int64(90),
		"date":        time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		"time":        "09:30",
		"booking_id":  int64(123),
		"unknown_col": "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, 4, p.Passengers)
	assert.Equal(t, 120.5, p.Price)
	assert.Equal(t, 90.0, *p.DriverFee)
	assert.Equal(t, "2025-07-01", p.Date)
	assert.Equal(t, "123", p.BookingID)

	pm, err := recordToPayment(models.Record{"created_at": "2025-06-01T12:00:00Z", "completed_at": "2025-06-01 13:00:00.5+00:00"})
	require.NoError(t, err)
	assert.True(t, pm.CreatedAt.Equal(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)))
	require.NotNil(t, pm.CompletedAt)
	assert.True(t, pm.CompletedAt.Equal(time.Date(2025, 6, 1, 13, 0, 0, 5e8, time.UTC)))

	_, err = recordToCarType(models.Record{"passengers": "many"})
	assert.ErrorContains(t, err, "column passengers")
}

func TestPatchToRecord_OnlySetFields(t *testing.T) {
	status := models.ProjectStatusCompleted
	assert.Equal(t, models.Record{"status": "completed", "driver_fee": 10.0},
		projectPatchToRecord(models.ProjectPatch{Status: &status, DriverFee: ptr(10.0)}))
	assert.Empty(t, companyPatchToRecord(models.CompanyPatch{}))
	assert.Equal(t, models.Record{"total_earnings": 1.0}, driverPatchToRecord(models.DriverPatch{TotalEarnings: ptr(1.0)}))
	assert.Equal(t, models.Record{"luggage": 2}, carTypePatchToRecord(models.CarTypePatch{Luggage: ptr(2)}))
	assert.Equal(t, models.Record{"driver_id": "d2"}, paymentPatchToRecord(models.PaymentPatch{DriverID: ptr("d2")}))
}
