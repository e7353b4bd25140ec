package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/database"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/models"
	"github.com/piresc/nebengjek-dispatch/services/dispatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*SQLStore, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return NewSQLStore(sqlx.NewDb(mockDB, "pgx")), mock
}

func newSQLiteStore(t *testing.T) *SQLStore {
	db, err := database.NewSQLiteDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := NewSQLStore(db)
	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestSQLStore_Select(t *testing.T) {
	testCases := []struct {
		name       string
		table      string
		mockSetup  func(mock sqlmock.Sqlmock)
		wantErr    error
		assertFunc func(t *testing.T, rows []models.Record)
	}{
		{
			name:  "projects newest first",
			table: models.TableProjects,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM projects WHERE "user_id" = $1 ORDER BY "created_at" DESC`)).
					WithArgs("user-1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "company_id", "price"}).
						AddRow("p2", "user-1", "c1", 120.5).
						AddRow("p1", "user-1", "c1", 80.0))
			},
			assertFunc: func(t *testing.T, rows []models.Record) {
				require.Len(t, rows, 2)
				assert.Equal(t, "p2", rows[0]["id"])
				assert.Equal(t, 120.5, rows[0]["price"])
			},
		},
		{
			name:  "companies by name",
			table: models.TableCompanies,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM companies WHERE "user_id" = $1 ORDER BY "name"`)).
					WithArgs("user-1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
			},
			assertFunc: func(t *testing.T, rows []models.Record) {
				assert.Empty(t, rows)
			},
		},
		{
			name:    "unknown table",
			table:   "users",
			wantErr: dispatch.ErrUnknownTable,
		},
		{
			name:  "query error",
			table: models.TableDrivers,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT").WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, mock := newMockStore(t)
			if tc.mockSetup != nil {
				tc.mockSetup(mock)
			}

			rows, err := store.Select(context.Background(), tc.table, "user-1")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
				tc.assertFunc(t, rows)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQLStore_Insert(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO companies ("address", "id", "name", "phone", "user_id") VALUES ($1, $2, $3, $4, $5) RETURNING *`)).
		WithArgs("Jl. Sudirman", sqlmock.AnyArg(), "Acme", "021", "user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "address", "phone"}).
			AddRow("c1", "user-1", "Acme", "Jl. Sudirman", "021"))

	row, err := store.Insert(context.Background(), models.TableCompanies, "user-1",
		models.Record{"name": "Acme", "address": "Jl. Sudirman", "phone": "021"})
	require.NoError(t, err)
	assert.Equal(t, "c1", row["id"])
	assert.NoError(t, mock.ExpectationsWereMet())

	_, err = store.Insert(context.Background(), models.TableCompanies, "user-1", models.Record{"nickname": "x"})
	assert.ErrorIs(t, err, dispatch.ErrUnknownColumn)
}

func TestSQLStore_Update(t *testing.T) {
	testCases := []struct {
		name      string
		changes   models.Record
		mockSetup func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name:    "updates owned row",
			changes: models.Record{"status": "completed", "price": 90.0},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`UPDATE projects SET "price" = $1, "status" = $2 WHERE "id" = $3 AND "user_id" = $4 RETURNING *`)).
					WithArgs(90.0, "completed", "p1", "user-1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow("p1", "completed"))
			},
		},
		{
			name:    "row of another user",
			changes: models.Record{"status": "completed"},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("UPDATE projects").
					WithArgs("completed", "p1", "user-1").
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			},
			wantErr: dispatch.ErrNotFound,
		},
		{
			name:    "user id is immutable",
			changes: models.Record{"user_id": "user-2"},
			wantErr: dispatch.ErrUnknownColumn,
		},
		{
			name:    "empty changes",
			changes: models.Record{},
			wantErr: dispatch.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, mock := newMockStore(t)
			if tc.mockSetup != nil {
				tc.mockSetup(mock)
			}

			_, err := store.Update(context.Background(), models.TableProjects, "user-1", "p1", tc.changes)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQLStore_DeleteAndCall(t *testing.T) {
	store, mock := newMockStore(t)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM drivers WHERE "id" = $1 AND "user_id" = $2`)).
		WithArgs("d1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM drivers").
		WithArgs("d9", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`SELECT mark_payment_paid($1, $2)`)).
		WithArgs("pay1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, store.Delete(ctx, models.TableDrivers, "user-1", "d1"))
	assert.ErrorIs(t, store.Delete(ctx, models.TableDrivers, "user-1", "d9"), dispatch.ErrNotFound)
	assert.NoError(t, store.Call(ctx, dispatch.ProcMarkPaymentPaid, models.Record{"payment_id": "pay1", "user_id": "user-1"}))
	assert.ErrorIs(t, store.Call(ctx, "drop_everything", nil), dispatch.ErrUnknownProc)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_SQLiteRoundTrip(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	created, err := store.Insert(ctx, models.TableProjects, "user-1", models.Record{
		"company_id": "c1", "status": "active", "description": "Airport", "driver_id": "d1",
		"date": "2999-01-01", "time": "10:00", "passengers": 2, "pickup_location": "CGK",
		"dropoff_location": "Hotel", "car_type_id": "ct1", "price": 150.0, "driver_fee": nil,
		"client_name": "Sari", "client_phone": "0813", "payment_status": "charge", "booking_id": "42",
	})
	require.NoError(t, err)
	id, ok := created["id"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, id)
	assert.Equal(t, "user-1", created["user_id"])
	assert.Nil(t, created["driver_fee"])
	assert.Equal(t, int64(2), created["passengers"])

	_, err = store.Insert(ctx, models.TableProjects, "user-2", models.Record{"date": "2999-01-02", "time": "11:00"})
	require.NoError(t, err)

	rows, err := store.Select(ctx, models.TableProjects, "user-1")
	require.NoError(t, err)
	require.Len(t, rows, 1, "reads are scoped to the user")

	updated, err := store.Update(ctx, models.TableProjects, "user-1", id, models.Record{"status": "completed", "driver_fee": 100.0})
	require.NoError(t, err)
	assert.Equal(t, "completed", updated["status"])
	assert.Equal(t, 100.0, updated["driver_fee"])

	_, err = store.Update(ctx, models.TableProjects, "user-2", id, models.Record{"status": "active"})
	assert.ErrorIs(t, err, dispatch.ErrNotFound)

	require.NoError(t, store.Delete(ctx, models.TableProjects, "user-1", id))
	assert.ErrorIs(t, store.Delete(ctx, models.TableProjects, "user-1", id), dispatch.ErrNotFound)
}

func TestSQLStore_SQLiteTimestamps(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()
	older := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)

	for i, at := range []time.Time{older, newer} {
		_, err := store.Insert(ctx, models.TablePayments, "user-1", models.Record{
			"id": []string{"pay-old", "pay-new"}[i], "driver_id": "d1", "amount": 10.0,
			"status": "pending", "created_at": at, "completed_at": nil,
		})
		require.NoError(t, err)
	}

	rows, err := store.Select(ctx, models.TablePayments, "user-1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "pay-new", rows[0]["id"])
	assert.Equal(t, "2025-06-01T09:00:00.000Z", rows[0]["created_at"])
	assert.Nil(t, rows[0]["completed_at"])

	// SQLite has no stored procedures
	err = store.Call(ctx, dispatch.ProcMarkPaymentPaid, models.Record{"payment_id": "pay-new", "user_id": "user-1"})
	assert.Error(t, err)
}
