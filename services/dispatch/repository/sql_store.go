package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/models"
	"github.com/piresc/nebengjek-dispatch/services/dispatch"
	"github.com/piresc/nebengjek-dispatch/services/dispatch/repository/migrations"
)

// sqliteTimeLayout matches the default created_at written by the schema
const sqliteTimeLayout = "2006-01-02T15:04:05.000Z"

type tableSpec struct {
	columns map[string]bool
	orderBy string
}

func columnsOf(orderBy string, columns ...string) tableSpec {
	cols := map[string]bool{"id": true, "user_id": true, "created_at": true}
	for _, c := range columns {
		cols[c] = true
	}
	return tableSpec{columns: cols, orderBy: orderBy}
}

var tables = map[string]tableSpec{
	models.TableCompanies: columnsOf(`"name"`, "name", "address", "phone"),
	models.TableDrivers:   columnsOf(`"name"`, "name", "phone", "license", "status", "total_earnings", "pin"),
	models.TableCarTypes:  columnsOf(`"name"`, "name", "passengers", "luggage", "description"),
	models.TableProjects: columnsOf(`"created_at" DESC`, "company_id", "status", "description", "driver_id", "date", "time",
		"passengers", "pickup_location", "dropoff_location", "car_type_id", "price", "driver_fee",
		"client_name", "client_phone", "payment_status", "booking_id"),
	models.TablePayments: columnsOf(`"created_at" DESC`, "driver_id", "amount", "date", "status", "description", "completed_at"),
}

// procedures lists the positional parameters of each callable procedure
var procedures = map[string][]string{
	dispatch.ProcMarkPaymentPaid: {"payment_id", "user_id"},
}

// SQLStore implements dispatch.Store on PostgreSQL or SQLite through sqlx
type SQLStore struct {
	db     *sqlx.DB
	sqlite bool
}

// NewSQLStore creates a store on db
func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db, sqlite: db.DriverName() == "sqlite"}
}

// Migrate applies the embedded schema for the store's driver
func (s *SQLStore) Migrate(ctx context.Context) error {
	dir := "postgres"
	if s.sqlite {
		dir = "sqlite"
	}
	files, err := fs.Glob(migrations.FS, path.Join(dir, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(files)
	for _, file := range files {
		script, err := fs.ReadFile(migrations.FS, file)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", file, err)
		}
		if _, err := s.db.ExecContext(ctx, string(script)); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", file, err)
		}
	}
	return nil
}

func (s *SQLStore) table(name string) (tableSpec, error) {
	t, ok := tables[name]
	if !ok {
		return tableSpec{}, fmt.Errorf("%w: %s", dispatch.ErrUnknownTable, name)
	}
	return t, nil
}

// columns returns the sorted column names of row, rejecting unknown ones
func (t tableSpec) sortedColumns(table string, row models.Record) ([]string, error) {
	cols := make([]string, 0, len(row))
	for c := range row {
		if !t.columns[c] {
			return nil, fmt.Errorf("%w: %s.%s", dispatch.ErrUnknownColumn, table, c)
		}
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols, nil
}

func (s *SQLStore) arg(v interface{}) interface{} {
	if t, ok := v.(time.Time); ok && s.sqlite {
		return t.UTC().Format(sqliteTimeLayout)
	}
	if t, ok := v.(*time.Time); ok {
		if t == nil {
			return nil
		}
		return s.arg(*t)
	}
	return v
}

func quote(col string) string {
	return `"` + col + `"`
}

// Select returns every row of table owned by userID
func (s *SQLStore) Select(ctx context.Context, table, userID string) ([]models.Record, error) {
	t, err := s.table(table)
	if err != nil {
		return nil, err
	}

	query := s.db.Rebind(fmt.Sprintf(`SELECT * FROM %s WHERE "user_id" = ? ORDER BY %s`, table, t.orderBy))
	rows, err := s.db.QueryxContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select %s: %w", table, err)
	}
	defer rows.Close()

	var out []models.Record
	for rows.Next() {
		row := make(map[string]interface{})
		if err := rows.MapScan(row); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", table, err)
		}
		out = append(out, models.Record(row))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", table, err)
	}
	return out, nil
}

// Insert writes row owned by userID and returns the stored row.
// A missing id is generated.
func (s *SQLStore) Insert(ctx context.Context, table, userID string, row models.Record) (models.Record, error) {
	t, err := s.table(table)
	if err != nil {
		return nil, err
	}

	values := make(models.Record, len(row)+2)
	for k, v := range row {
		values[k] = v
	}
	if id, _ := values["id"].(string); id == "" {
		values["id"] = uuid.NewString()
	}
	values["user_id"] = userID

	cols, err := t.sortedColumns(table, values)
	if err != nil {
		return nil, err
	}
	quoted := make([]string, len(cols))
	marks := make([]string, len(cols))
	args := make([]interface{}, len(cols))
	for i, c := range cols {
		quoted[i] = quote(c)
		marks[i] = "?"
		args[i] = s.arg(values[c])
	}

	query := s.db.Rebind(fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING *`,
		table, strings.Join(quoted, ", "), strings.Join(marks, ", ")))
	return s.queryRow(ctx, table, query, args...)
}

// Update applies changes to the row id owned by userID and returns it
func (s *SQLStore) Update(ctx context.Context, table, userID, id string, changes models.Record) (models.Record, error) {
	t, err := s.table(table)
	if err != nil {
		return nil, err
	}
	if len(changes) == 0 {
		return nil, fmt.Errorf("%w: no columns to update", dispatch.ErrValidation)
	}
	if _, ok := changes["id"]; ok {
		return nil, fmt.Errorf("%w: %s.id is immutable", dispatch.ErrUnknownColumn, table)
	}
	if _, ok := changes["user_id"]; ok {
		return nil, fmt.Errorf("%w: %s.user_id is immutable", dispatch.ErrUnknownColumn, table)
	}

	cols, err := t.sortedColumns(table, changes)
	if err != nil {
		return nil, err
	}
	sets := make([]string, len(cols))
	args := make([]interface{}, 0, len(cols)+2)
	for i, c := range cols {
		sets[i] = quote(c) + " = ?"
		args = append(args, s.arg(changes[c]))
	}
	args = append(args, id, userID)

	query := s.db.Rebind(fmt.Sprintf(`UPDATE %s SET %s WHERE "id" = ? AND "user_id" = ? RETURNING *`,
		table, strings.Join(sets, ", ")))
	return s.queryRow(ctx, table, query, args...)
}

func (s *SQLStore) queryRow(ctx context.Context, table, query string, args ...interface{}) (models.Record, error) {
	row := make(map[string]interface{})
	err := s.db.QueryRowxContext(ctx, query, args...).MapScan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", dispatch.ErrNotFound, table)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", table, err)
	}
	return models.Record(row), nil
}

// Delete removes the row id owned by userID
func (s *SQLStore) Delete(ctx context.Context, table, userID, id string) error {
	if _, err := s.table(table); err != nil {
		return err
	}

	query := s.db.Rebind(fmt.Sprintf(`DELETE FROM %s WHERE "id" = ? AND "user_id" = ?`, table))
	res, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s/%s", dispatch.ErrNotFound, table, id)
	}
	return nil
}

// Call invokes a stored procedure. SQLite has none, so calls fail there
// and callers take their fallback path.
func (s *SQLStore) Call(ctx context.Context, procedure string, args models.Record) error {
	params, ok := procedures[procedure]
	if !ok {
		return fmt.Errorf("%w: %s", dispatch.ErrUnknownProc, procedure)
	}

	marks := make([]string, len(params))
	values := make([]interface{}, len(params))
	for i, p := range params {
		marks[i] = "?"
		values[i] = s.arg(args[p])
	}

	query := s.db.Rebind(fmt.Sprintf(`SELECT %s(%s)`, procedure, strings.Join(marks, ", ")))
	if _, err := s.db.ExecContext(ctx, query, values...); err != nil {
		return fmt.Errorf("failed to call %s: %w", procedure, err)
	}
	return nil
}
