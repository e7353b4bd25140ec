package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/database"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(checkers map[string]HealthChecker) *HealthService {
	svc := NewHealthService(logger.NewNopLogger())
	for name, c := range checkers {
		svc.AddChecker(name, c)
	}
	return svc
}

func serve(t *testing.T, svc *HealthService, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	e := echo.New()
	RegisterHealthEndpoints(e, "dispatch-service", "1.0.0", svc)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestCheckAllHealth(t *testing.T) {
	svc := newService(map[string]HealthChecker{
		"database": CheckerFunc(func(context.Context) error { return nil }),
		"redis":    CheckerFunc(func(context.Context) error { return errors.New("connection refused") }),
	})
	svc.SetBreakerStats(func() map[string]string { return map[string]string{"projects": "OPEN"} })

	resp := svc.CheckAllHealth(context.Background())
	assert.Equal(t, StatusUnhealthy, resp.Status)
	assert.Equal(t, StatusHealthy, resp.Dependencies["database"].Status)
	assert.Equal(t, "connection refused", resp.Dependencies["redis"].Error)
	assert.Equal(t, "OPEN", resp.Breakers["projects"])
}

func TestEndpoints(t *testing.T) {
	healthy := newService(map[string]HealthChecker{
		"database": CheckerFunc(func(context.Context) error { return nil }),
	})
	failing := newService(map[string]HealthChecker{
		"nats": CheckerFunc(func(context.Context) error { return errors.New("down") }),
	})

	tests := []struct {
		name       string
		svc        *HealthService
		path       string
		wantStatus int
		wantKey    string
		wantValue  interface{}
	}{
		{name: "ping", svc: healthy, path: "/ping", wantStatus: http.StatusOK, wantKey: "service_name", wantValue: "dispatch-service"},
		{name: "health", svc: healthy, path: "/health", wantStatus: http.StatusOK, wantKey: "status", wantValue: "ok"},
		{name: "live", svc: failing, path: "/health/live", wantStatus: http.StatusOK, wantKey: "status", wantValue: "alive"},
		{name: "ready", svc: healthy, path: "/health/ready", wantStatus: http.StatusOK, wantKey: "status", wantValue: "ready"},
		{name: "not ready", svc: failing, path: "/health/ready", wantStatus: http.StatusServiceUnavailable, wantKey: "status", wantValue: StatusUnhealthy},
		{name: "detailed", svc: healthy, path: "/health/detailed", wantStatus: http.StatusOK, wantKey: "version", wantValue: "1.0.0"},
		{name: "detailed failing", svc: failing, path: "/health/detailed", wantStatus: http.StatusServiceUnavailable, wantKey: "status", wantValue: StatusUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := serve(t, tt.svc, tt.path)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantValue, body[tt.wantKey])
		})
	}
}

func TestDBHealthChecker(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer mockDB.Close()

	mock.ExpectPing()
	checker := NewDBHealthChecker(sqlx.NewDb(mockDB, "pgx"))
	assert.NoError(t, checker.CheckHealth(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("db gone"))
	assert.Error(t, checker.CheckHealth(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())

	assert.NoError(t, NewDBHealthChecker(nil).CheckHealth(context.Background()))
}

func TestRedisHealthChecker(t *testing.T) {
	mr := miniredis.RunT(t)
	client := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	defer client.Close()

	checker := NewRedisHealthChecker(client)
	assert.NoError(t, checker.CheckHealth(context.Background()))

	mr.Close()
	assert.Error(t, checker.CheckHealth(context.Background()))
}

func TestNATSHealthChecker_Nil(t *testing.T) {
	assert.NoError(t, NewNATSHealthChecker(nil).CheckHealth(context.Background()))
}
