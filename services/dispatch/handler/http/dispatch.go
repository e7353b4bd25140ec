package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/logger"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/middleware"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/models"
	"github.com/piresc/nebengjek-dispatch/internal/utils"
	"github.com/piresc/nebengjek-dispatch/services/dispatch"
)

// SessionCloser closes the live connections of a user at logout
type SessionCloser interface {
	CloseUser(userID string)
}

// DispatchHandler handles HTTP requests against the caller's data provider
type DispatchHandler struct {
	registry dispatch.Registry
	sessions dispatch.SessionRepo
	streams  SessionCloser
	now      func() time.Time
}

// NewDispatchHandler creates a new dispatch HTTP handler. sessions and
// streams may be nil.
func NewDispatchHandler(registry dispatch.Registry, sessions dispatch.SessionRepo, streams SessionCloser) *DispatchHandler {
	return &DispatchHandler{
		registry: registry,
		sessions: sessions,
		streams:  streams,
		now:      time.Now,
	}
}

func (h *DispatchHandler) provider(c echo.Context) dispatch.DataProvider {
	return h.registry.Get(c.Request().Context(), middleware.UserID(c))
}

// failure maps a provider error to a response carrying the message the
// provider recorded on its shared error field
func failure(c echo.Context, err error) error {
	msg := err.Error()
	var opErr *dispatch.OpError
	if errors.As(err, &opErr) {
		msg = opErr.Message
	}

	switch {
	case errors.Is(err, dispatch.ErrNoIdentity):
		return utils.UnauthorizedResponse(c, msg)
	case errors.Is(err, dispatch.ErrValidation):
		return utils.UnprocessableEntityResponse(c, msg)
	case errors.Is(err, dispatch.ErrNotFound):
		return utils.NotFoundResponse(c, msg)
	default:
		logger.Error("Dispatch operation failed",
			logger.String("user_id", middleware.UserID(c)),
			logger.String("path", c.Path()),
			logger.Err(err))
		return utils.BadGatewayResponse(c, msg)
	}
}

func create[T any](h *DispatchHandler, c echo.Context, message string,
	add func(dispatch.DataProvider, context.Context, T) (*T, error)) error {
	var in T
	if err := c.Bind(&in); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	out, err := add(h.provider(c), c.Request().Context(), in)
	if err != nil {
		return failure(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, message, out)
}

func update[T, P any](h *DispatchHandler, c echo.Context, message string,
	patch func(dispatch.DataProvider, context.Context, string, P) (*T, error)) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "ID is required")
	}
	var in P
	if err := c.Bind(&in); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	out, err := patch(h.provider(c), c.Request().Context(), id, in)
	if err != nil {
		return failure(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, message, out)
}

func remove(h *DispatchHandler, c echo.Context, message string,
	del func(dispatch.DataProvider, context.Context, string) error) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "ID is required")
	}
	if err := del(h.provider(c), c.Request().Context(), id); err != nil {
		return failure(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, message, nil)
}

// GetState returns everything the caller's provider holds
func (h *DispatchHandler) GetState(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", h.provider(c).Snapshot())
}

// Refresh re-fetches all five collections
func (h *DispatchHandler) Refresh(c echo.Context) error {
	p := h.provider(c)
	if err := p.Refresh(c.Request().Context()); err != nil {
		return failure(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Data refreshed", p.State())
}

// ClearError dismisses the shared error
func (h *DispatchHandler) ClearError(c echo.Context) error {
	p := h.provider(c)
	p.ClearError()
	return utils.SuccessResponse(c, http.StatusOK, "", p.State())
}

// Logout drops the caller's provider, revokes the token and closes the
// caller's state streams
func (h *DispatchHandler) Logout(c echo.Context) error {
	userID := middleware.UserID(c)
	h.registry.Logout(userID)

	if claims := middleware.Claims(c); claims != nil && h.sessions != nil {
		if err := h.sessions.RevokeToken(c.Request().Context(), claims.TokenID(), claims.TTL(h.now())); err != nil {
			logger.Error("Failed to revoke token",
				logger.String("user_id", userID),
				logger.Err(err))
			return utils.InternalServerErrorResponse(c, "Failed to revoke token")
		}
	}
	if h.streams != nil {
		h.streams.CloseUser(userID)
	}

	logger.Info("User logged out", logger.String("user_id", userID))
	return utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

// ListCompanies returns the caller's companies
func (h *DispatchHandler) ListCompanies(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", h.provider(c).Companies())
}

// CreateCompany adds a company
func (h *DispatchHandler) CreateCompany(c echo.Context) error {
	return create(h, c, "Company created", dispatch.DataProvider.AddCompany)
}

// UpdateCompany patches a company
func (h *DispatchHandler) UpdateCompany(c echo.Context) error {
	return update(h, c, "Company updated", dispatch.DataProvider.UpdateCompany)
}

// DeleteCompany removes a company
func (h *DispatchHandler) DeleteCompany(c echo.Context) error {
	return remove(h, c, "Company deleted", dispatch.DataProvider.DeleteCompany)
}

// ListDrivers returns the caller's drivers
func (h *DispatchHandler) ListDrivers(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", h.provider(c).Drivers())
}

// CreateDriver adds a driver
func (h *DispatchHandler) CreateDriver(c echo.Context) error {
	return create(h, c, "Driver created", dispatch.DataProvider.AddDriver)
}

// UpdateDriver patches a driver
func (h *DispatchHandler) UpdateDriver(c echo.Context) error {
	return update(h, c, "Driver updated", dispatch.DataProvider.UpdateDriver)
}

// DeleteDriver removes a driver
func (h *DispatchHandler) DeleteDriver(c echo.Context) error {
	return remove(h, c, "Driver deleted", dispatch.DataProvider.DeleteDriver)
}

// ListCarTypes returns the caller's car types
func (h *DispatchHandler) ListCarTypes(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", h.provider(c).CarTypes())
}

// CreateCarType adds a car type
func (h *DispatchHandler) CreateCarType(c echo.Context) error {
	return create(h, c, "Car type created", dispatch.DataProvider.AddCarType)
}

// UpdateCarType patches a car type
func (h *DispatchHandler) UpdateCarType(c echo.Context) error {
	return update(h, c, "Car type updated", dispatch.DataProvider.UpdateCarType)
}

// DeleteCarType removes a car type
func (h *DispatchHandler) DeleteCarType(c echo.Context) error {
	return remove(h, c, "Car type deleted", dispatch.DataProvider.DeleteCarType)
}

// ListProjects returns the caller's projects, newest first
func (h *DispatchHandler) ListProjects(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", h.provider(c).Projects())
}

// ListProjectViews returns projects with resolved display names
func (h *DispatchHandler) ListProjectViews(c echo.Context) error {
	s := h.provider(c).Snapshot()
	views := models.ResolveProjectViews(s.Projects, s.Companies, s.Drivers, s.CarTypes)
	return utils.SuccessResponse(c, http.StatusOK, "", views)
}

// CreateProject adds a project scheduled in the future
func (h *DispatchHandler) CreateProject(c echo.Context) error {
	return create(h, c, "Project created", dispatch.DataProvider.AddProject)
}

// UpdateProject patches a project
func (h *DispatchHandler) UpdateProject(c echo.Context) error {
	return update(h, c, "Project updated", dispatch.DataProvider.UpdateProject)
}

// DeleteProject removes a project
func (h *DispatchHandler) DeleteProject(c echo.Context) error {
	return remove(h, c, "Project deleted", dispatch.DataProvider.DeleteProject)
}

// ListPayments returns the caller's payments, newest first
func (h *DispatchHandler) ListPayments(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", h.provider(c).Payments())
}

// CreatePayment adds a payment
func (h *DispatchHandler) CreatePayment(c echo.Context) error {
	return create(h, c, "Payment created", dispatch.DataProvider.AddPayment)
}

// UpdatePayment patches a payment
func (h *DispatchHandler) UpdatePayment(c echo.Context) error {
	return update(h, c, "Payment updated", dispatch.DataProvider.UpdatePayment)
}

// DeletePayment removes a payment
func (h *DispatchHandler) DeletePayment(c echo.Context) error {
	return remove(h, c, "Payment deleted", dispatch.DataProvider.DeletePayment)
}

// CompletePayment marks a payment paid and credits its driver
func (h *DispatchHandler) CompletePayment(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "ID is required")
	}
	payment, err := h.provider(c).CompletePayment(c.Request().Context(), id)
	if err != nil {
		return failure(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payment completed", payment)
}

// GetSummary returns the revenue dashboard totals
func (h *DispatchHandler) GetSummary(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", models.Summarize(h.provider(c).Snapshot()))
}
