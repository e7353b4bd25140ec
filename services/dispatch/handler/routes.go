package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/websocket"
	"github.com/piresc/nebengjek-dispatch/services/dispatch"
	httpHandler "github.com/piresc/nebengjek-dispatch/services/dispatch/handler/http"
	wsHandler "github.com/piresc/nebengjek-dispatch/services/dispatch/handler/websocket"
)

// Handler combines all handlers for the dispatch service
type Handler struct {
	dispatchHTTP *httpHandler.DispatchHandler
	stateWS      *wsHandler.StateHandler
}

// NewHandler creates a new combined handler
func NewHandler(registry dispatch.Registry, sessions dispatch.SessionRepo, wsManager *websocket.Manager) *Handler {
	return &Handler{
		dispatchHTTP: httpHandler.NewDispatchHandler(registry, sessions, wsManager),
		stateWS:      wsHandler.NewStateHandler(registry, wsManager),
	}
}

// RegisterRoutes registers all HTTP routes under /v1 behind auth
func (h *Handler) RegisterRoutes(e *echo.Echo, auth ...echo.MiddlewareFunc) {
	v1 := e.Group("/v1", auth...)

	v1.GET("/state", h.dispatchHTTP.GetState)
	v1.POST("/refresh", h.dispatchHTTP.Refresh)
	v1.DELETE("/error", h.dispatchHTTP.ClearError)
	v1.POST("/logout", h.dispatchHTTP.Logout)
	v1.GET("/summary", h.dispatchHTTP.GetSummary)
	v1.GET("/ws", h.stateWS.Stream)

	companies := v1.Group("/companies")
	companies.GET("", h.dispatchHTTP.ListCompanies)
	companies.POST("", h.dispatchHTTP.CreateCompany)
	companies.PATCH("/:id", h.dispatchHTTP.UpdateCompany)
	companies.DELETE("/:id", h.dispatchHTTP.DeleteCompany)

	drivers := v1.Group("/drivers")
	drivers.GET("", h.dispatchHTTP.ListDrivers)
	drivers.POST("", h.dispatchHTTP.CreateDriver)
	drivers.PATCH("/:id", h.dispatchHTTP.UpdateDriver)
	drivers.DELETE("/:id", h.dispatchHTTP.DeleteDriver)

	carTypes := v1.Group("/car-types")
	carTypes.GET("", h.dispatchHTTP.ListCarTypes)
	carTypes.POST("", h.dispatchHTTP.CreateCarType)
	carTypes.PATCH("/:id", h.dispatchHTTP.UpdateCarType)
	carTypes.DELETE("/:id", h.dispatchHTTP.DeleteCarType)

	projects := v1.Group("/projects")
	projects.GET("", h.dispatchHTTP.ListProjects)
	projects.GET("/view", h.dispatchHTTP.ListProjectViews)
	projects.POST("", h.dispatchHTTP.CreateProject)
	projects.PATCH("/:id", h.dispatchHTTP.UpdateProject)
	projects.DELETE("/:id", h.dispatchHTTP.DeleteProject)

	payments := v1.Group("/payments")
	payments.GET("", h.dispatchHTTP.ListPayments)
	payments.POST("", h.dispatchHTTP.CreatePayment)
	payments.PATCH("/:id", h.dispatchHTTP.UpdatePayment)
	payments.DELETE("/:id", h.dispatchHTTP.DeletePayment)
	payments.POST("/:id/complete", h.dispatchHTTP.CompletePayment)
}
