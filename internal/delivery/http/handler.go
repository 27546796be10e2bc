package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vogiaan1904/smartq-queue/internal/errors"
	"github.com/vogiaan1904/smartq-queue/internal/service"
	"github.com/vogiaan1904/smartq-queue/pkg/logger"
)

type Handler struct {
	bkSvc service.BookingService
	sim   service.Simulator
	l     logger.Logger
}

func NewHandler(bkSvc service.BookingService, sim service.Simulator, l logger.Logger) *Handler {
	return &Handler{
		bkSvc: bkSvc,
		sim:   sim,
		l:     l,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.HealthCheck)

	api := e.Group("/api/v1")

	api.GET("/clinics", h.ListClinics)
	api.GET("/clinics/:id", h.GetClinic)

	q := api.Group("/queue")
	q.POST("/join", h.JoinQueue)
	q.GET("/status", h.GetStatus)
	q.GET("/history", h.GetHistory)
	q.POST("/snooze", h.Snooze, BookingAuth(h.bkSvc))
	q.POST("/cancel", h.Cancel, BookingAuth(h.bkSvc))
	q.POST("/serving", h.AdvanceServing)
}

func (h *Handler) HealthCheck(c echo.Context) error {
	resp := map[string]any{
		"status":  "healthy",
		"service": "smartq-queue",
	}
	if h.sim != nil {
		resp["simulator"] = h.sim.GetStatus()
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListClinics(c echo.Context) error {
	clinics, err := h.bkSvc.ListClinics(c.Request().Context(), c.QueryParam("type"))
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, clinics)
}

func (h *Handler) GetClinic(c echo.Context) error {
	detail, err := h.bkSvc.GetClinic(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, detail)
}

func (h *Handler) JoinQueue(c echo.Context) error {
	var in service.JoinQueueInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if in.ClinicID == "" || in.TransportMode == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "clinic_id and transport_mode are required"})
	}

	out, err := h.bkSvc.JoinQueue(c.Request().Context(), &in)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *Handler) GetStatus(c echo.Context) error {
	out, err := h.bkSvc.GetStatus(c.Request().Context())
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *Handler) GetHistory(c echo.Context) error {
	limit := 0
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid limit"})
	}

	past, err := h.bkSvc.GetHistory(c.Request().Context(), limit)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, past)
}

func (h *Handler) Snooze(c echo.Context) error {
	out, err := h.bkSvc.Snooze(c.Request().Context())
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *Handler) Cancel(c echo.Context) error {
	if err := h.bkSvc.Cancel(c.Request().Context()); err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "booking cancelled"})
}

// AdvanceServing lets clinic staff push the serving position over HTTP when
// the Kafka feed is not available.
func (h *Handler) AdvanceServing(c echo.Context) error {
	var in struct {
		ServingToken int `json:"serving_token"`
	}
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if in.ServingToken <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "serving_token must be positive"})
	}

	if err := h.bkSvc.AdvanceServingToken(c.Request().Context(), in.ServingToken); err != nil {
		return h.respondError(c, err)
	}

	out, err := h.bkSvc.GetStatus(c.Request().Context())
	if err == errors.ErrNoActiveBooking {
		return c.JSON(http.StatusOK, map[string]string{"message": "booking fulfilled"})
	}
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *Handler) respondError(c echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch err {
	case errors.ErrNoActiveBooking, errors.ErrClinicNotFound, errors.ErrDoctorNotFound:
		status = http.StatusNotFound
	case errors.ErrBookingAlreadyActive:
		status = http.StatusConflict
	case errors.ErrInvalidTransportMode:
		status = http.StatusBadRequest
	case service.ErrTokenEmpty, service.ErrTokenInvalid, service.ErrTokenExpired:
		status = http.StatusUnauthorized
	}

	if status == http.StatusInternalServerError {
		h.l.Error("Request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
	}

	return c.JSON(status, map[string]string{"error": err.Error()})
}
