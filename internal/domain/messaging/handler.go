package messaging

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/zeelandhospital/api/internal/platform/apperr"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/messages", h.Send)
	api.GET("/messages", h.Thread)
	api.GET("/messages/:id", h.Get)
	api.PUT("/messages/:id", h.Update)
	api.DELETE("/messages/:id", h.Delete)
}

func (h *Handler) Send(c echo.Context) error {
	var req SendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	m, err := h.svc.Send(c.Request().Context(), req.From, req.To, req.Body)
	if err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *Handler) Thread(c echo.Context) error {
	participantID := c.QueryParam("patientId")
	messages, err := h.svc.Thread(c.Request().Context(), participantID)
	if err != nil {
		return apperr.HTTPError(err)
	}
	if messages == nil {
		messages = []*Message{}
	}
	return c.JSON(http.StatusOK, messages)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	m, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	m, err := h.svc.Update(c.Request().Context(), id, req.Body)
	if err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return apperr.HTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"deleted": id.String()})
}
