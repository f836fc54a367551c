package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
	"github.com/DipakAnap/cablink-backend/internal/utils"
)

// RegisterRouteRoutes registers scheduled-route routes on the given group
func (h *FleetHandler) RegisterRouteRoutes(g *echo.Group) {
	g.GET("", h.ListRoutes)
	g.POST("", h.CreateRoute)
	g.GET("/:id", h.GetRoute)
	g.PUT("/:id", h.UpdateRoute)
	g.DELETE("/:id", h.DeleteRoute)
}

// CreateRoute handles route scheduling requests
func (h *FleetHandler) CreateRoute(c echo.Context) error {
	var route models.Route
	if err := c.Bind(&route); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.fleetUC.CreateRoute(c.Request().Context(), &route); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Route created successfully", route)
}

// GetRoute handles route retrieval requests
func (h *FleetHandler) GetRoute(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid route ID")
	}

	route, err := h.fleetUC.GetRouteByID(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Route retrieved successfully", route)
}

// ListRoutes handles filtered, paginated route listing
func (h *FleetHandler) ListRoutes(c echo.Context) error {
	page, limit := utils.PageParams(c, 20)

	filter := models.RouteFilter{
		Origin:      c.QueryParam("from"),
		Destination: c.QueryParam("to"),
		Page:        page,
		Limit:       limit,
	}
	if raw := c.QueryParam("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid date, expected YYYY-MM-DD")
		}
		filter.Date = &date
	}

	items, total, err := h.fleetUC.ListRoutes(c.Request().Context(), filter)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Routes retrieved successfully",
		utils.NewPaginated(items, total, page, limit))
}

// UpdateRoute handles route update requests
func (h *FleetHandler) UpdateRoute(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid route ID")
	}

	var route models.Route
	if err := c.Bind(&route); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	route.ID = id

	if err := h.fleetUC.UpdateRoute(c.Request().Context(), &route); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Route updated successfully", route)
}

// DeleteRoute handles route deletion requests
func (h *FleetHandler) DeleteRoute(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid route ID")
	}

	if err := h.fleetUC.DeleteRoute(c.Request().Context(), id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Route deleted successfully", nil)
}
