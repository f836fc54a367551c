package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
	"github.com/DipakAnap/cablink-backend/internal/utils"
	"github.com/DipakAnap/cablink-backend/services/fleet"
)

// FleetHandler handles HTTP requests for cars, routes and expenses
type FleetHandler struct {
	fleetUC fleet.FleetUC
}

// NewFleetHandler creates a new fleet handler
func NewFleetHandler(fleetUC fleet.FleetUC) *FleetHandler {
	return &FleetHandler{
		fleetUC: fleetUC,
	}
}

// RegisterCarRoutes registers car routes on the given group
func (h *FleetHandler) RegisterCarRoutes(g *echo.Group) {
	g.GET("", h.ListCars)
	g.POST("", h.CreateCar)
	g.GET("/:id", h.GetCar)
	g.PUT("/:id", h.UpdateCar)
	g.DELETE("/:id", h.DeleteCar)
	g.GET("/:id/expenses", h.ListExpenses)
	g.POST("/:id/expenses", h.AddExpense)
}

// CreateCar handles car registration requests
func (h *FleetHandler) CreateCar(c echo.Context) error {
	var car models.Car
	if err := c.Bind(&car); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.fleetUC.CreateCar(c.Request().Context(), &car); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Car created successfully", car)
}

// GetCar handles car retrieval requests
func (h *FleetHandler) GetCar(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid car ID")
	}

	car, err := h.fleetUC.GetCarByID(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Car retrieved successfully", car)
}

// ListCars handles paginated car listing
func (h *FleetHandler) ListCars(c echo.Context) error {
	page, limit := utils.PageParams(c, 20)
	status := c.QueryParam("status")

	items, total, err := h.fleetUC.ListCars(c.Request().Context(), status, page, limit)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Cars retrieved successfully",
		utils.NewPaginated(items, total, page, limit))
}

// UpdateCar handles car update requests
func (h *FleetHandler) UpdateCar(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid car ID")
	}

	var car models.Car
	if err := c.Bind(&car); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	car.ID = id

	if err := h.fleetUC.UpdateCar(c.Request().Context(), &car); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Car updated successfully", car)
}

// DeleteCar handles car deletion requests
func (h *FleetHandler) DeleteCar(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid car ID")
	}

	if err := h.fleetUC.DeleteCar(c.Request().Context(), id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Car deleted successfully", nil)
}

// AddExpense records an expense against a car
func (h *FleetHandler) AddExpense(c echo.Context) error {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid car ID")
	}

	var expense models.Expense
	if err := c.Bind(&expense); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	expense.CarID = carID

	if err := h.fleetUC.AddExpense(c.Request().Context(), &expense); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Expense recorded successfully", expense)
}

// ListExpenses returns a car's expenses
func (h *FleetHandler) ListExpenses(c echo.Context) error {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid car ID")
	}

	expenses, err := h.fleetUC.ListExpenses(c.Request().Context(), carID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Expenses retrieved successfully", expenses)
}
