package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/DipakAnap/cablink-backend/internal/pkg/models"
	"github.com/DipakAnap/cablink-backend/internal/utils"
	"github.com/DipakAnap/cablink-backend/services/users"
)

// UserHandler handles HTTP requests for user and subscription plan operations
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{
		userUC: userUC,
	}
}

// RegisterRoutes registers user routes on the given group
func (h *UserHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListUsers)
	g.GET("/:id", h.GetUser)
	g.PUT("/:id", h.UpdateUser)
}

// RegisterPlanRoutes registers subscription plan routes on the given group
func (h *UserHandler) RegisterPlanRoutes(g *echo.Group) {
	g.GET("", h.ListPlans)
	g.POST("", h.CreatePlan)
	g.POST("/:id/subscribe", h.Subscribe)
}

// GetUser handles user retrieval requests
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	user, err := h.userUC.GetUserByID(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", user)
}

// ListUsers handles paginated user listing, filterable by role
func (h *UserHandler) ListUsers(c echo.Context) error {
	page, limit := utils.PageParams(c, 20)
	role := c.QueryParam("role")

	items, total, err := h.userUC.ListUsers(c.Request().Context(), role, page, limit)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Users retrieved successfully",
		utils.NewPaginated(items, total, page, limit))
}

// UpdateUser handles profile update requests
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	var user models.User
	if err := c.Bind(&user); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	user.ID = id

	if err := h.userUC.UpdateUser(c.Request().Context(), &user); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "User updated successfully", user)
}

// CreatePlan handles subscription plan creation
func (h *UserHandler) CreatePlan(c echo.Context) error {
	var plan models.SubscriptionPlan
	if err := c.Bind(&plan); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.userUC.CreatePlan(c.Request().Context(), &plan); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Subscription plan created successfully", plan)
}

// ListPlans handles subscription plan listing
func (h *UserHandler) ListPlans(c echo.Context) error {
	plans, err := h.userUC.ListPlans(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Subscription plans retrieved successfully", plans)
}

// Subscribe assigns the plan to a user
func (h *UserHandler) Subscribe(c echo.Context) error {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid plan ID")
	}

	var req struct {
		UserID uuid.UUID `json:"userId"`
	}
	if err := c.Bind(&req); err != nil || req.UserID == uuid.Nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.userUC.SubscribeUser(c.Request().Context(), req.UserID, planID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Subscribed successfully", user)
}
