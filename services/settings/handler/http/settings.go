package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DipakAnap/cablink-backend/internal/utils"
	"github.com/DipakAnap/cablink-backend/services/settings"
)

// SettingsHandler handles HTTP requests for system settings
type SettingsHandler struct {
	settingsUC settings.SettingsUC
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsUC settings.SettingsUC) *SettingsHandler {
	return &SettingsHandler{
		settingsUC: settingsUC,
	}
}

// RegisterRoutes registers setting routes on the given group
func (h *SettingsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListSettings)
	g.GET("/:key", h.GetSetting)
	g.PUT("/:key", h.UpdateSetting)
}

// ListSettings returns all settings
func (h *SettingsHandler) ListSettings(c echo.Context) error {
	items, err := h.settingsUC.ListSettings(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Settings retrieved successfully", items)
}

// GetSetting returns one setting by key
func (h *SettingsHandler) GetSetting(c echo.Context) error {
	key := c.Param("key")
	value, err := h.settingsUC.GetSetting(c.Request().Context(), key)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Setting retrieved successfully", map[string]string{
		"key":   key,
		"value": value,
	})
}

// UpdateSetting writes a setting value
func (h *SettingsHandler) UpdateSetting(c echo.Context) error {
	var req struct {
		Value string `json:"value"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	key := c.Param("key")
	if err := h.settingsUC.UpdateSetting(c.Request().Context(), key, req.Value); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Setting updated successfully", map[string]string{
		"key":   key,
		"value": req.Value,
	})
}
