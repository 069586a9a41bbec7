package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/paintconnect/storefront/internal/logging"
	"github.com/paintconnect/storefront/internal/models"
	"github.com/paintconnect/storefront/internal/service"
)

type SettingsHandler struct {
	Svc *service.SettingsService
}

func (h *SettingsHandler) GetSettings(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "settings.get")

	setting, err := h.Svc.GetSettings(ctx)
	if err != nil {
		l.Error("get_settings_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot load settings")
	}

	return c.JSON(http.StatusOK, setting)
}

func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "settings.update")

	var req models.Setting
	if err := c.Bind(&req); err != nil {
		l.Warn("update_settings_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	setting, err := h.Svc.UpdateSettings(ctx, &req)
	if err != nil {
		l.Error("update_settings_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot save settings")
	}

	l.Info("update_settings_success")
	return c.JSON(http.StatusOK, setting)
}
