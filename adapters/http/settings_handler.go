package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	settingsUC "github.com/khoahotran/portfolio-api/internal/application/usecase/settings"
)

type SettingsHandler struct {
	settings *settingsUC.SettingsUseCase
}

func NewSettingsHandler(uc *settingsUC.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{settings: uc}
}

// Get answers {} until settings are first saved.
func (h *SettingsHandler) Get(c *gin.Context) {
	s, found, err := h.settings.Get(c.Request.Context())
	if err != nil {
		fail(c, "Failed to fetch settings", err)
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, ToSettingsDTO(s))
}

func (h *SettingsHandler) Replace(c *gin.Context) {
	var req SettingsRequest
	if err := bindBody(c, &req); err != nil {
		fail(c, "Failed to save settings", err)
		return
	}
	s, err := h.settings.Replace(c.Request.Context(), req.ToInput())
	if err != nil {
		fail(c, "Failed to save settings", err)
		return
	}
	c.JSON(http.StatusOK, ToSettingsDTO(s))
}
