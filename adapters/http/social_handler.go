package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	socialUC "github.com/khoahotran/portfolio-api/internal/application/usecase/social"
)

type SocialLinkHandler struct {
	links *socialUC.SocialLinkUseCase
}

func NewSocialLinkHandler(uc *socialUC.SocialLinkUseCase) *SocialLinkHandler {
	return &SocialLinkHandler{links: uc}
}

func (h *SocialLinkHandler) List(c *gin.Context) {
	items, err := h.links.List(c.Request.Context())
	if err != nil {
		fail(c, "Failed to fetch social links", err)
		return
	}
	c.JSON(http.StatusOK, mapAll(items, ToSocialLinkDTO))
}

func (h *SocialLinkHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		fail(c, "Failed to fetch social link", err)
		return
	}
	item, err := h.links.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, "Failed to fetch social link", err)
		return
	}
	c.JSON(http.StatusOK, ToSocialLinkDTO(item))
}

func (h *SocialLinkHandler) Create(c *gin.Context) {
	var req SocialLinkRequest
	if err := bindBody(c, &req); err != nil {
		fail(c, "Failed to create social link", err)
		return
	}
	item, err := h.links.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		fail(c, "Failed to create social link", err)
		return
	}
	c.JSON(http.StatusOK, ToSocialLinkDTO(item))
}

func (h *SocialLinkHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		fail(c, "Failed to update social link", err)
		return
	}
	var req SocialLinkRequest
	if err := bindBody(c, &req); err != nil {
		fail(c, "Failed to update social link", err)
		return
	}
	item, err := h.links.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		fail(c, "Failed to update social link", err)
		return
	}
	c.JSON(http.StatusOK, ToSocialLinkDTO(item))
}

func (h *SocialLinkHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		fail(c, "Failed to delete social link", err)
		return
	}
	if err := h.links.Delete(c.Request.Context(), id); err != nil {
		fail(c, "Failed to delete social link", err)
		return
	}
	deleted(c)
}
