package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	awardUC "github.com/khoahotran/portfolio-api/internal/application/usecase/award"
)

type AwardHandler struct {
	awards *awardUC.AwardUseCase
}

func NewAwardHandler(uc *awardUC.AwardUseCase) *AwardHandler {
	return &AwardHandler{awards: uc}
}

func (h *AwardHandler) List(c *gin.Context) {
	items, err := h.awards.List(c.Request.Context())
	if err != nil {
		fail(c, "Failed to fetch awards", err)
		return
	}
	c.JSON(http.StatusOK, mapAll(items, ToAwardDTO))
}

func (h *AwardHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		fail(c, "Failed to fetch award", err)
		return
	}
	a, err := h.awards.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, "Failed to fetch award", err)
		return
	}
	c.JSON(http.StatusOK, ToAwardDTO(a))
}

func (h *AwardHandler) Create(c *gin.Context) {
	var req AwardRequest
	if err := bindBody(c, &req); err != nil {
		fail(c, "Failed to create award", err)
		return
	}
	a, err := h.awards.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		fail(c, "Failed to create award", err)
		return
	}
	c.JSON(http.StatusOK, ToAwardDTO(a))
}

func (h *AwardHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		fail(c, "Failed to update award", err)
		return
	}
	var req AwardRequest
	if err := bindBody(c, &req); err != nil {
		fail(c, "Failed to update award", err)
		return
	}
	a, err := h.awards.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		fail(c, "Failed to update award", err)
		return
	}
	c.JSON(http.StatusOK, ToAwardDTO(a))
}

func (h *AwardHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		fail(c, "Failed to delete award", err)
		return
	}
	if err := h.awards.Delete(c.Request.Context(), id); err != nil {
		fail(c, "Failed to delete award", err)
		return
	}
	deleted(c)
}
