package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	skillUC "github.com/khoahotran/portfolio-api/internal/application/usecase/skill"
)

type SkillHandler struct {
	skills *skillUC.SkillUseCase
}

func NewSkillHandler(uc *skillUC.SkillUseCase) *SkillHandler {
	return &SkillHandler{skills: uc}
}

// List accepts an optional ?category= filter.
func (h *SkillHandler) List(c *gin.Context) {
	items, err := h.skills.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		fail(c, "Failed to fetch skills", err)
		return
	}
	c.JSON(http.StatusOK, mapAll(items, ToSkillDTO))
}

func (h *SkillHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		fail(c, "Failed to fetch skill", err)
		return
	}
	item, err := h.skills.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, "Failed to fetch skill", err)
		return
	}
	c.JSON(http.StatusOK, ToSkillDTO(item))
}

func (h *SkillHandler) Create(c *gin.Context) {
	var req SkillRequest
	if err := bindBody(c, &req); err != nil {
		fail(c, "Failed to create skill", err)
		return
	}
	item, err := h.skills.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		fail(c, "Failed to create skill", err)
		return
	}
	c.JSON(http.StatusOK, ToSkillDTO(item))
}

func (h *SkillHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		fail(c, "Failed to update skill", err)
		return
	}
	var req SkillRequest
	if err := bindBody(c, &req); err != nil {
		fail(c, "Failed to update skill", err)
		return
	}
	item, err := h.skills.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		fail(c, "Failed to update skill", err)
		return
	}
	c.JSON(http.StatusOK, ToSkillDTO(item))
}

func (h *SkillHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		fail(c, "Failed to delete skill", err)
		return
	}
	if err := h.skills.Delete(c.Request.Context(), id); err != nil {
		fail(c, "Failed to delete skill", err)
		return
	}
	deleted(c)
}
