package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	educationUC "github.com/khoahotran/portfolio-api/internal/application/usecase/education"
)

type EducationHandler struct {
	education *educationUC.EducationUseCase
}

func NewEducationHandler(uc *educationUC.EducationUseCase) *EducationHandler {
	return &EducationHandler{education: uc}
}

func (h *EducationHandler) List(c *gin.Context) {
	items, err := h.education.List(c.Request.Context())
	if err != nil {
		fail(c, "Failed to fetch education", err)
		return
	}
	c.JSON(http.StatusOK, mapAll(items, ToEducationDTO))
}

func (h *EducationHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		fail(c, "Failed to fetch education", err)
		return
	}
	item, err := h.education.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, "Failed to fetch education", err)
		return
	}
	c.JSON(http.StatusOK, ToEducationDTO(item))
}

func (h *EducationHandler) Create(c *gin.Context) {
	var req EducationRequest
	if err := bindBody(c, &req); err != nil {
		fail(c, "Failed to create education", err)
		return
	}
	item, err := h.education.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		fail(c, "Failed to create education", err)
		return
	}
	c.JSON(http.StatusOK, ToEducationDTO(item))
}

func (h *EducationHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		fail(c, "Failed to update education", err)
		return
	}
	var req EducationRequest
	if err := bindBody(c, &req); err != nil {
		fail(c, "Failed to update education", err)
		return
	}
	item, err := h.education.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		fail(c, "Failed to update education", err)
		return
	}
	c.JSON(http.StatusOK, ToEducationDTO(item))
}

func (h *EducationHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		fail(c, "Failed to delete education", err)
		return
	}
	if err := h.education.Delete(c.Request.Context(), id); err != nil {
		fail(c, "Failed to delete education", err)
		return
	}
	deleted(c)
}
