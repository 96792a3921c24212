package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	experienceUC "github.com/khoahotran/portfolio-api/internal/application/usecase/experience"
)

type ExperienceHandler struct {
	experiences *experienceUC.ExperienceUseCase
}

func NewExperienceHandler(uc *experienceUC.ExperienceUseCase) *ExperienceHandler {
	return &ExperienceHandler{experiences: uc}
}

// List returns experiences with their positions embedded.
func (h *ExperienceHandler) List(c *gin.Context) {
	items, err := h.experiences.List(c.Request.Context())
	if err != nil {
		fail(c, "Failed to fetch experiences", err)
		return
	}
	c.JSON(http.StatusOK, mapAll(items, ToExperienceWithPositionsDTO))
}

func (h *ExperienceHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		fail(c, "Failed to fetch experience", err)
		return
	}
	item, err := h.experiences.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, "Failed to fetch experience", err)
		return
	}
	c.JSON(http.StatusOK, ToExperienceWithPositionsDTO(item))
}

func (h *ExperienceHandler) Create(c *gin.Context) {
	var req ExperienceRequest
	if err := bindBody(c, &req); err != nil {
		fail(c, "Failed to create experience", err)
		return
	}
	item, err := h.experiences.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		fail(c, "Failed to create experience", err)
		return
	}
	c.JSON(http.StatusOK, ToExperienceDTO(item))
}

func (h *ExperienceHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		fail(c, "Failed to update experience", err)
		return
	}
	var req ExperienceRequest
	if err := bindBody(c, &req); err != nil {
		fail(c, "Failed to update experience", err)
		return
	}
	item, err := h.experiences.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		fail(c, "Failed to update experience", err)
		return
	}
	c.JSON(http.StatusOK, ToExperienceDTO(item))
}

func (h *ExperienceHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		fail(c, "Failed to delete experience", err)
		return
	}
	if err := h.experiences.Delete(c.Request.Context(), id); err != nil {
		fail(c, "Failed to delete experience", err)
		return
	}
	deleted(c)
}

func (h *ExperienceHandler) ListPositions(c *gin.Context) {
	experienceID, err := parseIDParam(c, "id")
	if err != nil {
		fail(c, "Failed to fetch positions", err)
		return
	}
	items, err := h.experiences.ListPositions(c.Request.Context(), experienceID)
	if err != nil {
		fail(c, "Failed to fetch positions", err)
		return
	}
	c.JSON(http.StatusOK, mapAll(items, ToPositionDTO))
}

func (h *ExperienceHandler) CreatePosition(c *gin.Context) {
	experienceID, err := parseIDParam(c, "id")
	if err != nil {
		fail(c, "Failed to create position", err)
		return
	}
	var req PositionRequest
	if err := bindBody(c, &req); err != nil {
		fail(c, "Failed to create position", err)
		return
	}
	item, err := h.experiences.CreatePosition(c.Request.Context(), experienceID, req.ToInput())
	if err != nil {
		fail(c, "Failed to create position", err)
		return
	}
	c.JSON(http.StatusOK, ToPositionDTO(item))
}

func (h *ExperienceHandler) UpdatePosition(c *gin.Context) {
	experienceID, err := parseIDParam(c, "id")
	if err != nil {
		fail(c, "Failed to update position", err)
		return
	}
	positionID, err := parseIDParam(c, "positionId")
	if err != nil {
		fail(c, "Failed to update position", err)
		return
	}
	var req PositionRequest
	if err := bindBody(c, &req); err != nil {
		fail(c, "Failed to update position", err)
		return
	}
	item, err := h.experiences.UpdatePosition(c.Request.Context(), experienceID, positionID, req.ToInput())
	if err != nil {
		fail(c, "Failed to update position", err)
		return
	}
	c.JSON(http.StatusOK, ToPositionDTO(item))
}

func (h *ExperienceHandler) DeletePosition(c *gin.Context) {
	experienceID, err := parseIDParam(c, "id")
	if err != nil {
		fail(c, "Failed to delete position", err)
		return
	}
	positionID, err := parseIDParam(c, "positionId")
	if err != nil {
		fail(c, "Failed to delete position", err)
		return
	}
	if err := h.experiences.DeletePosition(c.Request.Context(), experienceID, positionID); err != nil {
		fail(c, "Failed to delete position", err)
		return
	}
	deleted(c)
}
