package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	certificationUC "github.com/khoahotran/portfolio-api/internal/application/usecase/certification"
)

type CertificationHandler struct {
	certifications *certificationUC.CertificationUseCase
}

func NewCertificationHandler(uc *certificationUC.CertificationUseCase) *CertificationHandler {
	return &CertificationHandler{certifications: uc}
}

func (h *CertificationHandler) List(c *gin.Context) {
	items, err := h.certifications.List(c.Request.Context())
	if err != nil {
		fail(c, "Failed to fetch certifications", err)
		return
	}
	c.JSON(http.StatusOK, mapAll(items, ToCertificationDTO))
}

func (h *CertificationHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		fail(c, "Failed to fetch certification", err)
		return
	}
	item, err := h.certifications.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, "Failed to fetch certification", err)
		return
	}
	c.JSON(http.StatusOK, ToCertificationDTO(item))
}

func (h *CertificationHandler) Create(c *gin.Context) {
	var req CertificationRequest
	if err := bindBody(c, &req); err != nil {
		fail(c, "Failed to create certification", err)
		return
	}
	item, err := h.certifications.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		fail(c, "Failed to create certification", err)
		return
	}
	c.JSON(http.StatusOK, ToCertificationDTO(item))
}

func (h *CertificationHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		fail(c, "Failed to update certification", err)
		return
	}
	var req CertificationRequest
	if err := bindBody(c, &req); err != nil {
		fail(c, "Failed to update certification", err)
		return
	}
	item, err := h.certifications.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		fail(c, "Failed to update certification", err)
		return
	}
	c.JSON(http.StatusOK, ToCertificationDTO(item))
}

func (h *CertificationHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		fail(c, "Failed to delete certification", err)
		return
	}
	if err := h.certifications.Delete(c.Request.Context(), id); err != nil {
		fail(c, "Failed to delete certification", err)
		return
	}
	deleted(c)
}
