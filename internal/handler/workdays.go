package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkdayDocsHandler serves the haul sheet of a workday.
type WorkdayDocsHandler struct{ svc service.WorkdayService }

func NewWorkdayDocsHandler(svc service.WorkdayService) *WorkdayDocsHandler {
	return &WorkdayDocsHandler{svc: svc}
}

// HaulSheet godoc
// @Summary Download the haul sheet of a workday as PDF
// @Tags workdays
// @Produce application/pdf
// @Param id path int true "Workday id"
// @Success 200 {file} binary
// @Failure 404 {object} apierror.APIError
// @Router /api/workdays/{id}/haul-sheet.pdf [get]
func (h *WorkdayDocsHandler) HaulSheet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	// Render into memory first so a failure can still produce a JSON error.
	var buf bytes.Buffer
	if err := h.svc.WriteHaulSheet(c.Request.Context(), id, &buf); err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="haul-sheet-%d.pdf"`, id))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func (h *WorkdayDocsHandler) ArchiveHaulSheet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	path, err := h.svc.ArchiveHaulSheet(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"path": path})
}
