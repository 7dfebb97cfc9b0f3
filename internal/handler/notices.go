package handler

import (
	"net/http"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/service"

	"github.com/gin-gonic/gin"
)

type BroadcastHandler struct{ svc service.NoticeService }

func NewBroadcastHandler(svc service.NoticeService) *BroadcastHandler {
	return &BroadcastHandler{svc: svc}
}

// Broadcast godoc
// @Summary Email a notice to every contact with an address
// @Tags notices
// @Produce json
// @Param id path int true "Notice id"
// @Success 202 {object} dto.BroadcastResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /api/notices/{id}/broadcast [post]
func (h *BroadcastHandler) Broadcast(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Broadcast(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, resp)
}
