package handler

import (
	"net/http"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/dto"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/service"

	"github.com/gin-gonic/gin"
)

// Home is the landing payload of the dashboard: the notices currently pinned.
func Home(notices service.NoticeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := notices.List(c.Request.Context(), dto.ActiveFilter{})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"notices": list})
	}
}
