package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// crudService is the shape shared by the entity services.
type crudService[C, U, F, R any] interface {
	Create(ctx context.Context, req C) (*R, error)
	Get(ctx context.Context, id uint) (*R, error)
	List(ctx context.Context, filter F) ([]R, error)
	Update(ctx context.Context, id uint, req U) (*R, error)
	Delete(ctx context.Context, id uint) error
}

// CRUDHandler serves create/list/get/update/delete for one entity.
// C, U and F are the create, update and filter DTOs, R the response.
type CRUDHandler[C, U, F, R any] struct {
	svc crudService[C, U, F, R]
}

// Register mounts the five routes on g.
func (h *CRUDHandler[C, U, F, R]) Register(g gin.IRoutes) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *CRUDHandler[C, U, F, R]) Create(c *gin.Context) {
	var req C
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CRUDHandler[C, U, F, R]) List(c *gin.Context) {
	var filter F
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CRUDHandler[C, U, F, R]) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CRUDHandler[C, U, F, R]) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req U
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CRUDHandler[C, U, F, R]) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
