package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/apierror"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/service"

	"github.com/gin-gonic/gin"
)

// ActivationHandler serves the deactivate/reactivate form endpoints. Every
// outcome is a {success, error?} body; failures never escape as panics.
type ActivationHandler struct{ svc service.ActivationService }

func NewActivationHandler(svc service.ActivationService) *ActivationHandler {
	return &ActivationHandler{svc: svc}
}

// DeactivateLocation godoc
// @Summary Deactivate a vendor location and cascade to its products and freight routes
// @Tags vendor-locations
// @Produce json
// @Param id path int true "Vendor location id"
// @Success 200 {object} apierror.Result
// @Failure 404 {object} apierror.Result
// @Failure 500 {object} apierror.Result
// @Router /api/vendor-locations/{id}/deactivate [post]
func (h *ActivationHandler) DeactivateLocation(c *gin.Context) {
	h.run(c, "vendor location", h.svc.CascadeDeactivate)
}

// ReactivateLocation godoc
// @Summary Reactivate a vendor location and the dependents it deactivated
// @Tags vendor-locations
// @Produce json
// @Param id path int true "Vendor location id"
// @Success 200 {object} apierror.Result
// @Failure 404 {object} apierror.Result
// @Failure 500 {object} apierror.Result
// @Router /api/vendor-locations/{id}/reactivate [post]
func (h *ActivationHandler) ReactivateLocation(c *gin.Context) {
	h.run(c, "vendor location", h.svc.CascadeReactivate)
}

// DeactivateVendor godoc
// @Summary Deactivate a vendor and cascade to its active locations and their dependents
// @Tags vendors
// @Produce json
// @Param id path int true "Vendor id"
// @Success 200 {object} apierror.Result
// @Failure 404 {object} apierror.Result
// @Failure 500 {object} apierror.Result
// @Router /api/vendors/{id}/deactivate [post]
func (h *ActivationHandler) DeactivateVendor(c *gin.Context) {
	h.run(c, "vendor", h.svc.CascadeDeactivateVendor)
}

// ReactivateVendor godoc
// @Summary Reactivate a vendor and the locations and dependents it deactivated
// @Tags vendors
// @Produce json
// @Param id path int true "Vendor id"
// @Success 200 {object} apierror.Result
// @Failure 404 {object} apierror.Result
// @Failure 500 {object} apierror.Result
// @Router /api/vendors/{id}/reactivate [post]
func (h *ActivationHandler) ReactivateVendor(c *gin.Context) {
	h.run(c, "vendor", h.svc.CascadeReactivateVendor)
}

func (h *ActivationHandler) run(c *gin.Context, entity string, op func(context.Context, uint) error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, apierror.Fail("Invalid id"))
		return
	}

	err = op(c.Request.Context(), uint(id))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, apierror.OK())
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.Fail(fmt.Sprintf("%s %d not found", entity, id)))
	default:
		// The service has logged the cause and rolled back.
		c.JSON(http.StatusInternalServerError, apierror.Fail(fmt.Sprintf("could not update %s %d; no changes were saved", entity, id)))
	}
}
