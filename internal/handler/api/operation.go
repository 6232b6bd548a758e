package api

import (
	"errors"
	"net/http"

	reqdto "workshop-admin-api/internal/handler/dto/request"
	resdto "workshop-admin-api/internal/handler/dto/response"
	"workshop-admin-api/internal/handler/httperr"
	"workshop-admin-api/internal/infra/upstream"
	"workshop-admin-api/internal/pkg/errs"
	"workshop-admin-api/internal/usecase/commands"
	"workshop-admin-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OperationHandler struct {
	cmds commands.OperationCommands
	q    queries.OperationQueries
}

func NewOperationHandler(cmds commands.OperationCommands, q queries.OperationQueries) *OperationHandler {
	return &OperationHandler{cmds: cmds, q: q}
}

// @Summary List operations
// @Description Unified feed of visits and reservations, filtered and sorted
// @Tags operations
// @Produce json
// @Security BearerAuth
// @Param search query string false "Substring over last name, first name, phone, license plate"
// @Param type query string false "VISIT or RESERVATION; unset merges both"
// @Param status query string false "Status filter (case-insensitive)"
// @Param page query int false "Page number (single-source only)"
// @Param limit query int false "Page size (single-source only)"
// @Success 200 {object} resdto.OperationsListResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /operations [get]
func (h *OperationHandler) List(c *gin.Context) {
	var query reqdto.ListOperationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	filters, err := query.ToFilters()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid operation type", nil)
		return
	}

	page, err := h.q.List(c.Request.Context(), filters)
	if err != nil {
		if errs.Is(err, errs.ErrUpstreamFailure) {
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Upstream service unavailable", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOperationsPage(page))
}

// @Summary Delete operation
// @Description Delete an operation via the reservations backend
// @Tags operations
// @Security BearerAuth
// @Param id path string true "Operation ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /operations/{id} [delete]
func (h *OperationHandler) Delete(c *gin.Context) {
	if err := h.cmds.DeleteOperation(c.Request.Context(), c.Param("id")); err != nil {
		abortWithGatewayError(c, err, "Operation not found", errs.ErrOperationNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Reschedule reservation
// @Description Move a reservation to a new time window
// @Tags operations
// @Accept json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.RescheduleReservationRequest true "New schedule"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /reservations/{id}/schedule [patch]
func (h *OperationHandler) Reschedule(c *gin.Context) {
	var req reqdto.RescheduleReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	err := h.cmds.UpdateReservationSchedule(c.Request.Context(), c.Param("id"), req.StartDateTime, req.EndDateTime)
	if err != nil {
		if errs.Is(err, errs.ErrInvalidSchedule) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "End must be after start", nil)
			return
		}
		abortWithGatewayError(c, err, "Reservation not found", errs.ErrReservationNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Cancel reservation
// @Description Mark a reservation as cancelled
// @Tags operations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /reservations/{id}/cancel [patch]
func (h *OperationHandler) Cancel(c *gin.Context) {
	if err := h.cmds.CancelReservation(c.Request.Context(), c.Param("id")); err != nil {
		abortWithGatewayError(c, err, "Reservation not found", errs.ErrReservationNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

// abortWithGatewayError maps upstream mutation failures: not-found sentinel to
// 404, upstream validation rejections to 422 with the field errors flattened,
// anything else to 502.
func abortWithGatewayError(c *gin.Context, err error, notFoundMsg string, notFound error) {
	if errs.Is(err, notFound) {
		httperr.AbortWithError(c, http.StatusNotFound, err, notFoundMsg, nil)
		return
	}

	var validationErr *upstream.ValidationError
	if errors.As(err, &validationErr) {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", validationErr.Fields.Flatten())
		return
	}

	httperr.AbortWithError(c, http.StatusBadGateway, err, "Upstream service unavailable", nil)
}
