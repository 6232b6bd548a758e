package api

import (
	"net/http"

	reqdto "workshop-admin-api/internal/handler/dto/request"
	resdto "workshop-admin-api/internal/handler/dto/response"
	"workshop-admin-api/internal/handler/httperr"
	"workshop-admin-api/internal/pkg/errs"
	"workshop-admin-api/internal/usecase/commands"
	"workshop-admin-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VehicleHandler struct {
	cmds commands.VehicleCommands
	q    queries.VehicleQueries
}

func NewVehicleHandler(cmds commands.VehicleCommands, q queries.VehicleQueries) *VehicleHandler {
	return &VehicleHandler{cmds: cmds, q: q}
}

// @Summary Create vehicle
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateVehicleRequest true "Create vehicle request"
// @Success 201 {object} resdto.VehicleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /vehicles [post]
func (h *VehicleHandler) Create(c *gin.Context) {
	var req reqdto.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid vehicle data", nil)
		case errs.Is(err, errs.ErrDuplicateLicensePlate):
			httperr.AbortWithError(c, http.StatusConflict, err, "Vehicle with this license plate already exists", nil)
		case errs.Is(err, errs.ErrCustomerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load vehicle", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromVehicleView(view))
}

// @Summary Get vehicle
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Success 200 {object} resdto.VehicleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errs.ErrVehicleNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Vehicle not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVehicleView(view))
}

// @Summary List vehicles
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param search query string false "Substring over plate, brand, model"
// @Param customerId query string false "Restrict to one customer"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param includeArchived query bool false "Include archived vehicles"
// @Success 200 {object} resdto.VehiclesListResponse
// @Failure 400 {object} map[string]string
// @Router /vehicles [get]
func (h *VehicleHandler) List(c *gin.Context) {
	var query reqdto.ListVehiclesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	page, err := h.q.List(c.Request.Context(), query.ToFilters())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVehiclesPage(page))
}

// @Summary Update vehicle
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Param request body reqdto.UpdateVehicleRequest true "Partial update"
// @Success 200 {object} resdto.VehicleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /vehicles/{id} [patch]
func (h *VehicleHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.UpdateVehicleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	if err := h.cmds.Update(c.Request.Context(), id, req.ToPatch()); err != nil {
		switch {
		case errs.Is(err, errs.ErrVehicleNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Vehicle not found", nil)
		case errs.Is(err, errs.ErrDuplicateLicensePlate):
			httperr.AbortWithError(c, http.StatusConflict, err, "Vehicle with this license plate already exists", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load vehicle", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVehicleView(view))
}

// @Summary Archive vehicle
// @Tags vehicles
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /vehicles/{id} [delete]
func (h *VehicleHandler) Archive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.cmds.Archive(c.Request.Context(), id); err != nil {
		if errs.Is(err, errs.ErrVehicleNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Vehicle not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
