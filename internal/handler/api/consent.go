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

type ConsentHandler struct {
	cmds commands.ConsentCommands
	q    queries.ConsentQueries
}

func NewConsentHandler(cmds commands.ConsentCommands, q queries.ConsentQueries) *ConsentHandler {
	return &ConsentHandler{cmds: cmds, q: q}
}

// @Summary Create consent template
// @Tags consents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateConsentTemplateRequest true "Create template request"
// @Success 201 {object} resdto.ConsentTemplateResponse
// @Failure 400 {object} map[string]string
// @Router /consents/templates [post]
func (h *ConsentHandler) CreateTemplate(c *gin.Context) {
	var req reqdto.CreateConsentTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.CreateTemplate(c.Request.Context(), req.ToParams())
	if err != nil {
		if errs.Is(err, errs.ErrDomainValidation) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid template data", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	view, err := h.q.GetTemplate(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load template", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromConsentTemplateView(view))
}

// @Summary List consent templates
// @Tags consents
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ConsentTemplateResponse
// @Router /consents/templates [get]
func (h *ConsentHandler) ListTemplates(c *gin.Context) {
	views, err := h.q.ListTemplates(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resdto.FromConsentTemplateList(views)})
}

// @Summary Grant consent
// @Tags consents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.GrantConsentRequest true "Grant request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /consents/grants [post]
func (h *ConsentHandler) Grant(c *gin.Context) {
	var req reqdto.GrantConsentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.Grant(c.Request.Context(), req.TemplateID, req.CustomerID)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrConsentAlreadyGranted):
			httperr.AbortWithError(c, http.StatusConflict, err, "Consent already granted", nil)
		case errs.Is(err, errs.ErrConsentTemplateNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Consent template not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Withdraw consent
// @Tags consents
// @Security BearerAuth
// @Param id path string true "Grant ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /consents/grants/{id} [delete]
func (h *ConsentHandler) Withdraw(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.cmds.Withdraw(c.Request.Context(), id); err != nil {
		if errs.Is(err, errs.ErrConsentGrantNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Consent grant not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List customer consent grants
// @Tags consents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {array} resdto.ConsentGrantResponse
// @Failure 400 {object} map[string]string
// @Router /customers/{id}/consents [get]
func (h *ConsentHandler) ListCustomerGrants(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid customer id", nil)
		return
	}

	views, err := h.q.ListCustomerGrants(c.Request.Context(), customerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resdto.FromConsentGrantList(views)})
}
