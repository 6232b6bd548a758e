package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"workshop-admin-api/internal/handler/api"
	"workshop-admin-api/internal/handler/middleware"
	"workshop-admin-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Operation *api.OperationHandler
	Customer  *api.CustomerHandler
	Vehicle   *api.VehicleHandler
	Consent   *api.ConsentHandler
	Events    *api.EventsHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		operations := apiGroup.Group("/operations")
		{
			addRoutes(operations, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Operation.List},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Operation.Delete,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(middleware.RoleOperator)}},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireRoleAtLeast(middleware.RoleOperator))
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPatch, Path: "/:id/schedule", Handler: h.Operation.Reschedule},
				{Method: http.MethodPatch, Path: "/:id/cancel", Handler: h.Operation.Cancel},
			})
		}

		customers := apiGroup.Group("/customers")
		{
			addRoutes(customers, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Customer.List},
				{Method: http.MethodPost, Path: "", Handler: h.Customer.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Customer.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Customer.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Customer.Archive,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(middleware.RoleOperator)}},
				{Method: http.MethodGet, Path: "/:id/consents", Handler: h.Consent.ListCustomerGrants},
			})
		}

		vehicles := apiGroup.Group("/vehicles")
		{
			addRoutes(vehicles, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Vehicle.List},
				{Method: http.MethodPost, Path: "", Handler: h.Vehicle.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Vehicle.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Vehicle.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Vehicle.Archive,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(middleware.RoleOperator)}},
			})
		}

		consents := apiGroup.Group("/consents")
		{
			addRoutes(consents, []route{
				{Method: http.MethodGet, Path: "/templates", Handler: h.Consent.ListTemplates},
				{Method: http.MethodPost, Path: "/templates", Handler: h.Consent.CreateTemplate,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(middleware.RoleAdmin)}},
				{Method: http.MethodPost, Path: "/grants", Handler: h.Consent.Grant},
				{Method: http.MethodDelete, Path: "/grants/:id", Handler: h.Consent.Withdraw},
			})
		}

		apiGroup.GET("/events", h.Events.Stream)
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
