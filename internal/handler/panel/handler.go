package panel

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/scheduler-api/internal/handler"
	"github.com/hireloop/scheduler-api/internal/middleware"
	"github.com/hireloop/scheduler-api/internal/model"
	"github.com/hireloop/scheduler-api/internal/service/scheduling"
	apperrors "github.com/hireloop/scheduler-api/pkg/errors"
)

// panelCacheTTL bounds how stale the panel directory may be. Registrations
// are rare, so a short TTL is enough.
const panelCacheTTL = 30 * time.Second

type Handler struct {
	svc *scheduling.Service
}

func NewHandler(svc *scheduling.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the panel directory. The cache sits behind the role
// gate so unauthorized callers never see cached bodies.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, auth *middleware.AuthMiddleware) {
	r.GET("/panels", auth.RequireRole(model.RoleRecruiter), middleware.ResponseCache(panelCacheTTL), h.List)
}

func (h *Handler) List(c *gin.Context) {
	identity, ok := middleware.Identity(c)
	if !ok {
		handler.Error(c, apperrors.Unauthenticated("authentication required"))
		return
	}

	panels, err := h.svc.ListPanels(c.Request.Context(), identity)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, panels)
}
