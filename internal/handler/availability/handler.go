package availability

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/scheduler-api/internal/handler"
	"github.com/hireloop/scheduler-api/internal/middleware"
	"github.com/hireloop/scheduler-api/internal/model"
	"github.com/hireloop/scheduler-api/internal/service/scheduling"
	apperrors "github.com/hireloop/scheduler-api/pkg/errors"
)

type Handler struct {
	svc *scheduling.Service
}

func NewHandler(svc *scheduling.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, auth *middleware.AuthMiddleware) {
	r.POST("/availability", auth.RequireRole(model.RolePanel), h.Publish)
	r.GET("/availability", auth.RequireRole(model.RolePanel, model.RoleRecruiter), h.List)
}

func (h *Handler) Publish(c *gin.Context) {
	identity, ok := middleware.Identity(c)
	if !ok {
		handler.Error(c, apperrors.Unauthenticated("authentication required"))
		return
	}

	var req model.CreateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.Error(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	slot, err := h.svc.PublishAvailability(c.Request.Context(), identity, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": slot.ID})
}

func (h *Handler) List(c *gin.Context) {
	identity, ok := middleware.Identity(c)
	if !ok {
		handler.Error(c, apperrors.Unauthenticated("authentication required"))
		return
	}

	var panelID *int64
	if raw := c.Query("panelId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			handler.Error(c, apperrors.BadRequest("invalid panelId", err))
			return
		}
		panelID = &id
	}

	slots, err := h.svc.ListAvailability(c.Request.Context(), identity, panelID)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, slots)
}
