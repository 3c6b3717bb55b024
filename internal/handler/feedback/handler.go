package feedback

import (
	"net/http"

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
	r.POST("/feedback", auth.RequireRole(model.RolePanel), h.Submit)
}

func (h *Handler) Submit(c *gin.Context) {
	identity, ok := middleware.Identity(c)
	if !ok {
		handler.Error(c, apperrors.Unauthenticated("authentication required"))
		return
	}

	var req model.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.Error(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	fb, err := h.svc.SubmitFeedback(c.Request.Context(), identity, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": fb.ID})
}
