package booking

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
	r.POST("/bookings", auth.RequireRole(model.RoleRecruiter), h.Create)
	r.PUT("/bookings/:id", auth.RequireRole(model.RoleRecruiter), h.UpdateStatus)
	r.GET("/bookings", auth.RequireRole(model.RolePanel, model.RoleRecruiter), h.List)
}

func (h *Handler) Create(c *gin.Context) {
	identity, ok := middleware.Identity(c)
	if !ok {
		handler.Error(c, apperrors.Unauthenticated("authentication required"))
		return
	}

	var req model.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.Error(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	booking, err := h.svc.CreateBooking(c.Request.Context(), identity, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": booking.ID})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	identity, ok := middleware.Identity(c)
	if !ok {
		handler.Error(c, apperrors.Unauthenticated("authentication required"))
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		handler.Error(c, apperrors.BadRequest("invalid booking id", err))
		return
	}

	var req model.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.Error(c, apperrors.BadRequest(err.Error(), err))
		return
	}

	booking, err := h.svc.UpdateBookingStatus(c.Request.Context(), identity, id, req.Status)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (h *Handler) List(c *gin.Context) {
	identity, ok := middleware.Identity(c)
	if !ok {
		handler.Error(c, apperrors.Unauthenticated("authentication required"))
		return
	}

	bookings, err := h.svc.ListBookings(c.Request.Context(), identity)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}
