package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"routerider/internal/domain/models"
	"routerider/internal/flow"
	"routerider/internal/http/middleware"
	"routerider/internal/repositories"
	"routerider/internal/services"
)

type FlowHandler struct {
	Store    repositories.Store
	Sessions *flow.Manager
}

func (h FlowHandler) session(c *gin.Context) (*flow.Session, bool) {
	s, err := h.Sessions.Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return nil, false
	}
	return s, true
}

// Start handles POST /api/flow.
func (h FlowHandler) Start(c *gin.Context) {
	s := h.Sessions.Start()
	c.JSON(http.StatusCreated, s.Snapshot())
}

// Get handles GET /api/flow/:id.
func (h FlowHandler) Get(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.Snapshot())
}

type selectRouteRequest struct {
	RouteID int `json:"routeId"`
}

// SelectRoute handles POST /api/flow/:id/route.
func (h FlowHandler) SelectRoute(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var req selectRouteRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	reqID := middleware.GetRequestID(c)
	snap, err := s.SelectRoute(c.Request.Context(),
		services.RouteService{Routes: h.Store.Routes, RequestID: reqID},
		services.SeatService{Seats: h.Store.Seats, RequestID: reqID},
		req.RouteID,
	)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

type toggleSeatRequest struct {
	Seat string `json:"seat"`
}

// ToggleSeat handles POST /api/flow/:id/seats/toggle.
func (h FlowHandler) ToggleSeat(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var req toggleSeatRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	snap, err := s.ToggleSeat(req.Seat)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// Continue handles POST /api/flow/:id/continue.
func (h FlowHandler) Continue(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	snap, err := s.Continue()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// Back handles POST /api/flow/:id/back.
func (h FlowHandler) Back(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	snap, err := s.Back()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

type submitRequest struct {
	Passengers []models.Passenger `json:"passengers"`
	TravelDate string             `json:"travelDate"`
}

// Submit handles POST /api/flow/:id/submit.
func (h FlowHandler) Submit(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var req submitRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	snap, err := s.Submit(c.Request.Context(),
		services.BookingService{
			Routes:    h.Store.Routes,
			Seats:     h.Store.Seats,
			Bookings:  h.Store.Bookings,
			RequestID: middleware.GetRequestID(c),
		},
		req.Passengers, req.TravelDate, middleware.GetIdentity(c),
	)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// Reset handles POST /api/flow/:id/reset.
func (h FlowHandler) Reset(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	snap, err := s.Reset()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}
