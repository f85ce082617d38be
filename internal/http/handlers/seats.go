package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"routerider/internal/http/middleware"
	"routerider/internal/repositories"
	"routerider/internal/services"
)

type SeatHandler struct {
	Store repositories.Store
}

func (h SeatHandler) svc(c *gin.Context) services.SeatService {
	return services.SeatService{
		Seats:     h.Store.Seats,
		RequestID: middleware.GetRequestID(c),
	}
}

// Layout handles GET /api/routes/:id/seats.
func (h SeatHandler) Layout(c *gin.Context) {
	routeID, ok := paramInt(c, "id")
	if !ok {
		return
	}
	seats, err := h.svc(c).Layout(c.Request.Context(), routeID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"seats": seats, "count": len(seats)})
}

type reserveRequest struct {
	Seats []string `json:"seats"`
}

// Reserve handles POST /api/routes/:id/seats/reserve.
func (h SeatHandler) Reserve(c *gin.Context) {
	routeID, ok := paramInt(c, "id")
	if !ok {
		return
	}
	var req reserveRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	res, err := h.svc(c).Reserve(c.Request.Context(), routeID, req.Seats)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
