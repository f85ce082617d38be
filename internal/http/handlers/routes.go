package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"routerider/internal/domain"
	"routerider/internal/http/middleware"
	"routerider/internal/repositories"
	"routerider/internal/services"
	"routerider/internal/utils"
)

type RouteHandler struct {
	Store repositories.Store
}

func (h RouteHandler) svc(c *gin.Context) services.RouteService {
	return services.RouteService{
		Routes:    h.Store.Routes,
		RequestID: middleware.GetRequestID(c),
	}
}

// Search handles GET /api/routes. Origin/destination narrow by
// substring; amenities/timeSlots/busTypes are comma-separated filter
// lists; date is accepted and ignored.
func (h RouteHandler) Search(c *gin.Context) {
	query := domain.SearchQuery{
		Origin:      utils.NormalizeSpace(c.Query("origin")),
		Destination: utils.NormalizeSpace(c.Query("destination")),
		Date:        c.Query("date"),
	}
	routes, err := h.svc(c).Search(c.Request.Context(), query, queryFilters(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"routes": routes, "count": len(routes)})
}

// Popular handles GET /api/routes/popular.
func (h RouteHandler) Popular(c *gin.Context) {
	routes, err := h.svc(c).Popular(c.Request.Context(), queryFilters(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"routes": routes, "count": len(routes)})
}

// GetByID handles GET /api/routes/:id.
func (h RouteHandler) GetByID(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		return
	}
	route, err := h.svc(c).GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}
