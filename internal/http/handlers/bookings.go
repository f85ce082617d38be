package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"routerider/internal/http/middleware"
	"routerider/internal/repositories"
	"routerider/internal/services"
)

type BookingHandler struct {
	Store repositories.Store
}

func (h BookingHandler) svc(c *gin.Context) services.BookingService {
	return services.BookingService{
		Routes:    h.Store.Routes,
		Seats:     h.Store.Seats,
		Bookings:  h.Store.Bookings,
		RequestID: middleware.GetRequestID(c),
	}
}

// Create handles POST /api/bookings.
func (h BookingHandler) Create(c *gin.Context) {
	var input services.BookingInput
	if !BindJSONOrError(c, &input) {
		return
	}
	created, err := h.svc(c).Create(c.Request.Context(), input, middleware.GetIdentity(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// List handles GET /api/bookings.
func (h BookingHandler) List(c *gin.Context) {
	bookings, err := h.svc(c).List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}

// GetByID handles GET /api/bookings/:id.
func (h BookingHandler) GetByID(c *gin.Context) {
	id, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	booking, err := h.svc(c).GetByID(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

type cancelRequest struct {
	Confirm bool `json:"confirm"`
}

// Cancel handles PUT /api/bookings/:id/cancel. The body must carry
// {"confirm": true}; cancelling is destructive enough to require the
// caller to say so explicitly.
func (h BookingHandler) Cancel(c *gin.Context) {
	id, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	var req cancelRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if !req.Confirm {
		respondError(c, http.StatusBadRequest, "confirmation_required", "cancellation must be confirmed", nil)
		return
	}
	booking, err := h.svc(c).Cancel(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// QRCode handles GET /api/bookings/:id/qrcode.
func (h BookingHandler) QRCode(c *gin.Context) {
	id, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	img, err := h.svc(c).QRCode(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/jpeg", img)
}

// ETicket handles GET /api/bookings/:id/eticket.
func (h BookingHandler) ETicket(c *gin.Context) {
	id, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	pdf, filename, err := h.svc(c).ETicket(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
