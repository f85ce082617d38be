package api

import (
	"database/sql"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	intconfig "routerider/internal/config"
	"routerider/internal/flow"
	h "routerider/internal/http/handlers"
	"routerider/internal/http/middleware"
	"routerider/internal/repositories"
	"routerider/internal/utils"
)

// Deps carries everything the handlers need, wired once in main.
type Deps struct {
	Store    repositories.Store
	Sessions *flow.Manager
	DB       *sql.DB
}

func NewRouter(env intconfig.Env, deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(), middleware.Identity(env.IdentitySecret))

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.Logger().Warnw("failed to set trusted proxies", "error", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routeHandler := h.RouteHandler{Store: deps.Store}
	seatHandler := h.SeatHandler{Store: deps.Store}
	bookingHandler := h.BookingHandler{Store: deps.Store}
	flowHandler := h.FlowHandler{Store: deps.Store, Sessions: deps.Sessions}
	systemHandler := h.SystemHandler{DB: deps.DB, StoreDriver: env.StoreDriver}

	api := r.Group("/api")
	{
		api.GET("/health", systemHandler.Health)
		api.GET("/store-check", systemHandler.StoreCheck)

		routes := api.Group("/routes")
		routes.GET("", routeHandler.Search)
		routes.GET("/popular", routeHandler.Popular)
		routes.GET("/:id", routeHandler.GetByID)
		routes.GET("/:id/seats", seatHandler.Layout)
		routes.POST("/:id/seats/reserve", seatHandler.Reserve)

		bookings := api.Group("/bookings")
		bookings.POST("", bookingHandler.Create)
		bookings.GET("", bookingHandler.List)
		bookings.GET("/:id", bookingHandler.GetByID)
		bookings.PUT("/:id/cancel", bookingHandler.Cancel)
		bookings.GET("/:id/qrcode", bookingHandler.QRCode)
		bookings.GET("/:id/eticket", bookingHandler.ETicket)

		flowGroup := api.Group("/flow")
		flowGroup.POST("", flowHandler.Start)
		flowGroup.GET("/:id", flowHandler.Get)
		flowGroup.POST("/:id/route", flowHandler.SelectRoute)
		flowGroup.POST("/:id/seats/toggle", flowHandler.ToggleSeat)
		flowGroup.POST("/:id/continue", flowHandler.Continue)
		flowGroup.POST("/:id/back", flowHandler.Back)
		flowGroup.POST("/:id/submit", flowHandler.Submit)
		flowGroup.POST("/:id/reset", flowHandler.Reset)
	}

	return r
}
