package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	adapter "github.com/gwatts/gin-adapter"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/semanticallynull/motorent-backend/bike"
	"github.com/semanticallynull/motorent-backend/booking"
	"github.com/semanticallynull/motorent-backend/garage"
	"github.com/semanticallynull/motorent-backend/internal/middleware"
	"github.com/semanticallynull/motorent-backend/internal/o11y"
	"github.com/semanticallynull/motorent-backend/sos"
	"github.com/semanticallynull/motorent-backend/tour"
)

type API struct {
	r   *gin.Engine
	br  *bike.Repository
	tr  *tour.Repository
	bkr *booking.Repository
	gr  *garage.Repository
	sr  *sos.Repository
}

func New(br *bike.Repository, tr *tour.Repository, bkr *booking.Repository, gr *garage.Repository, sr *sos.Repository,
	obs *o11y.Observability, metricsUsername, metricsPassword string) *API {
	a := &API{
		r:   gin.New(),
		br:  br,
		tr:  tr,
		bkr: bkr,
		gr:  gr,
		sr:  sr,
	}

	a.r.Use(gin.Recovery())
	a.r.Use(middleware.RequestID())
	a.r.Use(middleware.Tracing())
	a.r.Use(middleware.Logging(obs.Logger))
	a.r.Use(middleware.Metrics(obs.Registry))
	// The web frontend is served from a different origin.
	a.r.Use(cors.Default())

	a.r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	a.r.GET("/bikes", a.bikesHandler)
	a.r.GET("/bikes/:id", a.bikeHandler)
	a.r.GET("/tours", a.toursHandler)
	a.r.GET("/tours/:id", a.tourHandler)
	a.r.POST("/bookings", a.createBookingHandler)
	a.r.GET("/bookings", a.getBookingsHandler)
	a.r.POST("/garage/requests", a.createGarageRequestHandler)
	a.r.GET("/garage/requests", a.getGarageRequestsHandler)
	a.r.POST("/sos/requests", a.createSOSRequestHandler)
	a.r.GET("/sos/requests", a.getSOSRequestsHandler)

	a.r.GET("/metrics",
		adapter.Wrap(middleware.MetricsAuth(metricsUsername, metricsPassword)),
		gin.WrapH(promhttp.HandlerFor(obs.Registry, promhttp.HandlerOpts{})))

	return a
}

func (a *API) Router() *gin.Engine {
	return a.r
}
