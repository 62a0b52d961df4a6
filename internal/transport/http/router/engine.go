package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"shuttle-checkin/internal/core/server"
	"shuttle-checkin/internal/service"
	"shuttle-checkin/internal/transport/http/ez"
	"shuttle-checkin/internal/transport/http/handler"
	mdw "shuttle-checkin/internal/transport/http/middleware"
)

type Options struct {
	Mode           string
	CORSOrigins    []string
	RateLimit      rate.Limit
	RateBurst      int
	AuthRateLimit  rate.Limit // per IP on /login and /register
	AuthRateBurst  int
	MaxConcurrency int64
	MaxBodyBytes   int64
	RequestTimeout time.Duration
	Cookie         handler.Cookie
	Prefixes       []string // every module is mounted under each; default "" and "/api"
}

func (o *Options) defaults() {
	if o.RateLimit <= 0 {
		o.RateLimit, o.RateBurst = 200, 400
	}
	if o.AuthRateLimit <= 0 {
		o.AuthRateLimit, o.AuthRateBurst = 1, 10
	}
	if o.MaxConcurrency <= 0 {
		o.MaxConcurrency = 300
	}
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = 1 << 20
	}
	if o.RequestTimeout <= 0 {
		o.RequestTimeout = 10 * time.Second
	}
	if o.Prefixes == nil {
		o.Prefixes = []string{"", "/api"}
	}
}

// NewEngine builds the HTTP surface over svc.
func NewEngine(l *zap.Logger, svc *service.Services, o Options) *gin.Engine {
	o.defaults()
	r := server.NewRouter(l, server.Options{Mode: o.Mode, CORSOrigins: o.CORSOrigins}, mdw.OnPanic)
	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(o.RateLimit, o.RateBurst),
		mdw.ConcurrencyLimit(o.MaxConcurrency),
		mdw.MaxBodyBytes(o.MaxBodyBytes),
		mdw.Timeout(o.RequestTimeout),
		mdw.Metrics(),
		mdw.AccessLog(l.Named("http")),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	hl := l.Named("handler")
	reg := &Registry{}
	reg.Register(
		handler.NewAuth(svc.Auth, o.Cookie, mdw.RateLimitPerIP(o.AuthRateLimit, o.AuthRateBurst), hl),
		handler.NewVacations(svc.Vacations, hl),
		handler.NewCheckins(svc.Checkins, hl),
		handler.NewTrips(svc.Trips, hl),
		handler.NewContracts(svc.Contracts, hl),
		handler.NewCatalog(svc.Catalog, hl),
		handler.NewUsers(svc.Users, svc.Contracts, hl),
	)

	auth := mdw.RequireAuth(svc.Auth, o.Cookie.Name)
	for _, p := range o.Prefixes {
		base := r.Group(p)
		reg.MountAll(ez.Groups{
			Public:  base,
			Session: base.Group("", auth),
			Admin:   base.Group("/admin", auth, mdw.RequireAdmin()),
		})
	}
	return r
}
