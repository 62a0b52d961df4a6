package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"

	"shuttle-checkin/internal/core/auth"
	"shuttle-checkin/internal/core/config"
	"shuttle-checkin/internal/core/logger"
	"shuttle-checkin/internal/core/server"
	"shuttle-checkin/internal/core/session"
	"shuttle-checkin/internal/repo"
	"shuttle-checkin/internal/service"
	"shuttle-checkin/internal/transport/http/handler"
	"shuttle-checkin/internal/transport/http/router"
	"shuttle-checkin/pkg/utils"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))

	var (
		log     *zap.Logger
		cleanup func()
	)
	if cfg.Log.File != "" {
		log, cleanup = logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File,
			cfg.Log.MaxSizeMB, cfg.Log.MaxBackups, cfg.Log.MaxAgeDays, cfg.Log.Compress)
	} else {
		log, cleanup = logger.New(cfg.Log.Level, cfg.Log.JSON)
	}
	defer cleanup()
	defer logger.RedirectStdLog(log, zapcore.InfoLevel)()
	gin.DefaultWriter = logger.ToWriter(log.Named("gin"), zapcore.DebugLevel)
	gin.DefaultErrorWriter = logger.ToWriter(log.Named("gin"), zapcore.ErrorLevel)

	hasher := utils.Hasher{
		N:       cfg.Credential.N,
		R:       cfg.Credential.R,
		P:       cfg.Credential.P,
		KeyLen:  cfg.Credential.KeyLen,
		SaltLen: cfg.Credential.SaltLen,
	}

	store := repo.NewStore(time.Now)
	if cfg.Seed.Enabled {
		cred, err := hasher.Hash(cfg.Seed.AdminPassword)
		if err != nil {
			log.Fatal("hash seed password", zap.Error(err))
		}
		repo.Seed(store, repo.SeedOptions{
			AdminEmail:      cfg.Seed.AdminEmail,
			AdminName:       cfg.Seed.AdminName,
			AdminCredential: cred,
		})
		log.Info("store seeded", zap.String("admin", cfg.Seed.AdminEmail))
	}

	sessions, closeSessions := mustSessions(cfg, log)
	defer closeSessions()

	ttl := time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute
	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    ttl,
	}

	svc := service.New(service.Deps{
		Users:          store.Users(),
		Vacations:      store.Vacations(),
		Checkins:       store.Checkins(),
		SingleTrips:    store.SingleTrips(),
		Locations:      store.Locations(),
		DepartureTimes: store.DepartureTimes(),
		Contracts:      store.Contracts(),
		Credentials:    hasher,
		Tokens:         jwter,
		Sessions:       sessions,
		SessionTTL:     ttl,
		Log:            log,
	})

	mode := gin.ReleaseMode
	if cfg.App.Env == "local" || cfg.App.Env == "dev" {
		mode = gin.DebugMode
	}
	r := router.NewEngine(log, svc, router.Options{
		Mode:           mode,
		CORSOrigins:    cfg.HTTP.CORSOrigins,
		RateLimit:      rate.Limit(cfg.HTTP.RateLimit),
		RateBurst:      cfg.HTTP.RateBurst,
		AuthRateLimit:  rate.Limit(cfg.HTTP.AuthRateLimit),
		AuthRateBurst:  cfg.HTTP.AuthRateBurst,
		MaxConcurrency: cfg.HTTP.MaxConcurrency,
		MaxBodyBytes:   cfg.HTTP.MaxBodyBytes,
		RequestTimeout: time.Duration(cfg.HTTP.RequestTimeout) * time.Second,
		Cookie:         handler.Cookie{Name: cfg.Session.CookieName, Secure: cfg.Session.CookieSecure},
	})

	addr := server.Addr(cfg.HTTP.Host, cfg.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.HTTP.Port)
	log.Info("shuttle api starting",
		zap.String("addr", addr),
		zap.String("env", cfg.App.Env),
		zap.String("sessions", cfg.Session.Driver),
		zap.String("health", baseURL+"/health"),
		zap.String("metrics", baseURL+"/metrics"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("shuttle api start failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn("shutdown", zap.Error(err))
	}
	log.Info("shuttle api stopped gracefully")
}

func mustSessions(cfg *config.Config, l *zap.Logger) (session.Store, func()) {
	if cfg.Session.Driver != "redis" {
		return session.NewMemory(), func() {}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	rs, err := session.NewRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		l.Fatal("redis connect", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
	}
	l.Info("redis connected", zap.String("addr", cfg.Redis.Addr))
	return rs, func() { _ = rs.Close() }
}
