package gateway

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	_ "github.com/example/quickcart/docs"
	"github.com/example/quickcart/pkg/auth"
	"github.com/example/quickcart/pkg/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// HealthCheck reports whether a backing service is reachable.
type HealthCheck func(ctx context.Context) error

// Dependencies are constructed once in main and shared by every handler.
type Dependencies struct {
	Tokens   *auth.Issuer
	Identity IdentityStore
	Users    UserStore
	Sellers  SellerStore
	Products ProductStore
	Orders   OrderStore
	Reviews  ReviewStore
	Stats    StatsStore
	Audit    AuditStore
	Notifier Notifier
	Health   map[string]HealthCheck
	// Peers is nil when no service registry is configured.
	Peers PeerLister
}

type Gateway struct {
	config *config.Config
	logger *zap.Logger
	deps   Dependencies
	router *gin.Engine
	server *http.Server

	// background tracks audit writes still in flight.
	background sync.WaitGroup
}

func NewGateway(cfg *config.Config, logger *zap.Logger, deps Dependencies) *Gateway {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(loggerMiddleware(logger))
	if len(cfg.Server.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.Server.AllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", requestIDHeader},
			ExposeHeaders:    []string{requestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	return &Gateway{
		config: cfg,
		logger: logger,
		deps:   deps,
		router: router,
	}
}

// SetupRoutes registers the route table on the engine.
func (g *Gateway) SetupRoutes() {
	for _, r := range g.routes() {
		handlers := make([]gin.HandlerFunc, 0, 2)
		if len(r.guards) > 0 {
			handlers = append(handlers, g.Guards(r.guards...))
		}
		handlers = append(handlers, r.handler)
		g.router.Handle(r.method, r.path, handlers...)
	}

	g.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// Handler exposes the engine, mainly for tests.
func (g *Gateway) Handler() http.Handler {
	return g.router
}

func (g *Gateway) Start() error {
	addr := g.config.Server.Addr()
	g.server = &http.Server{
		Addr:              addr,
		Handler:           g.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	g.logger.Info("Gateway starting", zap.String("address", addr))

	if err := g.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests, then waits for background writes to
// finish or for ctx to expire.
func (g *Gateway) Shutdown(ctx context.Context) error {
	var err error
	if g.server != nil {
		err = g.server.Shutdown(ctx)
	}

	done := make(chan struct{})
	go func() {
		g.background.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		g.logger.Warn("Background writes still running at shutdown")
		if err == nil {
			err = ctx.Err()
		}
	}
	return err
}

func (g *Gateway) root(c *gin.Context) {
	c.String(http.StatusOK, "QuickCart is Running")
}

func (g *Gateway) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	failed := gin.H{}
	for name, check := range g.deps.Health {
		if err := check(ctx); err != nil {
			g.logger.Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
			failed[name] = err.Error()
		}
	}
	if len(failed) > 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "failed": failed})
		return
	}

	body := gin.H{"status": "ok"}
	if g.deps.Peers != nil {
		peers, err := g.deps.Peers.Discover(ctx, g.config.Server.Name)
		if err != nil {
			g.logger.Warn("Failed to list registered peers", zap.Error(err))
		} else {
			addrs := make([]string, 0, len(peers))
			for _, p := range peers {
				addrs = append(addrs, p.Addr())
			}
			body["peers"] = addrs
		}
	}
	c.JSON(http.StatusOK, body)
}
