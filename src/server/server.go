package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lost-woods/handodds/src/api"
	"github.com/lost-woods/handodds/src/config"
	"github.com/lost-woods/handodds/src/rng"
)

type Server struct {
	port   string
	router *gin.Engine
}

// New wires the routes. The health loop for the entropy source runs until ctx
// is done.
func New(ctx context.Context, cfg *config.Config, r io.Reader, h *rng.Health, log *zap.SugaredLogger) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	go h.Watch(ctx, r, cfg.HealthInterval)

	router.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"X-API-KEY", "Accept", "Content-Type"},
		AllowAllOrigins:  true,
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handlers := api.NewHandlers(r, h, log, api.Limits{
		MaxDeckSize:   cfg.MaxDeckSize,
		MaxHandSize:   cfg.MaxHandSize,
		MaxCategories: cfg.MaxCategories,
		MaxRules:      cfg.MaxRules,
		MaxTrials:     cfg.MaxSimulationTrials,
	})
	router.GET("/health", handlers.Health)

	calc := router.Group("/", api.CheckHeader("X-API-KEY", cfg.APIKey))
	calc.POST("/coverage", handlers.Coverage)
	calc.POST("/vs", handlers.VS)
	calc.POST("/threshold", handlers.Threshold)
	calc.POST("/simulate", handlers.Simulate)

	return &Server{port: cfg.Port, router: router}
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() *gin.Engine { return s.router }

// Run serves until ctx is done, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: ":" + s.port, Handler: s.router}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
