package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/farellandr/gigbook/config"
	"github.com/farellandr/gigbook/internal/catalog"
	"github.com/farellandr/gigbook/internal/handlers"
	"github.com/farellandr/gigbook/internal/logger"
	"github.com/farellandr/gigbook/internal/middleware"
	"github.com/farellandr/gigbook/internal/store"
	"github.com/farellandr/gigbook/internal/web"
	"github.com/gin-gonic/gin"
)

type Dependencies struct {
	Store   *store.Store
	Catalog *catalog.Service
	Logger  logger.LoggerService
}

type Server struct {
	cfg    config.ServerConfig
	log    logger.LoggerService
	http   *http.Server
	router *gin.Engine
}

func New(cfg config.ServerConfig, deps Dependencies) *Server {
	if cfg.Mode == gin.DebugMode {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := NewRouter(deps)
	return &Server{
		cfg:    cfg,
		log:    deps.Logger,
		router: router,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Listen serves until Shutdown is called. It returns nil after a clean
// shutdown.
func (s *Server) Listen() error {
	s.log.Info("listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve http: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down http server")
	return s.http.Shutdown(ctx)
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Listen()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.GracePeriod())
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	return <-errCh
}

func NewRouter(deps Dependencies) *gin.Engine {
	handlers.RegisterValidators()

	r := gin.New()
	r.SetHTMLTemplate(web.MustTemplates())

	setupRoutes(r, deps)
	return r
}

func setupRoutes(r *gin.Engine, deps Dependencies) {
	r.Use(
		middleware.RequestID(),
		middleware.LoggerMiddleware(deps.Logger),
		middleware.AccessLog(),
		gin.CustomRecovery(handlers.Recovery),
		middleware.StoreMiddleware(deps.Store),
		middleware.CatalogMiddleware(deps.Catalog),
	)
	r.NoRoute(handlers.NotFound)

	r.GET("/", handlers.Home)
	r.GET("/healthz", handlers.Health)

	venues := r.Group("/venues")
	{
		venues.GET("", handlers.ListVenues)
		venues.POST("/search", handlers.SearchVenues)
		venues.GET("/create", handlers.NewVenueForm)
		venues.POST("/create", handlers.CreateVenue)
		venues.GET("/:id", handlers.GetVenue)
		venues.GET("/:id/edit", handlers.EditVenueForm)
		venues.POST("/:id/edit", handlers.UpdateVenue)
		venues.DELETE("/:id", handlers.DeleteVenue)
		venues.POST("/:id/delete", handlers.DeleteVenueForm)
	}

	artists := r.Group("/artists")
	{
		artists.GET("", handlers.ListArtists)
		artists.POST("/search", handlers.SearchArtists)
		artists.GET("/create", handlers.NewArtistForm)
		artists.POST("/create", handlers.CreateArtist)
		artists.GET("/:id", handlers.GetArtist)
		artists.GET("/:id/edit", handlers.EditArtistForm)
		artists.POST("/:id/edit", handlers.UpdateArtist)
		artists.DELETE("/:id", handlers.DeleteArtist)
		artists.POST("/:id/delete", handlers.DeleteArtistForm)
	}

	shows := r.Group("/shows")
	{
		shows.GET("", handlers.ListShows)
		shows.GET("/create", handlers.NewShowForm)
		shows.POST("/create", handlers.CreateShow)
	}
}
