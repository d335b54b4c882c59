// Package dashboard serves the browser dashboard for exploring drug-gene
// interaction networks.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/genomicmedlab/dgigo/internal/dgidb"
)

// Server wires the DGIdb client to the dashboard HTTP endpoints.
type Server struct {
	logger  *zap.SugaredLogger
	client  *dgidb.Client
	mux     *gin.Engine
	version string
}

// New creates a dashboard server around a DGIdb client.
func New(client *dgidb.Client, logger *zap.Logger, version string, debug bool) *Server {
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	var mux *gin.Engine
	if !debug {
		// In production mode, use zap Logger middleware
		mux = gin.New()
		mux.Use(ginzap.Ginzap(logger, time.RFC3339, true))
		mux.Use(ginzap.RecoveryWithZap(logger, true))
	} else {
		// otherwise use the default Gin logging, which is prettier
		mux = gin.Default()
	}

	s := &Server{
		logger:  logger.Sugar(),
		client:  client,
		mux:     mux,
		version: version,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.GET("/", s.index)

	api := s.mux.Group("/api")
	{
		v1 := api.Group("/v1")
		{
			v1.GET("/version", s.getVersion)
			v1.GET("/genes", s.listGenes)
			v1.GET("/drugs", s.listDrugs)
			v1.GET("/interactions", s.getInteractions)
			v1.GET("/graph", s.getGraph)
		}
	}
}

// Handler returns the HTTP handler (for tests).
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Run serves the dashboard until SIGINT/SIGTERM, then shuts down
// gracefully.
func (s *Server) Run(address string) error {
	srv := &http.Server{
		Addr:         address,
		Handler:      s.mux,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		sig := <-quit
		s.logger.Infow("caught signal, shutting down", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	s.logger.Infow("starting dashboard", "address", address)
	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving dashboard: %w", err)
	}

	if err := <-shutdownError; err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}

	s.logger.Infow("stopped dashboard", "address", address)
	return nil
}
