// Package httpserver serves the HeartTrack pages and their JSON views over
// HTTP using gin. Every page request runs inside a session resolved from
// the session cookie.
package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/hearttrack/internal/logging"
	"github.com/dmitrijs2005/hearttrack/internal/server/services"
	"github.com/dmitrijs2005/hearttrack/internal/server/session"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

const shutdownTimeout = 10 * time.Second

// Deps are the collaborators the HTTP layer drives.
type Deps struct {
	Users    *services.UserService
	Vitals   *services.VitalsService
	Archive  *services.ArchiveService
	Sessions *session.Registry
	Gatherer prometheus.Gatherer
}

type HTTPServer struct {
	address   string
	logger    logging.Logger
	users     *services.UserService
	vitals    *services.VitalsService
	archive   *services.ArchiveService
	sessions  *session.Registry
	gatherer  prometheus.Gatherer
	jwtSecret []byte
	engine    *gin.Engine
}

func NewHTTPServer(address string, l logging.Logger, d Deps, secretKey string) (*HTTPServer, error) {
	s := &HTTPServer{
		address:   address,
		logger:    l.With("module", "http_server"),
		users:     d.Users,
		vitals:    d.Vitals,
		archive:   d.Archive,
		sessions:  d.Sessions,
		gatherer:  d.Gatherer,
		jwtSecret: []byte(secretKey),
	}

	engine, err := s.newRouter()
	if err != nil {
		return nil, err
	}
	s.engine = engine

	return s, nil
}

// Handler exposes the router, mainly for tests.
func (s *HTTPServer) Handler() http.Handler { return s.engine }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
