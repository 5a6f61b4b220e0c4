// Package http exposes the employee data set and payroll files over REST.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/transferbench/internal/logging"
	"github.com/dmitrijs2005/transferbench/internal/server/employees"
	"github.com/dmitrijs2005/transferbench/internal/server/storage"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// EmployeeSource is the part of employees.Service the handlers need.
type EmployeeSource interface {
	Stream(ctx context.Context, max int, fn func(employees.Employee) error) (int, error)
	Page(ctx context.Context, page, pageSize int) (*employees.Page, error)
}

type HTTPServer struct {
	address    string
	employees  EmployeeSource
	store      storage.Store
	presigner  storage.Presigner
	presignTTL time.Duration
	jwtSecret  []byte
	logger     logging.Logger
	engine     *gin.Engine
}

// NewHTTPServer builds the router. Presigned URLs are offered only when the
// store implements storage.Presigner. A non-empty secretKey puts the payroll
// routes behind an HS256 access token.
func NewHTTPServer(a string, l logging.Logger, es EmployeeSource, store storage.Store, presignTTL time.Duration, secretKey string) *HTTPServer {
	gin.SetMode(gin.ReleaseMode)

	s := &HTTPServer{
		address:    a,
		employees:  es,
		store:      store,
		presignTTL: presignTTL,
		jwtSecret:  []byte(secretKey),
		logger:     l.With("module", "http_server"),
	}
	if p, ok := store.(storage.Presigner); ok {
		s.presigner = p
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), s.requestLogger)

	engine.GET("/healthz", s.health)

	api := engine.Group("/api")
	api.GET("/employees", s.listEmployees)
	api.GET("/employees/stream", s.streamEmployees)

	payroll := api.Group("/payroll", s.requireToken)
	payroll.GET("/:name", s.downloadPayroll)
	payroll.GET("/:name/url", s.payrollURL)

	s.engine = engine
	return s
}

func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *HTTPServer) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()
	s.logger.Info(c.Request.Context(), "request",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"status", c.Writer.Status(),
		"duration", time.Since(start),
		"client", c.GetString(clientKey),
	)
}
