// Package httpapi exposes the signup, login and translate operations over
// HTTP/JSON using gin. Every response is an Envelope.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/wordbridge/internal/common"
	"github.com/dmitrijs2005/wordbridge/internal/logging"
	"github.com/dmitrijs2005/wordbridge/internal/optional"
	"github.com/dmitrijs2005/wordbridge/internal/server/models"
	"github.com/gin-gonic/gin"
)

// UserService is the account logic the handlers depend on.
type UserService interface {
	Signup(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
}

// TranslateService is the translation logic the handlers depend on.
type TranslateService interface {
	Translate(ctx context.Context, text, target string) (optional.Value[string], error)
}

// Options tunes the HTTP server. Zero durations fall back to defaults.
type Options struct {
	AllowedOrigins  []string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

const (
	defaultReadTimeout     = 15 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

type Server struct {
	address    string
	router     *gin.Engine
	users      UserService
	translator TranslateService
	logger     logging.Logger
	opts       Options
}

func NewServer(addr string, l logging.Logger, us UserService, ts TranslateService, opts Options) *Server {
	if opts.ReadTimeout <= 0 {
		opts.ReadTimeout = defaultReadTimeout
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = defaultWriteTimeout
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = defaultShutdownTimeout
	}

	s := &Server{
		address:    addr,
		users:      us,
		translator: ts,
		logger:     l.With("module", "http_server"),
		opts:       opts,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *gin.Engine {
	m := newMetrics()

	router := gin.New()
	router.Use(requestLogger(s.logger))
	router.Use(m.middleware())
	// Inside the logger and metrics so panicked requests are still recorded.
	router.Use(recovery(s.logger))
	router.Use(cors(s.opts.AllowedOrigins))

	api := router.Group(common.APIPrefix)
	{
		api.POST(common.SignupPath, s.handleSignup)
		api.POST(common.LoginPath, s.handleLogin)
		api.POST(common.TranslatePath, s.handleTranslate)
	}

	router.GET("/health", s.handleHealth)
	router.GET("/metrics", m.handler())

	router.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "not found")
	})

	return router
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then drains in-flight requests for at
// most ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: s.opts.ReadTimeout,
		ReadTimeout:       s.opts.ReadTimeout,
		WriteTimeout:      s.opts.WriteTimeout,
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-stopped
}
