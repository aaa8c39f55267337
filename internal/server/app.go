// Package server wires the WordBridge API together: it opens the credential
// store, builds the services and runs the HTTP server until a shutdown signal.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/wordbridge/internal/logging"
	"github.com/dmitrijs2005/wordbridge/internal/server/auth"
	"github.com/dmitrijs2005/wordbridge/internal/server/config"
	"github.com/dmitrijs2005/wordbridge/internal/server/httpapi"
	"github.com/dmitrijs2005/wordbridge/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/wordbridge/internal/server/services"
	"github.com/dmitrijs2005/wordbridge/internal/server/translate"
	"github.com/gin-gonic/gin"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager
	server *httpapi.Server
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)
	return newApp(ctx, c, logger)
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {

	gin.SetMode(gin.ReleaseMode)

	connectCtx, cancel := context.WithTimeout(ctx, c.StoreTimeout)
	defer cancel()

	rm, err := repomanager.New(connectCtx, c.DatabaseDSN, c.DatabaseName)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := services.NewUserService(rm.Users(), auth.NewBcryptHasher(c.BcryptCost), c.StoreTimeout, logger)
	ts := services.NewTranslateService(translate.New(c.TranslateAPIURL, c.TranslateAPIKey, c.TranslateTimeout), logger)

	srv := httpapi.NewServer(c.EndpointAddr, logger, us, ts, httpapi.Options{
		AllowedOrigins:  c.AllowedOrigins,
		WriteTimeout:    c.TranslateTimeout + c.StoreTimeout,
		ShutdownTimeout: c.ShutdownTimeout,
	})

	return &App{config: c, logger: logger, repos: rm, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) error {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return err
	}
	return nil
}

// Run prepares the store schema, serves until ctx is cancelled or a signal
// arrives, then closes the store.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	if err := app.repos.RunMigrations(ctx); err != nil {
		app.closeRepos()
		return fmt.Errorf("migrations error: %w", err)
	}

	app.initSignalHandler(cancelFunc)

	var (
		wg     sync.WaitGroup
		runErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		runErr = app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.closeRepos()
	app.logger.Info(context.Background(), "App stopped")

	return runErr
}

func (app *App) closeRepos() {
	ctx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
	defer cancel()

	if err := app.repos.Close(ctx); err != nil {
		app.logger.Error(ctx, "closing store", "error", err)
	}
}
