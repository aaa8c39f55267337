package server

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/wordbridge/internal/logging"
	"github.com/dmitrijs2005/wordbridge/internal/server/config"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.EndpointAddr = "127.0.0.1:0"
	c.DatabaseDSN = "memory://"
	c.ShutdownTimeout = time.Second
	return c
}

func TestNewApp_UnsupportedStore(t *testing.T) {
	c := testConfig()
	c.DatabaseDSN = "redis://localhost"

	_, err := newApp(context.Background(), c, logging.Nop{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "db init error")
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	app, err := newApp(context.Background(), testConfig(), logging.Nop{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
}

func TestApp_RunReportsListenError(t *testing.T) {
	c := testConfig()
	c.EndpointAddr = "127.0.0.1:99999"

	app, err := newApp(context.Background(), c, logging.Nop{})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	require.Error(t, app.Run(ctx))
}
