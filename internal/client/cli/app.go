package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/wordbridge/internal/client/api"
	"github.com/dmitrijs2005/wordbridge/internal/client/config"
)

// apiClient is the subset of api.Client the commands use.
type apiClient interface {
	Signup(ctx context.Context, email, password string) (*api.Response, error)
	Login(ctx context.Context, email, password string) (*api.Response, error)
	Translate(ctx context.Context, text, target string) (*api.Response, error)
}

type App struct {
	config *config.Config
	api    apiClient
	reader *bufio.Reader
	out    io.Writer
	email  string
}

func NewApp(c *config.Config) (*App, error) {
	return &App{
		config: c,
		api:    api.New(c.ServerURL, c.RequestTimeout),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintf(a.out, "WordBridge client, server %s. Type \"help\" for commands.\n", a.config.ServerURL)
	runREPL(ctx, a, a.status, a.reader, a.out)
}

func (a *App) isLoggedIn() bool {
	return a.email != ""
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return a.email
	}
	return "guest"
}

// report prints a response envelope: data on success, each error otherwise.
func (a *App) report(resp *api.Response) {
	if resp.OK() {
		if text := resp.Text(); text != "" {
			fmt.Fprintln(a.out, text)
		} else {
			fmt.Fprintln(a.out, "(no result)")
		}
		return
	}

	fmt.Fprintf(a.out, "Error (%d):\n", resp.Status)
	for _, m := range resp.Messages() {
		fmt.Fprintf(a.out, "  - %s\n", m)
	}
}
