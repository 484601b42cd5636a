package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"

	"github.com/dmitrijs2005/hearttrack/internal/client/client"
	"github.com/dmitrijs2005/hearttrack/internal/client/config"
	"github.com/dmitrijs2005/hearttrack/internal/client/models"
)

type App struct {
	config   *config.Config
	api      client.Client
	identity *models.Identity
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	return &App{config: c, api: apiClient, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.identity != nil
}

// checkSession forgets the local identity when the server no longer
// recognises the session, e.g. after idle expiry.
func (a *App) checkSession(err error) error {
	if errors.Is(err, client.ErrUnauthorized) {
		a.identity = nil
	}
	return err
}
