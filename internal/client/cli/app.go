package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/ondoapp/ondo-cli/internal/client/api"
	"github.com/ondoapp/ondo-cli/internal/client/config"
	"github.com/ondoapp/ondo-cli/internal/client/repositories/credentials"
	"github.com/ondoapp/ondo-cli/internal/client/services"
	"github.com/ondoapp/ondo-cli/internal/client/storage"
	"github.com/ondoapp/ondo-cli/internal/logging"
)

// App wires the client together: config, credential store, API client,
// session and data services, and the REPL i/o.
type App struct {
	config  *config.Config
	client  api.Client
	session *services.SessionService
	data    *services.DataService
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp opens the local database, builds the API client against the
// configured base URL, and wires logout to a full data reset.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	store := credentials.NewSQLiteStore(db)

	// The client reads the token through the session; the session is
	// created right after, so the closure resolves at request time.
	var session *services.SessionService
	client := api.NewHTTPClient(cfg.BaseURL(), func() string {
		if session == nil {
			return ""
		}
		return session.Token()
	}, log)

	session = services.NewSessionService(client, store, log)
	data := services.NewDataService(client, log)
	session.OnInvalidate(data.Reset)

	return &App{
		config:  cfg,
		client:  client,
		session: session,
		data:    data,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run restores the session and enters the REPL.
func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.State() == services.StateAuthenticated
}
