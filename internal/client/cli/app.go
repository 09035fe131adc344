package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/crack-social/crack-cli/internal/client/client"
	"github.com/crack-social/crack-cli/internal/client/config"
	"github.com/crack-social/crack-cli/internal/client/models"
	"github.com/crack-social/crack-cli/internal/client/services"
	"github.com/crack-social/crack-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// App holds the CLI state: the wired services, the identity of the
// currently logged-in user (nil when logged out), and the I/O streams.
type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	session  services.SessionService
	ledger   services.LedgerService
	transfer services.TransferService
	identity *models.Identity
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp opens the local database, wires the services, and restores the
// persisted session if one exists.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	session := services.NewSessionService(db)
	ledger := services.NewLedgerService(db, log)
	transfer := services.NewTransferService(
		ledger,
		services.NewSimulatedGateway(c.PaymentConfirmDelay),
		log,
	)

	app := &App{
		config:   c,
		log:      log,
		db:       db,
		session:  session,
		ledger:   ledger,
		transfer: transfer,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}

	identity, err := session.Restore(ctx)
	if err != nil {
		log.Error(ctx, "error restoring session", "error", err)
		return nil, err
	}
	app.identity = identity
	if identity != nil {
		log.Info(ctx, "session restored", "username", identity.Username)
	}

	return app, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.db.Close() }()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.identity != nil
}

func (a *App) getStatus() string {
	if a.identity == nil {
		return ""
	}
	return "(" + a.identity.Username + ")"
}
