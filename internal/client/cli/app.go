package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/dmitrijs2005/medicart/internal/client/catalog"
	"github.com/dmitrijs2005/medicart/internal/client/config"
	"github.com/dmitrijs2005/medicart/internal/client/models"
	"github.com/dmitrijs2005/medicart/internal/client/services"
	"github.com/dmitrijs2005/medicart/internal/client/storage"
	"github.com/dmitrijs2005/medicart/internal/logging"
)

// App ties the storefront services together and backs the REPL commands.
type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	accounts services.AccountService
	session  *services.SessionManager
	cart     *services.CartStore
	orders   *services.OrderService
	catalog  catalog.Provider

	// products caches the catalog listing after the first successful load.
	products []models.Product

	reader *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, newKV, err := storage.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	return &App{
		config:   c,
		log:      log,
		db:       db,
		accounts: services.NewAccountService(db, newKV),
		session:  services.NewSessionManager(db, newKV, []byte(c.SessionSecret), c.SessionValidity),
		cart:     services.NewCartStore(db, newKV),
		orders:   services.NewOrderService(db, newKV),
		catalog:  catalog.NewHTTPProvider(c.CatalogBaseURL, c.CatalogTimeout, c.CatalogLimit),
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.Current() != nil
}

func (a *App) getStatus() string {
	if p := a.session.Current(); p != nil {
		return fmt.Sprintf("(%s)", p.Name)
	}
	return ""
}

// Run restores the persisted session and cart, then blocks in the REPL until
// the user exits. The database handle is closed on return.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	if p, err := a.session.Load(ctx); err != nil {
		a.log.Warn(ctx, "failed to restore session", "error", err)
	} else if p != nil {
		a.log.Info(ctx, "session restored", "user", p.Name)
	}

	if err := a.cart.Load(ctx); err != nil {
		a.log.Warn(ctx, "failed to restore cart", "error", err)
	}

	printlnFn("Welcome to MediCart CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
