package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/techmart/storefront/config"
	"github.com/techmart/storefront/internal/adapter/catalog"
	"github.com/techmart/storefront/internal/adapter/httphandler"
	"github.com/techmart/storefront/internal/adapter/snapshot"
	"github.com/techmart/storefront/internal/core/service"
	"github.com/techmart/storefront/pkg/latency"
)

type services struct {
	catalog service.CatalogService
	chat    service.ChatService
	cart    *service.CartService
	auth    *service.AuthService
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	catalog    *catalog.Store
	snapshots  snapshot.FileStore
	services   services
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initCatalog()
	app.initSnapshots()
	app.initCoreServices()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initCatalog() {
	products := catalog.Generate(catalog.GeneratorConfig{
		Seed:         app.cfg.Catalog.Seed,
		CategorySize: app.cfg.Catalog.CategorySize,
	})
	app.catalog = catalog.NewStore(products)
	slog.Info("catalog is generated", "nProducts", len(products))
}

func (app *App) initSnapshots() {
	const op = "App.initSnapshots"

	snapshots, err := snapshot.NewFileStore(app.cfg.SnapshotDir)
	if err != nil {
		app.fallDown(op, err)
	}
	app.snapshots = snapshots
}

func (app *App) initCoreServices() {
	app.services.catalog = service.NewCatalogService(app.catalog)
	app.services.chat = service.NewChatService(app.services.catalog)
	app.services.cart = service.NewCartService(app.snapshots)
	app.services.auth = service.NewAuthService(app.snapshots)
}

func (app *App) initInboundAdapters() {
	mux := http.NewServeMux()
	httphandler.RegisterProducts(mux,
		app.services.catalog, app.services.catalog,
		app.services.catalog, app.services.catalog,
	)
	httphandler.RegisterChat(mux, app.services.chat)
	httphandler.RegisterCart(mux, app.services.cart, app.services.catalog)
	httphandler.RegisterAuth(mux, app.services.auth)

	handler := httphandler.AllowJSON(mux)
	handler = httphandler.SimulateLatency(
		latency.New(app.cfg.SimulatedLatency), handler,
	)
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
