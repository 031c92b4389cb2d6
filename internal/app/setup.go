// Package app contains the application setup for the catalog service.
package app

import (
	"log/slog"
	"net/http"

	"github.com/bookvault/bookvault/internal/config"
	"github.com/bookvault/bookvault/internal/model"
	"github.com/bookvault/bookvault/internal/service"
	"github.com/bookvault/bookvault/internal/store"
	"github.com/bookvault/bookvault/internal/transport/rest"
	"github.com/bookvault/bookvault/pkg/server"
	"github.com/go-chi/chi/v5"
)

type Dependencies struct {
	BookService service.BookService
	Logger      *slog.Logger
}

// SetupDependencies wires the in-memory store and the catalog service.
func SetupDependencies(cfg *config.Config, logger *slog.Logger) *Dependencies {
	var seed []model.Book
	if cfg.Store.Seed {
		seed = store.SeedBooks()
	}
	bookService := service.NewService(store.NewMemoryStore(seed, cfg.Store.Latency))

	return &Dependencies{
		BookService: bookService,
		Logger:      logger,
	}
}

// SetupHttpHandler initializes the HTTP routes for the catalog service.
// Used by end-to-end tests to exercise the full handler chain.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the HTTP routes for the catalog service.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	bookHandler := rest.NewHandler(deps.BookService, deps.Logger)
	bookHandler.RegisterRoutes(mux)
}

// SetupHttpServer creates and configures an HTTP server for the catalog service.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}
