// internal/wire/wire.go
package wire

import (
	"net/http"
	"strings"

	"auberge-espagnole/internal/adaptor"
	"auberge-espagnole/internal/data/repository"
	"auberge-espagnole/internal/usecase"
	"auberge-espagnole/pkg/middleware"
	"auberge-espagnole/pkg/storage"
	"auberge-espagnole/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface and the services behind it
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds services, handlers and routes
func Wiring(
	repo *repository.Repository,
	images storage.ImageStore,
	tokens *utils.TokenManager,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, images, tokens, config, logger)
	handler := adaptor.NewHandler(service, config.Upload.MaxSizeMB<<20, logger)

	router := setupRouter(handler, tokens, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	tokens *utils.TokenManager,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.CORSOrigins))

	authenticate := middleware.Authenticate(tokens, logger)
	admin := middleware.RequireAdmin(logger)

	r.Route("/api", func(r chi.Router) {
		wireAuth(r, handler.Auth, authenticate)
		wireCatalog(r, handler.Catalog, authenticate, admin)
		wireUser(r, handler.User, authenticate, admin)
		wireOrder(r, handler.Order, authenticate, admin)
		wireDelivery(r, handler.Delivery)
	})

	// Uploaded product images
	files := http.StripPrefix(storage.PublicPrefix, http.FileServer(http.Dir(config.Upload.Dir)))
	r.Get(storage.PublicPrefix+"*", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "Bienvenue sur l'API de L'Auberge Espagnole", nil)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
