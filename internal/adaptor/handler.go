package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"auberge-espagnole/internal/usecase"
	"auberge-espagnole/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	msgInvalidBody = "Corps de requête invalide"
	msgInvalidID   = "Identifiant invalide"
	msgServerError = "Erreur interne du serveur"

	maxJSONBody = 1 << 20
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Catalog  *CatalogHandler
	Order    *OrderHandler
	Delivery *DeliveryHandler
}

func NewHandler(service *usecase.Service, maxUploadBytes int64, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, service.Order, log),
		Catalog:  NewCatalogHandler(service.Catalog, maxUploadBytes, log),
		Order:    NewOrderHandler(service.Order, log),
		Delivery: NewDeliveryHandler(log),
	}
}

// decodeJSON reads a single JSON document from the request body
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty body")
		}
		return err
	}
	return nil
}

// pathID parses the {id} URL parameter
func pathID(r *http.Request) (int64, bool) {
	return utils.ParseID(chi.URLParam(r, "id"))
}

// logServiceError logs client errors at Warn and everything else at Error
func logServiceError(log *zap.Logger, err error, operation string) {
	kind := utils.KindOf(err)
	if kind == utils.KindInternal {
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		return
	}
	log.Warn(operation+" failed", zap.String("kind", kind.String()), zap.Error(err))
}
