package adaptor

import (
	"net/http"
	"strings"

	"auberge-espagnole/internal/usecase"
	"auberge-espagnole/pkg/utils"

	"go.uber.org/zap"
)

type DeliveryHandler struct {
	log *zap.Logger
}

func NewDeliveryHandler(log *zap.Logger) *DeliveryHandler {
	return &DeliveryHandler{log: log.With(zap.String("handler", "delivery"))}
}

type eligibilityResponse struct {
	PostalCode  string   `json:"postalCode"`
	Eligible    bool     `json:"eligible"`
	PostalCodes []string `json:"postalCodes"`
}

// CheckEligibility handles GET /api/delivery/eligibility?postalCode=
func (h *DeliveryHandler) CheckEligibility(w http.ResponseWriter, r *http.Request) {
	postalCode := strings.TrimSpace(r.URL.Query().Get("postalCode"))
	if postalCode == "" {
		utils.ResponseBadRequest(w, "Code postal requis", nil)
		return
	}

	eligible := usecase.IsDeliveryEligible(postalCode)
	message := "Livraison disponible"
	if !eligible {
		message = "Livraison non disponible pour ce code postal"
	}

	utils.ResponseSuccess(w, message, eligibilityResponse{
		PostalCode:  postalCode,
		Eligible:    eligible,
		PostalCodes: usecase.EligiblePostalCodes(),
	})
}
