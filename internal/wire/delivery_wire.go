package wire

import (
	"auberge-espagnole/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireDelivery(r chi.Router, deliveryHandler *adaptor.DeliveryHandler) {
	r.Get("/delivery/eligibility", deliveryHandler.CheckEligibility)
}
