package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		kind   ErrorKind
		status int
	}{
		{"validation", NewValidationError("Le panier est vide"), KindValidation, http.StatusBadRequest},
		{"auth", NewAuthError("Token invalide"), KindAuth, http.StatusUnauthorized},
		{"forbidden", NewForbiddenError("Accès refusé"), KindForbidden, http.StatusForbidden},
		{"not found", NewNotFoundError("Commande non trouvée"), KindNotFound, http.StatusNotFound},
		{"conflict", NewConflictError("Cet email est déjà utilisé"), KindConflict, http.StatusConflict},
		{"internal", NewInternalError("Erreur serveur", errors.New("boom")), KindInternal, http.StatusInternalServerError},
		{"plain error", errors.New("boom"), KindInternal, http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("layer: %w", NewNotFoundError("x")), KindNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, KindOf(tt.err))
			assert.Equal(t, tt.status, KindOf(tt.err).HTTPStatus())
			assert.True(t, IsKind(tt.err, tt.kind))
		})
	}
}

func TestPublicMessage_HidesCause(t *testing.T) {
	err := NewInternalError("Erreur serveur", errors.New("pq: connection refused"))

	assert.Equal(t, "Erreur serveur", PublicMessage(err, "fallback"))
	assert.Equal(t, "fallback", PublicMessage(errors.New("raw"), "fallback"))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestResponseError(t *testing.T) {
	w := httptest.NewRecorder()
	ResponseError(w, NewFieldValidationError("Données invalides", map[string]string{"Email": "Ce champ est requis"}), "fallback")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Status)
	assert.Equal(t, "Données invalides", body.Message)
	assert.Equal(t, map[string]any{"Email": "Ce champ est requis"}, body.Errors)
}
