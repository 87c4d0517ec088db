package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/exemplar/itemsvc/internal/api/rest/dto"
	"github.com/exemplar/itemsvc/internal/auth"
	"github.com/exemplar/itemsvc/internal/serviceerr"
)

type AuthHandler struct {
	tokens *auth.TokenManager
}

func NewAuthHandler(tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeServiceError(w, r, serviceerr.InvalidRequest("invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, r, serviceerr.ValidationError(err.Error()))
		return
	}

	pair, err := h.tokens.Authenticate(req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse(pair))
}

func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeServiceError(w, r, serviceerr.InvalidRequest("invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, r, serviceerr.ValidationError(err.Error()))
		return
	}

	pair, err := h.tokens.Refresh(req.RefreshToken)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse(pair))
}

func tokenResponse(pair *auth.TokenPair) dto.TokenResponse {
	return dto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "bearer",
		ExpiresIn:    pair.ExpiresIn,
	}
}
