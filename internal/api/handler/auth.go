package handler

import (
	"encoding/json"
	"net/http"

	"github.com/kwanchai/cleanbook/internal/api/request"
	"github.com/kwanchai/cleanbook/internal/api/response"
	"github.com/kwanchai/cleanbook/internal/model"
	"github.com/kwanchai/cleanbook/internal/services/account"
)

// AuthHandler handles registration and login endpoints
type AuthHandler struct {
	accountService *account.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(accountService *account.Service) *AuthHandler {
	return &AuthHandler{
		accountService: accountService,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	role := model.RoleUser
	if req.Role != "" {
		parsed, err := model.ParseRole(req.Role)
		if err != nil {
			WriteError(w, err)
			return
		}
		role = parsed
	}

	acct, err := h.accountService.Register(r.Context(), req.Username, req.Password, role)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, map[string]string{
		"subjectId": string(acct.ID),
		"username":  acct.Username,
		"role":      string(acct.Role),
	})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	token, err := h.accountService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LoginResponseFromToken(token))
}
