package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/kwanchai/cleanbook/internal/client"
	"github.com/kwanchai/cleanbook/internal/identity"
	"github.com/kwanchai/cleanbook/internal/model"
	"github.com/kwanchai/cleanbook/internal/web/middleware"
	"github.com/kwanchai/cleanbook/internal/web/templates/pages"
)

// AuthHandler handles login, registration, and logout
type AuthHandler struct {
	auth  *client.AuthAPI
	store *identity.CookieStore
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(auth *client.AuthAPI, store *identity.CookieStore) *AuthHandler {
	return &AuthHandler{
		auth:  auth,
		store: store,
	}
}

// LoginPage renders the login page
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if middleware.GetIdentity(r.Context()).Authenticated() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	render(w, r, pages.Login(pages.LoginData{
		PageData: pageData(r, "Login"),
		Next:     r.URL.Query().Get("next"),
	}))
}

// Login handles the login form submission
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLoginError(w, r, "Invalid form data", "", "")
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	next := r.FormValue("next")

	if username == "" || password == "" {
		h.renderLoginError(w, r, "Username and password are required", username, next)
		return
	}

	id, err := h.auth.Login(r.Context(), username, password)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			h.renderLoginError(w, r, "Invalid username or password", username, next)
		} else {
			h.renderLoginError(w, r, "Login is unavailable right now. Please try again.", username, next)
		}
		return
	}

	h.store.Write(w, id)
	middleware.SetFlash(w, "success", "Welcome back, "+id.DisplayName+"!")
	redirectNext(w, r, next)
}

// RegisterPage renders the registration page
func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if middleware.GetIdentity(r.Context()).Authenticated() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	render(w, r, pages.Register(pages.RegisterData{
		PageData:    pageData(r, "Register"),
		FieldErrors: make(map[string]string),
	}))
}

// Register handles the registration form submission
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderRegisterError(w, r, "Invalid form data", "", nil)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	passwordConfirm := r.FormValue("password_confirm")

	fieldErrors := make(map[string]string)

	if username == "" {
		fieldErrors["username"] = "Username is required"
	} else if len(username) < 3 {
		fieldErrors["username"] = "Username must be at least 3 characters"
	} else if len(username) > 30 {
		fieldErrors["username"] = "Username must be at most 30 characters"
	}

	if password == "" {
		fieldErrors["password"] = "Password is required"
	} else if len(password) < 8 {
		fieldErrors["password"] = "Password must be at least 8 characters"
	}

	if password != passwordConfirm {
		fieldErrors["password_confirm"] = "Passwords do not match"
	}

	if len(fieldErrors) > 0 {
		h.renderRegisterError(w, r, "", username, fieldErrors)
		return
	}

	if err := h.auth.Register(r.Context(), username, password, model.RoleUser); err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusConflict {
			fieldErrors["username"] = "Username already taken"
			h.renderRegisterError(w, r, "", username, fieldErrors)
		} else {
			h.renderRegisterError(w, r, "Registration is unavailable right now. Please try again.", username, nil)
		}
		return
	}

	// Log the new account straight in
	id, err := h.auth.Login(r.Context(), username, password)
	if err != nil {
		middleware.SetFlash(w, "success", "Account created! Please log in.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	h.store.Write(w, id)
	middleware.SetFlash(w, "success", "Account created! Welcome, "+id.DisplayName+"!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout clears the persisted identity
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.store.Clear(w)
	middleware.SetFlash(w, "info", "You have been logged out")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) renderLoginError(w http.ResponseWriter, r *http.Request, errorMsg, username, next string) {
	render(w, r, pages.Login(pages.LoginData{
		PageData: pageData(r, "Login"),
		Username: username,
		Next:     next,
		Error:    errorMsg,
	}))
}

func (h *AuthHandler) renderRegisterError(w http.ResponseWriter, r *http.Request, errorMsg, username string, fieldErrors map[string]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string]string)
	}
	render(w, r, pages.Register(pages.RegisterData{
		PageData:    pageData(r, "Register"),
		Username:    username,
		Error:       errorMsg,
		FieldErrors: fieldErrors,
	}))
}
