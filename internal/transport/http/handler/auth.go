package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sakibh04/Job-Application-Tracker/internal/app"
	"github.com/Sakibh04/Job-Application-Tracker/internal/session"
	"github.com/Sakibh04/Job-Application-Tracker/internal/transport/http/response"
)

type AuthHandler struct {
	authService *app.AuthService
	sessions    *session.Manager
}

type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type LoginRequest struct {
	// Username carries either the username or the email address.
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewAuthHandler(authService *app.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

// Register creates the account and logs the new user straight in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := h.authService.Register(app.RegisterInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		var validationErr *app.ValidationError
		if errors.As(err, &validationErr) {
			response.FieldErrors(c, http.StatusBadRequest, validationErr.Fields)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	if err := h.startSession(c, user.ID, user.Username); err != nil {
		response.Error(c, http.StatusInternalServerError, "Registration failed")
		return
	}
	response.Message(c, http.StatusCreated, "Registration successful")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := h.authService.Authenticate(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrMissingCredentials):
			response.Error(c, http.StatusBadRequest, "Username/Email and password are required")
		case errors.Is(err, app.ErrInvalidCredential):
			response.Error(c, http.StatusUnauthorized, "Invalid username/email or password")
		default:
			response.Error(c, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	if err := h.startSession(c, user.ID, user.Username); err != nil {
		response.Error(c, http.StatusInternalServerError, "Login failed")
		return
	}
	response.Message(c, http.StatusOK, "Login successful")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(session.CookieName); err == nil && token != "" {
		_ = h.sessions.End(c.Request.Context(), token)
	}
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	response.Message(c, http.StatusOK, "Logged out successfully")
}

func (h *AuthHandler) startSession(c *gin.Context, userID uint, username string) error {
	token, err := h.sessions.Start(c.Request.Context(), userID, username)
	if err != nil {
		return err
	}
	c.SetCookie(session.CookieName, token, h.sessions.CookieMaxAge(), "/", "", false, true)
	return nil
}
