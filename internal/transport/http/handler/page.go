package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sakibh04/Job-Application-Tracker/internal/session"
)

// PageHandler serves the two entry pages and bounces the browser between them
// depending on login state.
type PageHandler struct {
	sessions *session.Manager
}

func NewPageHandler(sessions *session.Manager) *PageHandler {
	return &PageHandler{sessions: sessions}
}

func (h *PageHandler) Landing(c *gin.Context) {
	if h.loggedIn(c) {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.File("web/landing.html")
}

func (h *PageHandler) Dashboard(c *gin.Context) {
	if !h.loggedIn(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.File("web/index.html")
}

func (h *PageHandler) loggedIn(c *gin.Context) bool {
	token, err := c.Cookie(session.CookieName)
	if err != nil || token == "" {
		return false
	}
	_, err = h.sessions.Validate(c.Request.Context(), token)
	return err == nil
}
