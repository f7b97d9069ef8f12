package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MOBASSHIR07/foodhub-gateway/internal/authz"
	"github.com/MOBASSHIR07/foodhub-gateway/internal/backend"
	"github.com/MOBASSHIR07/foodhub-gateway/internal/httpx"
)

// resolveSession reads the gateway cookie and asks the backend who it is.
// A missing or stale cookie resolves to (token, nil, nil).
func resolveSession(d *deps, c *gin.Context) (string, *backend.Session, error) {
	token := httpx.SessionToken(c, d.cfg.SessionCookie)
	if token == "" {
		return "", nil, nil
	}
	sess, err := d.api.GetSession(c.Request.Context(), token)
	if err != nil {
		return token, nil, err
	}
	return token, sess, nil
}

// authenticate aborts with 401/502 unless the request carries a live
// session; on success the token and session land in the gin context.
func authenticate(d *deps, c *gin.Context) bool {
	token, sess, err := resolveSession(d, c)
	if err != nil {
		httpx.Error(c, http.StatusBadGateway, "Connection to central server failed.")
		c.Abort()
		return false
	}
	if sess == nil {
		httpx.Error(c, http.StatusUnauthorized, "Please sign in first.")
		c.Abort()
		return false
	}
	c.Set("token", token)
	c.Set("session", sess)
	return true
}

func requireSession(d *deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authenticate(d, c) {
			c.Next()
		}
	}
}

func requireRole(d *deps, role authz.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(d, c) {
			return
		}
		if sessionFrom(c).User.Role != role {
			httpx.Error(c, http.StatusForbidden, "You do not have access to this resource.")
			c.Abort()
			return
		}
		c.Next()
	}
}

func sessionFrom(c *gin.Context) *backend.Session {
	v, _ := c.Get("session")
	sess, _ := v.(*backend.Session)
	return sess
}

func tokenFrom(c *gin.Context) string {
	return c.GetString("token")
}

// accessGate applies the dashboard routing policy: admins and providers are
// dispatched to their own dashboards, everyone else is bounced per
// authz.ResolveAccess.
func accessGate(d *deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, sess, err := resolveSession(d, c)
		if err != nil {
			httpx.Error(c, http.StatusBadGateway, "Connection to central server failed.")
			return
		}
		var role authz.Role
		if sess != nil {
			role = sess.User.Role
		}
		decision := authz.ResolveAccess(role, c.Request.URL.Path)
		if !decision.Allow {
			c.Redirect(http.StatusTemporaryRedirect, decision.RedirectTo)
			return
		}
		httpx.OK(c, http.StatusOK, "", gin.H{"role": role})
	}
}
