package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/quillpress/quillpress/internal/blog"
	"github.com/quillpress/quillpress/internal/db"
	"github.com/quillpress/quillpress/pkg/logging"
)

// AccountIDHeader carries the upstream-verified account id. Identity
// issuance lives in front of this service; an absent or blank header is
// an anonymous reader, never an empty account id.
const AccountIDHeader = "X-Account-ID"

const viewerKey = "viewer"

// ViewerMiddleware derives the request's viewer from the auth header.
func ViewerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := strings.TrimSpace(c.GetHeader(AccountIDHeader)); id != "" {
			c.Set(viewerKey, blog.Authenticated(id))
		} else {
			c.Set(viewerKey, blog.Anonymous())
		}
		c.Next()
	}
}

func viewerFrom(c *gin.Context) blog.Viewer {
	if v, ok := c.Get(viewerKey); ok {
		if viewer, ok := v.(blog.Viewer); ok {
			return viewer
		}
	}
	return blog.Anonymous()
}

// RequireAdmin gates a route group on the account directory's admin
// flag. Anonymous requests get 401, authenticated non-admins 403.
func RequireAdmin(accounts *db.AccountRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID, ok := viewerFrom(c).AccountID()
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		account, err := accounts.GetByID(c.Request.Context(), accountID)
		if err != nil {
			logging.GetLogger().Error("admin check failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if account == nil || !account.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin capability required"})
			return
		}
		c.Next()
	}
}
