package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"jhris/internal/apierror"
	"jhris/internal/model"
	"jhris/internal/security"
	"jhris/internal/service"

	"github.com/gin-gonic/gin"
)

const CurrentUserKey = "current_user"

// Authenticator resolves an access token to an active user.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*model.User, error)
}

// BearerToken extracts the token from "Authorization: Bearer <token>".
func BearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// Unauthorized writes a 401 with the Bearer challenge header.
func Unauthorized(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New(detail))
}

// BearerAuth guards every protected route. Invalid or expired tokens get 401;
// tokens of inactive users get 400.
func BearerAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c)
		if !ok {
			Unauthorized(c, apierror.DetailNotAuthenticated)
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		switch {
		case errors.Is(err, security.ErrInvalidToken):
			Unauthorized(c, apierror.DetailBadCredentials)
			return
		case errors.Is(err, service.ErrInactiveAccount):
			c.AbortWithStatusJSON(http.StatusBadRequest, apierror.New(apierror.DetailInactiveUser))
			return
		case err != nil:
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// RequireSuperuser rejects callers without the superuser flag.
func RequireSuperuser() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsSuperuser {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New(apierror.DetailNotEnoughPerms))
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user set by BearerAuth, or nil.
func CurrentUser(c *gin.Context) *model.User {
	user, _ := c.Get(CurrentUserKey)
	u, _ := user.(*model.User)
	return u
}
