package auth

import (
	"net/http"
	"strings"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ContextSubject is the gin context key for the verified subject.
const ContextSubject = "auth.subject"

// Middleware rejects all requests without a valid bearer token.
//
// OPTIONS requests pass without a token since browsers never send
// credentials with them.
func Middleware(v Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if header == "" {
			httputil.NewError(c, http.StatusUnauthorized, ErrHeaderMissing)
			return
		}

		token, err := v.Verify(c.Request.Context(), strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("token verification failed")
			httputil.NewError(c, http.StatusUnauthorized, ErrInvalidToken)
			return
		}

		c.Set(ContextSubject, token.Subject)
		c.Next()
	}
}

// RequireOwner rejects requests where the user ID in the path parameter
// does not match the verified subject.
//
// It must run after Middleware.
func RequireOwner(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodOptions && c.Param(param) != Subject(c) {
			httputil.NewError(c, http.StatusForbidden, ErrForbidden)
			return
		}

		c.Next()
	}
}

// Subject returns the verified subject of the request.
func Subject(c *gin.Context) string {
	return c.GetString(ContextSubject)
}
