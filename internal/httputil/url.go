package httputil

import "github.com/gin-gonic/gin"

// ContextURL is the gin context key for the external base URL of the API.
const ContextURL = "fintrack.url"

// BaseURL returns the external base URL of the API without trailing slash.
func BaseURL(c *gin.Context) string {
	return c.GetString(ContextURL)
}
