package healthz

import (
	"net/http"
	"time"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Service is reported as service name in the health response.
const Service = "Finance Tracker Backend"

type Response struct {
	Status    string    `json:"status" example:"healthy"`
	Timestamp time.Time `json:"timestamp" example:"2024-05-10T18:43:00.271152Z"`
	Service   string    `json:"service" example:"Finance Tracker Backend"`
}

func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	r.OPTIONS("", Options)
	r.GET("", Get(db))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/health [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		200	{object}	Response
// @Failure		503	{object}	httputil.HTTPError
// @Router			/health [get]
func Get(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}

		if err != nil {
			log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
			httputil.NewError(c, http.StatusServiceUnavailable, err)
			return
		}

		c.JSON(http.StatusOK, Response{
			Status:    "healthy",
			Timestamp: time.Now().In(time.UTC),
			Service:   Service,
		})
	}
}
