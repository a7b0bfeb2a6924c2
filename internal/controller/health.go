package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/trivia-api/internal/dto"
	"github.com/rs/zerolog/log"
)

func (ctrl *Controller) HealthzHandler(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Success: true, Status: "ok"})
}

// ReadyzHandler reports whether the database answers a ping.
func (ctrl *Controller) ReadyzHandler(c *gin.Context) {
	sqlDB, err := ctrl.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		log.Warn().Err(err).Msg("Readiness check failed")
		abortWithError(c, http.StatusServiceUnavailable)
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Success: true, Status: "ready"})
}
