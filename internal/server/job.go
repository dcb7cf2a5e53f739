package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wavelog/waveport/internal/ingest"
	"go.uber.org/zap"
)

type jobStatusResponse struct {
	Status  string            `json:"status"`
	LastRun *ingest.RunStatus `json:"last_run,omitempty"`
}

type jobRunResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Report  ingest.Report `json:"report"`
}

// jobStatus reports service readiness plus the outcome of the most recent
// refresh, if any has run in this process.
func (s *Server) jobStatus(c *gin.Context) {
	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		s.log.Warn("database ping failed", zap.Error(err))
		AbortWithError(c, ErrServiceUnavailable)
		return
	}

	resp := jobStatusResponse{Status: "ok"}
	if last, ok := s.runner.LastRun(); ok {
		resp.LastRun = &last
	}
	c.JSON(http.StatusOK, resp)
}

// jobRun triggers a full refresh synchronously and reports the outcome.
func (s *Server) jobRun(c *gin.Context) {
	report, err := s.runner.Run(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, jobRunResponse{
			Success: false,
			Message: err.Error(),
			Report:  report,
		})
		return
	}

	c.JSON(http.StatusOK, jobRunResponse{
		Success: true,
		Message: "refresh complete",
		Report:  report,
	})
}
