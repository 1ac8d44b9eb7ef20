package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kubev2v/workpool/internal/models"
	srvErrors "github.com/kubev2v/workpool/pkg/errors"
)

type runnerResponse struct {
	State  models.RunnerState `json:"state"`
	Error  string             `json:"error,omitempty"`
	Report *models.Report     `json:"report,omitempty"`
}

// GetRunner returns the runner state and the report of the last run
// (GET /runner)
func (h *Handler) GetRunner(c *gin.Context) {
	status := h.runner.Status()

	resp := runnerResponse{State: status.State}
	if status.Error != nil {
		resp.Error = status.Error.Error()
	}
	if report, ok := h.runner.Report(); ok {
		resp.Report = &report
	}

	c.JSON(http.StatusOK, resp)
}

// StartRun starts a workload run in the background
// (POST /runner)
func (h *Handler) StartRun(c *gin.Context) {
	// the run outlives the request
	ctx := context.WithoutCancel(c.Request.Context())

	if err := h.runner.Start(ctx); err != nil {
		if srvErrors.IsRunInProgressError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		zap.S().Named("runner_handler").Errorw("failed to start run", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start run"})
		return
	}

	c.JSON(http.StatusAccepted, runnerResponse{State: models.RunnerStateRunning})
}
