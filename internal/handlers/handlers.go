package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/kubev2v/workpool/internal/services"
	"github.com/kubev2v/workpool/pkg/scheduler"
)

type Handler struct {
	scheduler *scheduler.Scheduler
	runner    *services.Runner
}

func New(s *scheduler.Scheduler, runner *services.Runner) *Handler {
	return &Handler{
		scheduler: s,
		runner:    runner,
	}
}

// RegisterHandlers mounts the API on router, usually the /api/v1 group.
func RegisterHandlers(router gin.IRouter, h *Handler) {
	router.GET("/scheduler", h.GetScheduler)
	router.GET("/runner", h.GetRunner)
	router.POST("/runner", h.StartRun)
}
