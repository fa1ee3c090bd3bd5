package http

import (
	"github.com/gin-gonic/gin"

	"tasktracker-webui/internal/task"
	"tasktracker-webui/pkg/log"
)

// Handler is the public interface for the form HTTP delivery layer.
type Handler interface {
	ShowForm(c *gin.Context)
	Submit(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task form.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
