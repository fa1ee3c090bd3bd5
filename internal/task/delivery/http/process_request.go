package http

import (
	"github.com/gin-gonic/gin"

	"tasktracker-webui/internal/task"
)

// processSubmitReq converts the posted form into the raw field map. Keys
// that were never posted stay absent from the map, so the validators can
// tell a missing field from an empty one. Repeated keys keep their first
// value.
func (h *handler) processSubmitReq(c *gin.Context) (task.Fields, error) {
	if err := c.Request.ParseForm(); err != nil {
		return nil, err
	}

	fields := make(task.Fields, len(c.Request.PostForm))
	for key, values := range c.Request.PostForm {
		fields[key] = values[0]
	}
	return fields, nil
}
