package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tasktracker-webui/internal/task"
	"tasktracker-webui/internal/task/repository"
)

// trackerDownMessage is the user-facing text for a tracker that cannot be
// reached at all.
const trackerDownMessage = "Failed to connect to TaskTracker API."

// renderError translates pipeline errors into the plain-text answers the
// form promises: 400 for a bad field, 502 for tracker trouble, 500 for
// anything unexpected.
func (h *handler) renderError(c *gin.Context, err error) {
	if task.IsValidation(err) {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	if errors.Is(err, repository.ErrTrackerUnreachable) {
		c.String(http.StatusBadGateway, trackerDownMessage)
		return
	}

	var statusErr *repository.StatusError
	if errors.As(err, &statusErr) {
		c.String(http.StatusBadGateway, statusErr.Error())
		return
	}

	c.String(http.StatusInternalServerError, "something went wrong")
}
