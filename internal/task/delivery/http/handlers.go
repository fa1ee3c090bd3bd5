package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tasktracker-webui/internal/task"
)

// formTemplate is the HTML template rendered for the form page, loaded by
// the HTTP server from the templates glob.
const formTemplate = "input_task.html"

// ShowForm godoc
// @Summary     Task entry form
// @Description Serves the single-page task entry form.
// @Tags        Form
// @Produce     html
// @Success     200 {string} string "the form page"
// @Router      / [GET]
func (h *handler) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, formTemplate, nil)
}

// Submit godoc
// @Summary     Submit a new task
// @Description Validates the posted fields, translates them into the tracker schema, and forwards the task to the TaskTracker API.
// @Tags        Form
// @Accept      x-www-form-urlencoded
// @Produce     html
// @Param       task_start  formData string true "start date, year-month-day"
// @Param       task_time   formData string true "start time, hour:minute"
// @Param       task_name   formData string true "task name"
// @Param       repeat_info formData string true "recurrence keyword"
// @Success     200 {string} string "the form page"
// @Failure     400 {string} string "which field was invalid and why"
// @Failure     502 {string} string "tracker unreachable or it rejected the task"
// @Router      / [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	fields, err := h.processSubmitReq(c)
	if err != nil {
		h.l.Warnf(ctx, "Submit: unreadable form body: %v", err)
		c.String(http.StatusBadRequest, "could not read the submitted form")
		return
	}

	output, err := h.uc.Create(ctx, task.CreateInput{Fields: fields})
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.renderError(c, err)
		return
	}

	h.l.Infof(ctx, "Submit: task %q accepted by the tracker", output.Task.Name)
	c.HTML(http.StatusOK, formTemplate, nil)
}
