package tracker

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"tasktracker-webui/internal/task/repository"
)

// Client is the HTTP wrapper for the task tracker REST API.
type Client struct {
	addTaskURL string
	httpClient *http.Client
}

// NewClient creates a new task tracker HTTP client pointed at the add-task
// endpoint. insecureSkipVerify disables TLS certificate verification for
// trackers running on self-signed certs; leave it off everywhere else.
func NewClient(addTaskURL string, insecureSkipVerify bool) *Client {
	httpClient := &http.Client{Timeout: DefaultTimeout}
	if insecureSkipVerify {
		httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
	return &Client{
		addTaskURL: addTaskURL,
		httpClient: httpClient,
	}
}

// AddTask posts one task to the tracker's add-task endpoint. Only a 200
// answer counts as accepted.
func (c *Client) AddTask(ctx context.Context, req AddTaskRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal add task request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.addTaskURL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build add task request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrTrackerUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return &repository.StatusError{Code: resp.StatusCode, Body: string(raw)}
	}
	return nil
}

// ---- Request types scoped to this package ----

// AddTaskRequest is the add-task wire payload. The key names and the
// taskRepeatType ordinals are fixed by the tracker API.
type AddTaskRequest struct {
	TaskName       string `json:"taskName"`
	TaskStart      int64  `json:"taskStart"`
	TaskRepeatInfo int    `json:"taskRepeatInfo"`
	TaskRepeatType int    `json:"taskRepeatType"`
}
