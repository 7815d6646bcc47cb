// Package client provides a typed Go client for the HyperDrive mock API.
package client

import (
	"context"
	"fmt"
	"io"

	"hyperdrive-backend/pkg/api"

	"github.com/go-resty/resty/v2"
)

type Client struct {
	http *resty.Client
}

func New(baseURL string) *Client {
	return &Client{http: resty.New().SetBaseURL(baseURL)}
}

// Sensitivity fetches the per-layer error profile for a job. Any job id is
// accepted by the server; the same id always yields the same profile.
func (c *Client) Sensitivity(ctx context.Context, jobID string) ([]api.SensitivityRecord, error) {
	var records []api.SensitivityRecord
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("job_id", jobID).
		SetResult(&records).
		Get("/api/jobs/{job_id}/sensitivity")
	if err != nil {
		return nil, fmt.Errorf("requesting sensitivity profile: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("sensitivity request failed: %s: %s", resp.Status(), resp.String())
	}
	return records, nil
}

// Graph fetches the architecture graph for a job.
func (c *Client) Graph(ctx context.Context, jobID string) (api.Graph, error) {
	var graph api.Graph
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("job_id", jobID).
		SetResult(&graph).
		Get("/api/jobs/{job_id}/graph")
	if err != nil {
		return api.Graph{}, fmt.Errorf("requesting architecture graph: %w", err)
	}
	if resp.IsError() {
		return api.Graph{}, fmt.Errorf("graph request failed: %s: %s", resp.Status(), resp.String())
	}
	return graph, nil
}

// HardwareMatrix fetches the static hardware catalog.
func (c *Client) HardwareMatrix(ctx context.Context) ([]api.HardwareOption, error) {
	var options []api.HardwareOption
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&options).
		Get("/api/hardware-matrix")
	if err != nil {
		return nil, fmt.Errorf("requesting hardware matrix: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("hardware matrix request failed: %s: %s", resp.Status(), resp.String())
	}
	return options, nil
}

// UploadFile describes one multipart file part.
type UploadFile struct {
	Name        string
	ContentType string
	Reader      io.Reader
}

// Upload submits a model file, an optional calibration file, and optional
// free-text metadata. The server echoes the file info back without reading
// the contents.
func (c *Client) Upload(ctx context.Context, file UploadFile, calibration *UploadFile, metadata string) (api.UploadResponse, error) {
	var result api.UploadResponse
	req := c.http.R().
		SetContext(ctx).
		SetResult(&result).
		SetMultipartField("file", file.Name, file.ContentType, file.Reader)

	if calibration != nil {
		req.SetMultipartField("calibration_file", calibration.Name, calibration.ContentType, calibration.Reader)
	}
	if metadata != "" {
		req.SetFormData(map[string]string{"metadata": metadata})
	}

	resp, err := req.Post("/api/upload")
	if err != nil {
		return api.UploadResponse{}, fmt.Errorf("uploading file: %w", err)
	}
	if resp.IsError() {
		return api.UploadResponse{}, fmt.Errorf("upload request failed: %s: %s", resp.Status(), resp.String())
	}
	return result, nil
}
