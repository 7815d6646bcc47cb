package api

import (
	"log/slog"
	"net/http"

	"hyperdrive-backend/internal/synth"
	"hyperdrive-backend/pkg/api"

	"github.com/go-chi/chi/v5"
)

type BackendService struct {
	maxUploadBytes int64
}

func NewBackendService(maxUploadBytes int64) *BackendService {
	return &BackendService{maxUploadBytes: maxUploadBytes}
}

func (s *BackendService) AddRoutes(r chi.Router) {
	r.Get("/health", RestHandler(func(r *http.Request) (any, error) { return nil, nil }))
	r.Route("/jobs/{job_id}", func(r chi.Router) {
		r.Get("/sensitivity", RestHandler(s.GetSensitivity))
		r.Get("/graph", RestHandler(s.GetGraph))
	})
	r.Get("/hardware-matrix", RestHandler(s.GetHardwareMatrix))
	r.Post("/upload", RestHandler(s.Upload))
}

// GetSensitivity returns the per-layer error profile for a job. The profile
// is synthesized deterministically from the job id; any id is valid,
// including one never uploaded.
func (s *BackendService) GetSensitivity(r *http.Request) (any, error) {
	jobID, err := URLParamString(r, "job_id")
	if err != nil {
		return nil, err
	}

	records := synth.Sensitivity(jobID)
	slog.Info("generated sensitivity profile", "job_id", jobID, "layers", len(records))
	return records, nil
}

// GetGraph returns the architecture graph for a job, shaped for direct
// consumption by the frontend's node-graph renderer.
func (s *BackendService) GetGraph(r *http.Request) (any, error) {
	jobID, err := URLParamString(r, "job_id")
	if err != nil {
		return nil, err
	}

	graph := synth.Graph(jobID)
	slog.Info("generated architecture graph", "job_id", jobID, "nodes", len(graph.Nodes))
	return graph, nil
}

func (s *BackendService) GetHardwareMatrix(r *http.Request) (any, error) {
	return synth.HardwareMatrix(), nil
}

// Upload echoes back the names and declared content types of the uploaded
// files plus the free-text metadata field. File contents are never read;
// nothing is stored.
func (s *BackendService) Upload(r *http.Request) (any, error) {
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		slog.Error("error parsing multipart form", "error", err)
		return nil, CodedErrorf(http.StatusBadRequest, "unable to parse multipart form")
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, CodedErrorf(http.StatusBadRequest, "missing required form file 'file'")
	}
	file.Close()

	resp := api.UploadResponse{
		Status: "ok",
		File: api.UploadedFileInfo{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
		},
	}

	if calib, calibHeader, err := r.FormFile("calibration_file"); err == nil {
		calib.Close()
		resp.CalibrationFile = &api.UploadedFileInfo{
			Filename:    calibHeader.Filename,
			ContentType: calibHeader.Header.Get("Content-Type"),
		}
	}

	if values, ok := r.MultipartForm.Value["metadata"]; ok && len(values) > 0 {
		resp.Metadata = &values[0]
	}

	slog.Info("received upload", "filename", header.Filename, "has_calibration", resp.CalibrationFile != nil)
	return resp, nil
}
