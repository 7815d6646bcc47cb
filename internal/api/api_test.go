package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	backend "hyperdrive-backend/internal/api"
	"hyperdrive-backend/internal/synth"
	"hyperdrive-backend/pkg/api"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createRouter() chi.Router {
	service := backend.NewBackendService(32 << 20)
	router := chi.NewRouter()
	router.Route("/api", func(r chi.Router) {
		service.AddRoutes(r)
	})
	return router
}

func doRequest(t *testing.T, router chi.Router, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	router := createRouter()

	rec := doRequest(t, router, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetSensitivity(t *testing.T) {
	router := createRouter()

	rec := doRequest(t, router, httptest.NewRequest(http.MethodGet, "/api/jobs/abc/sensitivity", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var records []api.SensitivityRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	assert.Equal(t, synth.Sensitivity("abc"), records)

	// same identifier, same payload, byte for byte
	rec2 := doRequest(t, router, httptest.NewRequest(http.MethodGet, "/api/jobs/abc/sensitivity", nil))
	require.Equal(t, http.StatusOK, rec2.Code)
	assert.Equal(t, rec.Body.String(), rec2.Body.String())
}

func TestGetSensitivityUnknownJobStillSucceeds(t *testing.T) {
	router := createRouter()

	rec := doRequest(t, router, httptest.NewRequest(http.MethodGet, "/api/jobs/never-uploaded-9bf2/sensitivity", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var records []api.SensitivityRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	assert.GreaterOrEqual(t, len(records), 6)
	assert.LessOrEqual(t, len(records), 12)
}

func TestGetGraph(t *testing.T) {
	router := createRouter()

	rec := doRequest(t, router, httptest.NewRequest(http.MethodGet, "/api/jobs/abc/graph", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var graph api.Graph
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &graph))
	assert.Equal(t, synth.Graph("abc"), graph)
	assert.Len(t, graph.Nodes, 7)
	assert.Len(t, graph.Edges, 6)

	// the node shape feeds the frontend renderer directly: nested data,
	// position, and an explicit empty style map
	var raw struct {
		Nodes []map[string]json.RawMessage `json:"nodes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	for _, node := range raw.Nodes {
		assert.Contains(t, node, "data")
		assert.Contains(t, node, "position")
		assert.JSONEq(t, "{}", string(node["style"]))
	}
}

func TestGetHardwareMatrix(t *testing.T) {
	router := createRouter()

	rec := doRequest(t, router, httptest.NewRequest(http.MethodGet, "/api/hardware-matrix", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var options []api.HardwareOption
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &options))
	assert.Equal(t, synth.HardwareMatrix(), options)
	require.Len(t, options, 6)
	assert.Equal(t, "cpu-small", options[0].Name)

	// static table: identical on every call
	rec2 := doRequest(t, router, httptest.NewRequest(http.MethodGet, "/api/hardware-matrix", nil))
	assert.Equal(t, rec.Body.String(), rec2.Body.String())
}

func multipartBody(t *testing.T, build func(w *multipart.Writer)) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	build(writer)
	require.NoError(t, writer.Close())
	return buf, writer.FormDataContentType()
}

func TestUpload(t *testing.T) {
	router := createRouter()

	body, contentType := multipartBody(t, func(w *multipart.Writer) {
		f, err := w.CreateFormFile("file", "model.bin")
		require.NoError(t, err)
		_, err = io.WriteString(f, "not a real model")
		require.NoError(t, err)

		c, err := w.CreateFormFile("calibration_file", "calibration_data.jsonl")
		require.NoError(t, err)
		_, err = io.WriteString(c, "{}\n")
		require.NoError(t, err)

		require.NoError(t, w.WriteField("metadata", "uploaded from test"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := doRequest(t, router, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "model.bin", resp.File.Filename)
	assert.Equal(t, "application/octet-stream", resp.File.ContentType)
	require.NotNil(t, resp.CalibrationFile)
	assert.Equal(t, "calibration_data.jsonl", resp.CalibrationFile.Filename)
	require.NotNil(t, resp.Metadata)
	assert.Equal(t, "uploaded from test", *resp.Metadata)
}

func TestUploadWithoutOptionalFields(t *testing.T) {
	router := createRouter()

	body, contentType := multipartBody(t, func(w *multipart.Writer) {
		f, err := w.CreateFormFile("file", "model.bin")
		require.NoError(t, err)
		_, err = io.WriteString(f, "not a real model")
		require.NoError(t, err)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := doRequest(t, router, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Nil(t, resp.CalibrationFile)
	assert.Nil(t, resp.Metadata)

	// absent optional fields serialize as explicit nulls
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Equal(t, "null", string(raw["calibration_file"]))
	assert.Equal(t, "null", string(raw["metadata"]))
}

func TestUploadMissingRequiredFile(t *testing.T) {
	router := createRouter()

	body, contentType := multipartBody(t, func(w *multipart.Writer) {
		require.NoError(t, w.WriteField("metadata", "no file attached"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := doRequest(t, router, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadRejectsNonMultipart(t *testing.T) {
	router := createRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/upload", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")

	rec := doRequest(t, router, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
