package handlers

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/bodeplot/internal/chart"
	"github.com/RMahshie/bodeplot/internal/dataset"
	"github.com/RMahshie/bodeplot/internal/marker"
	"github.com/RMahshie/bodeplot/internal/output"
	"github.com/RMahshie/bodeplot/internal/processing"
	"github.com/RMahshie/bodeplot/internal/storage"
	"github.com/RMahshie/bodeplot/pkg/models"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// ChartHandler handles dataset and chart HTTP requests
type ChartHandler struct {
	registry      *dataset.Registry
	processingSvc processing.ProcessingService
}

// NewChartHandler creates a new chart handler
func NewChartHandler(registry *dataset.Registry, processingSvc processing.ProcessingService) *ChartHandler {
	return &ChartHandler{
		registry:      registry,
		processingSvc: processingSvc,
	}
}

// Health reports that the service is up
func (h *ChartHandler) Health(ctx context.Context, input *struct{}) (*models.HealthResponse, error) {
	resp := &models.HealthResponse{}
	resp.Body.Status = "healthy"
	resp.Body.Version = Version
	resp.Body.Time = time.Now()
	return resp, nil
}

// ListDatasets returns a summary of every dataset in registry order
func (h *ChartHandler) ListDatasets(ctx context.Context, input *struct{}) (*models.ListDatasetsResponse, error) {
	resp := &models.ListDatasetsResponse{}
	resp.Body.Datasets = make([]models.DatasetSummary, 0, h.registry.Len())
	for _, ds := range h.registry.All() {
		resp.Body.Datasets = append(resp.Body.Datasets, summarize(ds))
	}
	return resp, nil
}

// GetDataset returns the recorded sweep and its resolved markers
func (h *ChartHandler) GetDataset(ctx context.Context, req *models.GetDatasetRequest) (*models.GetDatasetResponse, error) {
	ds, err := h.registry.Lookup(req.Key)
	if err != nil {
		return nil, huma.Error404NotFound("Dataset not found", err)
	}

	marks, err := parseMarks(req.FMarks, ds)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid marker frequencies", err)
	}

	markers, err := marker.Locate(ds, marks)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to locate markers", err)
	}

	resp := &models.GetDatasetResponse{}
	resp.Body.DatasetSummary = summarize(ds)
	resp.Body.FrequencyData = ds.Points()
	resp.Body.Markers = markers
	return resp, nil
}

// RenderChart renders a chart and returns the encoded image
func (h *ChartHandler) RenderChart(ctx context.Context, req *models.RenderChartRequest) (*models.RenderChartResponse, error) {
	log.Info().Str("dataset", req.Key).Int("dpi", req.DPI).Str("format", req.Format).Msg("Render request received")

	ds, err := h.registry.Lookup(req.Key)
	if err != nil {
		return nil, huma.Error404NotFound("Dataset not found", err)
	}

	format, err := chart.ParseFormat(req.Format)
	if err != nil {
		return nil, huma.Error400BadRequest("Unsupported image format", err)
	}

	marks, err := parseMarks(req.FMarks, ds)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid marker frequencies", err)
	}

	fig, err := chart.Render(ds, marks, req.DPI)
	if err != nil {
		return nil, chartError("Failed to render chart", err)
	}

	var buf bytes.Buffer
	if err := fig.Encode(&buf, format); err != nil {
		return nil, chartError("Failed to encode chart", err)
	}

	log.Info().Str("dataset", req.Key).Int("bytes", buf.Len()).Msg("Chart rendered")
	return &models.RenderChartResponse{
		ContentType: format.ContentType(),
		Body:        buf.Bytes(),
	}, nil
}

// PublishChart renders a PNG chart, uploads it and returns a download link
func (h *ChartHandler) PublishChart(ctx context.Context, req *models.PublishChartRequest) (*models.PublishChartResponse, error) {
	log.Info().Str("dataset", req.Key).Int("dpi", req.DPI).Msg("Publish request received")

	ds, err := h.registry.Lookup(req.Key)
	if err != nil {
		return nil, huma.Error404NotFound("Dataset not found", err)
	}

	marks, err := parseMarks(req.FMarks, ds)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid marker frequencies", err)
	}

	results, err := h.processingSvc.Process(ctx, processing.Request{
		Selector: ds.Key(),
		DPI:      req.DPI,
		Marks:    marks,
		Publish:  true,
	})
	if err != nil {
		return nil, chartError("Failed to publish chart", err)
	}
	if len(results) != 1 {
		return nil, huma.Error500InternalServerError("Failed to publish chart", nil)
	}

	log.Info().Str("dataset", req.Key).Str("key", results[0].ObjectKey).Msg("Chart published")

	resp := &models.PublishChartResponse{}
	resp.Body.Key = results[0].ObjectKey
	resp.Body.URL = results[0].URL
	resp.Body.ExpiresIn = int(storage.DownloadURLExpiry.Seconds())
	resp.Body.CreatedAt = time.Now()
	return resp, nil
}

func summarize(ds models.Dataset) models.DatasetSummary {
	freq := ds.Freq()
	return models.DatasetSummary{
		Key:             ds.Key(),
		Title:           ds.Title(),
		Points:          ds.Len(),
		MinFrequency:    freq[0],
		MaxFrequency:    freq[len(freq)-1],
		DefaultMarks:    ds.DefaultMarks(),
		DefaultFilename: output.DefaultFilenames[ds.Key()],
	}
}

// parseMarks reads the fmarks query value; blank means the dataset defaults
func parseMarks(s string, ds models.Dataset) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return ds.DefaultMarks(), nil
	}
	return marker.ParseList(s)
}

// chartError maps pipeline errors to HTTP status codes
func chartError(msg string, err error) error {
	switch {
	case errors.Is(err, dataset.ErrUnknownDataset):
		return huma.Error404NotFound("Dataset not found", err)
	case errors.Is(err, chart.ErrInvalidDPI), errors.Is(err, chart.ErrUnsupportedFormat):
		return huma.Error400BadRequest(msg, err)
	case errors.Is(err, processing.ErrPublishDisabled):
		return huma.Error503ServiceUnavailable("Chart publishing is not configured", err)
	default:
		log.Error().Err(err).Msg(msg)
		return huma.Error500InternalServerError(msg, err)
	}
}
