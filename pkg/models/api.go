package models

import (
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status  string    `json:"status" example:"healthy" doc:"Service health status"`
		Version string    `json:"version" example:"1.0.0" doc:"API version"`
		Time    time.Time `json:"time" doc:"Current server time"`
	}
}

// DatasetSummary describes one registry entry
type DatasetSummary struct {
	Key             string    `json:"key" doc:"Dataset identifier"`
	Title           string    `json:"title" doc:"Chart title"`
	Points          int       `json:"points" doc:"Number of recorded samples"`
	MinFrequency    float64   `json:"min_frequency" doc:"Lowest recorded frequency in Hz"`
	MaxFrequency    float64   `json:"max_frequency" doc:"Highest recorded frequency in Hz"`
	DefaultMarks    []float64 `json:"default_marks_hz" doc:"Frequencies annotated by default"`
	DefaultFilename string    `json:"default_filename" doc:"File name used when saving without an explicit path"`
}

// ListDatasetsResponse lists every dataset in registry order
type ListDatasetsResponse struct {
	Body struct {
		Datasets []DatasetSummary `json:"datasets" doc:"Registered datasets"`
	}
}

// GetDatasetRequest represents a request for one dataset and its markers
type GetDatasetRequest struct {
	Key    string `path:"key" enum:"r20,r2100,low,mid,high" doc:"Dataset identifier"`
	FMarks string `query:"fmarks" doc:"Comma-separated marker frequencies in Hz; dataset defaults when empty"`
}

// GetDatasetResponseBody is the body of the dataset response
type GetDatasetResponseBody struct {
	DatasetSummary
	FrequencyData []FrequencyPoint `json:"frequency_data" doc:"Recorded frequency response"`
	Markers       []Marker         `json:"markers" doc:"Resolved marker annotations"`
}

// GetDatasetResponse represents a dataset with its resolved markers
type GetDatasetResponse struct {
	Body GetDatasetResponseBody
}

// RenderChartRequest represents a request to render one chart
type RenderChartRequest struct {
	Key    string `path:"key" enum:"r20,r2100,low,mid,high" doc:"Dataset identifier"`
	DPI    int    `query:"dpi" default:"150" minimum:"1" maximum:"1200" doc:"Raster resolution in dots per inch"`
	FMarks string `query:"fmarks" doc:"Comma-separated marker frequencies in Hz; dataset defaults when empty"`
	Format string `query:"format" default:"png" enum:"png,jpg,jpeg,tif,tiff,svg,pdf,eps" doc:"Image format"`
}

// RenderChartResponse carries the encoded image
type RenderChartResponse struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// PublishChartRequest represents a request to render and upload one chart
type PublishChartRequest struct {
	Key    string `path:"key" enum:"r20,r2100,low,mid,high" doc:"Dataset identifier"`
	DPI    int    `query:"dpi" default:"150" minimum:"1" maximum:"1200" doc:"Raster resolution in dots per inch"`
	FMarks string `query:"fmarks" doc:"Comma-separated marker frequencies in Hz; dataset defaults when empty"`
}

// PublishChartResponseBody is the body of the publish response
type PublishChartResponseBody struct {
	Key       string    `json:"key" doc:"Object key of the uploaded chart"`
	URL       string    `json:"url" doc:"Pre-signed download URL"`
	ExpiresIn int       `json:"expires_in" doc:"URL expiration time in seconds"`
	CreatedAt time.Time `json:"created_at" doc:"Upload timestamp"`
}

// PublishChartResponse represents the result of publishing a chart
type PublishChartResponse struct {
	Body PublishChartResponseBody
}
