package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/RMahshie/bodeplot/internal/api/handlers"
	"github.com/RMahshie/bodeplot/internal/dataset"
	"github.com/RMahshie/bodeplot/internal/processing"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(api huma.API, registry *dataset.Registry, processingSvc processing.ProcessingService) {
	chartHandler := handlers.NewChartHandler(registry, processingSvc)

	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns the health status of the service",
	}, chartHandler.Health)

	// Dataset routes
	huma.Register(api, huma.Operation{
		OperationID: "listDatasets",
		Method:      http.MethodGet,
		Path:        "/api/datasets",
		Summary:     "List datasets",
		Description: "Returns every recorded sweep in registry order",
		Tags:        []string{"Datasets"},
	}, chartHandler.ListDatasets)

	huma.Register(api, huma.Operation{
		OperationID: "getDataset",
		Method:      http.MethodGet,
		Path:        "/api/datasets/{key}",
		Summary:     "Get dataset",
		Description: "Returns the recorded frequency response with the samples closest to the marker frequencies",
		Tags:        []string{"Datasets"},
	}, chartHandler.GetDataset)

	// Chart routes
	huma.Register(api, huma.Operation{
		OperationID: "renderChart",
		Method:      http.MethodGet,
		Path:        "/api/charts/{key}",
		Summary:     "Render chart",
		Description: "Renders the Bode magnitude chart of a dataset",
		Tags:        []string{"Charts"},
	}, chartHandler.RenderChart)

	huma.Register(api, huma.Operation{
		OperationID:   "publishChart",
		Method:        http.MethodPost,
		Path:          "/api/charts/{key}/publish",
		Summary:       "Publish chart",
		Description:   "Renders a PNG chart, uploads it to object storage and returns a pre-signed download URL",
		Tags:          []string{"Charts"},
		DefaultStatus: http.StatusCreated,
	}, chartHandler.PublishChart)
}
