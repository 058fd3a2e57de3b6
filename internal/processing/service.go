package processing

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/RMahshie/bodeplot/internal/chart"
	"github.com/RMahshie/bodeplot/internal/dataset"
	"github.com/RMahshie/bodeplot/internal/output"
	"github.com/RMahshie/bodeplot/internal/storage"
	"github.com/RMahshie/bodeplot/internal/viewer"
	"github.com/RMahshie/bodeplot/pkg/models"
)

// SelectAll renders every registered dataset in registry order
const SelectAll = "all"

// ErrPublishDisabled is returned when publishing is requested without a bucket
var ErrPublishDisabled = errors.New("publishing requires S3_BUCKET to be configured")

// Request describes one invocation of the report generator
type Request struct {
	// Selector is a dataset key or SelectAll
	Selector string
	// SavePath is an explicit destination, honoured for single datasets only
	SavePath string
	// SavePrefix yields {prefix}{key}.png, honoured for SelectAll only
	SavePrefix string
	DPI        int
	// Marks overrides the dataset defaults when non-nil
	Marks   []float64
	Show    bool
	Save    bool
	Publish bool
}

// Result reports what happened to one dataset
type Result struct {
	Key       string
	Path      string
	ObjectKey string
	URL       string
	Markers   []models.Marker
}

// ProcessingService renders, saves, publishes and shows charts
type ProcessingService interface {
	Process(ctx context.Context, req Request) ([]Result, error)
}

// Deps are the collaborators of the processing service. S3 and Viewer may be nil
// when publishing or display are never requested.
type Deps struct {
	Registry *dataset.Registry
	Resolver *output.Resolver
	Fs       afero.Fs
	S3       storage.S3Service
	S3Prefix string
	Viewer   viewer.Viewer
	Stdout   io.Writer
}

type processingService struct {
	registry *dataset.Registry
	resolver *output.Resolver
	fs       afero.Fs
	s3       storage.S3Service
	s3Prefix string
	viewer   viewer.Viewer
	out      io.Writer
}

// NewProcessingService wires the render pipeline
func NewProcessingService(deps Deps) ProcessingService {
	if deps.Registry == nil {
		deps.Registry = dataset.Default()
	}
	if deps.Fs == nil {
		deps.Fs = afero.NewOsFs()
	}
	if deps.Resolver == nil {
		deps.Resolver = output.NewResolver(deps.Fs, output.DefaultDir)
	}
	if deps.Stdout == nil {
		deps.Stdout = io.Discard
	}
	return &processingService{
		registry: deps.Registry,
		resolver: deps.Resolver,
		fs:       deps.Fs,
		s3:       deps.S3,
		s3Prefix: deps.S3Prefix,
		viewer:   deps.Viewer,
		out:      deps.Stdout,
	}
}

// Process renders the selected datasets one after another. The first failure
// aborts the remaining datasets; results for completed datasets are returned.
func (s *processingService) Process(ctx context.Context, req Request) ([]Result, error) {
	datasets, err := s.selectDatasets(req.Selector)
	if err != nil {
		return nil, err
	}
	if req.Publish && s.s3 == nil {
		return nil, ErrPublishDisabled
	}
	if req.Show && s.viewer == nil {
		return nil, fmt.Errorf("no viewer configured")
	}

	batch := req.Selector == SelectAll
	runID := uuid.New()

	results := make([]Result, 0, len(datasets))
	for _, ds := range datasets {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := s.processOne(ctx, ds, req, batch, runID)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}

	log.Info().Str("selector", req.Selector).Int("charts", len(results)).Msg("Report complete")
	return results, nil
}

func (s *processingService) selectDatasets(selector string) ([]models.Dataset, error) {
	if selector == SelectAll {
		return s.registry.All(), nil
	}
	ds, err := s.registry.Lookup(selector)
	if err != nil {
		return nil, err
	}
	return []models.Dataset{ds}, nil
}

func (s *processingService) processOne(ctx context.Context, ds models.Dataset, req Request, batch bool, runID uuid.UUID) (Result, error) {
	// Step 1: Pick the destination
	explicit := ""
	if !batch {
		explicit = req.SavePath
	}
	path, err := s.resolver.Resolve(ds.Key(), output.Options{
		Path:   explicit,
		Prefix: req.SavePrefix,
		Batch:  batch,
		Save:   req.Save,
	})
	if err != nil {
		return Result{}, err
	}

	// Step 2: Render
	fig, err := chart.Render(ds, req.Marks, req.DPI)
	if err != nil {
		return Result{}, fmt.Errorf("failed to render %s: %w", ds.Key(), err)
	}
	log.Debug().Str("dataset", ds.Key()).Int("dpi", req.DPI).Int("markers", len(fig.Markers())).Msg("Chart rendered")

	res := Result{Key: ds.Key(), Path: path, Markers: fig.Markers()}

	if path == "" && !req.Publish {
		s.show(req, ds.Key(), path)
		return res, nil
	}

	// Step 3: Encode once for disk and bucket
	format := chart.FormatPNG
	if path != "" {
		if format, err = chart.FormatFromPath(path); err != nil {
			return Result{}, err
		}
	}
	var buf bytes.Buffer
	if err := fig.Encode(&buf, format); err != nil {
		return Result{}, fmt.Errorf("failed to encode %s: %w", ds.Key(), err)
	}

	// Step 4: Save
	if path != "" {
		if err := afero.WriteFile(s.fs, path, buf.Bytes(), 0o644); err != nil {
			return Result{}, fmt.Errorf("failed to save %s: %w", path, err)
		}
		fmt.Fprintf(s.out, "[saved] %s\n", path)
		log.Info().Str("dataset", ds.Key()).Str("path", path).Msg("Chart saved")
	}

	// Step 5: Publish
	if req.Publish {
		name := output.DefaultFilenames[ds.Key()]
		if path != "" {
			name = filepath.Base(path)
		}
		if name == "" {
			name = ds.Key() + ".png"
		}
		res.ObjectKey = storage.ChartKey(s.s3Prefix, runID, name)
		if err := s.s3.UploadFile(ctx, res.ObjectKey, format.ContentType(), bytes.NewReader(buf.Bytes())); err != nil {
			return Result{}, fmt.Errorf("failed to publish %s: %w", ds.Key(), err)
		}
		res.URL, err = s.s3.GenerateDownloadURL(ctx, res.ObjectKey)
		if err != nil {
			// An object nobody can link to is removed again
			if delErr := s.s3.DeleteFile(ctx, res.ObjectKey); delErr != nil {
				log.Warn().Err(delErr).Str("key", res.ObjectKey).Msg("Failed to remove unlinked chart")
			}
			return Result{}, fmt.Errorf("failed to publish %s: %w", ds.Key(), err)
		}
		fmt.Fprintf(s.out, "[published] %s\n", res.URL)
		log.Info().Str("dataset", ds.Key()).Str("key", res.ObjectKey).Msg("Chart published")
	}

	// Step 6: Show
	s.show(req, ds.Key(), path)
	return res, nil
}

// show opens a saved chart. Unsaved charts and viewer failures only warn.
func (s *processingService) show(req Request, key, path string) {
	if !req.Show {
		return
	}
	if path == "" {
		log.Warn().Str("dataset", key).Msg("Chart was not saved; nothing to show")
		return
	}
	if err := s.viewer.Show(path); err != nil {
		log.Warn().Err(err).Str("dataset", key).Str("path", path).Msg("Failed to open chart viewer")
	}
}
