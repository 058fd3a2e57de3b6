package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/RMahshie/bodeplot/internal/chart"
	"github.com/RMahshie/bodeplot/internal/config"
	"github.com/RMahshie/bodeplot/internal/dataset"
	"github.com/RMahshie/bodeplot/internal/logging"
	"github.com/RMahshie/bodeplot/internal/output"
	"github.com/RMahshie/bodeplot/internal/processing"
	"github.com/RMahshie/bodeplot/internal/storage"
	"github.com/RMahshie/bodeplot/internal/viewer"
)

// run is main with its operating system fundamentals passed in. A nil error
// means every requested chart was produced.
func run(ctx context.Context, args []string, getenv func(key string) string, stdout, stderr io.Writer) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.LoadEnv(getenv)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	a := &app{
		cfg:      cfg,
		registry: dataset.Default(),
		fs:       afero.NewOsFs(),
		viewer:   viewer.New(),
		newS3:    newS3Service,
		stdout:   stdout,
		stderr:   stderr,
	}

	cmd := a.command()
	if len(args) > 0 {
		args = args[1:]
	}
	cmd.SetArgs(normalizeArgs(args))
	return cmd.ExecuteContext(ctx)
}

// app holds the collaborators of one invocation
type app struct {
	cfg      *config.Config
	registry *dataset.Registry
	fs       afero.Fs
	viewer   viewer.Viewer
	newS3    func(ctx context.Context, cfg config.AWSConfig) (storage.S3Service, error)
	stdout   io.Writer
	stderr   io.Writer
}

type options struct {
	save       string
	savePrefix string
	dpi        int
	noShow     bool
	noSave     bool
	fmarks     markList
	publish    bool
	logLevel   string
}

func (a *app) command() *cobra.Command {
	var opts options
	selectors := append(a.registry.Keys(), processing.SelectAll)

	cmd := &cobra.Command{
		Use:   "bodeplot {" + strings.Join(selectors, "|") + "}",
		Short: "Plot Bode curves and save to " + a.cfg.Output.Dir + " by default",
		Long: `Plot the recorded Bode magnitude sweeps.

Each chart is saved to its default file unless --save, --save-prefix or
--no-save say otherwise, then opened in the system viewer unless --no-show.
--save applies to a single dataset; --save-prefix applies to all.`,
		Example: `  bodeplot r2100 --no-show
  bodeplot all --save-prefix figs/bode_ --dpi 300 --no-show
  bodeplot mid --fmarks 100 1000 10000 --save mid.svg`,
		ValidArgs:     selectors,
		Args:          cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := opts.request(args[0])
			if err != nil {
				return err
			}
			// Arguments are valid; later failures are not usage errors
			cmd.SilenceUsage = true

			if err := logging.Setup(a.stderr, opts.logLevel); err != nil {
				return err
			}
			return a.execute(cmd.Context(), req)
		},
	}
	// Usage and help go to stderr; stdout carries only the confirmation lines
	cmd.SetOut(a.stderr)
	cmd.SetErr(a.stderr)

	flags := cmd.Flags()
	flags.StringVar(&opts.save, "save", "", "file to save the chart to, overriding the default path")
	flags.StringVar(&opts.savePrefix, "save-prefix", "", "file prefix for all, e.g. figs/bode_")
	flags.IntVar(&opts.dpi, "dpi", a.cfg.Output.DPI, "raster resolution in dots per inch")
	flags.BoolVar(&opts.noShow, "no-show", false, "do not open charts in the system viewer")
	flags.BoolVar(&opts.noSave, "no-save", false, "do not write any files")
	flags.Var(&opts.fmarks, "fmarks", "marker frequencies in Hz, space or comma separated")
	flags.BoolVar(&opts.publish, "publish", false, "upload charts to S3_BUCKET and print download links")
	flags.StringVar(&opts.logLevel, "log-level", a.cfg.Log.Level, "log level (debug, info, warn, error)")

	return cmd
}

// request validates the flags before anything is rendered
func (o *options) request(selector string) (processing.Request, error) {
	if o.dpi < chart.MinDPI || o.dpi > chart.MaxDPI {
		return processing.Request{}, fmt.Errorf("%w: --dpi must be between %d and %d, got %d",
			chart.ErrInvalidDPI, chart.MinDPI, chart.MaxDPI, o.dpi)
	}
	// --save is ignored for all, so its extension only matters for one dataset
	if o.save != "" && selector != processing.SelectAll {
		if _, err := chart.FormatFromPath(o.save); err != nil {
			return processing.Request{}, fmt.Errorf("--save: %w", err)
		}
	}
	if _, err := logging.ParseLevel(o.logLevel); err != nil {
		return processing.Request{}, fmt.Errorf("--log-level: %w", err)
	}

	return processing.Request{
		Selector:   selector,
		SavePath:   o.save,
		SavePrefix: o.savePrefix,
		DPI:        o.dpi,
		Marks:      o.fmarks.Marks(),
		Show:       !o.noShow,
		Save:       !o.noSave,
		Publish:    o.publish,
	}, nil
}

func (a *app) execute(ctx context.Context, req processing.Request) error {
	resolver := output.NewResolver(a.fs, a.cfg.Output.Dir)
	deps := processing.Deps{
		Registry: a.registry,
		Resolver: resolver,
		Fs:       a.fs,
		S3Prefix: a.cfg.AWS.S3Prefix,
		Viewer:   a.viewer,
		Stdout:   a.stdout,
	}
	if req.Publish && a.cfg.AWS.PublishEnabled() {
		s3Service, err := a.newS3(ctx, a.cfg.AWS)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 service: %w", err)
		}
		deps.S3 = s3Service
	}

	log.Debug().Str("selector", req.Selector).Str("output_dir", resolver.Dir()).Int("dpi", req.DPI).Bool("save", req.Save).Bool("show", req.Show).Msg("Starting report")

	_, err := processing.NewProcessingService(deps).Process(ctx, req)
	return err
}

func newS3Service(ctx context.Context, cfg config.AWSConfig) (storage.S3Service, error) {
	return storage.NewS3Service(ctx, storage.S3Config{
		Bucket:    cfg.S3Bucket,
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.Region,
		AccessKey: cfg.AccessKeyID,
		SecretKey: cfg.SecretAccessKey,
	})
}
