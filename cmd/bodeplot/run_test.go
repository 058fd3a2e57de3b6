package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/RMahshie/bodeplot/internal/chart"
	"github.com/RMahshie/bodeplot/internal/config"
	"github.com/RMahshie/bodeplot/internal/dataset"
	"github.com/RMahshie/bodeplot/internal/processing"
	"github.com/RMahshie/bodeplot/internal/storage"
)

// runIn executes run inside a fresh working directory with a fixed environment
func runIn(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Chdir(t.TempDir())

	env := map[string]string{"LOG_LEVEL": "error"}
	getenv := func(key string) string { return env[key] }

	var out, errOut bytes.Buffer
	err = run(context.Background(), append([]string{"bodeplot"}, args...), getenv, &out, &errOut)
	return out.String(), errOut.String(), err
}

// dirEntries lists everything below dir
func dirEntries(t *testing.T, dir string) []string {
	t.Helper()
	var found []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != dir {
			found = append(found, path)
		}
		return nil
	})
	require.NoError(t, err)
	return found
}

func TestRun_AllDefaults(t *testing.T) {
	stdout, _, err := runIn(t, "all", "--dpi", "10", "--no-show")
	require.NoError(t, err)

	want := []string{
		"docs/figures/bode_r2_0.png",
		"docs/figures/bode_r2_100.png",
		"docs/figures/bode_low.png",
		"docs/figures/bode_mid.png",
		"docs/figures/bode_high.png",
	}
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, len(want))
	for i, path := range want {
		assert.Equal(t, "[saved] "+path, lines[i])
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestRun_SingleWithSaveAndMarks(t *testing.T) {
	stdout, _, err := runIn(t, "mid", "--fmarks", "100", "1000", "--save", "out/mid.svg", "--no-show")
	require.NoError(t, err)
	assert.Equal(t, "[saved] out/mid.svg\n", stdout)

	data, err := os.ReadFile(filepath.Join("out", "mid.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestRun_NoSave(t *testing.T) {
	stdout, _, err := runIn(t, "all", "--save-prefix", "figs/bode_", "--no-save", "--no-show", "--dpi", "10")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	_, err = os.Stat("figs")
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat("docs")
	assert.True(t, os.IsNotExist(err))
}

func TestRun_NoSaveWithShowWritesNothing(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("TMPDIR", tmp)

	stdout, _, err := runIn(t, "r20", "--no-save", "--dpi", "10")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Empty(t, dirEntries(t, wd))
	for _, path := range dirEntries(t, tmp) {
		assert.NotContains(t, filepath.Base(path), "bodeplot", "unexpected preview file %s", path)
	}
}

func TestRun_SaveExtensionIgnoredForAll(t *testing.T) {
	stdout, _, err := runIn(t, "all", "--save", "chart.bmp", "--no-save", "--no-show", "--dpi", "10")
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "missing selector", args: []string{"--no-show"}},
		{name: "unknown selector", args: []string{"ultra", "--no-show"}},
		{name: "two selectors", args: []string{"mid", "high", "--no-show"}},
		{name: "malformed dpi", args: []string{"mid", "--dpi", "abc", "--no-show"}},
		{name: "malformed marker", args: []string{"mid", "--fmarks", "79", "abc", "--no-show"}},
		{name: "marker list swallows selector", args: []string{"--fmarks", "79", "all", "--no-show"}},
		{name: "dpi out of range", args: []string{"mid", "--dpi", "0", "--no-show"}, wantErr: chart.ErrInvalidDPI},
		{name: "unsupported extension", args: []string{"mid", "--save", "mid.bmp", "--no-show"}, wantErr: chart.ErrUnsupportedFormat},
		{name: "unknown flag", args: []string{"mid", "--colour", "--no-show"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := runIn(t, tt.args...)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Contains(t, stderr, "Usage:")
			assert.Empty(t, stdout)

			_, statErr := os.Stat("docs")
			assert.True(t, os.IsNotExist(statErr), "nothing is written on usage errors")
		})
	}
}

func TestRun_PublishWithoutBucket(t *testing.T) {
	_, stderr, err := runIn(t, "low", "--publish", "--no-save", "--no-show", "--dpi", "10")
	require.Error(t, err)
	assert.ErrorIs(t, err, processing.ErrPublishDisabled)
	assert.NotContains(t, stderr, "Usage:")
}

type recordingViewer struct {
	shown []string
	err   error
}

func (v *recordingViewer) Show(path string) error {
	v.shown = append(v.shown, path)
	return v.err
}

// MockS3Service implements storage.S3Service for testing
type MockS3Service struct {
	mock.Mock
}

func (m *MockS3Service) UploadFile(ctx context.Context, key string, contentType string, body io.Reader) error {
	args := m.Called(ctx, key, contentType, body)
	return args.Error(0)
}

func (m *MockS3Service) GenerateDownloadURL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockS3Service) DeleteFile(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func newTestApp(fs afero.Fs, v *recordingViewer, s3 storage.S3Service) (*app, *bytes.Buffer) {
	var out bytes.Buffer
	a := &app{
		cfg: &config.Config{
			Log:    config.LogConfig{Level: "error"},
			Output: config.OutputConfig{Dir: "docs/figures", DPI: 10},
			AWS:    config.AWSConfig{S3Bucket: "charts-bucket", S3Prefix: "charts"},
		},
		registry: dataset.Default(),
		fs:       fs,
		viewer:   v,
		newS3: func(ctx context.Context, cfg config.AWSConfig) (storage.S3Service, error) {
			if s3 == nil {
				return nil, errors.New("no storage")
			}
			return s3, nil
		},
		stdout: &out,
		stderr: io.Discard,
	}
	return a, &out
}

func execute(a *app, args ...string) error {
	cmd := a.command()
	cmd.SetArgs(normalizeArgs(args))
	return cmd.ExecuteContext(context.Background())
}

func TestCommand_ShowsEveryChart(t *testing.T) {
	v := &recordingViewer{}
	a, out := newTestApp(afero.NewMemMapFs(), v, nil)

	require.NoError(t, execute(a, "all"))
	assert.Equal(t, []string{
		"docs/figures/bode_r2_0.png",
		"docs/figures/bode_r2_100.png",
		"docs/figures/bode_low.png",
		"docs/figures/bode_mid.png",
		"docs/figures/bode_high.png",
	}, v.shown)
	assert.Equal(t, 5, strings.Count(out.String(), "[saved] "))
}

func TestCommand_ShowUnsaved(t *testing.T) {
	v := &recordingViewer{}
	a, out := newTestApp(afero.NewReadOnlyFs(afero.NewMemMapFs()), v, nil)

	require.NoError(t, execute(a, "high", "--no-save"))
	assert.Empty(t, v.shown)
	assert.Empty(t, out.String())
}

func TestCommand_SaveIgnoredForAll(t *testing.T) {
	fs := afero.NewMemMapFs()
	a, _ := newTestApp(fs, &recordingViewer{}, nil)

	require.NoError(t, execute(a, "all", "--save", "single.png", "--no-show"))

	exists, err := afero.Exists(fs, "single.png")
	require.NoError(t, err)
	assert.False(t, exists)
	exists, err = afero.Exists(fs, "docs/figures/bode_high.png")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCommand_PrefixIgnoredForSingle(t *testing.T) {
	fs := afero.NewMemMapFs()
	a, out := newTestApp(fs, &recordingViewer{}, nil)

	require.NoError(t, execute(a, "r2100", "--save-prefix", "figs/bode_", "--no-show"))
	assert.Equal(t, "[saved] docs/figures/bode_r2_100.png\n", out.String())
}

func TestCommand_ViewerFailureKeepsGoing(t *testing.T) {
	v := &recordingViewer{err: errors.New(`exec: "xdg-open": executable file not found in $PATH`)}
	a, out := newTestApp(afero.NewMemMapFs(), v, nil)

	require.NoError(t, execute(a, "all"))
	assert.Len(t, v.shown, 5)
	assert.Equal(t, 5, strings.Count(out.String(), "[saved] "))
}

func TestCommand_Publish(t *testing.T) {
	mockS3 := new(MockS3Service)
	mockS3.On("UploadFile", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "charts/") && strings.HasSuffix(key, "/bode_mid.png")
	}), "image/png", mock.Anything).Return(nil).Once()
	mockS3.On("GenerateDownloadURL", mock.Anything, mock.Anything).Return("http://minio.local/x", nil).Once()

	a, out := newTestApp(afero.NewMemMapFs(), &recordingViewer{}, mockS3)

	require.NoError(t, execute(a, "mid", "--publish", "--no-show"))
	assert.Equal(t, "[saved] docs/figures/bode_mid.png\n[published] http://minio.local/x\n", out.String())
	mockS3.AssertExpectations(t)
}

func TestCommand_PublishRemovesUnlinkedObject(t *testing.T) {
	mockS3 := new(MockS3Service)
	mockS3.On("UploadFile", mock.Anything, mock.Anything, "image/png", mock.Anything).Return(nil).Once()
	mockS3.On("GenerateDownloadURL", mock.Anything, mock.Anything).Return("", errors.New("signer down")).Once()
	mockS3.On("DeleteFile", mock.Anything, mock.Anything).Return(nil).Once()

	a, _ := newTestApp(afero.NewMemMapFs(), &recordingViewer{}, mockS3)

	err := execute(a, "low", "--publish", "--no-show")
	require.Error(t, err)
	mockS3.AssertExpectations(t)
}

func TestCommand_PublishStorageInitFailure(t *testing.T) {
	a, _ := newTestApp(afero.NewMemMapFs(), &recordingViewer{}, nil)

	err := execute(a, "mid", "--publish", "--no-show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize S3 service")
}
