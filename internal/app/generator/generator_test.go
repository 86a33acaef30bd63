package generator

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"opsdash/internal/app/errors"
	"opsdash/internal/config"
	"opsdash/internal/config/logger"
)

func newTestLogger(ctrl *gomock.Controller) *logger.MockLogger {
	mockLog := logger.NewMockLogger(ctrl)
	noopLogger := zerolog.New(io.Discard)
	noopEvent := noopLogger.Info()
	mockLog.EXPECT().Info().Return(noopEvent).AnyTimes()

	return mockLog
}

// inTempDir switches the working directory for the duration of the test
func inTempDir(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	oldDir, _ := os.Getwd()

	t.Cleanup(func() { _ = os.Chdir(oldDir) })

	require.NoError(t, os.Chdir(tmpDir))

	return tmpDir
}

func Test_DefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, config.DefaultTickInterval, opts.Interval)
	assert.Equal(t, config.DefaultBufferCapacity, opts.Capacity)
	assert.Equal(t, config.DefaultLevelFilter, opts.Level)
	assert.True(t, opts.Watch)
}

func Test_NewGenerator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gen := NewGenerator(newTestLogger(ctrl))
	assert.NotNil(t, gen)
}

func Test_Generator_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tmpDir := inTempDir(t)

	gen := NewGenerator(newTestLogger(ctrl))

	err := gen.Generate(DefaultOptions(), false, false)
	assert.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(tmpDir, config.FileName))
	require.NoError(t, err)
	assert.Contains(t, string(content), "interval: 1.2s")
	assert.Contains(t, string(content), "capacity: 120")
	assert.Contains(t, string(content), "level: ALL")
	assert.Contains(t, string(content), "#  - catalog/**/*.yaml")
}

func Test_Generator_Generate_LoadsAsConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tmpDir := inTempDir(t)

	opts := DefaultOptions()
	opts.Interval = 250 * time.Millisecond
	opts.Capacity = 40
	opts.Level = "WARN"
	opts.Watch = false

	gen := NewGenerator(newTestLogger(ctrl))
	require.NoError(t, gen.Generate(opts, false, false))

	cfg, err := config.LoadFile(filepath.Join(tmpDir, config.FileName))
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.Stream.Interval)
	assert.Equal(t, 40, cfg.Stream.Capacity)
	assert.Equal(t, "WARN", cfg.Stream.Level)
	assert.False(t, cfg.Catalog.Watch)
	assert.Empty(t, cfg.Catalog.Paths)
	assert.Equal(t, config.DefaultCatalogDebounce, cfg.Catalog.Debounce)
}

func Test_Generator_Generate_FileExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inTempDir(t)
	_ = os.WriteFile(config.FileName, []byte("existing"), 0600)

	gen := NewGenerator(newTestLogger(ctrl))

	err := gen.Generate(DefaultOptions(), false, false)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrFileExists))
	assert.Contains(t, err.Error(), "--force")
}

func Test_Generator_Generate_ForceOverwrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inTempDir(t)
	_ = os.WriteFile(config.FileName, []byte("existing"), 0600)

	gen := NewGenerator(newTestLogger(ctrl))

	err := gen.Generate(DefaultOptions(), true, false)
	assert.NoError(t, err)

	content, err := os.ReadFile(config.FileName)
	assert.NoError(t, err)
	assert.Contains(t, string(content), "stream:")
}

func Test_Generator_Generate_DryRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inTempDir(t)
	_ = os.WriteFile(config.FileName, []byte("existing"), 0600)

	var out bytes.Buffer

	gen := &generator{path: config.FileName, out: &out, log: newTestLogger(ctrl)}

	err := gen.Generate(DefaultOptions(), false, true)
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "interval: 1.2s")

	content, err := os.ReadFile(config.FileName)
	assert.NoError(t, err)
	assert.Equal(t, "existing", string(content), "dry run leaves the file alone")
}
