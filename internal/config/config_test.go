package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/zlog"
)

func TestMain(m *testing.M) {
	zlog.Init()
	zlog.Logger = zlog.Logger.Output(os.Stderr)
	os.Exit(m.Run())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	assert.Equal(t, []string{".png", ".jpg", ".jpeg"}, cfg.Resize.Extensions)
	assert.Equal(t, "dist", cfg.Resize.OutputDir)
	assert.Equal(t, 80, cfg.Resize.MaxHeight)
	assert.Equal(t, []int{33, 50}, cfg.Resize.Percentages)
	assert.Equal(t, ".", cfg.Source.Dir)
	assert.False(t, cfg.Prompt.AssumeYes)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := []byte(`
resize:
  output_dir: out
  max_height: 120
  percentages: [25, 75, 100]
prompt:
  assume_yes: true
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "out", cfg.Resize.OutputDir)
	assert.Equal(t, 120, cfg.Resize.MaxHeight)
	assert.Equal(t, []int{25, 75, 100}, cfg.Resize.Percentages)
	assert.Equal(t, []string{".png", ".jpg", ".jpeg"}, cfg.Resize.Extensions)
	assert.True(t, cfg.Prompt.AssumeYes)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("NR_RESIZER_RESIZE_OUTPUT_DIR", "from-env")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Resize.OutputDir)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("resize: [unterminated"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func validConfig() Config {
	return Config{
		Resize: Resize{
			Extensions:  []string{".png"},
			OutputDir:   "dist",
			MaxHeight:   80,
			Percentages: []int{33, 50},
		},
		Source: Source{Dir: "."},
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
		ok     bool
	}{
		{"valid", func(c *Config) {}, true},
		{"no extensions", func(c *Config) { c.Resize.Extensions = nil }, false},
		{"extension without dot", func(c *Config) { c.Resize.Extensions = []string{"png"} }, false},
		{"bare dot", func(c *Config) { c.Resize.Extensions = []string{"."} }, false},
		{"empty output dir", func(c *Config) { c.Resize.OutputDir = "" }, false},
		{"zero max height", func(c *Config) { c.Resize.MaxHeight = 0 }, false},
		{"no percentages", func(c *Config) { c.Resize.Percentages = nil }, false},
		{"percentage too small", func(c *Config) { c.Resize.Percentages = []int{6} }, false},
		{"smallest percentage", func(c *Config) { c.Resize.Percentages = []int{7} }, true},
		{"duplicate percentage", func(c *Config) { c.Resize.Percentages = []int{50, 50} }, false},
		{"empty source dir defaults", func(c *Config) { c.Source.Dir = "" }, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := validConfig()
			c.mutate(&cfg)

			err := cfg.Validate()
			if c.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestMustLoad_PanicsOnInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("resize:\n  max_height: 0\n"), 0o644))

	assert.Panics(t, func() { MustLoad(path) })
}
