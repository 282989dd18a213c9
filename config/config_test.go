package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	apperrors "github.com/kbukum/lazycollect/errors"
)

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Name != "lazycollect" {
		t.Errorf("expected name 'lazycollect', got %q", cfg.Name)
	}
	if cfg.Environment != "development" {
		t.Errorf("expected 'development', got %q", cfg.Environment)
	}
	if cfg.Engine.SearchBatch != 1 {
		t.Errorf("expected search batch 1, got %d", cfg.Engine.SearchBatch)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected logging level 'info', got %q", cfg.Logging.Level)
	}
	if cfg.Telemetry.MetricInterval != 15*time.Second {
		t.Errorf("expected metric interval 15s, got %v", cfg.Telemetry.MetricInterval)
	}
}

func TestConfigValidate(t *testing.T) {
	valid := func() Config {
		var cfg Config
		cfg.ApplyDefaults()
		return cfg
	}
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults are valid", func(*Config) {}, ""},
		{"missing name", func(c *Config) { c.Name = "" }, "name: is required"},
		{"bad environment", func(c *Config) { c.Environment = "qa" }, "environment: must be one of"},
		{"negative concurrency", func(c *Config) { c.Engine.Concurrency = -1 }, "engine.concurrency: must be at least 0"},
		{"zero search batch", func(c *Config) { c.Engine.SearchBatch = 0 }, "engine.search_batch: must be at least 1"},
		{"sample rate above one", func(c *Config) { c.Telemetry.SampleRate = 2 }, "telemetry.sample_rate: must be at most 1"},
		{"telemetry without endpoint", func(c *Config) {
			c.Telemetry.Enabled = true
			c.Telemetry.Endpoint = ""
		}, "telemetry.endpoint: is required"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "logging: logging.level must be one of"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !apperrors.IsCode(err, apperrors.ErrCodeInvalidConfig) {
				t.Fatalf("expected INVALID_CONFIG, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error containing %q, got %q", tc.wantErr, err.Error())
			}
			appErr, _ := apperrors.AsAppError(err)
			if fields, ok := appErr.Details["fields"].([]FieldError); !ok || len(fields) == 0 {
				t.Errorf("expected field details, got %v", appErr.Details)
			}
		})
	}
}

func TestPipelineOptions(t *testing.T) {
	cfg := Config{Engine: EngineConfig{Concurrency: 4, SearchBatch: 2}}
	if got := len(cfg.PipelineOptions()); got != 2 {
		t.Errorf("expected 2 options, got %d", got)
	}
}

func TestTracerAndMeterConfig(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	cfg.Telemetry.SampleRate = 0.5

	tc := cfg.TracerConfig()
	if tc.ServiceName != "lazycollect" || tc.SampleRate != 0.5 || tc.Endpoint != "localhost:4318" {
		t.Errorf("unexpected tracer config: %+v", tc)
	}
	mc := cfg.MeterConfig()
	if mc.Interval != 15*time.Second || mc.Environment != "development" {
		t.Errorf("unexpected meter config: %+v", mc)
	}
}

func TestLoadWithYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	yamlContent := `
name: reports
environment: staging
engine:
  concurrency: 4
  search_batch: 2
logging:
  level: debug
telemetry:
  metric_interval: 5s
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	var cfg Config
	if err := Load("reports", &cfg, WithConfigFile(configPath), WithFileSystem(&RealFileSystem{})); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Name != "reports" || cfg.Environment != "staging" {
		t.Errorf("unexpected base fields: %+v", cfg)
	}
	if cfg.Engine.Concurrency != 4 || cfg.Engine.SearchBatch != 2 {
		t.Errorf("unexpected engine config: %+v", cfg.Engine)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected logging level debug, got %q", cfg.Logging.Level)
	}
	if cfg.Telemetry.MetricInterval != 5*time.Second {
		t.Errorf("expected metric interval 5s, got %v", cfg.Telemetry.MetricInterval)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(configPath, []byte("engine:\n  concurrency: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LAZYCOLLECT_ENGINE_CONCURRENCY", "8")
	t.Setenv("LAZYCOLLECT_ENGINE_SEARCH_BATCH", "3")
	t.Setenv("OTHER_ENGINE_CONCURRENCY", "99")

	var cfg Config
	if err := Load("svc", &cfg, WithConfigFile(configPath)); err != nil {
		t.Fatal(err)
	}
	if cfg.Engine.Concurrency != 8 {
		t.Errorf("expected concurrency 8 from env, got %d", cfg.Engine.Concurrency)
	}
	if cfg.Engine.SearchBatch != 3 {
		t.Errorf("expected search batch 3 from env, got %d", cfg.Engine.SearchBatch)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("LAZYCOLLECT_TELEMETRY_ENDPOINT=collector:4318\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("LAZYCOLLECT_TELEMETRY_ENDPOINT") })

	var cfg Config
	if err := Load("svc", &cfg, WithConfigFile(filepath.Join(dir, "missing.yml")), WithEnvFile(envPath)); err != nil {
		t.Fatal(err)
	}
	if cfg.Telemetry.Endpoint != "collector:4318" {
		t.Errorf("expected endpoint from .env, got %q", cfg.Telemetry.Endpoint)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(configPath, []byte("engine: [unclosed\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var cfg Config
	err := Load("svc", &cfg, WithConfigFile(configPath))
	if !apperrors.IsCode(err, apperrors.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	var cfg Config
	fs := &mockFS{files: map[string]bool{}}
	if err := Load("svc", &cfg, WithFileSystem(fs), WithConfigFile("/nonexistent/path.yml")); err != nil {
		t.Fatalf("expected Load to succeed with missing file, got %v", err)
	}
}

func TestResolverWithMockFS(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./config/reports.yaml": true,
		"./.env":                true,
	}}
	resolver := &Resolver{FileSystem: fs}
	files := resolver.ResolveFiles("reports", LoaderConfig{})
	if files.ConfigFile != "./config/reports.yaml" {
		t.Errorf("expected ./config/reports.yaml, got %q", files.ConfigFile)
	}
	if files.EnvFile != "./.env" {
		t.Errorf("expected ./.env, got %q", files.EnvFile)
	}

	explicit := resolver.ResolveFiles("reports", LoaderConfig{ConfigFile: "x.yml"})
	if explicit.ConfigFile != "x.yml" {
		t.Errorf("explicit path should win, got %q", explicit.ConfigFile)
	}
}

type mockFS struct {
	files map[string]bool
}

func (m *mockFS) Exists(path string) bool  { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error { return nil }

func TestGenerateEnvKeyVariants(t *testing.T) {
	got := generateEnvKeyVariants("ENGINE_SEARCH_BATCH")
	want := map[string]bool{
		"engine_search_batch": true,
		"engine.search.batch": true,
		"engine.search_batch": true,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for _, v := range got {
		if !want[v] {
			t.Errorf("unexpected variant %q", v)
		}
	}
}

func TestLoaderOptions(t *testing.T) {
	var lc LoaderConfig
	WithConfigFile("/path/to/config.yml")(&lc)
	WithEnvFile("/path/to/.env")(&lc)
	WithEnvPrefix("APP")(&lc)
	if lc.ConfigFile != "/path/to/config.yml" || lc.EnvFile != "/path/to/.env" || lc.EnvPrefix != "APP" {
		t.Errorf("unexpected loader config: %+v", lc)
	}
}
