package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/kbukum/querykit/errors"
)

func TestBaseConfigApplyDefaults(t *testing.T) {
	cfg := BaseConfig{}
	cfg.ApplyDefaults()
	if cfg.Name != DefaultServiceName {
		t.Errorf("expected name %q, got %q", DefaultServiceName, cfg.Name)
	}
	if cfg.Environment != "development" {
		t.Errorf("expected 'development', got %q", cfg.Environment)
	}

	cfg = BaseConfig{Name: "svc", Environment: "production"}
	cfg.ApplyDefaults()
	if cfg.Name != "svc" || cfg.Environment != "production" {
		t.Errorf("explicit values were overwritten: %+v", cfg)
	}
}

func TestBaseConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     BaseConfig
		wantErr bool
		errMsg  string
	}{
		{"valid development", BaseConfig{Name: "svc", Environment: "development"}, false, ""},
		{"valid staging", BaseConfig{Name: "svc", Environment: "staging"}, false, ""},
		{"valid production", BaseConfig{Name: "svc", Environment: "production"}, false, ""},
		{"missing name", BaseConfig{Environment: "production"}, true, "base.name is required"},
		{"invalid environment", BaseConfig{Name: "svc", Environment: "invalid"}, true, "base.environment must be one of"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !strings.Contains(err.Error(), tc.errMsg) {
					t.Errorf("expected error containing %q, got %q", tc.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSamplesConfigDefaults(t *testing.T) {
	c := DefaultSamplesConfig()
	if !slices.Equal(c.Default, []string{"distinct"}) {
		t.Errorf("expected default samples [distinct], got %v", c.Default)
	}
	if c.NamePrefix != "L" || c.Color != "Red" || c.MissingColor != "asdf" || c.WhilePrefix != "A" {
		t.Errorf("unexpected string defaults: %+v", c)
	}
	if c.ProductID != 706 || c.Take != 5 || c.Skip != 20 {
		t.Errorf("unexpected numeric defaults: %+v", c)
	}
	if c.MinCostAmount().String() != "100" {
		t.Errorf("expected min cost 100, got %s", c.MinCostAmount())
	}
	if err := c.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestSamplesConfigValidate(t *testing.T) {
	c := DefaultSamplesConfig()
	c.MinCost = "cheap"
	c.ProductID = -1

	err := c.Validate()
	if errors.Code(err) != errors.ErrCodeInvalidInput {
		t.Fatalf("expected INVALID_INPUT, got %v", err)
	}
	for _, field := range []string{"min_cost", "product_id"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("expected %s in %q", field, err.Error())
		}
	}
}

func TestConfigApplyDefaultsAndValidate(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Output != "stderr" {
		t.Errorf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Tracing.Enabled {
		t.Error("tracing should be disabled by default")
	}

	cfg = Config{Base: BaseConfig{Debug: true}}
	cfg.ApplyDefaults()
	if cfg.Logging.Level != "debug" {
		t.Errorf("debug mode should default the log level to debug, got %q", cfg.Logging.Level)
	}
}

func TestConfigValidate_PrefixesSamplesErrors(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	cfg.Samples.Take = -1
	err := cfg.Validate()
	if err == nil || !strings.HasPrefix(err.Error(), "samples: ") {
		t.Errorf("expected samples-prefixed error, got %v", err)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadConfigWithYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", `
base:
  name: test-service
  environment: staging
logging:
  level: warn
  format: json
tracing:
  enabled: true
  sample_rate: 0.5
samples:
  color: Black
  take: 3
  min_cost: 250.5
  default: [take, skip]
`)

	var cfg Config
	if err := LoadConfig("test-service", &cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Base.Name != "test-service" || cfg.Base.Environment != "staging" {
		t.Errorf("unexpected base: %+v", cfg.Base)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging: %+v", cfg.Logging)
	}
	if !cfg.Tracing.Enabled || cfg.Tracing.SampleRate != 0.5 {
		t.Errorf("unexpected tracing: %+v", cfg.Tracing)
	}
	if cfg.Samples.Color != "Black" || cfg.Samples.Take != 3 || cfg.Samples.MinCost != "250.5" {
		t.Errorf("unexpected samples: %+v", cfg.Samples)
	}
	if !slices.Equal(cfg.Samples.Default, []string{"take", "skip"}) {
		t.Errorf("unexpected default samples: %v", cfg.Samples.Default)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", "samples:\n  color: Black\n  take: 3\n")
	t.Setenv("QUERYKIT_SAMPLES_COLOR", "Silver")
	t.Setenv("QUERYKIT_SAMPLES_NAME_PREFIX", "HL")
	t.Setenv("SAMPLES_TAKE", "9")

	var cfg Config
	if err := LoadConfig("test-service", &cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Samples.Color != "Silver" {
		t.Errorf("expected env override Silver, got %q", cfg.Samples.Color)
	}
	if cfg.Samples.NamePrefix != "HL" {
		t.Errorf("expected underscore key override HL, got %q", cfg.Samples.NamePrefix)
	}
	if cfg.Samples.Take != 3 {
		t.Errorf("unprefixed variables must be ignored, got take=%d", cfg.Samples.Take)
	}
}

func TestLoadConfigEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", "samples:\n  skip: 4\n")
	envPath := writeFile(t, dir, ".env", "QUERYKIT_SAMPLES_SKIP=7\n")
	t.Cleanup(func() { os.Unsetenv("QUERYKIT_SAMPLES_SKIP") })

	var cfg Config
	if err := LoadConfig("test-service", &cfg, WithConfigFile(path), WithEnvFile(envPath)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Samples.Skip != 7 {
		t.Errorf("expected .env override 7, got %d", cfg.Samples.Skip)
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	var cfg Config
	err := LoadConfig("test-service", &cfg, WithConfigFile("/nonexistent/path.yml"))
	if !errors.IsNotFound(err) {
		t.Fatalf("expected NOT_FOUND for a missing explicit file, got %v", err)
	}
}

func TestLoadConfigNoFileFound(t *testing.T) {
	var cfg Config
	err := LoadConfig("test-service", &cfg, WithFileSystem(&mockFS{files: map[string]bool{}}))
	if err != nil {
		t.Fatalf("expected LoadConfig to succeed without a config file, got %v", err)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", "samples: [unclosed\n")
	var cfg Config
	err := LoadConfig("test-service", &cfg, WithConfigFile(path))
	if errors.Code(err) != errors.ErrCodeInvalidFormat {
		t.Fatalf("expected INVALID_FORMAT, got %v", err)
	}
}

func TestResolverWithMockFS(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		filepath.Join("cmd", "my-svc", "config.yml"): true,
		filepath.Join("cmd", "my-svc", ".env"):       true,
		".env":                                        true,
	}}
	resolver := &Resolver{FileSystem: fs}
	files := resolver.ResolveFiles("my-svc", LoaderConfig{})
	if files.ConfigFile != filepath.Join("cmd", "my-svc", "config.yml") {
		t.Errorf("expected config file in cmd/my-svc, got %q", files.ConfigFile)
	}
	if files.EnvFile != filepath.Join("cmd", "my-svc", ".env") {
		t.Errorf("expected env file in cmd/my-svc, got %q", files.EnvFile)
	}
}

func TestResolverPrefersServiceEnvFile(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		".env":              true,
		".env.querysamples": true,
	}}
	files := (&Resolver{FileSystem: fs}).ResolveFiles("querysamples", LoaderConfig{})
	if files.EnvFile != ".env.querysamples" {
		t.Errorf("expected .env.querysamples, got %q", files.EnvFile)
	}
}

func TestResolverExplicitPathsWin(t *testing.T) {
	fs := &mockFS{files: map[string]bool{"config.yml": true}}
	files := (&Resolver{FileSystem: fs}).ResolveFiles("svc", LoaderConfig{ConfigFile: "/etc/q.yml", EnvFile: "/etc/q.env"})
	if files.ConfigFile != "/etc/q.yml" || files.EnvFile != "/etc/q.env" {
		t.Errorf("explicit paths should be kept, got %+v", files)
	}
}

type mockFS struct {
	files map[string]bool
}

func (m *mockFS) Exists(path string) bool { return m.files[filepath.Clean(path)] }
func (m *mockFS) LoadEnv(string) error    { return nil }

func TestGenerateEnvKeyVariants(t *testing.T) {
	got := generateEnvKeyVariants("SAMPLES_NAME_PREFIX")
	want := []string{"samples_name_prefix", "samples.name.prefix", "samples.name_prefix", "samples_name.prefix"}
	if !slices.Equal(got, want) {
		t.Errorf("variants = %v, want %v", got, want)
	}
	if got := generateEnvKeyVariants("DEBUG"); !slices.Equal(got, []string{"debug"}) {
		t.Errorf("single-part key variants = %v", got)
	}
}

func TestLoaderOptions(t *testing.T) {
	var lc LoaderConfig
	fs := &mockFS{}
	WithFileSystem(fs)(&lc)
	WithConfigFile("/path/to/config.yml")(&lc)
	WithEnvFile("/path/to/.env")(&lc)
	if lc.FileSystem == nil || lc.ConfigFile != "/path/to/config.yml" || lc.EnvFile != "/path/to/.env" {
		t.Errorf("unexpected loader config: %+v", lc)
	}
}
