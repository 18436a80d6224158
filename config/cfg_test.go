package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Fragments.TemplateName() != "index.html" {
		t.Errorf("TemplateName() = %q, want index.html", cfg.Fragments.TemplateName())
	}
	if cfg.Fragments.Missing != MissingFragmentBehaviorStop {
		t.Errorf("Missing = %s, want stop", cfg.Fragments.Missing)
	}
	if len(cfg.Fragments.BaseDir) == 0 {
		t.Error("expected non-empty default base_dir")
	}
	if len(cfg.Fragments.Archive) != 0 {
		t.Errorf("Archive = %q, want empty", cfg.Fragments.Archive)
	}
}

func TestLoadConfiguration_Environment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FRAGD_BASE_DIR", dir)
	t.Setenv("FRAGD_MISSING", "continue")
	t.Setenv("FRAGD_LOG_LEVEL", "debug")

	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if cfg.Fragments.BaseDir != filepath.Clean(dir) {
		t.Errorf("BaseDir = %q, want %q", cfg.Fragments.BaseDir, dir)
	}
	if cfg.Fragments.Missing != MissingFragmentBehaviorContinue {
		t.Errorf("Missing = %s, want continue", cfg.Fragments.Missing)
	}
	if cfg.Logging.ConsoleLogger.Level != "debug" {
		t.Errorf("console level = %q, want debug", cfg.Logging.ConsoleLogger.Level)
	}
}

func TestLoadConfiguration_Archive(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "empty", value: "", want: ""},
		{name: "bundle", value: "bundle.zip", want: "bundle.zip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("FRAGD_ARCHIVE", tt.value)

			cfg, err := LoadConfiguration("")
			if err != nil {
				t.Fatalf("LoadConfiguration() error = %v", err)
			}
			if cfg.Fragments.Archive != tt.want {
				t.Errorf("Archive = %q, want %q", cfg.Fragments.Archive, tt.want)
			}

			data, err := Prepare()
			if err != nil {
				t.Fatalf("Prepare() error = %v", err)
			}
			if _, err := Dump(cfg); err != nil {
				t.Fatalf("Dump() error = %v", err)
			}
			if len(data) == 0 {
				t.Error("Prepare() returned nothing")
			}
		})
	}
}

func TestLoadConfiguration_InvalidEnvironment(t *testing.T) {
	t.Setenv("FRAGD_MISSING", "sometimes")

	_, err := LoadConfiguration("")
	if err == nil {
		t.Fatal("expected error for invalid missing fragment behavior")
	}
	if !errors.Is(err, ErrInvalidMissingFragmentBehavior) {
		t.Errorf("error = %v, want ErrInvalidMissingFragmentBehavior", err)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
fragments:
  base_dir: ` + tmpDir + `/fragments/../fragments
  index_name: fragment
  extension: htm
  missing: continue
logging:
  console:
    level: none
  file:
    level: normal
    destination: ` + tmpDir + `/fragd.log
    mode: append
reporting:
  destination: ` + tmpDir + `/report.zip
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Fragments.BaseDir != filepath.Join(tmpDir, "fragments") {
		t.Errorf("BaseDir = %q, want cleaned path", cfg.Fragments.BaseDir)
	}
	if cfg.Fragments.TemplateName() != "fragment.htm" {
		t.Errorf("TemplateName() = %q, want fragment.htm", cfg.Fragments.TemplateName())
	}
	if cfg.Fragments.Missing != MissingFragmentBehaviorContinue {
		t.Errorf("Missing = %s, want continue", cfg.Fragments.Missing)
	}
	if cfg.Logging.FileLogger.Mode != "append" {
		t.Errorf("file mode = %q, want append", cfg.Logging.FileLogger.Mode)
	}
}

func TestLoadConfiguration_UnknownField(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("version: 1\nport: 8080\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := LoadConfiguration(configPath); err == nil {
		t.Fatal("expected error for unknown configuration field")
	}
}

func TestLoadConfiguration_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "wrong version", content: "version: 2\n"},
		{name: "bad console level", content: "version: 1\nlogging:\n  console:\n    level: loud\n"},
		{name: "index with slash", content: "version: 1\nfragments:\n  index_name: a/b\n"},
		{name: "extension with dot", content: "version: 1\nfragments:\n  extension: .html\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to write config file: %v", err)
			}
			if _, err := LoadConfiguration(configPath); err == nil {
				t.Errorf("expected validation error for %q", tt.content)
			}
		})
	}
}

func TestLoadConfiguration_MissingFile(t *testing.T) {
	_, err := LoadConfiguration(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing configuration file")
	}
	if !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	cfg.Fragments.Missing = MissingFragmentBehaviorContinue

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	out := string(data)
	for _, want := range []string{"version: 1", "missing: continue", "index_name: index", "extension: html"} {
		if !strings.Contains(out, want) {
			t.Errorf("Dump() output missing %q:\n%s", want, out)
		}
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if strings.Contains(string(data), "{{") {
		t.Errorf("Prepare() left unexpanded template actions:\n%s", data)
	}
}

func TestMissingFragmentBehavior_Text(t *testing.T) {
	for _, name := range MissingFragmentBehaviorNames() {
		var m MissingFragmentBehavior
		if err := m.UnmarshalText([]byte(name)); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", name, err)
		}
		out, err := m.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText() error = %v", err)
		}
		if string(out) != name {
			t.Errorf("MarshalText() = %q, want %q", out, name)
		}
	}
	if MissingFragmentBehavior(7).IsValid() {
		t.Error("expected out of range value to be invalid")
	}
}
