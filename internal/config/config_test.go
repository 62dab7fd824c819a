package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGlobalPath(t *testing.T) {
	t.Run("with XDG_CONFIG_HOME set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		got := GlobalPath()
		want := "/custom/config/planterm/planterm.yml"
		if got != want {
			t.Errorf("GlobalPath() = %v, want %v", got, want)
		}
	})

	t.Run("without XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		got := GlobalPath()
		if !filepath.IsAbs(got) {
			t.Errorf("GlobalPath() should return absolute path, got %v", got)
		}
		if filepath.Base(got) != "planterm.yml" {
			t.Errorf("GlobalPath() should end with planterm.yml, got %v", got)
		}
	})
}

func TestProjectPath(t *testing.T) {
	got := ProjectPath()
	want := "planterm.yml"
	if got != want {
		t.Errorf("ProjectPath() = %v, want %v", got, want)
	}
}

func TestExists(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))

	t.Run("no config exists", func(t *testing.T) {
		if Exists() {
			t.Error("Exists() = true, want false when no config files exist")
		}
	})

	t.Run("global config exists", func(t *testing.T) {
		globalPath := GlobalPath()
		if err := os.MkdirAll(filepath.Dir(globalPath), 0755); err != nil {
			t.Fatalf("Failed to create global config dir: %v", err)
		}
		if err := os.WriteFile(globalPath, []byte("theme: mocha\n"), 0644); err != nil {
			t.Fatalf("Failed to write global config: %v", err)
		}
		defer func() { _ = os.Remove(globalPath) }()

		if !Exists() {
			t.Error("Exists() = false, want true when global config exists")
		}
	})

	t.Run("project config exists", func(t *testing.T) {
		_ = os.Remove(GlobalPath())

		projectPath := ProjectPath()
		if err := os.WriteFile(projectPath, []byte("theme: mocha\n"), 0644); err != nil {
			t.Fatalf("Failed to write project config: %v", err)
		}
		defer func() { _ = os.Remove(projectPath) }()

		if !Exists() {
			t.Error("Exists() = false, want true when project config exists")
		}
	})
}

func TestWriteGlobal(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))

	cfg := &Config{
		Theme:    "latte",
		Output:   "json",
		SaveDir:  "out",
		DataDir:  ".test",
		LogLevel: "debug",
		LogFile:  "/tmp/test.log",
	}

	if err := WriteGlobal(cfg); err != nil {
		t.Fatalf("WriteGlobal() error = %v", err)
	}

	data, err := os.ReadFile(GlobalPath())
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	content := string(data)
	expectedFields := []string{
		"theme: latte",
		"output: json",
		"save_dir: out",
		"data_dir: .test",
		"log_level: debug",
		"log_file: /tmp/test.log",
	}

	for _, field := range expectedFields {
		if !strings.Contains(content, field) {
			t.Errorf("Config file missing expected field: %s\nContent:\n%s", field, content)
		}
	}
}

func TestWriteProject(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg := &Config{
		Theme:   "mocha",
		Output:  "yaml",
		DataDir: ".project",
	}

	if err := WriteProject(cfg); err != nil {
		t.Fatalf("WriteProject() error = %v", err)
	}

	data, err := os.ReadFile(ProjectPath())
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	content := string(data)
	for _, field := range []string{"theme: mocha", "output: yaml", "data_dir: .project"} {
		if !strings.Contains(content, field) {
			t.Errorf("Config file missing expected field: %s\nContent:\n%s", field, content)
		}
	}
}

func TestLoad_NoConfig(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	t.Setenv("PLANTERM_OUTPUT", "")
	t.Setenv("PLANTERM_THEME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Theme != "mocha" {
		t.Errorf("Load() default Theme = %v, want mocha", cfg.Theme)
	}
	if cfg.Output != "yaml" {
		t.Errorf("Load() default Output = %v, want yaml", cfg.Output)
	}
	if cfg.DataDir != ".planterm" {
		t.Errorf("Load() default DataDir = %v, want .planterm", cfg.DataDir)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Load() default LogLevel = %v, want info", cfg.LogLevel)
	}
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	t.Setenv("PLANTERM_OUTPUT", "")
	t.Setenv("PLANTERM_THEME", "")

	global := &Config{Theme: "latte", Output: "json", DataDir: ".global", LogLevel: "warn"}
	if err := WriteGlobal(global); err != nil {
		t.Fatalf("WriteGlobal() error = %v", err)
	}

	if err := os.WriteFile(ProjectPath(), []byte("output: yaml\n"), 0644); err != nil {
		t.Fatalf("Failed to write project config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output != "yaml" {
		t.Errorf("Load() Output = %v, want project override yaml", cfg.Output)
	}
	if cfg.Theme != "latte" {
		t.Errorf("Load() Theme = %v, want global latte", cfg.Theme)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("Load() LogLevel = %v, want global warn", cfg.LogLevel)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	t.Setenv("PLANTERM_OUTPUT", "json")
	t.Setenv("PLANTERM_SAVE_DIR", "/tmp/answers")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output != "json" {
		t.Errorf("Load() Output = %v, want env json", cfg.Output)
	}
	if cfg.SaveDir != "/tmp/answers" {
		t.Errorf("Load() SaveDir = %v, want env /tmp/answers", cfg.SaveDir)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "valid yaml output",
			config:  &Config{Output: "yaml", LogLevel: "info"},
			wantErr: false,
		},
		{
			name:    "valid json output",
			config:  &Config{Output: "json"},
			wantErr: false,
		},
		{
			name:    "unknown output format",
			config:  &Config{Output: "toml"},
			wantErr: true,
		},
		{
			name:    "bad log level",
			config:  &Config{Output: "yaml", LogLevel: "loud"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
