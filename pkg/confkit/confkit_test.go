package confkit_test

import (
	"os"
	"path/filepath"
	"testing"

	"dexboard-api/pkg/confkit"
)

func TestResolvePath(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		file     string
		expected string
	}{
		{
			name:     "absolute path wins over base",
			base:     "/base/dir",
			file:     "/absolute/path/file.yaml",
			expected: "/absolute/path/file.yaml",
		},
		{
			name:     "relative path joins base",
			base:     "/base/dir",
			file:     "market.yaml",
			expected: "/base/dir/market.yaml",
		},
		{
			name:     "nested relative path",
			base:     "/base/dir",
			file:     "conf/market.yaml",
			expected: "/base/dir/conf/market.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := confkit.ResolvePath(tt.base, tt.file); got != tt.expected {
				t.Errorf("ResolvePath() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestResolvePathExpandsEnv(t *testing.T) {
	t.Setenv("CONF_DIR", "rendered")

	got := confkit.ResolvePath("/base", "${CONF_DIR}/tokens.yaml")
	want := filepath.Join("/base", "rendered", "tokens.yaml")
	if got != want {
		t.Errorf("ResolvePath() = %v, want %v", got, want)
	}
}

func TestBaseDir(t *testing.T) {
	tests := []struct {
		name     string
		mainPath string
		expected string
	}{
		{name: "simple path", mainPath: "/etc/config/app.yaml", expected: "/etc/config"},
		{name: "root path", mainPath: "/app.yaml", expected: "/"},
		{name: "relative path", mainPath: "config/app.yaml", expected: "config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := confkit.BaseDir(tt.mainPath); got != tt.expected {
				t.Errorf("BaseDir() = %v, want %v", got, tt.expected)
			}
		})
	}
}

type sampleConf struct {
	Name string
	Port int `json:",default=8080"`
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.yaml")
	if err := os.WriteFile(path, []byte("Name: board\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := confkit.LoadFile[sampleConf](path, false)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Name != "board" {
		t.Errorf("Name = %v, want board", cfg.Name)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %v, want default 8080", cfg.Port)
	}
}

func TestLoadFileExpandsEnv(t *testing.T) {
	t.Setenv("SAMPLE_NAME", "from-env")

	path := filepath.Join(t.TempDir(), "sample.yaml")
	if err := os.WriteFile(path, []byte("Name: ${SAMPLE_NAME}\nPort: 9000\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := confkit.LoadFile[sampleConf](path, true)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Name != "from-env" {
		t.Errorf("Name = %v, want from-env", cfg.Name)
	}
	if cfg.Port != 9000 {
		t.Errorf("Port = %v, want 9000", cfg.Port)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := confkit.LoadFile[sampleConf]("/does/not/exist.yaml", false); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestSectionHydrate(t *testing.T) {
	t.Run("empty file is a no-op", func(t *testing.T) {
		section := &confkit.Section[string]{}
		err := section.Hydrate("/base", func(path string) (*string, error) {
			t.Error("loader should not be called for empty file")
			return nil, nil
		})
		if err != nil {
			t.Errorf("Hydrate() error = %v, want nil", err)
		}
		if section.Value != nil {
			t.Error("Value should remain nil for empty file")
		}
	})

	t.Run("resolves path and stores value", func(t *testing.T) {
		section := &confkit.Section[string]{File: "market.yaml"}
		loaded := "loaded"

		err := section.Hydrate("/base", func(path string) (*string, error) {
			if path != "/base/market.yaml" {
				t.Errorf("loader received path %v, want /base/market.yaml", path)
			}
			return &loaded, nil
		})
		if err != nil {
			t.Errorf("Hydrate() error = %v, want nil", err)
		}
		if section.Value == nil || *section.Value != loaded {
			t.Errorf("Value = %v, want %q", section.Value, loaded)
		}
		if section.File != "/base/market.yaml" {
			t.Errorf("File = %v, want /base/market.yaml", section.File)
		}
	})
}

func TestMustProjectPathFindsRepoRoot(t *testing.T) {
	path := confkit.MustProjectPath("etc/market.yaml")
	if filepath.Base(path) != "market.yaml" {
		t.Errorf("unexpected leaf: %v", path)
	}
	root := filepath.Dir(filepath.Dir(path))
	if _, err := os.Stat(filepath.Join(root, "go.mod")); err != nil {
		t.Errorf("project root %v does not contain go.mod: %v", root, err)
	}
}
