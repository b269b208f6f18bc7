package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/tracks/export", "/tracks/export"},
		{"single trailing slash", "/tracks/export/", "/tracks/export"},
		{"multiple trailing slashes", "/tracks/export///", "/tracks/export"},
		{"root path", "/", "/"},
		{"relative path", "output", "output"},
		{"relative with slash", "output/", "output"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate_RequiresInputDir(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("Validate with empty input_dir succeeded, want error")
	}
}

func TestValidate_OutputDirDefaultsToInputDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputDir = "/tracks/export"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.OutputDir != "/tracks/export" {
		t.Errorf("output dir = %q, want it to default to input dir", cfg.OutputDir)
	}
}

func TestValidate_KeepsExplicitOutputDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputDir = "/tracks/export"
	cfg.OutputDir = "/tracks/kml"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.OutputDir != "/tracks/kml" {
		t.Errorf("output dir = %q, want %q", cfg.OutputDir, "/tracks/kml")
	}
}

func TestValidate_Workers(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		wantErr bool
	}{
		{"default is valid", DefaultConfig().Workers, false},
		{"one is valid", 1, false},
		{"zero is invalid", 0, true},
		{"negative is invalid", -2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.InputDir = "/tracks"
			cfg.Workers = tt.workers
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ColorMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    ColorMode
		wantErr bool
	}{
		{"auto is valid", ColorAuto, false},
		{"always is valid", ColorAlways, false},
		{"never is valid", ColorNever, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "rainbow", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.InputDir = "/tracks"
			cfg.ColorMode = tt.mode
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFile_OverlaysValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gpx2kml.yml")
	content := "input_dir: /tracks/export/\nworkers: 3\ncolor: never\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	if err := LoadFile(path, &cfg); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.InputDir != "/tracks/export" {
		t.Errorf("input dir = %q, want %q (trailing slash normalized)", cfg.InputDir, "/tracks/export")
	}
	if cfg.Workers != 3 {
		t.Errorf("workers = %d, want 3", cfg.Workers)
	}
	if cfg.ColorMode != ColorNever {
		t.Errorf("color = %q, want %q", cfg.ColorMode, ColorNever)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Verbose {
		t.Error("verbose = true, want default false")
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	cfg := DefaultConfig()
	if err := LoadFile(filepath.Join(t.TempDir(), "nope.yml"), &cfg); err == nil {
		t.Error("LoadFile on missing file succeeded, want error")
	}
}

func TestLoadFile_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(path, []byte("input_dir: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	if err := LoadFile(path, &cfg); err == nil {
		t.Error("LoadFile on malformed YAML succeeded, want error")
	}
}
