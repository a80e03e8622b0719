package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/pinboard/pkg/errors"
	"github.com/matzehuels/pinboard/pkg/layout"
	"github.com/matzehuels/pinboard/pkg/record"
)

func env(vars map[string]string) func(string) (string, bool) {
	return mapLookup(vars)
}

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// isolated returns a loader that sees no files or variables from the host.
func isolated(t *testing.T) (Loader, string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return Loader{
		DotEnv:    filepath.Join(dir, "missing.env"),
		LookupEnv: env(nil),
	}, dir
}

func TestDefaults(t *testing.T) {
	l, _ := isolated(t)
	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, Default())
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/etc/xdg")
	if got, want := DefaultPath(), "/etc/xdg/pinboard/config.toml"; got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}

func TestPrecedence(t *testing.T) {
	l, dir := isolated(t)
	write(t, dir, "pinboard/config.toml", `
direction   = "LR"
node_width  = 100
node_height = 120
id_source   = "nanoid"
board       = "file.toml"
`)
	l.DotEnv = write(t, dir, ".env", "PINBOARD_NODE_WIDTH=110\nPINBOARD_BOARD=dotenv.toml\n")
	l.LookupEnv = env(map[string]string{
		"PINBOARD_BOARD":   "env.yaml",
		"PINBOARD_NO_SEED": "true",
		"PINBOARD_SEED":    "7",
		"PINBOARD_JITTER":  "  ",
	})

	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Config{
		Direction:  "LR",       // file
		NodeWidth:  110,        // .env over file
		NodeHeight: 120,        // file
		IDSource:   "nanoid",   // file
		Board:      "env.yaml", // env over .env
		NoSeed:     true,       // env
		Seed:       7,          // env
		Jitter:     0,          // blank env ignored
	}
	if cfg != want {
		t.Errorf("Load() = %+v\nwant %+v", cfg, want)
	}
}

func TestExplicitPath(t *testing.T) {
	l, dir := isolated(t)
	write(t, dir, "pinboard/config.toml", `direction = "LR"`)
	l.Path = write(t, dir, "other.toml", `node_height = 99`)

	cfg, err := l.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Direction != "TB" || cfg.NodeHeight != 99 {
		t.Errorf("explicit file should replace the default one, got %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, l *Loader, dir string)
		code  errors.Code
	}{
		{
			name:  "explicit file missing",
			setup: func(_ *testing.T, l *Loader, dir string) { l.Path = filepath.Join(dir, "nope.toml") },
			code:  errors.ErrCodeFileNotFound,
		},
		{
			name: "syntax",
			setup: func(t *testing.T, l *Loader, dir string) {
				l.Path = write(t, dir, "bad.toml", "direction = ")
			},
			code: errors.ErrCodeInvalidConfig,
		},
		{
			name: "unknown key",
			setup: func(t *testing.T, l *Loader, dir string) {
				l.Path = write(t, dir, "bad.toml", `colour = "red"`)
			},
			code: errors.ErrCodeInvalidConfig,
		},
		{
			name: "bad direction",
			setup: func(_ *testing.T, l *Loader, _ string) {
				l.LookupEnv = env(map[string]string{"PINBOARD_DIRECTION": "diagonal"})
			},
			code: errors.ErrCodeInvalidConfig,
		},
		{
			name: "bad id source",
			setup: func(t *testing.T, l *Loader, dir string) {
				l.DotEnv = write(t, dir, ".env", "PINBOARD_ID_SOURCE=random\n")
			},
			code: errors.ErrCodeInvalidConfig,
		},
		{
			name: "bad number",
			setup: func(_ *testing.T, l *Loader, _ string) {
				l.LookupEnv = env(map[string]string{"PINBOARD_NODE_WIDTH": "wide"})
			},
			code: errors.ErrCodeInvalidConfig,
		},
		{
			name: "bad bool",
			setup: func(_ *testing.T, l *Loader, _ string) {
				l.LookupEnv = env(map[string]string{"PINBOARD_VERBOSE": "loud"})
			},
			code: errors.ErrCodeInvalidConfig,
		},
		{
			name: "nan width",
			setup: func(t *testing.T, l *Loader, dir string) {
				l.Path = write(t, dir, "empty.toml", "")
				l.LookupEnv = env(map[string]string{"PINBOARD_NODE_WIDTH": "NaN"})
			},
			code: errors.ErrCodeInvalidConfig,
		},
		{
			name: "infinite height",
			setup: func(t *testing.T, l *Loader, dir string) {
				l.DotEnv = write(t, dir, ".env", "PINBOARD_NODE_HEIGHT=+Inf\n")
			},
			code: errors.ErrCodeInvalidConfig,
		},
		{
			name: "infinite jitter in file",
			setup: func(t *testing.T, l *Loader, dir string) {
				l.Path = write(t, dir, "inf.toml", "jitter = inf")
			},
			code: errors.ErrCodeInvalidConfig,
		},
		{
			name: "negative jitter",
			setup: func(_ *testing.T, l *Loader, _ string) {
				l.LookupEnv = env(map[string]string{"PINBOARD_JITTER": "-1"})
			},
			code: errors.ErrCodeInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, dir := isolated(t)
			tt.setup(t, &l, dir)
			_, err := l.Load()
			if !errors.Is(err, tt.code) {
				t.Errorf("Load() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestLayoutOptions(t *testing.T) {
	cfg := Default()
	cfg.Direction = "lr"
	cfg.Jitter = 0.5
	cfg.Seed = 3

	opts := cfg.LayoutOptions(nil)
	if opts.Direction != layout.LeftRight {
		t.Errorf("Direction = %q, want LR", opts.Direction)
	}
	if opts.NodeWidth != layout.DefaultNodeWidth || opts.Jitter != 0.5 || opts.Seed != 3 {
		t.Errorf("LayoutOptions() = %+v", opts)
	}
}

func TestFactory(t *testing.T) {
	cfg := Default()
	cfg.IDSource = record.IDSourceSequence
	f, err := cfg.Factory()
	if err != nil {
		t.Fatal(err)
	}
	if id := f.Document("A", "").ID(); id != "v-1" {
		t.Errorf("first id = %q, want v-1", id)
	}

	cfg.IDSource = "dice"
	if _, err := cfg.Factory(); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Factory() error = %v, want INVALID_CONFIG", err)
	}
}
