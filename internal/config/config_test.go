package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"plane-rotator/internal/mathutil"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoad_JSON(t *testing.T) {
	p := writeFile(t, "cfg.json", `{
	  "goal": [1, 0, 0],
	  "resolve_antiparallel": true,
	  "preview": {"output": "out.webp", "size": 128}
	}`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.GoalVec() != (mathutil.Vec3{1, 0, 0}) {
		t.Fatalf("goal = %v", cfg.Goal)
	}
	if !cfg.ResolveAntiParallel || cfg.Preview.Output != "out.webp" || cfg.Preview.Size != 128 {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoad_YAML(t *testing.T) {
	p := writeFile(t, "cfg.yaml", "goal: [0, 1, 0]\nstrict_tokens: true\npreview:\n  supersample: 3\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.GoalVec() != (mathutil.Vec3{0, 1, 0}) || !cfg.StrictTokens || cfg.Preview.Supersample != 3 {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoad_EmptyYAML(t *testing.T) {
	p := writeFile(t, "empty.yml", "")
	if _, err := Load(p); err != nil {
		t.Fatalf("empty yaml: %v", err)
	}
}

func TestLoad_SchemaViolations(t *testing.T) {
	cases := map[string]string{
		"short goal":    `{"goal": [1, 0]}`,
		"unknown field": `{"goals": [0, 0, 1]}`,
		"bad type":      `{"normalize_goal": "yes"}`,
		"huge preview":  `{"preview": {"size": 100000}}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			p := writeFile(t, "cfg.json", body)
			_, err := Load(p)
			if err == nil || !strings.Contains(err.Error(), "validate") {
				t.Fatalf("err = %v, want validation failure", err)
			}
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestResolve(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})
	if cfg.GoalVec() != (mathutil.Vec3{0, 0, 1}) {
		t.Fatalf("default goal = %v", cfg.Goal)
	}
	if cfg.Preview.Size != 384 || cfg.Preview.Supersample != 2 {
		t.Fatalf("preview defaults = %+v", cfg.Preview)
	}

	cfg = Config{Goal: []float64{1, 0, 0}, Preview: Preview{Size: 64}}
	cfg.Resolve(Flags{Goal: []float64{0, 1, 0}, PreviewSize: 256, RequireProper: true})
	if cfg.GoalVec() != (mathutil.Vec3{0, 1, 0}) || cfg.Preview.Size != 256 || !cfg.RequireProper {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}
