package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"plane-rotator/internal/mathutil"
)

//go:embed schema.json
var schemaText string

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// Config holds solver options and preview settings.
type Config struct {
	// Solver
	Goal                []float64 `json:"goal,omitempty"`
	NormalizeGoal       bool      `json:"normalize_goal"`
	ResolveAntiParallel bool      `json:"resolve_antiparallel"`
	RequireProper       bool      `json:"require_proper"`
	StrictTokens        bool      `json:"strict_tokens"`

	Preview Preview `json:"preview"`
}

// Preview controls the optional rendered image.
type Preview struct {
	Output      string `json:"output"`
	Size        int    `json:"size"`
	Supersample int    `json:"supersample"`
	Texture     string `json:"texture"`
}

// Load reads a JSON or YAML (.yaml/.yml) config file, validates it against
// the embedded schema and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yamlToJSON(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse validates a JSON document and decodes it.
func Parse(data []byte) (Config, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return Config{}, fmt.Errorf("parse: %w", err)
	}

	s, err := compiledSchema()
	if err != nil {
		return Config{}, err
	}
	if err := s.Validate(doc); err != nil {
		return Config{}, fmt.Errorf("validate: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse: %w", err)
	}
	return cfg, nil
}

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("config.schema.json", schemaText)
	})
	return schema, schemaErr
}

func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return json.Marshal(doc)
}

// Resolve applies CLI overrides and fills in defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if len(flags.Goal) == 3 {
		c.Goal = flags.Goal
	}
	if flags.NormalizeGoal {
		c.NormalizeGoal = true
	}
	if flags.ResolveAntiParallel {
		c.ResolveAntiParallel = true
	}
	if flags.RequireProper {
		c.RequireProper = true
	}
	if flags.StrictTokens {
		c.StrictTokens = true
	}
	if flags.PreviewOutput != "" {
		c.Preview.Output = flags.PreviewOutput
	}
	if flags.PreviewSize > 0 {
		c.Preview.Size = flags.PreviewSize
	}
	if flags.Texture != "" {
		c.Preview.Texture = flags.Texture
	}

	if len(c.Goal) != 3 {
		c.Goal = []float64{0, 0, 1}
	}

	// Defaults for preview settings
	if c.Preview.Size <= 0 {
		c.Preview.Size = 384
	}
	if c.Preview.Supersample <= 0 {
		c.Preview.Supersample = 2
	}
}

// GoalVec returns the goal as a vector. Call after Resolve.
func (c Config) GoalVec() mathutil.Vec3 {
	if len(c.Goal) != 3 {
		return mathutil.Vec3{0, 0, 1}
	}
	return mathutil.Vec3{c.Goal[0], c.Goal[1], c.Goal[2]}
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Goal                []float64
	NormalizeGoal       bool
	ResolveAntiParallel bool
	RequireProper       bool
	StrictTokens        bool
	PreviewOutput       string
	PreviewSize         int
	Texture             string
}
