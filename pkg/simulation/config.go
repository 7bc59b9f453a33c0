package simulation

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed config.schema.json
var configSchema string

const configSchemaURL = "config.schema.json"

// ErrUnsupportedFormat is returned for config files that are not JSON, YAML or TOML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Spawn patterns understood by the host spawner.
const (
	SpawnUniform = "uniform"
	SpawnPerlin  = "perlin"
)

type Config struct {
	// Window Dimensions
	WindowWidth  int `json:"windowWidth"`
	WindowHeight int `json:"windowHeight"`

	// Containment rectangle, lower bounds then upper bound coordinates
	Bounds geometry.Rect `json:"bounds"`

	// Population
	NumBoids  int `json:"numBoids"`
	MaxBoids  int `json:"maxBoids"`  // host cap, the simulation itself has none
	BatchSize int `json:"batchSize"` // boids added or removed per button press

	Spawn SpawnConfig `json:"spawn"`

	// Host side clamp of the wall clock frame delta, in seconds
	MaxFrameDelta float64 `json:"maxFrameDelta"`

	Params Params `json:"params"`
}

type SpawnConfig struct {
	Pattern    string  `json:"pattern"`
	Seed       uint64  `json:"seed"`
	NoiseScale float64 `json:"noiseScale"`
}

func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1600,
		WindowHeight: 900,
		// 200 leaves room for the control panel, 25 is the edge padding
		Bounds:        geometry.Rect{X: 200, Y: 25, Width: 1575, Height: 875},
		NumBoids:      100,
		MaxBoids:      200,
		BatchSize:     10,
		MaxFrameDelta: 0.1,
		Spawn: SpawnConfig{
			Pattern:    SpawnUniform,
			Seed:       1,
			NoiseScale: 0.01,
		},
		Params: DefaultParams(),
	}
}

// NewSimulation builds an empty simulation with the configured bounds and tuning.
func (c *Config) NewSimulation(logger *zap.Logger) *Simulation {
	return New(c.Bounds.X, c.Bounds.Y, c.Bounds.Width, c.Bounds.Height,
		WithParams(c.Params), WithLogger(logger))
}

// LoadConfig loads configuration from a JSON, YAML or TOML file and validates it
// against the schema. An empty schemaFile selects the embedded schema.
// Keys missing from the file keep their DefaultConfig value.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := compileSchema(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File and normalize it to JSON
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	raw, err := toJSON(configFile, b)
	if err != nil {
		return nil, err
	}

	// 3. Validate
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal over the defaults
	cfg := DefaultConfig()
	if err := json.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

func compileSchema(schemaFile string) (*jsonschema.Schema, error) {
	if schemaFile == "" {
		return jsonschema.CompileString(configSchemaURL, configSchema)
	}
	return jsonschema.Compile(schemaFile)
}

// toJSON converts YAML and TOML documents to JSON so a single schema covers all formats.
func toJSON(name string, b []byte) ([]byte, error) {
	var doc map[string]interface{}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return b, nil
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode config yaml: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(b), &doc); err != nil {
			return nil, fmt.Errorf("failed to decode config toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(name))
	}
	if doc == nil {
		doc = map[string]interface{}{}
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert config to json: %w", err)
	}
	return raw, nil
}
