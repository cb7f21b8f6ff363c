package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

// Config holds runtime settings for the memory system.
// MemoryThreshold is recognized for compatibility with the original
// deployment but is not applied by the retrieval path.
type Config struct {
	MemoryRecallLimit  int         `yaml:"memory_recall_limit"`
	ContextMemoryLimit int         `yaml:"context_memory_limit"`
	MemoryThreshold    float64     `yaml:"memory_threshold"`
	MaxSessionHistory  int         `yaml:"max_session_history"`
	Embedding          Embedding   `yaml:"embedding"`
	Persistence        Persistence `yaml:"memory_persistence"`
}

// LocalModel is the sentence-transformers model the local provider stands
// in for; the Gemini API does not serve it.
const LocalModel = "all-MiniLM-L6-v2"

// Embedding selects the embedding provider
type Embedding struct {
	Provider  string `yaml:"provider"` // "local" or "gemini"
	Model     string `yaml:"model"`
	Dimension int    `yaml:"dimension"`
}

// Persistence controls the optional vector archive
type Persistence struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		MemoryRecallLimit:  5,
		ContextMemoryLimit: 3,
		MemoryThreshold:    0.7,
		MaxSessionHistory:  100,
		Embedding: Embedding{
			Provider:  "local",
			Model:     LocalModel,
			Dimension: 384,
		},
		Persistence: Persistence{
			Enabled: false,
			Path:    "data/memories",
		},
	}
}

// Load reads a YAML config file and overlays it on the defaults.
// An empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse config file", goerr.V("path", path))
	}

	return cfg, nil
}
