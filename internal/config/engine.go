package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	pkgconfig "tourcatalog/pkg/config"
)

// EngineConfig holds tuning parameters for the listing aggregation engine
// and its continuation driver.
type EngineConfig struct {
	// EagerDelay is how long after a completed page load the eager
	// auto-advance trigger waits before firing. Default: 300ms
	EagerDelay time.Duration

	// EagerMinVisible is the display-list size below which the eager
	// trigger requests another page. Compensates for annotation filtering
	// reducing a page's visible yield to near zero. Default: 10
	EagerMinVisible int

	// FallbackParallelism bounds concurrent per-item detail lookups within
	// one page's fallback batch. Default: 8
	FallbackParallelism int

	// VocabularyFile optionally points to a YAML file with extra keyword
	// synonyms that activate the pet filter. The built-in vocabulary is
	// always included. Default: unset
	VocabularyFile string
}

// LoadEngineConfig loads engine configuration from environment variables:
//
//	ENGINE_EAGER_DELAY, ENGINE_EAGER_MIN_VISIBLE,
//	ENGINE_FALLBACK_PARALLELISM, ENGINE_VOCABULARY_FILE
func LoadEngineConfig() (EngineConfig, error) {
	cfg := EngineConfig{
		EagerDelay:          pkgconfig.GetEnvDuration("ENGINE_EAGER_DELAY", 300*time.Millisecond),
		EagerMinVisible:     pkgconfig.GetEnvInt("ENGINE_EAGER_MIN_VISIBLE", 10),
		FallbackParallelism: pkgconfig.GetEnvInt("ENGINE_FALLBACK_PARALLELISM", 8),
		VocabularyFile:      pkgconfig.GetEnvString("ENGINE_VOCABULARY_FILE", ""),
	}

	if err := pkgconfig.ValidatePositiveDuration(cfg.EagerDelay); err != nil {
		return cfg, fmt.Errorf("invalid ENGINE_EAGER_DELAY: %w", err)
	}
	if cfg.EagerMinVisible < 1 {
		return cfg, fmt.Errorf("ENGINE_EAGER_MIN_VISIBLE must be positive, got %d", cfg.EagerMinVisible)
	}
	if cfg.FallbackParallelism < 1 {
		return cfg, fmt.Errorf("ENGINE_FALLBACK_PARALLELISM must be positive, got %d", cfg.FallbackParallelism)
	}
	return cfg, nil
}

// vocabularyFile is the on-disk format for extra keyword synonyms.
type vocabularyFile struct {
	Synonyms []string `yaml:"synonyms"`
}

// LoadExtraVocabulary reads additional pet-filter keyword synonyms from the
// configured YAML file. Returns nil when no file is configured.
func (c EngineConfig) LoadExtraVocabulary() ([]string, error) {
	if c.VocabularyFile == "" {
		return nil, nil
	}

	data, err := os.ReadFile(c.VocabularyFile)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary file: %w", err)
	}

	var vf vocabularyFile
	if err := yaml.Unmarshal(data, &vf); err != nil {
		return nil, fmt.Errorf("parse vocabulary file: %w", err)
	}
	return vf.Synonyms, nil
}
