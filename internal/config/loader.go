package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the quiz configuration.
// Search order: customPath -> ~/.stagequiz/configs/quiz.yaml -> ./configs/quiz.yaml -> embedded default
func Load(customPath string) (QuizConfig, error) {
	var cfg QuizConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		Normalize(&cfg)
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("quiz.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				Normalize(&cfg)
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/quiz.yaml"); err == nil {
		cfg = QuizConfig{}
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			Normalize(&cfg)
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg = QuizConfig{}
	if err := yaml.Unmarshal(defaultQuizYAML, &cfg); err != nil {
		return DefaultQuizConfig(), nil // Fallback to hardcoded if embed fails
	}
	Normalize(&cfg)
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".stagequiz", "configs", filename)
}
