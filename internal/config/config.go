package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации редактора.

type Config struct {
	Editor   EditorConfig   `yaml:"editor"`
	EventBus EventBusConfig `yaml:"eventbus"`
	Server   ServerConfig   `yaml:"server"`
}

// EditorConfig задаёт значения по умолчанию для новых сессий редактирования.
type EditorConfig struct {
	MaxBlocks int  `yaml:"max_blocks"` // -1 = без ограничения
	FastMode  bool `yaml:"fast_mode"`
	UseQueue  bool `yaml:"use_queue"`
}

type EventBusConfig struct {
	URL       string `yaml:"url"`
	Stream    string `yaml:"stream"`
	Retention int    `yaml:"retention_hours"`
}

type ServerConfig struct {
	MetricsPort int `yaml:"metrics_port"`
}

// GetMaxBlocks возвращает лимит изменений с приоритетом: config -> env -> default
func (e *EditorConfig) GetMaxBlocks() int {
	if e.MaxBlocks != 0 {
		return e.MaxBlocks
	}

	if envVal := os.Getenv("EDITOR_MAX_BLOCKS"); envVal != "" {
		if limit, err := strconv.Atoi(envVal); err == nil && limit >= -1 {
			return limit
		}
	}

	return -1
}

// GetMetricsPort возвращает Prometheus метрики порт с поддержкой fallback значений
func (s *ServerConfig) GetMetricsPort() int {
	if s.MetricsPort > 0 {
		return s.MetricsPort
	}

	if envVal := os.Getenv("EDITOR_METRICS_PORT"); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	return 2112
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV EDITOR_CONFIG или возвращает nil, nil.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("EDITOR_CONFIG")
		if path == "" {
			return nil, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
