// Package config загружает конфигурацию библиотеки из YAML.
// Конфигурация передается в вызовы явно; скрытого глобального
// состояния пакет не держит.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации библиотеки.

type Config struct {
	Break   BreakConfig   `yaml:"break"`
	Logging LoggingConfig `yaml:"logging"`
}

// BreakConfig управляет поведением радиусного разрушения
type BreakConfig struct {
	// BreakSingleBlockWhenSneaking отключает радиусное разрушение,
	// пока агент крадется: ломается только один блок.
	BreakSingleBlockWhenSneaking bool `yaml:"break_single_block_when_sneaking"`

	// DisableExtendedHitboxWhileSneaking скрывает расширенный контур
	// прицеливания, пока агент крадется.
	DisableExtendedHitboxWhileSneaking bool `yaml:"disable_extended_hitbox_while_sneaking"`

	// MaxRadius защитный потолок эффективного радиуса после цепочки
	// слушателей. 0 означает значение по умолчанию.
	MaxRadius int `yaml:"max_radius"`
}

// LoggingConfig управляет логированием библиотеки
type LoggingConfig struct {
	Dir string `yaml:"dir"` // Директория файлов логов; пусто — только консоль
}

// GetMaxRadius возвращает потолок радиуса с поддержкой fallback значений
func (b *BreakConfig) GetMaxRadius() int {
	return getIntWithEnvFallback(b.MaxRadius, "MAGNA_MAX_RADIUS", 16)
}

// getIntWithEnvFallback возвращает значение с приоритетом: config -> env -> default
func getIntWithEnvFallback(configValue int, envVar string, defaultValue int) int {
	// Если значение задано в конфиге и больше 0, используем его
	if configValue > 0 {
		return configValue
	}

	// Пробуем прочитать из environment variable
	if envVal := os.Getenv(envVar); envVal != "" {
		if v, err := strconv.Atoi(envVal); err == nil && v > 0 {
			return v
		}
	}

	// Используем дефолтное значение
	return defaultValue
}

// Default возвращает конфигурацию по умолчанию:
// крадущийся агент ломает один блок, расширенный контур скрыт.
func Default() *Config {
	return &Config{
		Break: BreakConfig{
			BreakSingleBlockWhenSneaking:       true,
			DisableExtendedHitboxWhileSneaking: true,
		},
	}
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV MAGNA_CONFIG или возвращает дефолты.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("MAGNA_CONFIG")
		if path == "" {
			return Default(), nil // конфиг не задан — использовать дефолты
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("чтение конфигурации %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("разбор конфигурации %s: %w", path, err)
	}

	return cfg, nil
}
