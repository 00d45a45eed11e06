package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Rates holds tunable multipliers for loot drops.
type Rates struct {
	LootChanceMultiplier float64 `yaml:"loot_chance_multiplier"`
	LootAmountMultiplier float64 `yaml:"loot_amount_multiplier"`
	ItemAutoDestroyTime  int     `yaml:"item_auto_destroy_time"` // seconds
}

// DefaultRates returns Rates with x1 multipliers and 60s auto-destroy.
func DefaultRates() Rates {
	return Rates{
		LootChanceMultiplier: 1.0,
		LootAmountMultiplier: 1.0,
		ItemAutoDestroyTime:  60,
	}
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Placement describes one structure placed into the world at startup.
type Placement struct {
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// WorldServer holds all configuration for the world server.
type WorldServer struct {
	LogLevel string `yaml:"log_level"`

	// Simulation
	TickInterval     time.Duration `yaml:"tick_interval"`     // default: 100ms
	AutosaveInterval time.Duration `yaml:"autosave_interval"` // default: 30s
	RandomSeed       uint64        `yaml:"random_seed"`       // 0 = time-based

	// Database
	Database DatabaseConfig `yaml:"database"`

	// Rates
	Rates Rates `yaml:"rates"`

	// World layout
	Structures []Placement `yaml:"structures"`
}

// DefaultWorldServer returns WorldServer config with sensible defaults,
// including a small demo settlement layout.
func DefaultWorldServer() WorldServer {
	return WorldServer{
		LogLevel:         "info",
		TickInterval:     100 * time.Millisecond,
		AutosaveInterval: 30 * time.Second,
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "wildraid",
			Password: "wildraid",
			DBName:   "wildraid",
			SSLMode:  "disable",
		},
		Rates: DefaultRates(),
		Structures: []Placement{
			{Kind: "house_small", X: 20, Y: 10},
			{Kind: "house_small", X: 28, Y: 14},
			{Kind: "house_medium", X: 36, Y: 8},
			{Kind: "house_large", X: 50, Y: 20},
			{Kind: "tower", X: 44, Y: 30},
			{Kind: "stronghold", X: 70, Y: 25},
			{Kind: "gold_mine", X: 12, Y: 40},
		},
	}
}

// LoadWorldServer loads world server config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadWorldServer(path string) (WorldServer, error) {
	cfg := DefaultWorldServer()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
