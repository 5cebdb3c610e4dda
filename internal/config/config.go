package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	yaml "gopkg.in/yaml.v3"

	"keepnote/internal/constant"
)

const (
	DriverPostgres = "postgres"
	DriverBolt     = "bolt"
	DriverMemory   = "memory"
)

// Config is resolved from defaults, then an optional YAML file named by
// CONFIG_FILE, then environment variables (including a .env file).
type Config struct {
	HTTPAddr  string        `yaml:"http_addr"`
	Services  []string      `yaml:"services"`
	BodyLimit int           `yaml:"body_limit"`
	Storage   StorageConfig `yaml:"storage"`
	Events    EventsConfig  `yaml:"events"`
	Log       LogConfig     `yaml:"log"`
}

type StorageConfig struct {
	Driver           string `yaml:"driver"`
	ConnectionString string `yaml:"connection_string"`
	Migrate          bool   `yaml:"migrate"`
	BoltPath         string `yaml:"bolt_path"`
}

type EventsConfig struct {
	TopicName string `yaml:"topic_name"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Default() Config {
	return Config{
		HTTPAddr:  ":3000",
		Services:  []string{constant.ResourceNote, constant.ResourceReminder, constant.ResourceUser},
		BodyLimit: 1 * 1024 * 1024,
		Storage: StorageConfig{
			Driver:   DriverMemory,
			Migrate:  true,
			BoltPath: "keepnote.db",
		},
		Events: EventsConfig{TopicName: constant.DefaultEventTopicName},
		Log:    LogConfig{Level: "info", Format: "json"},
	}
}

// Load reads .env when present, then builds the Config. A missing .env is
// not an error.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from defaults, the CONFIG_FILE YAML document and
// the variables visible through lookup.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if path, ok := lookup("CONFIG_FILE"); ok && path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if v, ok := lookup("HTTP_ADDR"); ok && v != "" {
		cfg.HTTPAddr = v
	}
	if v, ok := lookup("SERVICES"); ok && v != "" {
		cfg.Services = splitList(v)
	}
	if v, ok := lookup("BODY_LIMIT"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("BODY_LIMIT: %w", err)
		}
		cfg.BodyLimit = n
	}
	if v, ok := lookup("STORAGE_DRIVER"); ok && v != "" {
		cfg.Storage.Driver = strings.ToLower(v)
	}
	if v, ok := lookup("DB_CONNECTION_STRING"); ok && v != "" {
		cfg.Storage.ConnectionString = v
	}
	if v, ok := lookup("DB_MIGRATE"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("DB_MIGRATE: %w", err)
		}
		cfg.Storage.Migrate = b
	}
	if v, ok := lookup("BOLT_PATH"); ok && v != "" {
		cfg.Storage.BoltPath = v
	}
	if v, ok := lookup("EVENT_TOPIC_NAME"); ok && v != "" {
		cfg.Events.TopicName = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		cfg.Log.Level = v
	}
	if v, ok := lookup("LOG_FORMAT"); ok && v != "" {
		cfg.Log.Format = v
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Storage.Driver {
	case DriverPostgres:
		if c.Storage.ConnectionString == "" {
			return errors.New("DB_CONNECTION_STRING is required for the postgres driver")
		}
	case DriverBolt:
		if c.Storage.BoltPath == "" {
			return errors.New("BOLT_PATH is required for the bolt driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if len(c.Services) == 0 {
		return errors.New("at least one service must be enabled")
	}
	for _, s := range c.Services {
		switch s {
		case constant.ResourceNote, constant.ResourceReminder, constant.ResourceUser:
		default:
			return fmt.Errorf("unknown service %q", s)
		}
	}

	if c.BodyLimit <= 0 {
		return errors.New("body limit must be positive")
	}
	return nil
}

// Enabled reports whether the named service is mounted by this process.
func (c Config) Enabled(service string) bool {
	for _, s := range c.Services {
		if s == service {
			return true
		}
	}
	return false
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.ToLower(strings.TrimSpace(part)); p != "" {
			out = append(out, p)
		}
	}
	return out
}
